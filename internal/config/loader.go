package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultReadBufferSize = 1024
	minReadBufferSize     = 64
	maxReadBufferSize     = 1048576
)

type config struct {
	host string
	port string

	readBufferSize   int
	readUntilHeaders bool
	logConnections   bool

	strictStatus bool

	healthEnabled bool
	healthPort    string
}

func parse() (*config, error) {
	host := getenv("HOST", "127.0.0.1")

	port, err := parsePort("PORT", "8080")
	if err != nil {
		return nil, err
	}

	readBufferSize := parseReadBufferSize()
	readUntilHeaders := getenvBool("READ_UNTIL_HEADERS", false)
	logConnections := getenvBool("LOG_CONNECTIONS", true)
	strictStatus := getenvBool("STRICT_STATUS", false)

	healthEnabled := getenvBool("HEALTH_ENABLED", false)
	healthPort, err := parsePort("HEALTH_PORT", "8081")
	if err != nil {
		return nil, err
	}
	if healthEnabled && healthPort == port && healthPort != "0" {
		return nil, fmt.Errorf("HEALTH_PORT must differ from PORT")
	}

	return &config{
		host:             host,
		port:             port,
		readBufferSize:   readBufferSize,
		readUntilHeaders: readUntilHeaders,
		logConnections:   logConnections,
		strictStatus:     strictStatus,
		healthEnabled:    healthEnabled,
		healthPort:       healthPort,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parsePort(key, def string) (string, error) {
	raw := getenv(key, def)
	if _, err := strconv.ParseUint(raw, 10, 16); err != nil {
		return "", fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return raw, nil
}

func parseReadBufferSize() int {
	raw := getenv("READ_BUFFER_SIZE", strconv.Itoa(defaultReadBufferSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minReadBufferSize || size > maxReadBufferSize {
		log.Printf("Invalid READ_BUFFER_SIZE, falling back to %d", defaultReadBufferSize)
		return defaultReadBufferSize
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
