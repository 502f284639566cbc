package config

import "net"

type Config interface {
	Host() string
	Port() string
	Addr() string
	ReadBufferSize() int
	ReadUntilHeaders() bool
	LogConnections() bool
	StrictStatus() bool
	HealthEnabled() bool
	HealthPort() string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Host() string           { return c.host }
func (c *config) Port() string           { return c.port }
func (c *config) Addr() string           { return net.JoinHostPort(c.host, c.port) }
func (c *config) ReadBufferSize() int    { return c.readBufferSize }
func (c *config) ReadUntilHeaders() bool { return c.readUntilHeaders }
func (c *config) LogConnections() bool   { return c.logConnections }
func (c *config) StrictStatus() bool     { return c.strictStatus }
func (c *config) HealthEnabled() bool    { return c.healthEnabled }
func (c *config) HealthPort() string     { return c.healthPort }
