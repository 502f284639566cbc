package main

import (
	"echo_server/internal/bootstrap"
	"echo_server/internal/config"
	"echo_server/internal/version"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersion())
		return
	}

	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	conf, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	if err = bootstrap.New(conf).Run(); err != nil {
		log.Fatalf("Server stopped: %s", err)
	}
}
