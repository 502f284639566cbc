package bootstrap

import (
	"echo_server/internal/banner"
	"echo_server/internal/config"
	"echo_server/internal/echo"
	"echo_server/internal/health"
	"echo_server/internal/status"
	"echo_server/internal/transport"
	"echo_server/internal/version"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
)

var ErrEchoStopped = errors.New("echo server stopped")

type Bootstrap struct {
	Config     config.Config
	Echo       transport.Transport
	Health     health.Server
	Stdout     io.Writer
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(conf config.Config) *Bootstrap {
	responder := echo.New(status.NewPhrases(conf.StrictStatus()))
	echoServer := transport.NewEchoServer(conf.Addr(), responder, transport.EchoOptions{
		ReadBufferSize:   conf.ReadBufferSize(),
		ReadUntilHeaders: conf.ReadUntilHeaders(),
		LogConnections:   conf.LogConnections(),
	})

	var healthServer health.Server
	if conf.HealthEnabled() {
		healthServer = health.New(conf.Host(), conf.HealthPort())
	}

	return &Bootstrap{
		Config:     conf,
		Echo:       echoServer,
		Health:     healthServer,
		Stdout:     os.Stdout,
		ErrChan:    make(chan error, 5),
		SignalChan: make(chan os.Signal, 1),
	}
}

func (b *Bootstrap) startHealthServer() error {
	ln, err := b.Health.Listen()
	if err != nil {
		return fmt.Errorf("failed to start health server: %w", err)
	}

	log.Printf("Health server is starting on %s", ln.Addr())
	go func() {
		if err := b.Health.Serve(ln); err != nil {
			b.ErrChan <- fmt.Errorf("error when serving health server: %w", err)
		}
	}()
	return nil
}

func (b *Bootstrap) serveEcho(ln net.Listener) {
	b.setServing(true)
	err := b.Echo.Serve(ln)
	b.setServing(false)

	if err != nil {
		b.ErrChan <- fmt.Errorf("error when serving echo server: %w", err)
		return
	}
	b.ErrChan <- ErrEchoStopped
}

func (b *Bootstrap) setServing(serving bool) {
	if b.Health != nil {
		b.Health.SetServing(serving)
	}
}

func closeListener(ln net.Listener) {
	err := ln.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("Failed to close listener: %v", err)
	}
}

// Run binds the listeners and blocks until a service fails or a shutdown
// signal arrives. A bind failure is returned before anything is served.
func (b *Bootstrap) Run() error {
	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	ln, err := b.Echo.Listen()
	if err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}
	defer closeListener(ln)

	if b.Health != nil {
		if err = b.startHealthServer(); err != nil {
			return err
		}
		defer b.Health.Stop()
	}

	banner.Announce(b.Stdout, version.GetVersion(), ln.Addr().String())

	go b.serveEcho(ln)

	select {
	case err = <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		log.Printf("Received signal %s, initiating graceful shutdown", sig)
		return nil
	}
}
