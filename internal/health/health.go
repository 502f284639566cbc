package health

import (
	"echo_server/internal/transport"
	"errors"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service key for the echo loop. The empty key
// reports the same status for clients that check the whole server.
const ServiceName = "echo"

type Server interface {
	transport.Transport
	SetServing(serving bool)
	Stop()
}

type server struct {
	host       string
	port       string
	grpcServer *grpc.Server
	health     *health.Server
}

// New builds a health server that listens on host:port, normally the same
// host as the echo listener.
func New(host, port string) Server {
	hs := health.NewServer()
	gs := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(gs, hs)

	s := &server{
		host:       host,
		port:       port,
		grpcServer: gs,
		health:     hs,
	}
	s.SetServing(false)
	return s
}

func (s *server) Listen() (net.Listener, error) {
	return net.Listen("tcp", net.JoinHostPort(s.host, s.port))
}

func (s *server) Serve(listener net.Listener) error {
	err := s.grpcServer.Serve(listener)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (s *server) SetServing(serving bool) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Stop marks every service NOT_SERVING and closes the listener.
func (s *server) Stop() {
	s.health.Shutdown()
	s.grpcServer.Stop()
}
