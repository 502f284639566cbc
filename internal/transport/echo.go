package transport

import (
	"bytes"
	"echo_server/internal/echo"
	"errors"
	"io"
	"log"
	"net"
)

const defaultReadBufferSize = 1024

var headerTerminator = []byte("\r\n\r\n")

type EchoOptions struct {
	ReadBufferSize   int
	ReadUntilHeaders bool
	LogConnections   bool
}

type echoServer struct {
	addr      string
	options   EchoOptions
	responder echo.Responder
}

var _ Transport = (*echoServer)(nil)

func NewEchoServer(addr string, responder echo.Responder, options EchoOptions) Transport {
	if options.ReadBufferSize <= 0 {
		options.ReadBufferSize = defaultReadBufferSize
	}
	return &echoServer{
		addr:      addr,
		options:   options,
		responder: responder,
	}
}

func (es *echoServer) Listen() (net.Listener, error) {
	return net.Listen("tcp4", es.addr)
}

// Serve handles one connection at a time until the listener is closed.
func (es *echoServer) Serve(listener net.Listener) error {
	log.Printf("Echo server is starting on %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}

		es.handle(conn)
	}
}

func (es *echoServer) handle(conn net.Conn) {
	defer es.closeConnection(conn)

	if es.options.LogConnections {
		log.Printf("Connection from %s", echo.FormatSource(conn.RemoteAddr()))
	}

	data, err := es.read(conn)
	if len(data) == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			log.Printf("Error reading from %s: %v", conn.RemoteAddr(), err)
		}
		return
	}

	response, err := es.responder.Respond(data, conn.RemoteAddr())
	if err != nil {
		log.Printf("Dropping request from %s: %v", conn.RemoteAddr(), err)
		return
	}

	if _, err = conn.Write(response); err != nil {
		log.Printf("Error writing response to %s: %v", conn.RemoteAddr(), err)
	}
}

// read does a single Read by default. With ReadUntilHeaders it keeps reading
// until the header terminator arrives, the buffer is full or the peer stops.
func (es *echoServer) read(conn net.Conn) ([]byte, error) {
	buf := make([]byte, es.options.ReadBufferSize)

	n, err := conn.Read(buf)
	if !es.options.ReadUntilHeaders {
		return buf[:n], err
	}

	for err == nil && n < len(buf) && !bytes.Contains(buf[:n], headerTerminator) {
		var read int
		read, err = conn.Read(buf[n:])
		n += read
	}
	if n > 0 && errors.Is(err, io.EOF) {
		err = nil
	}
	return buf[:n], err
}

func (es *echoServer) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("Error closing connection: %v", err)
	}
}
