package transport

import (
	"net"
)

// Transport binds a listener and serves it. Serve returns once the listener
// is closed; other accept errors are logged and skipped.
type Transport interface {
	Listen() (net.Listener, error)
	Serve(listener net.Listener) error
}
