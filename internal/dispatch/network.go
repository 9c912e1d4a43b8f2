// Package dispatch delivers opaque print command buffers to printers over a
// transport. Dispatchers are stateless pass-through mechanisms: every call
// acquires its own connection, writes the whole buffer and releases the
// connection before returning. Nothing is read back and nothing is retried.
package dispatch

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Endpoint identifies a network printer's raw listening socket. Most label
// printers accept unformatted data on port 9100.
type Endpoint struct {
	Host string
	Port int
}

// Address renders the endpoint as a dialable host:port pair.
func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Option configures a Network dispatcher.
type Option func(*Network)

// WithDialTimeout bounds connection establishment. Zero keeps the transport
// default.
func WithDialTimeout(d time.Duration) Option {
	return func(n *Network) {
		n.dialTimeout = d
	}
}

// Network sends buffers straight to a printer's raw TCP port.
type Network struct {
	dialTimeout time.Duration
}

// NewNetwork returns a socket dispatcher.
func NewNetwork(opts ...Option) *Network {
	n := &Network{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Dispatch connects to the endpoint, writes the whole command and closes the
// connection. The printer never acknowledges the payload, so a nil return
// means delivered to the socket, not printed. Dial and write failures both
// surface as a single failed-delivery error.
func (n *Network) Dispatch(endpoint Endpoint, command []byte) error {
	conn, err := net.DialTimeout("tcp", endpoint.Address(), n.dialTimeout)
	if err != nil {
		return fmt.Errorf("deliver to %s: %w", endpoint.Address(), err)
	}
	defer conn.Close()

	if _, err := conn.Write(command); err != nil {
		return fmt.Errorf("deliver to %s: %w", endpoint.Address(), err)
	}
	return nil
}
