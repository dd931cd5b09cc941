// Package probe reports network reachability for the trivia repository.
package probe

import (
	"context"
	"net"
	"time"

	"github.com/ddanielcruz/numbertrivia/internal/trivia"
)

const (
	// Public DNS resolvers answer on 53/tcp from almost any network, which
	// makes them a cheap reachability target.
	DefaultAddress = "8.8.8.8:53"
	DefaultTimeout = 3 * time.Second
)

// NetProbe checks connectivity by dialing a TCP address. A failed or timed
// out dial means offline; the check itself never returns an error.
type NetProbe struct {
	address string
	timeout time.Duration
}

var _ trivia.ConnectivityProbe = (*NetProbe)(nil)

// New creates a new NetProbe. Empty address or zero timeout fall back to the
// defaults.
func New(address string, timeout time.Duration) *NetProbe {
	if address == "" {
		address = DefaultAddress
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &NetProbe{address: address, timeout: timeout}
}

// IsConnected dials the probe address and reports whether it succeeded.
func (p *NetProbe) IsConnected(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
