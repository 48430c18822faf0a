package network

import (
	"context"
	"fmt"
	"net"
	"time"

	"redis-gate/pkg/apperror"

	"github.com/rs/zerolog"
)

// TCPProbe implements ports.Reachability with a plain TCP connect.
type TCPProbe struct {
	log zerolog.Logger
}

// NewTCPProbe creates a TCP reachability probe.
func NewTCPProbe(log zerolog.Logger) *TCPProbe {
	return &TCPProbe{log: log}
}

// Reach dials addr within timeout and closes the connection straight away.
// Nagle is disabled and linger is zero so close sends RST instead of FIN and
// leaves no TIME_WAIT sockets behind in fast test suites.
func (p *TCPProbe) Reach(ctx context.Context, addr string, timeout time.Duration) error {
	d := net.Dialer{Timeout: timeout, KeepAlive: -1}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", addr, err)
	}

	if tcp, ok := conn.(*net.TCPConn); ok {
		if err := tcp.SetNoDelay(true); err != nil {
			p.log.Debug().Err(err).Str("addr", addr).Msg("set TCP_NODELAY failed")
		}
		if err := tcp.SetLinger(0); err != nil {
			p.log.Debug().Err(err).Str("addr", addr).Msg("set SO_LINGER failed")
		}
	}

	if err := conn.Close(); err != nil {
		p.log.Warn().Err(apperror.ErrRelease("probe connection", err)).Str("addr", addr).Msg("closing probe connection")
	}
	return nil
}
