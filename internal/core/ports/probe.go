package ports

import (
	"context"
	"time"

	"redis-gate/internal/core/domain"
)

//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks

// Reachability proves that something is listening on an address.
type Reachability interface {
	// Reach opens and immediately closes a connection to addr.
	Reach(ctx context.Context, addr string, timeout time.Duration) error
}

// ServerInfoSource queries a server for its INFO server listing.
type ServerInfoSource interface {
	ServerInfo(ctx context.Context, addr string) (domain.ServerInfo, error)
}

// GateService evaluates a gate configuration against a live endpoint.
type GateService interface {
	Evaluate(ctx context.Context, cfg domain.GateConfig) domain.ProbeResult
}
