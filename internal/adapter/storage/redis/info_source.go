package redis

import (
	"context"
	"fmt"

	"redis-gate/internal/core/domain"
	"redis-gate/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
)

// InfoSource implements ports.ServerInfoSource by issuing INFO server on a
// throwaway client.
type InfoSource struct {
	resolve func() *Resources
}

// NewInfoSource creates an info source drawing clients from res.
func NewInfoSource(res *Resources) *InfoSource {
	return &InfoSource{resolve: func() *Resources { return res }}
}

// NewSharedInfoSource creates an info source drawing clients from the
// process-wide resources, looked up on every query.
func NewSharedInfoSource() *InfoSource {
	return &InfoSource{resolve: Shared}
}

// ServerInfo returns the INFO server listing of addr. The client is released
// on every path.
func (s *InfoSource) ServerInfo(ctx context.Context, addr string) (domain.ServerInfo, error) {
	res, client, err := s.newClient(addr)
	if err != nil {
		return nil, err
	}
	defer res.Release(client) //nolint:errcheck // logged by Release

	text, err := client.Info(ctx, "server").Result()
	if err != nil {
		return nil, fmt.Errorf("redis info server: %w", err)
	}
	return domain.ParseInfo(text), nil
}

// newClient retries once when the resources were shut down between lookup
// and use, so a concurrent Shutdown does not turn into an unmet precondition.
func (s *InfoSource) newClient(addr string) (*Resources, *goredis.Client, error) {
	res := s.resolve()
	client, err := res.NewClient(addr)
	if err != nil && apperror.IsKind(err, apperror.KindResource) {
		res.log.Debug().Err(err).Str("addr", addr).Msg("client resources shut down, resolving again")
		res = s.resolve()
		client, err = res.NewClient(addr)
	}
	return res, client, err
}
