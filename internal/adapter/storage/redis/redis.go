package redis

import (
	"context"
	"errors"
	"net"
	"sync"

	"redis-gate/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Resources is the client-side state shared by every short-lived diagnostic
// client: one dialer and the registry of clients not yet released.
type Resources struct {
	dialer *net.Dialer
	hooks  []goredis.Hook
	log    zerolog.Logger

	mu      sync.Mutex
	clients map[*goredis.Client]struct{}
	closed  bool
}

// NewResources creates client resources. Hooks are attached to every client
// handed out.
func NewResources(log zerolog.Logger, hooks ...goredis.Hook) *Resources {
	return &Resources{
		dialer:  &net.Dialer{KeepAlive: -1},
		hooks:   hooks,
		log:     log,
		clients: make(map[*goredis.Client]struct{}),
	}
}

// NewClient creates a single-connection client for addr. Retries are
// disabled and the caller's context deadline governs every command.
// The client must be handed back through Release.
func (r *Resources) NewClient(addr string) (*goredis.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, apperror.ErrResourcesClosed()
	}

	client := goredis.NewClient(&goredis.Options{
		Addr: addr,
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return r.dialer.DialContext(ctx, network, addr)
		},
		Protocol:              2,
		MaxRetries:            -1,
		PoolSize:              1,
		DisableIdentity:       true,
		ContextTimeoutEnabled: true,
	})
	for _, h := range r.hooks {
		client.AddHook(h)
	}

	r.clients[client] = struct{}{}
	return client, nil
}

// Release closes client immediately. Close failures are logged and returned
// as resource errors.
func (r *Resources) Release(client *goredis.Client) error {
	r.mu.Lock()
	delete(r.clients, client)
	r.mu.Unlock()

	if err := client.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
		appErr := apperror.ErrRelease("redis client", err)
		r.log.Warn().Err(appErr).Str("error_code", appErr.Code).Msg("releasing redis client")
		return appErr
	}
	return nil
}

// Active reports how many clients are handed out and not yet released.
func (r *Resources) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Shutdown closes every outstanding client. Further NewClient calls fail.
func (r *Resources) Shutdown() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	pending := make([]*goredis.Client, 0, len(r.clients))
	for c := range r.clients {
		pending = append(pending, c)
	}
	r.mu.Unlock()

	var errs []error
	for _, c := range pending {
		if err := r.Release(c); err != nil {
			errs = append(errs, err)
		}
	}
	if len(pending) > 0 {
		r.log.Debug().Int("clients", len(pending)).Msg("closed outstanding redis clients on shutdown")
	}
	return errors.Join(errs...)
}

var (
	sharedMu  sync.Mutex
	shared    *Resources
	sharedLog = zerolog.Nop()
)

// Shared returns the process-wide resources, creating them on first use or
// after a previous ShutdownShared.
func Shared() *Resources {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil {
		shared = NewResources(sharedLog)
	}
	return shared
}

// ShutdownShared tears down the process-wide resources, if any were created.
func ShutdownShared() error {
	sharedMu.Lock()
	res := shared
	shared = nil
	sharedMu.Unlock()

	if res == nil {
		return nil
	}
	return res.Shutdown()
}

// SetSharedLogger sets the logger used by process-wide resources created
// from now on.
func SetSharedLogger(log zerolog.Logger) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	sharedLog = log
}
