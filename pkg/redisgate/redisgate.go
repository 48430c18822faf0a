// Package redisgate checks, before a test runs, that a Redis server is
// listening at a given endpoint and optionally that it runs at least a given
// version. Unmet preconditions produce a Skip result, never an error.
//
//	cfg := redisgate.Must(redisgate.At("127.0.0.1", 6379))
//	cfg = redisgate.Must(cfg.RequiringAtLeast("6.2.0"))
//	if r := redisgate.Evaluate(ctx, cfg); !r.Passed() {
//		t.Skip(r.Reason)
//	}
//
// Package redistest wraps this for testing.TB.
package redisgate

import (
	"context"
	"sync"

	"redis-gate/internal/adapter/network"
	redisStorage "redis-gate/internal/adapter/storage/redis"
	"redis-gate/internal/core/domain"
	"redis-gate/internal/service"
	"redis-gate/pkg/logger"

	"github.com/rs/zerolog"
)

type (
	// GateConfig is the immutable description of a Redis precondition.
	GateConfig = domain.GateConfig
	// ProbeResult is the outcome of one evaluation.
	ProbeResult = domain.ProbeResult
	// Outcome is Pass or Skip.
	Outcome = domain.Outcome
)

const (
	OutcomePass = domain.OutcomePass
	OutcomeSkip = domain.OutcomeSkip
)

var (
	logMu sync.RWMutex
	log   = logger.New("warn", false)
)

func init() {
	redisStorage.SetSharedLogger(log)
}

// SetLogger routes gate diagnostics (skips at debug, release failures at warn).
func SetLogger(l zerolog.Logger) {
	logMu.Lock()
	log = l
	logMu.Unlock()
	redisStorage.SetSharedLogger(l)
}

func currentLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return log
}

// AtDefaultEndpoint requires Redis on localhost:6379.
func AtDefaultEndpoint() GateConfig {
	return domain.AtDefaultEndpoint()
}

// At requires Redis on host:port; a blank host means 127.0.0.1. An out of
// range port is a configuration error.
func At(host string, port int) (GateConfig, error) {
	return domain.At(host, port)
}

// RequiringAtLeast adds a minimum server version to cfg. A blank or
// unparsable version is a configuration error, reported before any I/O.
func RequiringAtLeast(cfg GateConfig, version string) (GateConfig, error) {
	return cfg.RequiringAtLeast(version)
}

// Must panics on a configuration error. Intended for test setup.
func Must(cfg GateConfig, err error) GateConfig {
	if err != nil {
		panic(err)
	}
	return cfg
}

// Evaluate probes cfg's endpoint using the process-wide client resources.
func Evaluate(ctx context.Context, cfg GateConfig) ProbeResult {
	l := currentLogger()
	gate := service.NewGateService(
		network.NewTCPProbe(l),
		redisStorage.NewSharedInfoSource(),
		l,
	)
	return gate.Evaluate(ctx, cfg)
}

// Shutdown releases the process-wide client resources. They are recreated
// on the next Evaluate that needs them.
func Shutdown() error {
	return redisStorage.ShutdownShared()
}
