// Package redistest skips tests whose Redis precondition is unmet.
//
//	func TestMain(m *testing.M) { os.Exit(redistest.Main(m)) }
//
//	func TestGeoRadius(t *testing.T) {
//		redistest.RequireAt(t, "127.0.0.1", 6379, "3.2.0")
//		...
//	}
package redistest

import (
	"fmt"
	"os"
	"testing"

	"redis-gate/pkg/redisgate"
)

// Require skips tb unless cfg's precondition holds.
func Require(tb testing.TB, cfg redisgate.GateConfig) {
	tb.Helper()
	result := redisgate.Evaluate(tb.Context(), cfg)
	if !result.Passed() {
		tb.Skip(result.Reason)
	}
}

// RequireDefault skips tb unless Redis listens on localhost:6379.
func RequireDefault(tb testing.TB) {
	tb.Helper()
	Require(tb, redisgate.AtDefaultEndpoint())
}

// RequireAt skips tb unless Redis listens on host:port and, when minVersion
// is non-empty, runs at least that version. A bad port or version is a
// broken test, so it fails tb instead of skipping.
func RequireAt(tb testing.TB, host string, port int, minVersion string) {
	tb.Helper()
	cfg, err := redisgate.At(host, port)
	if err != nil {
		tb.Fatalf("redistest: %v", err)
		return
	}
	if minVersion != "" {
		if cfg, err = cfg.RequiringAtLeast(minVersion); err != nil {
			tb.Fatalf("redistest: %v", err)
			return
		}
	}
	Require(tb, cfg)
}

// Main runs the tests and then shuts down the shared client resources.
func Main(m *testing.M) int {
	code := m.Run()
	if err := redisgate.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "redistest: shutting down client resources: %v\n", err)
	}
	return code
}
