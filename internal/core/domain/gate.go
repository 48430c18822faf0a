package domain

import (
	"net"
	"strconv"
	"strings"
	"time"

	"redis-gate/pkg/apperror"

	"k8s.io/apimachinery/pkg/util/version"
)

const (
	DefaultHost           = "localhost"
	FallbackHost          = "127.0.0.1"
	DefaultPort           = 6379
	DefaultConnectTimeout = 30 * time.Millisecond
	DefaultQueryTimeout   = 2 * time.Second
)

// GateConfig describes which Redis endpoint a test depends on and, optionally,
// the minimum server version it needs. It is immutable: every builder method
// returns a modified copy. The zero value is equivalent to AtDefaultEndpoint().
type GateConfig struct {
	host           string
	port           int
	minVersion     *version.Version
	connectTimeout time.Duration
	queryTimeout   time.Duration
}

// AtDefaultEndpoint requires a Redis instance listening on localhost:6379.
func AtDefaultEndpoint() GateConfig {
	return GateConfig{host: DefaultHost, port: DefaultPort}
}

// At requires a Redis instance listening on host:port. A blank host falls
// back to 127.0.0.1.
func At(host string, port int) (GateConfig, error) {
	if port < 1 || port > 65535 {
		return GateConfig{}, apperror.ErrInvalidPort(port)
	}
	host = strings.TrimSpace(host)
	if host == "" {
		host = FallbackHost
	}
	return GateConfig{host: host, port: port}, nil
}

// RequiringAtLeast returns a copy of c that additionally requires the running
// server to report at least the given version.
func (c GateConfig) RequiringAtLeast(v string) (GateConfig, error) {
	if strings.TrimSpace(v) == "" {
		return c, apperror.ErrBlankVersion()
	}
	parsed, err := ParseVersion(v)
	if err != nil {
		return c, apperror.ErrInvalidVersion(v, err)
	}
	c.minVersion = parsed
	return c, nil
}

// WithConnectTimeout bounds the reachability check.
func (c GateConfig) WithConnectTimeout(d time.Duration) (GateConfig, error) {
	if d <= 0 {
		return c, apperror.ErrInvalidTimeout("connect")
	}
	c.connectTimeout = d
	return c, nil
}

// WithQueryTimeout bounds the server info query.
func (c GateConfig) WithQueryTimeout(d time.Duration) (GateConfig, error) {
	if d <= 0 {
		return c, apperror.ErrInvalidTimeout("query")
	}
	c.queryTimeout = d
	return c, nil
}

func (c GateConfig) Host() string {
	if c.host == "" {
		return DefaultHost
	}
	return c.host
}

func (c GateConfig) Port() int {
	if c.port == 0 {
		return DefaultPort
	}
	return c.port
}

// Addr returns the host:port dial address.
func (c GateConfig) Addr() string {
	return net.JoinHostPort(c.Host(), strconv.Itoa(c.Port()))
}

// MinVersion returns the required version, or nil when any version will do.
func (c GateConfig) MinVersion() *version.Version {
	return c.minVersion
}

func (c GateConfig) ConnectTimeout() time.Duration {
	if c.connectTimeout <= 0 {
		return DefaultConnectTimeout
	}
	return c.connectTimeout
}

func (c GateConfig) QueryTimeout() time.Duration {
	if c.queryTimeout <= 0 {
		return DefaultQueryTimeout
	}
	return c.queryTimeout
}

// ParseVersion parses a dotted version such as "7.2.4". Anything trailing the
// numeric components (e.g. "-rc1") is ignored.
func ParseVersion(v string) (*version.Version, error) {
	return version.ParseGeneric(strings.TrimSpace(v))
}
