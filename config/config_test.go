package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"redis-gate/pkg/apperror"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Empty(t, cfg.Redis.MinVersion)
	assert.Equal(t, 30*time.Millisecond, cfg.Probe.ConnectTimeout)
	assert.Equal(t, 2*time.Second, cfg.Probe.QueryTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.False(t, cfg.Output.JSON)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load("/non/existent/path/redisgate.yaml", nil)
	assert.Error(t, err)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
redis:
  host: "redis.example.com"
  port: 6380
  min_version: "6.2.0"
probe:
  connect_timeout: "250ms"
  query_timeout: "5s"
log:
  level: "debug"
  pretty: true
output:
  json: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "redisgate.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "6.2.0", cfg.Redis.MinVersion)
	assert.Equal(t, 250*time.Millisecond, cfg.Probe.ConnectTimeout)
	assert.Equal(t, 5*time.Second, cfg.Probe.QueryTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.True(t, cfg.Output.JSON)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("REDISGATE_REDIS_PORT", "6390")
	t.Setenv("REDISGATE_REDIS_MIN_VERSION", "7.0.0")
	t.Setenv("REDISGATE_PROBE_CONNECT_TIMEOUT", "1s")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 6390, cfg.Redis.Port)
	assert.Equal(t, "7.0.0", cfg.Redis.MinVersion)
	assert.Equal(t, time.Second, cfg.Probe.ConnectTimeout)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("REDISGATE_REDIS_HOST", "env-host")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("host", "", "")
	fs.Int("port", 0, "")
	require.NoError(t, fs.Parse([]string{"--host", "flag-host"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, "flag-host", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port, "unset flags leave defaults in place")
}

func TestConfig_Gate(t *testing.T) {
	cfg := &Config{
		Redis: RedisConfig{Host: "redis.local", Port: 6380, MinVersion: "6.0.0"},
		Probe: ProbeConfig{ConnectTimeout: 100 * time.Millisecond, QueryTimeout: time.Second},
	}

	gate, err := cfg.Gate()
	require.NoError(t, err)

	assert.Equal(t, "redis.local:6380", gate.Addr())
	require.NotNil(t, gate.MinVersion())
	assert.Equal(t, "6.0.0", gate.MinVersion().String())
	assert.Equal(t, 100*time.Millisecond, gate.ConnectTimeout())
	assert.Equal(t, time.Second, gate.QueryTimeout())
}

func TestConfig_Gate_IPv6Host(t *testing.T) {
	cfg := &Config{
		Redis: RedisConfig{Host: "::1", Port: 6380},
		Probe: ProbeConfig{ConnectTimeout: time.Second, QueryTimeout: time.Second},
	}

	gate, err := cfg.Gate()
	require.NoError(t, err)
	assert.Equal(t, "[::1]:6380", gate.Addr())
}

func TestConfig_Gate_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad port", Config{Redis: RedisConfig{Host: "x", Port: 0}, Probe: ProbeConfig{time.Second, time.Second}}},
		{"bad version", Config{Redis: RedisConfig{Host: "x", Port: 1, MinVersion: "latest"}, Probe: ProbeConfig{time.Second, time.Second}}},
		{"bad timeout", Config{Redis: RedisConfig{Host: "x", Port: 1}, Probe: ProbeConfig{0, time.Second}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Gate()
			require.Error(t, err)
			assert.True(t, apperror.IsKind(err, apperror.KindConfiguration))
		})
	}
}
