package config

import (
	"fmt"
	"strings"
	"time"

	"redis-gate/pkg/redisgate"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the preflight CLI configuration.
type Config struct {
	Redis  RedisConfig  `mapstructure:"redis"`
	Probe  ProbeConfig  `mapstructure:"probe"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

type RedisConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	MinVersion string `mapstructure:"min_version"` // empty: any version
}

type ProbeConfig struct {
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output
}

type OutputConfig struct {
	JSON bool `mapstructure:"json"`
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"host":            "redis.host",
	"port":            "redis.port",
	"min-version":     "redis.min_version",
	"connect-timeout": "probe.connect_timeout",
	"query-timeout":   "probe.query_timeout",
	"log-level":       "log.level",
	"log-pretty":      "log.pretty",
	"json":            "output.json",
}

// Load reads configuration from defaults, an optional YAML file, environment
// variables and, when flags is non-nil, explicitly set flags (highest
// precedence). Prefix: REDISGATE_, nested keys use underscore:
// REDISGATE_REDIS_HOST, REDISGATE_PROBE_CONNECT_TIMEOUT.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.min_version", "")
	v.SetDefault("probe.connect_timeout", "30ms")
	v.SetDefault("probe.query_timeout", "2s")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", false)
	v.SetDefault("output.json", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("redisgate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("REDISGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	// Config file is optional; env vars and flags can suffice
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Gate builds the gate configuration. Invalid ports, versions or timeouts are
// configuration errors.
func (c *Config) Gate() (redisgate.GateConfig, error) {
	gate, err := redisgate.At(c.Redis.Host, c.Redis.Port)
	if err != nil {
		return gate, err
	}
	if c.Redis.MinVersion != "" {
		if gate, err = gate.RequiringAtLeast(c.Redis.MinVersion); err != nil {
			return gate, err
		}
	}
	if gate, err = gate.WithConnectTimeout(c.Probe.ConnectTimeout); err != nil {
		return gate, err
	}
	return gate.WithQueryTimeout(c.Probe.QueryTimeout)
}
