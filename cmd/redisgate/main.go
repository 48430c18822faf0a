package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"redis-gate/config"
	"redis-gate/pkg/logger"
	"redis-gate/pkg/redisgate"
	"redis-gate/pkg/response"

	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitReady    = 0
	exitConfig   = 1
	exitNotReady = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, out io.Writer) int {
	code := exitReady
	cmd := newRootCmd(out, &code)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return exitConfig
	}
	return code
}

func newRootCmd(out io.Writer, code *int) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "redisgate",
		Short: "Check that Redis is up, and recent enough, before running a test suite",
		Long: "redisgate probes a Redis endpoint once. It exits 0 when the server is\n" +
			"reachable and meets --min-version, 2 when it is not, and 1 on bad configuration.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}

			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
			redisgate.SetLogger(log)
			defer func() {
				if err := redisgate.Shutdown(); err != nil {
					log.Warn().Err(err).Msg("shutting down client resources")
				}
			}()

			gate, err := cfg.Gate()
			if err != nil {
				return err
			}

			result := redisgate.Evaluate(cmd.Context(), gate)
			log.Info().
				Str("addr", gate.Addr()).
				Str("outcome", result.Outcome.String()).
				Str("reason", result.Reason).
				Msg("redis gate evaluated")

			if cfg.Output.JSON {
				err = response.JSON(out, gate.Addr(), result)
			} else {
				err = response.Text(out, gate.Addr(), result)
			}
			if err != nil {
				return err
			}

			if !result.Passed() {
				*code = exitNotReady
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "path to a YAML config file")
	f.String("host", "localhost", "Redis host")
	f.Int("port", 6379, "Redis port")
	f.String("min-version", "", "minimum Redis version, e.g. 6.2.0")
	f.Duration("connect-timeout", 0, "TCP connect timeout (default 30ms)")
	f.Duration("query-timeout", 0, "INFO server query timeout (default 2s)")
	f.String("log-level", "warn", "debug, info, warn, error")
	f.Bool("log-pretty", false, "human-readable logs")
	f.Bool("json", false, "print the result as JSON")

	return cmd
}
