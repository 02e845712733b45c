package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/spf13/cobra"

	"calypso-hq/sweeper/pkg/cleanup"
	"calypso-hq/sweeper/pkg/cleanup/schedule"
	"calypso-hq/sweeper/pkg/cli"
	"calypso-hq/sweeper/pkg/config"
	"calypso-hq/sweeper/pkg/telemetry/metrics"
)

var runFlags struct {
	schedule string
	once     bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sweep configured targets on a cron schedule",
	Long: `Run sweeper as a daemon, sweeping every target from the config file on a
cron schedule.

Each firing performs one cleanup pass per target, identical to "sweeper
clean". Optionally exposes Prometheus metrics and hot-reloads the
configuration file when it changes.

Examples:
  # Sweep on the configured schedule
  sweeper run --config config.yaml

  # Override the schedule from the command line
  sweeper run --schedule "0 */6 * * *"

  # Sweep every target once and exit
  sweeper run --once`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.schedule, "schedule", "", "override cron schedule from config")
	runCmd.Flags().BoolVar(&runFlags.once, "once", false, "sweep every target once and exit")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	if runFlags.schedule != "" {
		cfg.Schedule = runFlags.schedule
	}
	if len(cfg.Targets) == 0 {
		return cli.NewConfigError("targets", "at least one sweep target must be configured")
	}

	slog.SetDefault(newLogger(cfg.Logging.Level, cfg.Logging.Format))

	ctx := cli.SetupSignalHandler()

	var sweep *metrics.SweepMetrics
	if cfg.Metrics.Enabled {
		sweep = metrics.New(&cfg.Metrics, nil)
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, sweep.Handler())
		srv := &http.Server{Addr: cfg.Metrics.ListenAddress, Handler: mux}

		go func() {
			slog.Info("metrics server listening",
				"address", cfg.Metrics.ListenAddress,
				"path", cfg.Metrics.Path,
			)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("metrics server failed", "error", err)
			}
		}()
		defer srv.Shutdown(context.Background())
	}

	if runFlags.once {
		return sweepOnce(ctx, cfg, sweep)
	}

	sched := newScheduler(cfg, sweep)
	if err := sched.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	var mu sync.Mutex
	current := sched
	defer func() {
		mu.Lock()
		current.Stop()
		mu.Unlock()
	}()

	if next := sched.NextRun(); next != nil {
		slog.Info("next sweep scheduled", "at", next)
	}

	if cfg.WatchConfig {
		watcher, err := config.NewWatcher(cfgFile)
		if err != nil {
			return cli.NewCommandError("run", err)
		}
		defer watcher.Close()

		onChange := func() {
			mu.Lock()
			defer mu.Unlock()

			newCfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
			if err != nil {
				slog.Error("config reload failed, keeping previous config", "error", err)
				return
			}
			if runFlags.schedule != "" {
				newCfg.Schedule = runFlags.schedule
			}

			current.Stop()
			current = newScheduler(newCfg, sweep)
			if err := current.Start(ctx); err != nil {
				slog.Error("failed to restart scheduler after reload", "error", err)
				return
			}
			slog.Info("config reloaded", "targets", len(newCfg.Targets), "schedule", newCfg.Schedule)
		}

		go func() {
			if err := watcher.Watch(ctx, onChange); err != nil {
				slog.Error("config watcher stopped", "error", err)
			}
		}()
	}

	<-ctx.Done()
	slog.Info("shutting down")
	return nil
}

// sweepOnce performs one pass over every configured target and returns the
// first error encountered after finishing all targets.
func sweepOnce(ctx context.Context, cfg *config.Config, sweep *metrics.SweepMetrics) error {
	var firstErr error
	for _, target := range cfg.Targets {
		result, err := cleanup.NewPruner(targetConfig(target)).Prune(ctx)
		if sweep != nil {
			sweep.ObserveRun(result, err)
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return cli.NewCommandError("run", firstErr)
	}
	return nil
}

func newScheduler(cfg *config.Config, sweep *metrics.SweepMetrics) *schedule.Scheduler {
	targets := make([]*cleanup.Config, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		targets = append(targets, targetConfig(target))
	}

	sched := schedule.NewScheduler(cfg.Schedule, targets)
	if sweep != nil {
		sched.OnResult = sweep.ObserveRun
	}
	return sched
}

func targetConfig(target config.TargetConfig) *cleanup.Config {
	return &cleanup.Config{
		Root:          target.Path,
		RetentionDays: target.Days,
		Extensions:    target.Extensions,
		SkipTokens:    target.SkipTokens,
		DryRun:        target.DryRun,
	}
}
