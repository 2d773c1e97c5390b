// Command crawl-adminctl drives the crawl pipeline backend from a terminal,
// using the same services as the web console.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/target/crawl-admin/config"
	"github.com/target/crawl-admin/internal/bootstrap"
)

// app is the state shared by every subcommand.
type app struct {
	backend string
	output  string
	timeout time.Duration

	out    io.Writer
	logger *slog.Logger

	// loadConfig is replaced in tests.
	loadConfig func() (config.AppConfig, error)

	cfg      config.AppConfig
	adapters *bootstrap.Adapters
	svc      bootstrap.ServiceContainer
}

func newApp(out io.Writer, logger *slog.Logger) *app {
	return &app{out: out, logger: logger, loadConfig: bootstrap.LoadConfig}
}

func main() {
	// Logs go to stderr so stdout stays machine readable.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd(newApp(os.Stdout, logger)).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1) //nolint:forbidigo // CLI must signal failure to shell scripts
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "crawl-adminctl",
		Short:         "Administer the crawl pipeline backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.adapters.Close(a.logger)
		},
	}
	root.SetOut(a.out)

	root.PersistentFlags().StringVar(&a.backend, "backend", "", "backend base URL (default $BACKEND_BASE_URL)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", formatTable, "output format: table, json or yaml")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "per-request timeout (default $BACKEND_TIMEOUT)")

	root.AddCommand(
		accountsCmd(a),
		tasksCmd(a),
		proxiesCmd(a),
		quotasCmd(a),
		redisConfigsCmd(a),
		recordsCmd(a, rawData),
		recordsCmd(a, sampleData),
		exportsCmd(a),
		dashboardCmd(a),
	)
	return root
}

// connect loads config, applies flag overrides and builds the services.
func (a *app) connect(ctx context.Context) error {
	if !validFormat(a.output) {
		return fmt.Errorf("unknown output format %q", a.output)
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.backend != "" {
		cfg.Backend.BaseURL = a.backend
	}
	if a.timeout > 0 {
		cfg.Backend.Timeout = a.timeout
	}
	// The dashboard cache belongs to the web console.
	cfg.Redis.Enabled = false
	cfg.Sanitize()
	if err := bootstrap.ValidateConfig(&cfg); err != nil {
		return err
	}

	adapters, err := bootstrap.ConnectAdapters(ctx, bootstrap.AdapterDeps{Config: &cfg, Logger: a.logger})
	if err != nil {
		return err
	}
	svc, err := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:  &cfg,
		API:     adapters.Backend,
		Metrics: adapters.Metrics,
		Logger:  a.logger,
	})
	if err != nil {
		adapters.Close(a.logger)
		return err
	}
	a.cfg, a.adapters, a.svc = cfg, adapters, svc
	return nil
}

var errConfirm = errors.New("refusing to run without --yes")
