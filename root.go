package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tonimelisma/qcdn/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// Global persistent flags, bound in newRootCmd().
var (
	flagConfigPath string
	flagURL        string
	flagLogLevel   string
)

// CLIContext bundles resolved config and logger. Created once in
// PersistentPreRunE so RunE handlers never rebuild either.
type CLIContext struct {
	Cfg    config.Config
	Logger *slog.Logger
}

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// cliContext extracts the CLIContext prepared by the root command. The
// command tree guarantees it exists for every RunE handler.
func cliContext(ctx context.Context) *CLIContext {
	cc, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok {
		panic("qcdn: command executed without resolved config")
	}

	return cc
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qcdn",
		Short:         "Versioned content distribution over streaming RPC",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flagConfigPath)
			if err != nil {
				return err
			}

			// Flags are the last config layer.
			if cmd.Flags().Changed("url") {
				cfg.URL = flagURL
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLogLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			cc := &CLIContext{Cfg: cfg, Logger: buildLogger(cfg.LogLevel)}
			cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cc))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to TOML config file")
	cmd.PersistentFlags().StringVar(&flagURL, "url", config.Default().URL, "qcdn server address")
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.Default().LogLevel,
		"log level (trace|debug|info|warn|error)")

	cmd.AddCommand(
		newServeCmd(),
		newWebCmd(),
		newUploadCmd(),
		newDownloadCmd(),
		newTagCmd(),
		newRmCmd(),
		newLsCmd(),
		newPingCmd(),
	)

	return cmd
}

// buildLogger returns a text logger on a TTY and a JSON logger otherwise.
func buildLogger(level string) *slog.Logger {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// stdoutIsTTY gates interactive output like progress bars.
func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
