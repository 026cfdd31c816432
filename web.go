package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tonimelisma/qcdn/internal/db"
	"github.com/tonimelisma/qcdn/internal/storage"
	"github.com/tonimelisma/qcdn/internal/web"
)

func newWebCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Run the read-only HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runWeb,
	}

	cmd.Flags().String("data", "", "storage root (default ./data)")
	cmd.Flags().String("bind", "", "HTTP listen address (default 0.0.0.0:8081)")
	cmd.Flags().String("mode", "", "cache policy mode (production|development)")

	return cmd
}

func runWeb(cmd *cobra.Command, _ []string) error {
	cc := cliContext(cmd.Context())
	cfg := cc.Cfg

	if v, _ := cmd.Flags().GetString("data"); v != "" {
		cfg.Data = v
	}
	if v, _ := cmd.Flags().GetString("bind"); v != "" {
		cfg.HTTPBind = v
	}
	if v, _ := cmd.Flags().GetString("mode"); v != "" {
		cfg.Mode = v
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	blobs, err := storage.New(cfg.Data, storage.SubdirName)
	if err != nil {
		return err
	}

	store, err := db.OpenReadOnly(blobs.PathFromRoot(db.Name), cc.Logger)
	if err != nil {
		return err
	}
	defer store.Close()

	handler := web.New(store, blobs, cfg.Production(), cc.Logger)

	cc.Logger.Info("qcdn web starting",
		slog.String("data", cfg.Data),
		slog.String("bind", cfg.HTTPBind),
		slog.String("mode", cfg.Mode))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return handler.Serve(ctx, cfg.HTTPBind)
	})

	return g.Wait()
}
