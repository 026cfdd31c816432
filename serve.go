package main

import (
	"log/slog"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tonimelisma/qcdn/internal/db"
	"github.com/tonimelisma/qcdn/internal/grpcsrv"
	"github.com/tonimelisma/qcdn/internal/replication"
	"github.com/tonimelisma/qcdn/internal/storage"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the writer server (streaming RPC)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	cmd.Flags().String("data", "", "storage root (default ./data)")
	cmd.Flags().String("bind", "", "RPC listen address (default 0.0.0.0:8080)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cc := cliContext(cmd.Context())
	cfg := cc.Cfg

	if v, _ := cmd.Flags().GetString("data"); v != "" {
		cfg.Data = v
	}
	if v, _ := cmd.Flags().GetString("bind"); v != "" {
		cfg.Bind = v
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	blobs, err := storage.New(cfg.Data, storage.SubdirName)
	if err != nil {
		return err
	}

	store, err := db.Open(ctx, blobs.PathFromRoot(db.Name), cc.Logger)
	if err != nil {
		return err
	}
	defer store.Close()

	bus := replication.NewBus(replication.DefaultBusBuffer, cc.Logger)
	srv := grpcsrv.New(store, blobs, bus, version, cc.Logger)

	lis, err := net.Listen("tcp", cfg.Bind)
	if err != nil {
		return err
	}

	cc.Logger.Info("qcdn writer starting",
		slog.String("data", cfg.Data),
		slog.String("bind", cfg.Bind),
		slog.String("version", version))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Serve(ctx, lis)
	})

	return g.Wait()
}
