// Package grpcsrv assembles the four qcdn RPC services onto one gRPC
// server: General, FileQueries, FileUpdates and Nodes.
package grpcsrv

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/tonimelisma/qcdn/internal/db"
	"github.com/tonimelisma/qcdn/internal/replication"
	"github.com/tonimelisma/qcdn/internal/storage"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

// Server is the writer process's RPC front.
type Server struct {
	grpc   *grpc.Server
	logger *slog.Logger
}

// New registers all services and returns the server. version is the build
// version reported by General.Version.
func New(store *db.Store, blobs storage.Storage, bus *replication.Bus, version string, logger *slog.Logger) *Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unaryLogger(logger)),
	)

	feed := replication.NewFeed(store, bus, logger)

	qcdnpb.RegisterGeneralServer(srv, NewGeneralService(version, logger))
	qcdnpb.RegisterFileQueriesServer(srv, NewQueriesService(store, blobs, logger))
	qcdnpb.RegisterFileUpdatesServer(srv, NewUpdatesService(store, blobs, bus, logger))
	qcdnpb.RegisterNodesServer(srv, NewNodesService(feed, logger))

	return &Server{grpc: srv, logger: logger}
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info("stopping rpc server")
			s.grpc.GracefulStop()
		case <-done:
		}
	}()

	s.logger.Info("rpc server listening", slog.String("addr", lis.Addr().String()))

	err := s.grpc.Serve(lis)
	close(done)

	return err
}

// unaryLogger logs every unary call with its duration and outcome.
func unaryLogger(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		attrs := []any{
			slog.String("method", info.FullMethod),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
			logger.Warn("rpc call failed", attrs...)
		} else {
			logger.Debug("rpc call", attrs...)
		}

		return resp, err
	}
}
