package grpcsrv

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tonimelisma/qcdn/internal/replication"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

// NodesService serves the replication feed to followers.
type NodesService struct {
	qcdnpb.UnimplementedNodesServer

	feed   *replication.Feed
	logger *slog.Logger
}

// NewNodesService wires the Nodes service.
func NewNodesService(feed *replication.Feed, logger *slog.Logger) *NodesService {
	return &NodesService{feed: feed, logger: logger}
}

// ConnectNode replays history strictly after the follower's timestamp,
// then forwards live events until the follower disconnects or falls
// behind the bus buffer.
func (s *NodesService) ConnectNode(req *qcdnpb.ConnectionRequest, stream qcdnpb.Nodes_ConnectNodeServer) error {
	ctx := stream.Context()

	var since time.Time
	if ts := req.GetTimestamp(); ts > 0 {
		since = time.UnixMilli(ts).UTC()
	}

	s.logger.Info("follower connected", slog.Time("since", since))

	err := s.feed.Serve(ctx, since, func(e replication.Event) error {
		return stream.Send(e.Proto())
	})

	if errors.Is(err, context.Canceled) {
		s.logger.Info("follower disconnected")
		return nil
	}

	return err
}
