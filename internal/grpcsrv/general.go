package grpcsrv

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

// GeneralService answers liveness pings and reports the build version.
type GeneralService struct {
	qcdnpb.UnimplementedGeneralServer

	version string
	logger  *slog.Logger
}

// NewGeneralService returns the General service reporting version.
func NewGeneralService(version string, logger *slog.Logger) *GeneralService {
	return &GeneralService{version: version, logger: logger}
}

// Ping echoes the server's current time.
func (s *GeneralService) Ping(ctx context.Context, req *qcdnpb.PingMessage) (*qcdnpb.PingMessage, error) {
	s.logger.Debug("ping", slog.Int64("client_timestamp", req.GetTimestamp()))

	return &qcdnpb.PingMessage{Timestamp: time.Now().UnixMilli()}, nil
}

// Version reports the build version.
func (s *GeneralService) Version(ctx context.Context, _ *emptypb.Empty) (*qcdnpb.VersionResponse, error) {
	return &qcdnpb.VersionResponse{Version: s.version}, nil
}
