package grpcsrv

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/tonimelisma/qcdn/internal/db"
	"github.com/tonimelisma/qcdn/internal/errtypes"
	"github.com/tonimelisma/qcdn/internal/replication"
	"github.com/tonimelisma/qcdn/internal/storage"
	"github.com/tonimelisma/qcdn/internal/upload"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

// UpdatesService is the write surface: the streaming upload, tag moves and
// soft deletes. Every mutation posts to the replication bus.
type UpdatesService struct {
	qcdnpb.UnimplementedFileUpdatesServer

	store  *db.Store
	blobs  storage.Storage
	bus    *replication.Bus
	logger *slog.Logger
}

// NewUpdatesService wires the FileUpdates service.
func NewUpdatesService(store *db.Store, blobs storage.Storage, bus *replication.Bus, logger *slog.Logger) *UpdatesService {
	return &UpdatesService{store: store, blobs: blobs, bus: bus, logger: logger}
}

// Upload drives the three-phase upload state machine from the client
// stream: exactly one meta frame first, then parts until end-of-stream.
// Protocol violations, stream errors and client disconnects all compensate
// before the error is surfaced.
func (s *UpdatesService) Upload(stream qcdnpb.FileUpdates_UploadServer) error {
	ctx := stream.Context()

	first, err := stream.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errtypes.GRPCError(errtypes.Precondition("message not received"))
		}

		return err
	}

	meta := first.GetMeta()
	if meta == nil {
		return errtypes.GRPCError(errtypes.Precondition("meta must be first"))
	}

	uploading, err := upload.NewRequested(s.store, s.blobs, s.bus, s.logger).GotMeta(ctx, meta)
	if err != nil {
		return errtypes.GRPCError(err)
	}

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			// Client disconnect or transport failure mid-stream.
			uploading.Cleanup(ctx)

			return err
		}

		if req.GetMeta() != nil {
			uploading.Cleanup(ctx)

			return errtypes.GRPCError(errtypes.Aborted("meta cannot be sent twice"))
		}

		if err := uploading.GotPart(ctx, req.GetPart()); err != nil {
			// GotPart already compensated.
			return errtypes.GRPCError(err)
		}
	}

	res, err := uploading.End(ctx)
	if err != nil {
		return errtypes.GRPCError(err)
	}

	return stream.SendAndClose(res)
}

// TagVersion creates the named tag on a ready, non-deleted version, or
// atomically moves it there from another version of the same file.
func (s *UpdatesService) TagVersion(ctx context.Context, req *qcdnpb.TagVersionRequest) (*emptypb.Empty, error) {
	v, err := s.store.VersionByID(ctx, req.GetFileVersionId())
	if err != nil {
		return nil, errtypes.GRPCError(err)
	}

	if v.State != db.StateReady || v.Deleted() {
		return nil, errtypes.GRPCError(errtypes.Precondition("only ready versions can be tagged"))
	}

	tag, err := s.store.CreateOrMoveTag(ctx, v.FileID, v.ID, req.GetTag())
	if err != nil {
		return nil, errtypes.GRPCError(err)
	}

	s.bus.Publish(replication.Event{
		Kind:          replication.KindTagged,
		Timestamp:     tag.ActivatedAt,
		FileVersionID: v.ID,
		Tag:           tag.Name,
	})

	s.logger.Info("version tagged",
		slog.Int64("file_version_id", v.ID),
		slog.String("tag", tag.Name))

	return &emptypb.Empty{}, nil
}

// DeleteFileVersion soft-deletes a ready version. The bytes stay on disk;
// the version stops resolving on every read path.
func (s *UpdatesService) DeleteFileVersion(ctx context.Context, req *qcdnpb.DeleteFileVersionRequest) (*emptypb.Empty, error) {
	deletedAt, err := s.store.SoftDeleteVersion(ctx, req.GetId())
	if err != nil {
		return nil, errtypes.GRPCError(err)
	}

	s.bus.Publish(replication.Event{
		Kind:          replication.KindDeleted,
		Timestamp:     deletedAt,
		FileVersionID: req.GetId(),
	})

	s.logger.Info("version deleted", slog.Int64("file_version_id", req.GetId()))

	return &emptypb.Empty{}, nil
}
