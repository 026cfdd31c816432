package grpcsrv

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/tonimelisma/qcdn/internal/db"
	"github.com/tonimelisma/qcdn/internal/errtypes"
	"github.com/tonimelisma/qcdn/internal/storage"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

// downloadChunkSize is the frame size of the download stream.
const downloadChunkSize = 64 * 1024

// QueriesService is the read surface: metadata listings and the streaming
// byte download.
type QueriesService struct {
	qcdnpb.UnimplementedFileQueriesServer

	store  *db.Store
	blobs  storage.Storage
	logger *slog.Logger
}

// NewQueriesService wires the FileQueries service.
func NewQueriesService(store *db.Store, blobs storage.Storage, logger *slog.Logger) *QueriesService {
	return &QueriesService{store: store, blobs: blobs, logger: logger}
}

// GetDirs lists all dirs.
func (s *QueriesService) GetDirs(ctx context.Context, _ *emptypb.Empty) (*qcdnpb.GetDirsResponse, error) {
	dirs, err := s.store.Dirs(ctx)
	if err != nil {
		return nil, errtypes.GRPCError(err)
	}

	items := make([]*qcdnpb.GetDirResponse, 0, len(dirs))
	for _, d := range dirs {
		items = append(items, dirToProto(d))
	}

	return &qcdnpb.GetDirsResponse{Items: items}, nil
}

// GetDir finds one dir by id.
func (s *QueriesService) GetDir(ctx context.Context, req *qcdnpb.GetDirRequest) (*qcdnpb.GetDirResponse, error) {
	d, err := s.store.DirByID(ctx, req.GetId())
	if err != nil {
		return nil, errtypes.GRPCError(err)
	}

	return dirToProto(d), nil
}

// GetFiles lists the files of a dir.
func (s *QueriesService) GetFiles(ctx context.Context, req *qcdnpb.GetFilesRequest) (*qcdnpb.GetFilesResponse, error) {
	files, err := s.store.FilesByDir(ctx, req.GetDirId())
	if err != nil {
		return nil, errtypes.GRPCError(err)
	}

	items := make([]*qcdnpb.GetFileResponse, 0, len(files))
	for _, f := range files {
		items = append(items, fileToProto(f))
	}

	return &qcdnpb.GetFilesResponse{Items: items}, nil
}

// GetFile finds one file by id.
func (s *QueriesService) GetFile(ctx context.Context, req *qcdnpb.GetFileRequest) (*qcdnpb.GetFileResponse, error) {
	f, err := s.store.FileByID(ctx, req.GetId())
	if err != nil {
		return nil, errtypes.GRPCError(err)
	}

	return fileToProto(f), nil
}

// GetFileVersions lists the versions of a file, each with its tag set.
// Soft-deleted versions are listed with is_deleted set.
func (s *QueriesService) GetFileVersions(ctx context.Context, req *qcdnpb.GetFileVersionsRequest) (*qcdnpb.GetFileVersionsResponse, error) {
	versions, err := s.store.VersionsByFile(ctx, req.GetFileId())
	if err != nil {
		return nil, errtypes.GRPCError(err)
	}

	items := make([]*qcdnpb.GetFileVersionResponse, 0, len(versions))
	for _, v := range versions {
		items = append(items, versionToProto(v))
	}

	return &qcdnpb.GetFileVersionsResponse{Items: items}, nil
}

// GetFileVersion finds one version by id, with its tag set.
func (s *QueriesService) GetFileVersion(ctx context.Context, req *qcdnpb.GetFileVersionRequest) (*qcdnpb.GetFileVersionResponse, error) {
	v, err := s.store.VersionWithTagsByID(ctx, req.GetId())
	if err != nil {
		return nil, errtypes.GRPCError(err)
	}

	return versionToProto(v), nil
}

// Download streams the bytes of a ready, non-deleted version as FilePart
// frames. The client reconstructs by concatenation and verifies the hash
// against the version metadata.
func (s *QueriesService) Download(req *qcdnpb.DownloadRequest, stream qcdnpb.FileQueries_DownloadServer) error {
	ctx := stream.Context()

	meta, err := s.store.VersionMetaByID(ctx, req.GetFileVersionId())
	if err != nil {
		return errtypes.GRPCError(err)
	}

	f, err := s.blobs.Open(meta.StoragePath)
	if err != nil {
		return errtypes.GRPCError(err)
	}
	defer f.Close()

	buf := make([]byte, downloadChunkSize)

	for {
		n, err := f.Read(buf)
		if n > 0 {
			part := &qcdnpb.FilePart{Bytes: append([]byte(nil), buf[:n]...)}
			if err := stream.Send(part); err != nil {
				return err
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return errtypes.GRPCError(errtypes.Internal("reading stored file"))
		}
	}

	s.logger.Debug("download complete",
		slog.Int64("file_version_id", req.GetFileVersionId()))

	return nil
}

func dirToProto(d db.Dir) *qcdnpb.GetDirResponse {
	return &qcdnpb.GetDirResponse{Id: d.ID, Name: d.Name}
}

func fileToProto(f db.File) *qcdnpb.GetFileResponse {
	return &qcdnpb.GetFileResponse{
		Id:        f.ID,
		DirId:     f.DirID,
		Name:      f.Name,
		MediaType: f.MediaType,
	}
}

func versionToProto(v db.VersionWithTags) *qcdnpb.GetFileVersionResponse {
	return &qcdnpb.GetFileVersionResponse{
		Id:        v.ID,
		FileId:    v.FileID,
		Size:      v.Size,
		Hash:      v.Hash,
		Name:      v.Name,
		Tags:      v.Tags,
		IsDeleted: v.Deleted(),
	}
}
