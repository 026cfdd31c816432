package grpcsrv

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"log/slog"
	"os"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/tonimelisma/qcdn/internal/db"
	"github.com/tonimelisma/qcdn/internal/replication"
	"github.com/tonimelisma/qcdn/internal/storage"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

type testEnv struct {
	store   *db.Store
	blobs   storage.Storage
	bus     *replication.Bus
	queries *QueriesService
	updates *UpdatesService
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := testLogger()

	blobs, err := storage.New(t.TempDir(), storage.SubdirName)
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}

	store, err := db.Open(context.Background(), blobs.PathFromRoot(db.Name), logger)
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}

	t.Cleanup(func() { store.Close() })

	bus := replication.NewBus(64, logger)

	return &testEnv{
		store:   store,
		blobs:   blobs,
		bus:     bus,
		queries: NewQueriesService(store, blobs, logger),
		updates: NewUpdatesService(store, blobs, bus, logger),
	}
}

// fakeUploadStream feeds a fixed request sequence to the Upload handler.
type fakeUploadStream struct {
	grpc.ServerStream

	ctx  context.Context
	reqs []*qcdnpb.UploadRequest
	idx  int
	res  *qcdnpb.UploadResponse
}

func (s *fakeUploadStream) Context() context.Context { return s.ctx }

func (s *fakeUploadStream) Recv() (*qcdnpb.UploadRequest, error) {
	if s.idx >= len(s.reqs) {
		return nil, io.EOF
	}

	req := s.reqs[s.idx]
	s.idx++

	return req, nil
}

func (s *fakeUploadStream) SendAndClose(res *qcdnpb.UploadResponse) error {
	s.res = res

	return nil
}

// fakeDownloadStream collects the parts the Download handler sends.
type fakeDownloadStream struct {
	grpc.ServerStream

	ctx   context.Context
	parts [][]byte
}

func (s *fakeDownloadStream) Context() context.Context { return s.ctx }

func (s *fakeDownloadStream) Send(part *qcdnpb.FilePart) error {
	s.parts = append(s.parts, part.GetBytes())

	return nil
}

func hashOf(b []byte) string {
	sum := sha256.Sum256(b)

	return base64.StdEncoding.EncodeToString(sum[:])
}

func metaRequest(content []byte, version string) *qcdnpb.UploadRequest {
	return &qcdnpb.UploadRequest{Request: &qcdnpb.UploadRequest_Meta{Meta: &qcdnpb.UploadMeta{
		Name:      "logo.png",
		Dir:       "img",
		MediaType: "image/png",
		Version:   version,
		Size:      int64(len(content)),
		Hash:      hashOf(content),
	}}}
}

func partRequest(chunk []byte) *qcdnpb.UploadRequest {
	return &qcdnpb.UploadRequest{Request: &qcdnpb.UploadRequest_Part{Part: &qcdnpb.FilePart{
		Bytes: chunk,
	}}}
}

// uploadContent runs a complete upload through the service handler.
func uploadContent(t *testing.T, env *testEnv, content []byte, version string) *qcdnpb.UploadResponse {
	t.Helper()

	reqs := []*qcdnpb.UploadRequest{metaRequest(content, version)}
	for off := 0; off < len(content); off += 4096 {
		reqs = append(reqs, partRequest(content[off:min(off+4096, len(content))]))
	}

	stream := &fakeUploadStream{ctx: context.Background(), reqs: reqs}
	if err := env.updates.Upload(stream); err != nil {
		t.Fatalf("Upload(%q): %v", version, err)
	}

	if stream.res == nil {
		t.Fatal("upload finished without a response")
	}

	return stream.res
}

func TestUploadDownload_RoundTrip(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	content := make([]byte, 12345)
	if _, err := rand.Read(content); err != nil {
		t.Fatal(err)
	}

	res := uploadContent(t, env, content, "1")

	stream := &fakeDownloadStream{ctx: context.Background()}
	err := env.queries.Download(
		&qcdnpb.DownloadRequest{FileVersionId: res.GetFileVersionId()}, stream)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}

	got := bytes.Join(stream.parts, nil)
	if !bytes.Equal(got, content) {
		t.Fatalf("downloaded %d bytes differ from uploaded %d", len(got), len(content))
	}

	if hashOf(got) != hashOf(content) {
		t.Error("hash mismatch after round trip")
	}
}

func TestUpload_FirstMessageMustBeMeta(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	stream := &fakeUploadStream{
		ctx:  context.Background(),
		reqs: []*qcdnpb.UploadRequest{partRequest([]byte("data"))},
	}

	err := env.updates.Upload(stream)
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("part-first upload: code = %v, want FailedPrecondition", status.Code(err))
	}
}

func TestUpload_EmptyStreamRejected(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	stream := &fakeUploadStream{ctx: context.Background()}

	err := env.updates.Upload(stream)
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("empty upload: code = %v, want FailedPrecondition", status.Code(err))
	}
}

func TestUpload_MetaTwiceAbortsAndCompensates(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	content := []byte("abc")

	stream := &fakeUploadStream{
		ctx: ctx,
		reqs: []*qcdnpb.UploadRequest{
			metaRequest(content, "1"),
			metaRequest(content, "1"),
		},
	}

	err := env.updates.Upload(stream)
	if status.Code(err) != codes.Aborted {
		t.Fatalf("meta twice: code = %v, want Aborted", status.Code(err))
	}

	// Compensation removed the lazily created dir.
	if _, err := env.store.DirByName(ctx, "img"); err == nil {
		t.Error("dir survived aborted upload")
	}
}

func TestUpload_HashMismatchIsDataLoss(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	content := []byte("the real content")

	meta := metaRequest(content, "1")
	meta.GetMeta().Hash = hashOf([]byte("claimed content"))

	stream := &fakeUploadStream{
		ctx:  context.Background(),
		reqs: []*qcdnpb.UploadRequest{meta, partRequest(content)},
	}

	err := env.updates.Upload(stream)
	if status.Code(err) != codes.DataLoss {
		t.Fatalf("hash mismatch: code = %v, want DataLoss", status.Code(err))
	}
}

func TestUpload_DuplicateVersionIsFailedPrecondition(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	content := []byte("content")

	uploadContent(t, env, content, "1")

	stream := &fakeUploadStream{
		ctx:  context.Background(),
		reqs: []*qcdnpb.UploadRequest{metaRequest(content, "1"), partRequest(content)},
	}

	err := env.updates.Upload(stream)
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("duplicate version: code = %v, want FailedPrecondition", status.Code(err))
	}
}

func TestTagVersion_MoveRepointsListing(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	v1 := uploadContent(t, env, []byte("one"), "1")
	v2 := uploadContent(t, env, []byte("two"), "2")

	for _, id := range []int64{v1.GetFileVersionId(), v2.GetFileVersionId()} {
		if _, err := env.updates.TagVersion(ctx, &qcdnpb.TagVersionRequest{
			FileVersionId: id,
			Tag:           "latest",
		}); err != nil {
			t.Fatalf("TagVersion(%d): %v", id, err)
		}
	}

	versions, err := env.queries.GetFileVersions(ctx,
		&qcdnpb.GetFileVersionsRequest{FileId: v1.GetFileId()})
	if err != nil {
		t.Fatalf("GetFileVersions: %v", err)
	}

	for _, v := range versions.GetItems() {
		tags := v.GetTags()

		switch v.GetId() {
		case v1.GetFileVersionId():
			if len(tags) != 0 {
				t.Errorf("v1 still tagged: %v", tags)
			}
		case v2.GetFileVersionId():
			if len(tags) != 1 || tags[0] != "latest" {
				t.Errorf("v2 tags = %v, want [latest]", tags)
			}
		}
	}
}

func TestTagVersion_RejectsMissingAndDeleted(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.updates.TagVersion(ctx, &qcdnpb.TagVersionRequest{
		FileVersionId: 999, Tag: "latest",
	}); status.Code(err) != codes.NotFound {
		t.Fatalf("tag of missing version: code = %v, want NotFound", status.Code(err))
	}

	v := uploadContent(t, env, []byte("x"), "1")

	if _, err := env.updates.DeleteFileVersion(ctx,
		&qcdnpb.DeleteFileVersionRequest{Id: v.GetFileVersionId()}); err != nil {
		t.Fatalf("DeleteFileVersion: %v", err)
	}

	if _, err := env.updates.TagVersion(ctx, &qcdnpb.TagVersionRequest{
		FileVersionId: v.GetFileVersionId(), Tag: "latest",
	}); status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("tag of deleted version: code = %v, want FailedPrecondition", status.Code(err))
	}
}

func TestDeleteFileVersion_HidesFromReadsKeepsListing(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	v := uploadContent(t, env, []byte("bytes"), "1")

	if _, err := env.updates.DeleteFileVersion(ctx,
		&qcdnpb.DeleteFileVersionRequest{Id: v.GetFileVersionId()}); err != nil {
		t.Fatalf("DeleteFileVersion: %v", err)
	}

	// Download of a deleted version is NotFound.
	stream := &fakeDownloadStream{ctx: ctx}
	err := env.queries.Download(
		&qcdnpb.DownloadRequest{FileVersionId: v.GetFileVersionId()}, stream)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("download of deleted: code = %v, want NotFound", status.Code(err))
	}

	// The listing still shows it, marked deleted.
	versions, err := env.queries.GetFileVersions(ctx,
		&qcdnpb.GetFileVersionsRequest{FileId: v.GetFileId()})
	if err != nil {
		t.Fatalf("GetFileVersions: %v", err)
	}

	if len(versions.GetItems()) != 1 || !versions.GetItems()[0].GetIsDeleted() {
		t.Errorf("listing after delete = %+v", versions.GetItems())
	}

	// The bytes stay on disk.
	rel := db.PathParts{
		DirID:     v.GetDirId(),
		FileID:    v.GetFileId(),
		VersionID: v.GetFileVersionId(),
	}.Rel()

	if _, err := os.Stat(env.blobs.Path(rel)); err != nil {
		t.Errorf("soft-deleted bytes removed from disk: %v", err)
	}
}

func TestQueries_Listings(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	res := uploadContent(t, env, []byte("x"), "1")

	dirs, err := env.queries.GetDirs(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetDirs: %v", err)
	}

	if len(dirs.GetItems()) != 1 || dirs.GetItems()[0].GetName() != "img" {
		t.Fatalf("dirs = %+v", dirs.GetItems())
	}

	files, err := env.queries.GetFiles(ctx, &qcdnpb.GetFilesRequest{DirId: res.GetDirId()})
	if err != nil {
		t.Fatalf("GetFiles: %v", err)
	}

	if len(files.GetItems()) != 1 || files.GetItems()[0].GetMediaType() != "image/png" {
		t.Fatalf("files = %+v", files.GetItems())
	}

	version, err := env.queries.GetFileVersion(ctx,
		&qcdnpb.GetFileVersionRequest{Id: res.GetFileVersionId()})
	if err != nil {
		t.Fatalf("GetFileVersion: %v", err)
	}

	if version.GetName() != "1" || version.GetIsDeleted() {
		t.Errorf("version = %+v", version)
	}

	if _, err := env.queries.GetDir(ctx, &qcdnpb.GetDirRequest{Id: 999}); status.Code(err) != codes.NotFound {
		t.Errorf("GetDir missing: code = %v, want NotFound", status.Code(err))
	}
}
