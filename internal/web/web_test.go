package web

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/tonimelisma/qcdn/internal/db"
	"github.com/tonimelisma/qcdn/internal/storage"
)

type testEnv struct {
	store *db.Store
	blobs storage.Storage
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	blobs, err := storage.New(t.TempDir(), storage.SubdirName)
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}

	store, err := db.Open(context.Background(), blobs.PathFromRoot(db.Name), testLogger())
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}

	t.Cleanup(func() { store.Close() })

	return &testEnv{store: store, blobs: blobs}
}

// seedVersion publishes content as img/logo.png under the given version
// label and returns its id and hash.
func (e *testEnv) seedVersion(t *testing.T, content []byte, version string) (int64, string) {
	t.Helper()

	ctx := context.Background()

	d, err := e.store.UpsertDir(ctx, "img")
	if err != nil {
		t.Fatal(err)
	}

	f, err := e.store.UpsertFile(ctx, d.ID, "logo.png", "image/png")
	if err != nil {
		t.Fatal(err)
	}

	sum := sha256.Sum256(content)
	hash := base64.StdEncoding.EncodeToString(sum[:])

	fv, err := e.store.CreateVersion(ctx, f.ID, int64(len(content)), hash, version)
	if err != nil {
		t.Fatal(err)
	}

	rel := db.PathParts{DirID: d.ID, FileID: f.ID, VersionID: fv.ID}.Rel()

	w, err := e.blobs.Create(rel)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := w.Write(content); err != nil {
		t.Fatal(err)
	}

	w.Close()

	if err := e.store.UpdateVersionState(ctx, fv.ID, db.StateReady); err != nil {
		t.Fatal(err)
	}

	return fv.ID, hash
}

func (e *testEnv) handler(production bool) http.Handler {
	return New(e.store, e.blobs, production, testLogger()).Router()
}

func get(t *testing.T, h http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestFileRoute_ServesBytesAndHeaders(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	content := []byte("png bytes here")
	_, hash := env.seedVersion(t, content, "1")

	rec := get(t, env.handler(true), "/f/img/logo.png/1", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body, _ := io.ReadAll(rec.Body)
	if string(body) != string(content) {
		t.Error("body differs from stored bytes")
	}

	if got := rec.Header().Get("ETag"); got != hash {
		t.Errorf("ETag = %q, want %q", got, hash)
	}

	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", got)
	}

	if got := rec.Header().Get("Cache-Control"); got != cacheControlProduction {
		t.Errorf("Cache-Control = %q, want %q", got, cacheControlProduction)
	}

	if rec.Header().Get("Last-Modified") == "" {
		t.Error("Last-Modified missing")
	}
}

func TestFileRoute_DevelopmentCachePolicy(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.seedVersion(t, []byte("x"), "1")

	rec := get(t, env.handler(false), "/f/img/logo.png/1", nil)

	if got := rec.Header().Get("Cache-Control"); got != cacheControlDevelopment {
		t.Errorf("Cache-Control = %q, want %q", got, cacheControlDevelopment)
	}
}

func TestFileRoute_ConditionalRequests(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, hash := env.seedVersion(t, []byte("cacheable"), "1")

	h := env.handler(true)

	first := get(t, h, "/f/img/logo.png/1", nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first fetch = %d", first.Code)
	}

	// If-None-Match containing the ETag short-circuits to 304, no body.
	rec := get(t, h, "/f/img/logo.png/1", map[string]string{
		"If-None-Match": hash,
	})

	if rec.Code != http.StatusNotModified {
		t.Errorf("If-None-Match status = %d, want 304", rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Errorf("304 carried a %d-byte body", rec.Body.Len())
	}

	// If-Modified-Since equal to Last-Modified also yields 304.
	rec = get(t, h, "/f/img/logo.png/1", map[string]string{
		"If-Modified-Since": first.Header().Get("Last-Modified"),
	})

	if rec.Code != http.StatusNotModified {
		t.Errorf("If-Modified-Since status = %d, want 304", rec.Code)
	}

	// A stale validator refetches.
	rec = get(t, h, "/f/img/logo.png/1", map[string]string{
		"If-None-Match": "some-other-etag",
	})

	if rec.Code != http.StatusOK {
		t.Errorf("stale validator status = %d, want 200", rec.Code)
	}
}

func TestFileRoute_ResolvesByTag(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	v1Content := []byte("version one")
	v2Content := []byte("version two")

	v1, _ := env.seedVersion(t, v1Content, "1")
	v2, _ := env.seedVersion(t, v2Content, "2")

	fv, err := env.store.VersionByID(ctx, v1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := env.store.CreateOrMoveTag(ctx, fv.FileID, v1, "latest"); err != nil {
		t.Fatal(err)
	}

	h := env.handler(true)

	rec := get(t, h, "/f/img/logo.png/latest", nil)
	if body, _ := io.ReadAll(rec.Body); string(body) != string(v1Content) {
		t.Errorf("latest served %q, want v1 bytes", body)
	}

	// Moving the tag repoints the same URL.
	if _, err := env.store.CreateOrMoveTag(ctx, fv.FileID, v2, "latest"); err != nil {
		t.Fatal(err)
	}

	rec = get(t, h, "/f/img/logo.png/latest", nil)
	if body, _ := io.ReadAll(rec.Body); string(body) != string(v2Content) {
		t.Errorf("latest served %q after move, want v2 bytes", body)
	}
}

func TestFileRoute_NotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.seedVersion(t, []byte("x"), "1")

	h := env.handler(true)

	for _, path := range []string{
		"/f/img/logo.png/2",      // unknown version
		"/f/img/missing.png/1",   // unknown file
		"/f/other/logo.png/1",    // unknown dir
		"/f/img/logo.png/no-tag", // unknown tag
		"/somewhere/else",        // unknown route
	} {
		if rec := get(t, h, path, nil); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, rec.Code)
		}
	}
}

func TestFileRoute_DeletedVersionIsGone(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	id, _ := env.seedVersion(t, []byte("x"), "1")

	if _, err := env.store.SoftDeleteVersion(context.Background(), id); err != nil {
		t.Fatal(err)
	}

	if rec := get(t, env.handler(true), "/f/img/logo.png/1", nil); rec.Code != http.StatusNotFound {
		t.Errorf("deleted version served with %d, want 404", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := get(t, env.handler(true), "/health", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d, want 200", rec.Code)
	}

	if body, _ := io.ReadAll(rec.Body); string(body) != "Ok" {
		t.Errorf("health body = %q, want Ok", body)
	}
}

func TestHealth_FailsWithoutStorage(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	// Removing the storage subdirectory breaks the ping.
	if err := os.RemoveAll(env.blobs.Path("")); err != nil {
		t.Fatal(err)
	}

	if rec := get(t, env.handler(true), "/health", nil); rec.Code != http.StatusInternalServerError {
		t.Errorf("health without storage = %d, want 500", rec.Code)
	}
}
