package db

import (
	"context"
	"testing"
)

func TestVersionMetaByPath_ByVersionName(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	f := seedFile(t, store)

	fv := mustCreateReady(t, store, f.ID, "1")

	meta, err := store.VersionMetaByPath(context.Background(), "img", "logo.png", "1")
	if err != nil {
		t.Fatalf("VersionMetaByPath: %v", err)
	}

	if meta.ID != fv.ID {
		t.Errorf("resolved id = %d, want %d", meta.ID, fv.ID)
	}

	if meta.MediaType != "image/png" {
		t.Errorf("media type = %q, want image/png", meta.MediaType)
	}

	want := PathParts{DirID: f.DirID, FileID: f.ID, VersionID: fv.ID}.Rel()
	if meta.StoragePath != want {
		t.Errorf("storage path = %q, want %q", meta.StoragePath, want)
	}
}

func TestVersionMetaByPath_ByTag(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	f := seedFile(t, store)
	ctx := context.Background()

	v1 := mustCreateReady(t, store, f.ID, "1")
	v2 := mustCreateReady(t, store, f.ID, "2")

	if _, err := store.CreateOrMoveTag(ctx, f.ID, v1.ID, "latest"); err != nil {
		t.Fatalf("CreateOrMoveTag: %v", err)
	}

	meta, err := store.VersionMetaByPath(ctx, "img", "logo.png", "latest")
	if err != nil {
		t.Fatalf("resolve by tag: %v", err)
	}

	if meta.ID != v1.ID {
		t.Errorf("tag resolved to %d, want %d", meta.ID, v1.ID)
	}

	// After the move the same path resolves to the new target.
	if _, err := store.CreateOrMoveTag(ctx, f.ID, v2.ID, "latest"); err != nil {
		t.Fatalf("move tag: %v", err)
	}

	meta, err = store.VersionMetaByPath(ctx, "img", "logo.png", "latest")
	if err != nil {
		t.Fatalf("resolve by moved tag: %v", err)
	}

	if meta.ID != v2.ID {
		t.Errorf("moved tag resolved to %d, want %d", meta.ID, v2.ID)
	}
}

func TestVersionMetaByPath_TagScopedToFile(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	d, _ := store.UpsertDir(ctx, "img")
	fileA, _ := store.UpsertFile(ctx, d.ID, "a.png", "image/png")
	fileB, _ := store.UpsertFile(ctx, d.ID, "b.png", "image/png")

	va := mustCreateReady(t, store, fileA.ID, "1")
	mustCreateReady(t, store, fileB.ID, "1")

	if _, err := store.CreateOrMoveTag(ctx, fileA.ID, va.ID, "latest"); err != nil {
		t.Fatalf("tag file A: %v", err)
	}

	// File B has no "latest" tag; A's tag must not leak over.
	if _, err := store.VersionMetaByPath(ctx, "img", "b.png", "latest"); !isNotFoundErr(err) {
		t.Fatalf("tag leaked across files: err = %v, want NotFound", err)
	}
}

func TestVersionMetaByPath_HidesDeletedAndDownloading(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	f := seedFile(t, store)
	ctx := context.Background()

	// Downloading versions are never resolvable.
	if _, err := store.CreateVersion(ctx, f.ID, 10, "aGFzaA==", "pending"); err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}

	if _, err := store.VersionMetaByPath(ctx, "img", "logo.png", "pending"); !isNotFoundErr(err) {
		t.Fatalf("downloading version resolved, err = %v", err)
	}

	v := mustCreateReady(t, store, f.ID, "1")

	if _, err := store.CreateOrMoveTag(ctx, f.ID, v.ID, "latest"); err != nil {
		t.Fatalf("CreateOrMoveTag: %v", err)
	}

	if _, err := store.SoftDeleteVersion(ctx, v.ID); err != nil {
		t.Fatalf("SoftDeleteVersion: %v", err)
	}

	// Neither the version name nor its dangling tag resolves.
	if _, err := store.VersionMetaByPath(ctx, "img", "logo.png", "1"); !isNotFoundErr(err) {
		t.Fatalf("deleted version resolved by name, err = %v", err)
	}

	if _, err := store.VersionMetaByPath(ctx, "img", "logo.png", "latest"); !isNotFoundErr(err) {
		t.Fatalf("deleted version resolved by tag, err = %v", err)
	}

	if _, err := store.VersionMetaByID(ctx, v.ID); !isNotFoundErr(err) {
		t.Fatalf("deleted version resolved by id, err = %v", err)
	}
}
