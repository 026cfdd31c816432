// Package upload drives a streaming upload through its three phases:
// Requested (waiting for meta), Uploading (receiving parts) and the
// finalize at end-of-stream. Database state, the on-disk artifact and the
// size/hash checks are coordinated here; any failure at any phase runs the
// ordered compensation chain so no partial upload survives.
//
// Each upload instance is owned by exactly one stream handler and is
// sequential with respect to its own stream. Isolation between concurrent
// uploads of the same (file, version) comes from the store: CreateVersion
// enforces uniqueness inside a transaction, so the loser aborts cleanly.
package upload

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"log/slog"
	"os"

	"github.com/tonimelisma/qcdn/internal/db"
	"github.com/tonimelisma/qcdn/internal/errtypes"
	"github.com/tonimelisma/qcdn/internal/replication"
	"github.com/tonimelisma/qcdn/internal/storage"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

// Requested is the initial phase: nothing allocated, waiting for the
// stream's first (and only) meta frame.
type Requested struct {
	store  *db.Store
	blobs  storage.Storage
	bus    *replication.Bus
	logger *slog.Logger
}

// NewRequested returns an upload ready to receive meta.
func NewRequested(store *db.Store, blobs storage.Storage, bus *replication.Bus, logger *slog.Logger) *Requested {
	return &Requested{store: store, blobs: blobs, bus: bus, logger: logger}
}

// Uploading is the receiving phase: metadata rows exist (version in
// Downloading), the pre-sized artifact is open for writing, and parts are
// appended in stream order while the hash is computed incrementally.
type Uploading struct {
	store  *db.Store
	blobs  storage.Storage
	bus    *replication.Bus
	logger *slog.Logger

	meta     *qcdnpb.UploadMeta
	dir      db.Dir
	file     db.File
	version  db.FileVersion
	path     string
	handle   *os.File
	hasher   hash.Hash
	received int64
}

// GotMeta performs the metadata phase: dir upsert, file upsert, version
// create (which enforces version-name uniqueness), artifact create and
// pre-size. Whatever step fails, the steps already taken are compensated
// before the original error is returned.
func (r *Requested) GotMeta(ctx context.Context, meta *qcdnpb.UploadMeta) (*Uploading, error) {
	if meta.GetSize() < 0 {
		return nil, errtypes.Precondition("size cannot be negative")
	}

	var (
		version     *db.FileVersion
		file        *db.File
		dir         *db.Dir
		artifactRel string
	)

	compensate := func() {
		r.cleanup(ctx, version, artifactRel, file, dir)
	}

	d, err := r.store.UpsertDir(ctx, meta.GetDir())
	if err != nil {
		return nil, fmt.Errorf("upload: dir upsert: %w", err)
	}

	dir = &d

	f, err := r.store.UpsertFile(ctx, d.ID, meta.GetName(), meta.GetMediaType())
	if err != nil {
		compensate()
		return nil, fmt.Errorf("upload: file upsert: %w", err)
	}

	file = &f

	fv, err := r.store.CreateVersion(ctx, f.ID, meta.GetSize(), meta.GetHash(), meta.GetVersion())
	if err != nil {
		compensate()
		return nil, fmt.Errorf("upload: version create: %w", err)
	}

	version = &fv

	rel := db.PathParts{DirID: d.ID, FileID: f.ID, VersionID: fv.ID}.Rel()

	handle, err := r.blobs.Create(rel)
	if err != nil {
		compensate()
		return nil, fmt.Errorf("upload: artifact create: %w", err)
	}

	artifactRel = rel

	if err := handle.Truncate(meta.GetSize()); err != nil {
		handle.Close()
		compensate()

		return nil, fmt.Errorf("upload: artifact pre-size: %w", err)
	}

	r.logger.Debug("upload meta accepted",
		slog.String("dir", meta.GetDir()),
		slog.String("name", meta.GetName()),
		slog.String("version", meta.GetVersion()),
		slog.Int64("size", meta.GetSize()))

	return &Uploading{
		store:   r.store,
		blobs:   r.blobs,
		bus:     r.bus,
		logger:  r.logger,
		meta:    meta,
		dir:     d,
		file:    f,
		version: fv,
		path:    rel,
		handle:  handle,
		hasher:  sha256.New(),
	}, nil
}

// GotPart appends one chunk. Receiving more bytes than meta declared is
// corruption; any failure compensates before returning.
func (u *Uploading) GotPart(ctx context.Context, part *qcdnpb.FilePart) error {
	chunk := part.GetBytes()

	if u.received > u.meta.GetSize()-int64(len(chunk)) {
		err := errtypes.DataCorruption("received more bytes than declared size")
		u.Cleanup(ctx)

		return err
	}

	if _, err := u.handle.Write(chunk); err != nil {
		u.Cleanup(ctx)

		return fmt.Errorf("upload: writing part: %w", err)
	}

	u.hasher.Write(chunk)
	u.received += int64(len(chunk))

	return nil
}

// End finalizes at end-of-stream: verify the byte count, verify the hash,
// sync the artifact, advance the version to Ready and announce it on the
// replication bus. Any mismatch or failure compensates.
func (u *Uploading) End(ctx context.Context) (*qcdnpb.UploadResponse, error) {
	if u.received != u.meta.GetSize() {
		err := errtypes.DataCorruption(fmt.Sprintf(
			"received %d bytes, expected %d", u.received, u.meta.GetSize()))
		u.Cleanup(ctx)

		return nil, err
	}

	digest := base64.StdEncoding.EncodeToString(u.hasher.Sum(nil))
	if digest != u.meta.GetHash() {
		err := errtypes.DataCorruption("content hash does not match declared hash")
		u.Cleanup(ctx)

		return nil, err
	}

	if err := u.handle.Sync(); err != nil {
		u.Cleanup(ctx)

		return nil, fmt.Errorf("upload: syncing artifact: %w", err)
	}

	if err := u.handle.Close(); err != nil {
		u.handle = nil
		u.Cleanup(ctx)

		return nil, fmt.Errorf("upload: closing artifact: %w", err)
	}

	u.handle = nil

	if err := u.store.UpdateVersionState(ctx, u.version.ID, db.StateReady); err != nil {
		u.Cleanup(ctx)

		return nil, fmt.Errorf("upload: advancing to ready: %w", err)
	}

	u.bus.Publish(replication.Event{
		Kind:          replication.KindUploaded,
		Timestamp:     u.version.CreatedAt,
		DirID:         u.dir.ID,
		FileID:        u.file.ID,
		FileVersionID: u.version.ID,
	})

	u.logger.Info("upload finalized",
		slog.Int64("dir_id", u.dir.ID),
		slog.Int64("file_id", u.file.ID),
		slog.Int64("file_version_id", u.version.ID),
		slog.Int64("size", u.received))

	return &qcdnpb.UploadResponse{
		DirId:         u.dir.ID,
		FileId:        u.file.ID,
		FileVersionId: u.version.ID,
	}, nil
}

// Cleanup runs the full compensation chain for an upload that made it into
// the Uploading phase. Safe to call once per upload; the handler calls it
// on protocol violations and client disconnects.
func (u *Uploading) Cleanup(ctx context.Context) {
	if u.handle != nil {
		if err := u.handle.Close(); err != nil {
			u.logger.Warn("cleanup: closing artifact", slog.Any("error", err))
		}

		u.handle = nil
	}

	r := &Requested{store: u.store, blobs: u.blobs, bus: u.bus, logger: u.logger}
	r.cleanup(ctx, &u.version, u.path, &u.file, &u.dir)
}

// cleanup compensates whatever subset of the meta phase completed, in
// order: hard-delete the version row (still Downloading, never Ready),
// remove the artifact, then garbage-collect the file and dir if empty.
// Failures are logged and suppressed so they never mask the error that
// triggered compensation, and the client's cancellation does not cut the
// chain short.
func (r *Requested) cleanup(ctx context.Context, version *db.FileVersion, artifactRel string, file *db.File, dir *db.Dir) {
	ctx = context.WithoutCancel(ctx)

	if version != nil {
		if err := r.store.HardDeleteVersion(ctx, version.ID); err != nil {
			r.logger.Warn("cleanup: hard-deleting version",
				slog.Int64("file_version_id", version.ID), slog.Any("error", err))
		}
	}

	if artifactRel != "" {
		err := r.blobs.Remove(artifactRel)
		if err != nil && !isNotFound(err) {
			r.logger.Warn("cleanup: removing artifact", slog.Any("error", err))
		}
	}

	if file != nil {
		if err := r.store.DeleteFileIfEmpty(ctx, file.ID); err != nil {
			r.logger.Warn("cleanup: deleting empty file",
				slog.Int64("file_id", file.ID), slog.Any("error", err))
		}
	}

	if dir != nil {
		if err := r.store.DeleteDirIfEmpty(ctx, dir.ID); err != nil {
			r.logger.Warn("cleanup: deleting empty dir",
				slog.Int64("dir_id", dir.ID), slog.Any("error", err))
		}
	}
}

func isNotFound(err error) bool {
	var nf interface{ IsNotFound() }

	return errors.As(err, &nf)
}
