package db

import (
	"context"
	"fmt"
	"time"
)

// Replication history rows. Each carries a wall-clock instant: created_at
// for uploads (the instant the version row was inserted, not the instant it
// reached Ready; only versions now Ready are listed), activated_at for tag
// moves, deleted_at for soft deletes.

// SyncUploaded records a Ready version created after a given instant.
type SyncUploaded struct {
	DirID         int64
	FileID        int64
	FileVersionID int64
	Timestamp     time.Time
}

// SyncTagged records a tag create-or-move after a given instant.
type SyncTagged struct {
	FileVersionID int64
	Tag           string
	Timestamp     time.Time
}

// SyncDeleted records a soft delete after a given instant.
type SyncDeleted struct {
	FileVersionID int64
	Timestamp     time.Time
}

// UploadedSince returns ready versions created strictly after ts, ascending.
func (s *Store) UploadedSince(ctx context.Context, ts time.Time) ([]SyncUploaded, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT f.dir_id, f.id, fv.id, fv.created_at
		 FROM file_version fv
		 INNER JOIN file f ON f.id = fv.file_id
		 WHERE fv.state = ? AND fv.created_at > ?
		 ORDER BY fv.created_at`,
		StateReady, toMillis(ts))
	if err != nil {
		return nil, fmt.Errorf("db: uploaded since: %w", err)
	}
	defer rows.Close()

	var items []SyncUploaded

	for rows.Next() {
		var (
			u  SyncUploaded
			ms int64
		)

		if err := rows.Scan(&u.DirID, &u.FileID, &u.FileVersionID, &ms); err != nil {
			return nil, fmt.Errorf("db: scanning uploaded row: %w", err)
		}

		u.Timestamp = fromMillis(ms)
		items = append(items, u)
	}

	return items, rows.Err()
}

// TaggedSince returns tag activations strictly after ts, ascending.
func (s *Store) TaggedSince(ctx context.Context, ts time.Time) ([]SyncTagged, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT fvt.file_version_id, fvt.name, fvt.activated_at
		 FROM file_version_tag fvt
		 WHERE fvt.activated_at > ?
		 ORDER BY fvt.activated_at`,
		toMillis(ts))
	if err != nil {
		return nil, fmt.Errorf("db: tagged since: %w", err)
	}
	defer rows.Close()

	var items []SyncTagged

	for rows.Next() {
		var (
			t  SyncTagged
			ms int64
		)

		if err := rows.Scan(&t.FileVersionID, &t.Tag, &ms); err != nil {
			return nil, fmt.Errorf("db: scanning tagged row: %w", err)
		}

		t.Timestamp = fromMillis(ms)
		items = append(items, t)
	}

	return items, rows.Err()
}

// DeletedSince returns soft deletes strictly after ts, ascending.
func (s *Store) DeletedSince(ctx context.Context, ts time.Time) ([]SyncDeleted, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT fv.id, fv.deleted_at
		 FROM file_version fv
		 WHERE fv.deleted_at IS NOT NULL AND fv.deleted_at > ?
		 ORDER BY fv.deleted_at`,
		toMillis(ts))
	if err != nil {
		return nil, fmt.Errorf("db: deleted since: %w", err)
	}
	defer rows.Close()

	var items []SyncDeleted

	for rows.Next() {
		var (
			d  SyncDeleted
			ms int64
		)

		if err := rows.Scan(&d.FileVersionID, &ms); err != nil {
			return nil, fmt.Errorf("db: scanning deleted row: %w", err)
		}

		d.Timestamp = fromMillis(ms)
		items = append(items, d)
	}

	return items, rows.Err()
}
