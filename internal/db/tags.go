package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tonimelisma/qcdn/internal/errtypes"
)

// FileVersionTag is a movable label pointing to exactly one version.
// A tag name is unique within a file, not within a version — moving a tag
// between versions of the same file is a single operation.
type FileVersionTag struct {
	ID            int64
	FileVersionID int64
	Name          string
	CreatedAt     time.Time
	ActivatedAt   time.Time
}

const tagColumns = `id, file_version_id, name, created_at, activated_at`

// TagsByVersion returns the tags currently pointing at a version.
func (s *Store) TagsByVersion(ctx context.Context, versionID int64) ([]FileVersionTag, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+tagColumns+` FROM file_version_tag
		 WHERE file_version_id = ? ORDER BY id`, versionID)
	if err != nil {
		return nil, fmt.Errorf("db: listing tags: %w", err)
	}
	defer rows.Close()

	var items []FileVersionTag

	for rows.Next() {
		var (
			t                  FileVersionTag
			createdMs, activMs int64
		)

		if err := rows.Scan(&t.ID, &t.FileVersionID, &t.Name, &createdMs, &activMs); err != nil {
			return nil, fmt.Errorf("db: scanning tag: %w", err)
		}

		t.CreatedAt = fromMillis(createdMs)
		t.ActivatedAt = fromMillis(activMs)
		items = append(items, t)
	}

	return items, rows.Err()
}

// TagByFileAndName finds the tag named name among all versions of a file.
func (s *Store) TagByFileAndName(ctx context.Context, fileID int64, name string) (FileVersionTag, error) {
	var (
		t                  FileVersionTag
		createdMs, activMs int64
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT fvt.id, fvt.file_version_id, fvt.name, fvt.created_at, fvt.activated_at
		 FROM file_version_tag fvt
		 INNER JOIN file_version fv ON fv.id = fvt.file_version_id
		 WHERE fv.file_id = ? AND fvt.name = ?`,
		fileID, name).
		Scan(&t.ID, &t.FileVersionID, &t.Name, &createdMs, &activMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FileVersionTag{}, errtypes.NotFound("tag")
		}

		return FileVersionTag{}, fmt.Errorf("db: finding tag %s: %w", name, err)
	}

	t.CreatedAt = fromMillis(createdMs)
	t.ActivatedAt = fromMillis(activMs)

	return t, nil
}

// CreateOrMoveTag atomically points the tag named name at versionID. When a
// tag with this name exists on any version of the same file it is moved and
// its activated_at bumped; otherwise a new row is inserted. A concurrent
// reader observes either the old target or the new one, never a missing tag.
func (s *Store) CreateOrMoveTag(ctx context.Context, fileID, versionID int64, name string) (FileVersionTag, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FileVersionTag{}, fmt.Errorf("db: begin tag upsert: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	nowMs := toMillis(now)

	res, err := tx.ExecContext(ctx,
		`UPDATE file_version_tag SET file_version_id = ?, activated_at = ?
		 WHERE name = ?
		   AND file_version_id IN (SELECT id FROM file_version WHERE file_id = ?)`,
		versionID, nowMs, name, fileID)
	if err != nil {
		return FileVersionTag{}, fmt.Errorf("db: moving tag %s: %w", name, err)
	}

	moved, err := res.RowsAffected()
	if err != nil {
		return FileVersionTag{}, fmt.Errorf("db: tag move rows affected: %w", err)
	}

	if moved == 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO file_version_tag (file_version_id, name, created_at, activated_at)
			 VALUES (?, ?, ?, ?)`,
			versionID, name, nowMs, nowMs); err != nil {
			return FileVersionTag{}, fmt.Errorf("db: inserting tag %s: %w", name, err)
		}
	}

	var (
		t                  FileVersionTag
		createdMs, activMs int64
	)

	err = tx.QueryRowContext(ctx,
		`SELECT `+tagColumns+` FROM file_version_tag
		 WHERE file_version_id = ? AND name = ?`,
		versionID, name).
		Scan(&t.ID, &t.FileVersionID, &t.Name, &createdMs, &activMs)
	if err != nil {
		return FileVersionTag{}, fmt.Errorf("db: reading tag %s back: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return FileVersionTag{}, fmt.Errorf("db: commit tag upsert: %w", err)
	}

	t.CreatedAt = fromMillis(createdMs)
	t.ActivatedAt = fromMillis(activMs)

	return t, nil
}
