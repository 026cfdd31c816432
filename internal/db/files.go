package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tonimelisma/qcdn/internal/errtypes"
)

// File is a logical named artifact inside a dir. media_type is set on
// creation and not changed thereafter.
type File struct {
	ID        int64
	DirID     int64
	Name      string
	MediaType string
	CreatedAt time.Time
}

const fileColumns = `id, dir_id, name, media_type, created_at`

// FilesByDir returns all files in a dir ordered by id.
func (s *Store) FilesByDir(ctx context.Context, dirID int64) ([]File, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+fileColumns+` FROM file WHERE dir_id = ? ORDER BY id`, dirID)
	if err != nil {
		return nil, fmt.Errorf("db: listing files: %w", err)
	}
	defer rows.Close()

	var items []File

	for rows.Next() {
		var (
			f  File
			ms int64
		)

		if err := rows.Scan(&f.ID, &f.DirID, &f.Name, &f.MediaType, &ms); err != nil {
			return nil, fmt.Errorf("db: scanning file: %w", err)
		}

		f.CreatedAt = fromMillis(ms)
		items = append(items, f)
	}

	return items, rows.Err()
}

// FileByID finds a file by id.
func (s *Store) FileByID(ctx context.Context, id int64) (File, error) {
	return scanFile(s.db.QueryRowContext(ctx,
		`SELECT `+fileColumns+` FROM file WHERE id = ?`, id))
}

// FileByDirAndName finds a file by its dir and name.
func (s *Store) FileByDirAndName(ctx context.Context, dirID int64, name string) (File, error) {
	return scanFile(s.db.QueryRowContext(ctx,
		`SELECT `+fileColumns+` FROM file WHERE dir_id = ? AND name = ?`, dirID, name))
}

func scanFile(row *sql.Row) (File, error) {
	var (
		f  File
		ms int64
	)

	if err := row.Scan(&f.ID, &f.DirID, &f.Name, &f.MediaType, &ms); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return File{}, errtypes.NotFound("file")
		}

		return File{}, fmt.Errorf("db: scanning file: %w", err)
	}

	f.CreatedAt = fromMillis(ms)

	return f, nil
}

// UpsertFile returns the file named name under dirID, creating it with
// mediaType if missing. An existing file keeps its original media type.
func (s *Store) UpsertFile(ctx context.Context, dirID int64, name, mediaType string) (File, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return File{}, fmt.Errorf("db: begin file upsert: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	var (
		f  File
		ms int64
	)

	err = tx.QueryRowContext(ctx,
		`SELECT `+fileColumns+` FROM file WHERE dir_id = ? AND name = ?`,
		dirID, name).
		Scan(&f.ID, &f.DirID, &f.Name, &f.MediaType, &ms)

	switch {
	case err == nil:
		f.CreatedAt = fromMillis(ms)

		if err := tx.Commit(); err != nil {
			return File{}, fmt.Errorf("db: commit file upsert: %w", err)
		}

		return f, nil
	case !errors.Is(err, sql.ErrNoRows):
		return File{}, fmt.Errorf("db: finding file %s: %w", name, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO file (dir_id, name, media_type, created_at) VALUES (?, ?, ?, ?)`,
		dirID, name, mediaType, toMillis(now))
	if err != nil {
		return File{}, fmt.Errorf("db: inserting file %s: %w", name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return File{}, fmt.Errorf("db: file insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return File{}, fmt.Errorf("db: commit file upsert: %w", err)
	}

	return File{
		ID:        id,
		DirID:     dirID,
		Name:      name,
		MediaType: mediaType,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}, nil
}

// DeleteFileIfEmpty removes the file when it owns zero versions. No-op
// otherwise.
func (s *Store) DeleteFileIfEmpty(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM file
		 WHERE id = ?
		   AND NOT EXISTS (SELECT 1 FROM file_version WHERE file_id = ?)`,
		id, id)
	if err != nil {
		return fmt.Errorf("db: deleting empty file: %w", err)
	}

	return nil
}
