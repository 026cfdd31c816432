package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tonimelisma/qcdn/internal/errtypes"
)

// Dir is a namespace. Created lazily on first upload naming it; deleted only
// when it owns zero files.
type Dir struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Dirs returns all dirs ordered by id.
func (s *Store) Dirs(ctx context.Context) ([]Dir, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM dir ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db: listing dirs: %w", err)
	}
	defer rows.Close()

	var items []Dir

	for rows.Next() {
		var (
			d  Dir
			ms int64
		)

		if err := rows.Scan(&d.ID, &d.Name, &ms); err != nil {
			return nil, fmt.Errorf("db: scanning dir: %w", err)
		}

		d.CreatedAt = fromMillis(ms)
		items = append(items, d)
	}

	return items, rows.Err()
}

// DirByID finds a dir by id.
func (s *Store) DirByID(ctx context.Context, id int64) (Dir, error) {
	return scanDir(s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM dir WHERE id = ?`, id))
}

// DirByName finds a dir by its unique name.
func (s *Store) DirByName(ctx context.Context, name string) (Dir, error) {
	return scanDir(s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM dir WHERE name = ?`, name))
}

func scanDir(row *sql.Row) (Dir, error) {
	var (
		d  Dir
		ms int64
	)

	if err := row.Scan(&d.ID, &d.Name, &ms); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Dir{}, errtypes.NotFound("dir")
		}

		return Dir{}, fmt.Errorf("db: scanning dir: %w", err)
	}

	d.CreatedAt = fromMillis(ms)

	return d, nil
}

// UpsertDir returns the dir named name, creating it if missing.
func (s *Store) UpsertDir(ctx context.Context, name string) (Dir, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Dir{}, fmt.Errorf("db: begin dir upsert: %w", err)
	}
	defer tx.Rollback()

	d, err := upsertDirTx(ctx, tx, name, time.Now())
	if err != nil {
		return Dir{}, err
	}

	if err := tx.Commit(); err != nil {
		return Dir{}, fmt.Errorf("db: commit dir upsert: %w", err)
	}

	return d, nil
}

func upsertDirTx(ctx context.Context, tx *sql.Tx, name string, now time.Time) (Dir, error) {
	var (
		d  Dir
		ms int64
	)

	err := tx.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM dir WHERE name = ?`, name).
		Scan(&d.ID, &d.Name, &ms)

	switch {
	case err == nil:
		d.CreatedAt = fromMillis(ms)
		return d, nil
	case !errors.Is(err, sql.ErrNoRows):
		return Dir{}, fmt.Errorf("db: finding dir %s: %w", name, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO dir (name, created_at) VALUES (?, ?)`,
		name, toMillis(now))
	if err != nil {
		return Dir{}, fmt.Errorf("db: inserting dir %s: %w", name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Dir{}, fmt.Errorf("db: dir insert id: %w", err)
	}

	return Dir{ID: id, Name: name, CreatedAt: now.UTC().Truncate(time.Millisecond)}, nil
}

// DeleteDirIfEmpty removes the dir when it owns zero files. No-op otherwise.
func (s *Store) DeleteDirIfEmpty(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM dir
		 WHERE id = ?
		   AND NOT EXISTS (SELECT 1 FROM file WHERE dir_id = ?)`,
		id, id)
	if err != nil {
		return fmt.Errorf("db: deleting empty dir: %w", err)
	}

	return nil
}
