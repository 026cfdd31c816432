package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tonimelisma/qcdn/internal/errtypes"
)

// VersionState is the lifecycle state of a file version. It advances
// monotonically Created → Downloading → Ready and never regresses.
type VersionState int

// Version states, in advance order.
const (
	StateCreated VersionState = iota
	StateDownloading
	StateReady
)

func (vs VersionState) String() string {
	switch vs {
	case StateCreated:
		return "created"
	case StateDownloading:
		return "downloading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// FileVersion is a concrete byte sequence belonging to a file. Name is the
// uploader-supplied version label. DeletedAt is the soft-delete marker.
type FileVersion struct {
	ID        int64
	FileID    int64
	Size      int64
	Hash      string
	Name      string
	State     VersionState
	CreatedAt time.Time
	DeletedAt *time.Time
}

// Deleted reports whether the version is soft-deleted.
func (fv FileVersion) Deleted() bool {
	return fv.DeletedAt != nil
}

// VersionWithTags is a version decorated with its current tag names.
type VersionWithTags struct {
	FileVersion
	Tags []string
}

// PathParts is the stable on-disk address of a version's bytes, relative to
// the storage root.
type PathParts struct {
	DirID     int64
	FileID    int64
	VersionID int64
}

// Rel returns the relative storage path <dir_id>/<file_id>/<version_id>.
func (p PathParts) Rel() string {
	return strings.Join([]string{
		strconv.FormatInt(p.DirID, 10),
		strconv.FormatInt(p.FileID, 10),
		strconv.FormatInt(p.VersionID, 10),
	}, "/")
}

const versionColumns = `id, file_id, size, hash, name, state, created_at, deleted_at`

// VersionsByFile returns all versions of a file, each with its tags as an
// aggregated list, ordered by id. Soft-deleted versions are included.
func (s *Store) VersionsByFile(ctx context.Context, fileID int64) ([]VersionWithTags, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT fv.id, fv.file_id, fv.size, fv.hash, fv.name, fv.state,
		        fv.created_at, fv.deleted_at,
		        group_concat(fvt.name) AS tags
		 FROM file_version fv
		 LEFT JOIN file_version_tag fvt ON fvt.file_version_id = fv.id
		 WHERE fv.file_id = ?
		 GROUP BY fv.id
		 ORDER BY fv.id`, fileID)
	if err != nil {
		return nil, fmt.Errorf("db: listing versions: %w", err)
	}
	defer rows.Close()

	var items []VersionWithTags

	for rows.Next() {
		v, err := scanVersionWithTags(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, v)
	}

	return items, rows.Err()
}

// VersionWithTagsByID returns a single version with its tags.
func (s *Store) VersionWithTagsByID(ctx context.Context, id int64) (VersionWithTags, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT fv.id, fv.file_id, fv.size, fv.hash, fv.name, fv.state,
		        fv.created_at, fv.deleted_at,
		        group_concat(fvt.name) AS tags
		 FROM file_version fv
		 LEFT JOIN file_version_tag fvt ON fvt.file_version_id = fv.id
		 WHERE fv.id = ?
		 GROUP BY fv.id`, id)
	if err != nil {
		return VersionWithTags{}, fmt.Errorf("db: finding version %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return VersionWithTags{}, fmt.Errorf("db: finding version %d: %w", id, err)
		}

		return VersionWithTags{}, errtypes.NotFound("file version")
	}

	return scanVersionWithTags(rows)
}

func scanVersionWithTags(rows *sql.Rows) (VersionWithTags, error) {
	var (
		v         VersionWithTags
		createdMs int64
		deletedMs sql.NullInt64
		tags      sql.NullString
	)

	err := rows.Scan(&v.ID, &v.FileID, &v.Size, &v.Hash, &v.Name, &v.State,
		&createdMs, &deletedMs, &tags)
	if err != nil {
		return VersionWithTags{}, fmt.Errorf("db: scanning version: %w", err)
	}

	v.CreatedAt = fromMillis(createdMs)
	v.DeletedAt = nullableMillis(deletedMs)

	if tags.Valid && tags.String != "" {
		v.Tags = strings.Split(tags.String, ",")
	}

	return v, nil
}

// VersionByID finds a version by id.
func (s *Store) VersionByID(ctx context.Context, id int64) (FileVersion, error) {
	return scanVersion(s.db.QueryRowContext(ctx,
		`SELECT `+versionColumns+` FROM file_version WHERE id = ?`, id))
}

// ReadyVersion finds the ready, non-deleted version of a file by its name.
func (s *Store) ReadyVersion(ctx context.Context, fileID int64, name string) (FileVersion, error) {
	return scanVersion(s.db.QueryRowContext(ctx,
		`SELECT `+versionColumns+` FROM file_version
		 WHERE file_id = ? AND name = ? AND state = ? AND deleted_at IS NULL`,
		fileID, name, StateReady))
}

func scanVersion(row *sql.Row) (FileVersion, error) {
	var (
		v         FileVersion
		createdMs int64
		deletedMs sql.NullInt64
	)

	err := row.Scan(&v.ID, &v.FileID, &v.Size, &v.Hash, &v.Name, &v.State,
		&createdMs, &deletedMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FileVersion{}, errtypes.NotFound("file version")
		}

		return FileVersion{}, fmt.Errorf("db: scanning version: %w", err)
	}

	v.CreatedAt = fromMillis(createdMs)
	v.DeletedAt = nullableMillis(deletedMs)

	return v, nil
}

// CreateVersion inserts a new version in Downloading state. It fails with
// errtypes.Precondition when a non-deleted version with the same
// (file_id, name) already exists, whether ready or still downloading —
// the check and the insert share one transaction, so concurrent uploads
// of the same version race at the database and exactly one proceeds.
func (s *Store) CreateVersion(ctx context.Context, fileID, size int64, hash, name string) (FileVersion, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FileVersion{}, fmt.Errorf("db: begin version create: %w", err)
	}
	defer tx.Rollback()

	var existing int64

	err = tx.QueryRowContext(ctx,
		`SELECT id FROM file_version
		 WHERE file_id = ? AND name = ? AND deleted_at IS NULL`,
		fileID, name).Scan(&existing)

	switch {
	case err == nil:
		return FileVersion{}, errtypes.Precondition("version already exists")
	case !errors.Is(err, sql.ErrNoRows):
		return FileVersion{}, fmt.Errorf("db: checking version uniqueness: %w", err)
	}

	now := time.Now()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO file_version (file_id, size, hash, name, state, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		fileID, size, hash, name, StateDownloading, toMillis(now))
	if err != nil {
		return FileVersion{}, fmt.Errorf("db: inserting version: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return FileVersion{}, fmt.Errorf("db: version insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return FileVersion{}, fmt.Errorf("db: commit version create: %w", err)
	}

	return FileVersion{
		ID:        id,
		FileID:    fileID,
		Size:      size,
		Hash:      hash,
		Name:      name,
		State:     StateDownloading,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}, nil
}

// VersionPath resolves the id triple forming the version's storage path.
func (s *Store) VersionPath(ctx context.Context, versionID int64) (PathParts, error) {
	var p PathParts

	err := s.db.QueryRowContext(ctx,
		`SELECT f.dir_id, f.id, fv.id
		 FROM file_version fv
		 INNER JOIN file f ON f.id = fv.file_id
		 WHERE fv.id = ?`, versionID).
		Scan(&p.DirID, &p.FileID, &p.VersionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PathParts{}, errtypes.NotFound("file version")
		}

		return PathParts{}, fmt.Errorf("db: resolving version path: %w", err)
	}

	return p, nil
}

// UpdateVersionState advances a version's state. Regressions and repeats
// fail with errtypes.Precondition.
func (s *Store) UpdateVersionState(ctx context.Context, id int64, state VersionState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db: begin state update: %w", err)
	}
	defer tx.Rollback()

	var current VersionState

	err = tx.QueryRowContext(ctx,
		`SELECT state FROM file_version WHERE id = ?`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errtypes.NotFound("file version")
		}

		return fmt.Errorf("db: reading version state: %w", err)
	}

	if state <= current {
		return errtypes.Precondition(
			fmt.Sprintf("state cannot move from %s to %s", current, state))
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE file_version SET state = ? WHERE id = ?`, state, id); err != nil {
		return fmt.Errorf("db: updating version state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("db: commit state update: %w", err)
	}

	return nil
}

// SoftDeleteVersion sets deleted_at on a ready version and returns the
// deletion time. Non-ready or already deleted versions fail with
// errtypes.Precondition.
func (s *Store) SoftDeleteVersion(ctx context.Context, id int64) (time.Time, error) {
	now := time.Now()

	res, err := s.db.ExecContext(ctx,
		`UPDATE file_version SET deleted_at = ?
		 WHERE id = ? AND state = ? AND deleted_at IS NULL`,
		toMillis(now), id, StateReady)
	if err != nil {
		return time.Time{}, fmt.Errorf("db: soft-deleting version: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return time.Time{}, fmt.Errorf("db: soft delete rows affected: %w", err)
	}

	if n == 0 {
		if _, err := s.VersionByID(ctx, id); err != nil {
			return time.Time{}, err
		}

		return time.Time{}, errtypes.Precondition("only ready versions can be deleted")
	}

	return now.UTC().Truncate(time.Millisecond), nil
}

// HardDeleteVersion removes the version row and its tag rows in one
// transaction. Ready versions cannot be hard-deleted — this is the
// compensation path for aborted uploads only.
func (s *Store) HardDeleteVersion(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db: begin hard delete: %w", err)
	}
	defer tx.Rollback()

	var state VersionState

	err = tx.QueryRowContext(ctx,
		`SELECT state FROM file_version WHERE id = ?`, id).Scan(&state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errtypes.NotFound("file version")
		}

		return fmt.Errorf("db: reading version state: %w", err)
	}

	if state == StateReady {
		return errtypes.Precondition("ready versions cannot be hard-deleted")
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM file_version_tag WHERE file_version_id = ?`, id); err != nil {
		return fmt.Errorf("db: deleting version tags: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM file_version WHERE id = ?`, id); err != nil {
		return fmt.Errorf("db: deleting version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("db: commit hard delete: %w", err)
	}

	return nil
}
