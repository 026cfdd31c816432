package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tonimelisma/qcdn/internal/errtypes"
)

// VersionMeta is the flattened read-path projection of a ready,
// non-deleted version: everything the HTTP server needs to answer a
// conditional GET and stream the bytes.
type VersionMeta struct {
	ID          int64
	CreatedAt   time.Time
	MediaType   string
	Hash        string
	StoragePath string
}

// VersionMetaByID resolves a version id to its read-path metadata. Only
// ready, non-deleted versions resolve; everything else is NotFound.
func (s *Store) VersionMetaByID(ctx context.Context, id int64) (VersionMeta, error) {
	return scanVersionMeta(s.db.QueryRowContext(ctx,
		`SELECT fv.id, fv.created_at, f.media_type, fv.hash,
		        f.dir_id, f.id AS file_id
		 FROM file_version fv
		 INNER JOIN file f ON f.id = fv.file_id
		 WHERE fv.id = ? AND fv.state = ? AND fv.deleted_at IS NULL`,
		id, StateReady))
}

// VersionMetaByPath resolves (dir name, file name, version-or-tag) to
// read-path metadata. versionOrTag matches the version's own name first,
// or any tag name attached to a version of that file — the tag join is
// scoped through file_version to the containing file, so equal tag names
// on different files never collide.
func (s *Store) VersionMetaByPath(ctx context.Context, dirName, fileName, versionOrTag string) (VersionMeta, error) {
	return scanVersionMeta(s.db.QueryRowContext(ctx,
		`SELECT fv.id, fv.created_at, f.media_type, fv.hash,
		        f.dir_id, f.id AS file_id
		 FROM file_version fv
		 INNER JOIN file f ON f.id = fv.file_id
		 INNER JOIN dir d ON d.id = f.dir_id
		 LEFT JOIN file_version_tag fvt ON fvt.file_version_id = fv.id
		 WHERE d.name = ?1
		   AND f.name = ?2
		   AND (fv.name = ?3 OR fvt.name = ?3)
		   AND fv.state = ?4
		   AND fv.deleted_at IS NULL
		 ORDER BY (fv.name = ?3) DESC
		 LIMIT 1`,
		dirName, fileName, versionOrTag, StateReady))
}

func scanVersionMeta(row *sql.Row) (VersionMeta, error) {
	var (
		m             VersionMeta
		createdMs     int64
		dirID, fileID int64
	)

	err := row.Scan(&m.ID, &createdMs, &m.MediaType, &m.Hash, &dirID, &fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VersionMeta{}, errtypes.NotFound("file version")
		}

		return VersionMeta{}, fmt.Errorf("db: scanning version meta: %w", err)
	}

	m.CreatedAt = fromMillis(createdMs)
	m.StoragePath = PathParts{DirID: dirID, FileID: fileID, VersionID: m.ID}.Rel()

	return m, nil
}
