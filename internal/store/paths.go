package store

import (
	"fmt"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

// PathsAtCommit enumerates every file reachable from a commit's root
// tree as (path, blob oid) pairs, ordered by path. The traversal is a
// recursive CTE: the seed is the root tree's direct children, each
// step expands subtree entries one level and joins path segments with
// '/'. Directories are descended but not emitted; only blob entries
// appear in the result. An unknown commit or an empty root tree yields
// an empty result, not an error.
func (s *Store) PathsAtCommit(commitOid models.Oid) ([]*models.PathEntry, error) {
	rows, err := s.db.Query(`
		WITH RECURSIVE tree_walk (path, kind, oid) AS (
			SELECT te.name, te.kind, te.oid
			FROM tree_entries te
			JOIN commits c ON c.tree_oid = te.tree_oid
			WHERE c.oid = ?
			UNION ALL
			SELECT tw.path || '/' || te.name, te.kind, te.oid
			FROM tree_walk tw
			JOIN tree_entries te ON te.tree_oid = tw.oid
			WHERE tw.kind = ?
		)
		SELECT path, oid FROM tree_walk WHERE kind = ? ORDER BY path`,
		[]byte(commitOid), int(models.KindTree), int(models.KindBlob),
	)
	if err != nil {
		return nil, fmt.Errorf("path resolution for commit %s: %w", commitOid, err)
	}
	defer rows.Close()

	var entries []*models.PathEntry
	for rows.Next() {
		var entry models.PathEntry
		var oid []byte
		if err := rows.Scan(&entry.Path, &oid); err != nil {
			return nil, err
		}
		entry.Oid = models.Oid(oid)
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
