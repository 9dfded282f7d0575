package store

import (
	"fmt"
	"strings"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

// LocateBlobs finds every (commit, path) under which any of the given
// blobs appears. It walks the containment relation upward: the seed is
// every tree_entries row naming a target blob, each step finds the
// entry whose oid is the containing tree and prepends its name to the
// path, and the accumulated rows join against commits on root tree
// oid. This is far cheaper than expanding trees commit by commit, but
// only finds blobs whose containing tree chain reaches a commit's root
// tree. Unreferenced blobs yield no rows.
func (s *Store) LocateBlobs(oids []models.Oid) ([]*models.BlobLocation, error) {
	if len(oids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(oids)), ", ")
	args := make([]any, len(oids))
	for i, oid := range oids {
		args[i] = []byte(oid)
	}

	rows, err := s.db.Query(fmt.Sprintf(`
		WITH RECURSIVE ascent (blob_oid, tree_oid, path) AS (
			SELECT te.oid, te.tree_oid, te.name
			FROM tree_entries te
			WHERE te.oid IN (%s)
			UNION ALL
			SELECT a.blob_oid, te.tree_oid, te.name || '/' || a.path
			FROM ascent a
			JOIN tree_entries te ON te.oid = a.tree_oid
		)
		SELECT a.blob_oid, c.oid, a.path
		FROM ascent a
		JOIN commits c ON c.tree_oid = a.tree_oid
		ORDER BY c.oid, a.path`, placeholders), args...)
	if err != nil {
		return nil, fmt.Errorf("blob location query: %w", err)
	}
	defer rows.Close()

	var locations []*models.BlobLocation
	for rows.Next() {
		var loc models.BlobLocation
		var blobOid, commitOid []byte
		if err := rows.Scan(&blobOid, &commitOid, &loc.Path); err != nil {
			return nil, err
		}
		loc.BlobOid = models.Oid(blobOid)
		loc.CommitOid = models.Oid(commitOid)
		locations = append(locations, &loc)
	}
	return locations, rows.Err()
}

// LocateBlobInCommit finds every path at which a blob appears within
// one commit, by expanding the commit's full tree and filtering for
// the target oid. Correct for any reachable blob, but one full-tree
// expansion per commit makes this the slow variant for "which commits"
// questions; prefer LocateBlobs for those.
func (s *Store) LocateBlobInCommit(commitOid, blobOid models.Oid) ([]*models.BlobLocation, error) {
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
		SELECT path FROM tree_walk WHERE oid = ? ORDER BY path`,
		[]byte(commitOid), int(models.KindTree), []byte(blobOid),
	)
	if err != nil {
		return nil, fmt.Errorf("blob location query for commit %s: %w", commitOid, err)
	}
	defer rows.Close()

	var locations []*models.BlobLocation
	for rows.Next() {
		loc := models.BlobLocation{BlobOid: blobOid, CommitOid: commitOid}
		if err := rows.Scan(&loc.Path); err != nil {
			return nil, err
		}
		locations = append(locations, &loc)
	}
	return locations, rows.Err()
}
