package store

import (
	"fmt"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

// PutTreeEntry inserts one child row of a directory snapshot. Child
// names are unique per tree: a duplicate (tree_oid, name) violates the
// primary key.
func (s *Store) PutTreeEntry(entry *models.TreeEntry) error {
	if err := s.checkOid(entry.TreeOid); err != nil {
		return err
	}
	if err := s.checkOid(entry.Oid); err != nil {
		return err
	}
	_, err := s.db.Exec(
		"INSERT INTO tree_entries (tree_oid, name, kind, oid) VALUES (?, ?, ?, ?)",
		[]byte(entry.TreeOid), entry.Name, int(entry.Kind), []byte(entry.Oid),
	)
	if err != nil {
		return fmt.Errorf("failed to insert tree entry %s/%s: %w", entry.TreeOid.Short(), entry.Name, err)
	}
	return nil
}

// PutTree inserts all children of one tree in a single transaction.
// The tree_oid on each entry is taken from treeOid.
func (s *Store) PutTree(treeOid models.Oid, entries []*models.TreeEntry) error {
	if err := s.checkOid(treeOid); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO tree_entries (tree_oid, name, kind, oid) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, entry := range entries {
		if err := s.checkOid(entry.Oid); err != nil {
			return err
		}
		if _, err := stmt.Exec([]byte(treeOid), entry.Name, int(entry.Kind), []byte(entry.Oid)); err != nil {
			return fmt.Errorf("failed to insert tree entry %s/%s: %w", treeOid.Short(), entry.Name, err)
		}
	}

	return tx.Commit()
}

// GetTreeEntries returns a tree's direct children ordered by name. A
// tree_oid with no rows yields an empty slice: empty and unknown trees
// are indistinguishable in the schema.
func (s *Store) GetTreeEntries(treeOid models.Oid) ([]*models.TreeEntry, error) {
	rows, err := s.db.Query(
		"SELECT tree_oid, name, kind, oid FROM tree_entries WHERE tree_oid = ? ORDER BY name",
		[]byte(treeOid),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.TreeEntry
	for rows.Next() {
		var entry models.TreeEntry
		var tOid, oid []byte
		var kind int
		if err := rows.Scan(&tOid, &entry.Name, &kind, &oid); err != nil {
			return nil, err
		}
		entry.TreeOid = models.Oid(tOid)
		entry.Kind = models.ObjectKind(kind)
		entry.Oid = models.Oid(oid)
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
