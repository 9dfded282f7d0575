package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

// SetDirectRef points a direct ref at target, creating the ref if it
// does not exist. It returns the previous target oid, nil when the ref
// is new. Direct refs are the only mutable rows in the schema.
func (s *Store) SetDirectRef(repoID int64, name string, target models.Oid) (models.Oid, error) {
	if err := s.checkOid(target); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var prev []byte
	err = tx.QueryRow(
		"SELECT target_oid FROM direct_refs WHERE repo_id = ? AND name = ?",
		repoID, name,
	).Scan(&prev)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	_, err = tx.Exec(`
		INSERT INTO direct_refs (repo_id, name, target_oid) VALUES (?, ?, ?)
		ON CONFLICT(repo_id, name) DO UPDATE SET target_oid = excluded.target_oid`,
		repoID, name, []byte(target),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set ref %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return models.Oid(prev), nil
}

// SetSymbolicRef points a symbolic ref at another ref name.
func (s *Store) SetSymbolicRef(repoID int64, name, targetName string) error {
	_, err := s.db.Exec(`
		INSERT INTO symbolic_refs (repo_id, name, target_name) VALUES (?, ?, ?)
		ON CONFLICT(repo_id, name) DO UPDATE SET target_name = excluded.target_name`,
		repoID, name, targetName,
	)
	if err != nil {
		return fmt.Errorf("failed to set symbolic ref %q: %w", name, err)
	}
	return nil
}

// GetDirectRef retrieves a direct ref by name
func (s *Store) GetDirectRef(repoID int64, name string) (*models.DirectRef, error) {
	var target []byte
	err := s.db.QueryRow(
		"SELECT target_oid FROM direct_refs WHERE repo_id = ? AND name = ?",
		repoID, name,
	).Scan(&target)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ref %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &models.DirectRef{RepoID: repoID, Name: name, Target: models.Oid(target)}, nil
}

// GetSymbolicRef retrieves a symbolic ref by name
func (s *Store) GetSymbolicRef(repoID int64, name string) (*models.SymbolicRef, error) {
	var targetName string
	err := s.db.QueryRow(
		"SELECT target_name FROM symbolic_refs WHERE repo_id = ? AND name = ?",
		repoID, name,
	).Scan(&targetName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("symbolic ref %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &models.SymbolicRef{RepoID: repoID, Name: name, TargetName: targetName}, nil
}

// ResolveRef resolves a ref name to an object oid. A direct ref wins;
// otherwise a symbolic ref is followed exactly one level to a direct
// ref. Deeper chains are not resolved in-schema.
func (s *Store) ResolveRef(repoID int64, name string) (models.Oid, error) {
	direct, err := s.GetDirectRef(repoID, name)
	if err == nil {
		return direct.Target, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	sym, err := s.GetSymbolicRef(repoID, name)
	if err != nil {
		return nil, err
	}

	direct, err = s.GetDirectRef(repoID, sym.TargetName)
	if err != nil {
		return nil, fmt.Errorf("symbolic ref %q: %w", name, err)
	}
	return direct.Target, nil
}

// DeleteRef removes a ref by name, direct or symbolic.
func (s *Store) DeleteRef(repoID int64, name string) error {
	res, err := s.db.Exec("DELETE FROM direct_refs WHERE repo_id = ? AND name = ?", repoID, name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	res, err = s.db.Exec("DELETE FROM symbolic_refs WHERE repo_id = ? AND name = ?", repoID, name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	return fmt.Errorf("ref %q: %w", name, ErrNotFound)
}

// ListDirectRefs returns a repo's direct refs ordered by name.
func (s *Store) ListDirectRefs(repoID int64) ([]*models.DirectRef, error) {
	rows, err := s.db.Query(
		"SELECT name, target_oid FROM direct_refs WHERE repo_id = ? ORDER BY name",
		repoID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*models.DirectRef
	for rows.Next() {
		ref := models.DirectRef{RepoID: repoID}
		var target []byte
		if err := rows.Scan(&ref.Name, &target); err != nil {
			return nil, err
		}
		ref.Target = models.Oid(target)
		refs = append(refs, &ref)
	}
	return refs, rows.Err()
}

// ListSymbolicRefs returns a repo's symbolic refs ordered by name.
func (s *Store) ListSymbolicRefs(repoID int64) ([]*models.SymbolicRef, error) {
	rows, err := s.db.Query(
		"SELECT name, target_name FROM symbolic_refs WHERE repo_id = ? ORDER BY name",
		repoID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*models.SymbolicRef
	for rows.Next() {
		ref := models.SymbolicRef{RepoID: repoID}
		if err := rows.Scan(&ref.Name, &ref.TargetName); err != nil {
			return nil, err
		}
		refs = append(refs, &ref)
	}
	return refs, rows.Err()
}
