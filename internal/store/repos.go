package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

// CreateRepo inserts a new named repo and returns it with its assigned id.
func (s *Store) CreateRepo(name string) (*models.Repo, error) {
	res, err := s.db.Exec("INSERT INTO repos (name) VALUES (?)", name)
	if err != nil {
		return nil, fmt.Errorf("failed to create repo %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Repo{ID: id, Name: name}, nil
}

// GetRepo retrieves a repo by id
func (s *Store) GetRepo(id int64) (*models.Repo, error) {
	var repo models.Repo
	err := s.db.QueryRow("SELECT id, name FROM repos WHERE id = ?", id).Scan(&repo.ID, &repo.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("repo %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &repo, nil
}

// GetRepoByName retrieves a repo by name
func (s *Store) GetRepoByName(name string) (*models.Repo, error) {
	var repo models.Repo
	err := s.db.QueryRow("SELECT id, name FROM repos WHERE name = ?", name).Scan(&repo.ID, &repo.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("repo %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &repo, nil
}

// ListRepos returns all repos ordered by name.
func (s *Store) ListRepos() ([]*models.Repo, error) {
	rows, err := s.db.Query("SELECT id, name FROM repos ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repos []*models.Repo
	for rows.Next() {
		var repo models.Repo
		if err := rows.Scan(&repo.ID, &repo.Name); err != nil {
			return nil, err
		}
		repos = append(repos, &repo)
	}
	return repos, rows.Err()
}
