package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

const commitColumns = `oid, tree_oid, message, parents,
		author_name, author_email, author_date,
		committer_name, committer_email, committer_date`

// PutCommit inserts a commit row. Parent oids are packed into the
// opaque parents blob. Commits are immutable: inserting the same oid
// twice violates the primary key.
func (s *Store) PutCommit(commit *models.Commit) error {
	if err := s.checkOid(commit.Oid); err != nil {
		return err
	}
	if err := s.checkOid(commit.TreeOid); err != nil {
		return err
	}
	for _, parent := range commit.Parents {
		if len(parent) != len(commit.Oid) {
			return fmt.Errorf("parent %s length differs from commit %s", parent, commit.Oid)
		}
	}

	_, err := s.db.Exec(`
		INSERT INTO commits (`+commitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		[]byte(commit.Oid), []byte(commit.TreeOid), commit.Message,
		models.EncodeParents(commit.Parents),
		commit.Author.Name, commit.Author.Email, commit.Author.When.Unix(),
		commit.Committer.Name, commit.Committer.Email, commit.Committer.When.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert commit %s: %w", commit.Oid, err)
	}
	return nil
}

// GetCommit retrieves a commit by oid
func (s *Store) GetCommit(oid models.Oid) (*models.Commit, error) {
	row := s.db.QueryRow("SELECT "+commitColumns+" FROM commits WHERE oid = ?", []byte(oid))
	commit, err := scanCommit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("commit %s: %w", oid, ErrNotFound)
	}
	return commit, err
}

// GetCommitByPrefix retrieves a commit whose oid starts with the given
// hex prefix. A prefix matching more than one commit is an error.
func (s *Store) GetCommitByPrefix(prefix string) (*models.Commit, error) {
	rows, err := s.db.Query(
		"SELECT "+commitColumns+" FROM commits WHERE hex(oid) LIKE ? LIMIT 2",
		strings.ToUpper(prefix)+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commits []*models.Commit
	for rows.Next() {
		commit, err := scanCommit(rows)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(commits) {
	case 0:
		return nil, fmt.Errorf("commit %s: %w", prefix, ErrNotFound)
	case 1:
		return commits[0], nil
	default:
		return nil, fmt.Errorf("commit %s: %w", prefix, ErrAmbiguousOid)
	}
}

// GetAncestry returns the commit and all its ancestors via BFS over
// decoded parent lists. Missing parents (shallow data) are skipped.
func (s *Store) GetAncestry(oid models.Oid) ([]*models.Commit, error) {
	seen := make(map[string]bool)
	queue := []models.Oid{oid}
	var commits []*models.Commit

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.IsZero() || seen[current.String()] {
			continue
		}
		seen[current.String()] = true

		commit, err := s.GetCommit(current)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		commits = append(commits, commit)
		queue = append(queue, commit.Parents...)
	}

	return commits, nil
}

// GetAllAncestors returns the set of ancestor oids of a commit,
// including the commit itself, keyed by hex oid.
func (s *Store) GetAllAncestors(oid models.Oid) (map[string]bool, error) {
	commits, err := s.GetAncestry(oid)
	if err != nil {
		return nil, err
	}
	ancestors := make(map[string]bool, len(commits))
	for _, commit := range commits {
		ancestors[commit.Oid.String()] = true
	}
	return ancestors, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCommit(row rowScanner) (*models.Commit, error) {
	var commit models.Commit
	var oid, treeOid, parents []byte
	var authorDate, committerDate int64

	err := row.Scan(
		&oid, &treeOid, &commit.Message, &parents,
		&commit.Author.Name, &commit.Author.Email, &authorDate,
		&commit.Committer.Name, &commit.Committer.Email, &committerDate,
	)
	if err != nil {
		return nil, err
	}

	commit.Oid = models.Oid(oid)
	commit.TreeOid = models.Oid(treeOid)
	commit.Author.When = time.Unix(authorDate, 0).UTC()
	commit.Committer.When = time.Unix(committerDate, 0).UTC()

	commit.Parents, err = models.DecodeParents(parents, len(oid))
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", commit.Oid, err)
	}
	return &commit, nil
}
