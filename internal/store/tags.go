package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

// PutTag inserts an annotated tag object.
func (s *Store) PutTag(tag *models.Tag) error {
	if err := s.checkOid(tag.Oid); err != nil {
		return err
	}
	if err := s.checkOid(tag.TargetOid); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO tags (oid, name, message, tagger_name, tagger_email, tagger_date, target_oid)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		[]byte(tag.Oid), tag.Name, tag.Message,
		tag.Tagger.Name, tag.Tagger.Email, tag.Tagger.When.Unix(),
		[]byte(tag.TargetOid),
	)
	if err != nil {
		return fmt.Errorf("failed to insert tag %s: %w", tag.Oid, err)
	}
	return nil
}

// GetTag retrieves a tag by oid
func (s *Store) GetTag(oid models.Oid) (*models.Tag, error) {
	var tag models.Tag
	var tagOid, targetOid []byte
	var taggerDate int64

	err := s.db.QueryRow(`
		SELECT oid, name, message, tagger_name, tagger_email, tagger_date, target_oid
		FROM tags WHERE oid = ?`, []byte(oid)).Scan(
		&tagOid, &tag.Name, &tag.Message,
		&tag.Tagger.Name, &tag.Tagger.Email, &taggerDate,
		&targetOid,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tag %s: %w", oid, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	tag.Oid = models.Oid(tagOid)
	tag.TargetOid = models.Oid(targetOid)
	tag.Tagger.When = time.Unix(taggerDate, 0).UTC()
	return &tag, nil
}

// ListTags returns all tags ordered by name.
func (s *Store) ListTags() ([]*models.Tag, error) {
	rows, err := s.db.Query(`
		SELECT oid, name, message, tagger_name, tagger_email, tagger_date, target_oid
		FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		var tag models.Tag
		var tagOid, targetOid []byte
		var taggerDate int64
		err := rows.Scan(
			&tagOid, &tag.Name, &tag.Message,
			&tag.Tagger.Name, &tag.Tagger.Email, &taggerDate,
			&targetOid,
		)
		if err != nil {
			return nil, err
		}
		tag.Oid = models.Oid(tagOid)
		tag.TargetOid = models.Oid(targetOid)
		tag.Tagger.When = time.Unix(taggerDate, 0).UTC()
		tags = append(tags, &tag)
	}
	return tags, rows.Err()
}
