package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kilupskalvis/gitgraph/internal/models"
	"github.com/klauspost/compress/zstd"
)

// PutBlob stores blob content under its oid. Content is zstd-compressed
// before storage. Blobs are immutable: inserting an oid twice violates
// the unique index and the engine's error is returned as-is.
func (s *Store) PutBlob(oid models.Oid, content []byte) error {
	if err := s.checkOid(oid); err != nil {
		return err
	}
	packed, err := compressZstd(content)
	if err != nil {
		return fmt.Errorf("failed to compress blob %s: %w", oid, err)
	}
	_, err = s.db.Exec("INSERT INTO blobs (oid, content_zst) VALUES (?, ?)", []byte(oid), packed)
	if err != nil {
		return fmt.Errorf("failed to insert blob %s: %w", oid, err)
	}
	return nil
}

// GetBlob retrieves and decompresses blob content by oid.
func (s *Store) GetBlob(oid models.Oid) ([]byte, error) {
	var packed []byte
	err := s.db.QueryRow("SELECT content_zst FROM blobs WHERE oid = ?", []byte(oid)).Scan(&packed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("blob %s: %w", oid, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	content, err := decompressZstd(packed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress blob %s: %w", oid, err)
	}
	return content, nil
}

// HasBlob reports whether a blob row exists for the oid.
func (s *Store) HasBlob(oid models.Oid) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS (SELECT 1 FROM blobs WHERE oid = ?)", []byte(oid)).Scan(&exists)
	return exists, err
}

// CountBlobs returns the number of stored blobs.
func (s *Store) CountBlobs() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM blobs").Scan(&n)
	return n, err
}

// SampleBlobOids returns up to n blob oids drawn at random, as input
// for batch reachability queries.
func (s *Store) SampleBlobOids(n int) ([]models.Oid, error) {
	rows, err := s.db.Query("SELECT oid FROM blobs ORDER BY RANDOM() LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var oids []models.Oid
	for rows.Next() {
		var oid []byte
		if err := rows.Scan(&oid); err != nil {
			return nil, err
		}
		oids = append(oids, models.Oid(oid))
	}
	return oids, rows.Err()
}

// compressZstd compresses data using zstd.
func compressZstd(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// decompressZstd decompresses zstd-compressed data.
func decompressZstd(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
