// Package store provides SQLite-based persistence for the Git object
// graph. It manages repos, blobs, commits, tree entries, tags, and
// refs, and runs the recursive traversal queries over them.
package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"

	"github.com/kilupskalvis/gitgraph/internal/models"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguousOid is returned when an oid prefix matches more than one object.
	ErrAmbiguousOid = errors.New("ambiguous oid prefix")
)

// Key in the meta table recording the database's object id length.
const metaOidLen = "oid_len"

// Store represents the SQLite database store
type Store struct {
	db     *sql.DB
	oidLen int // pinned object id length, 0 until recorded in meta
}

// New creates a new store connection
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Initialize applies any pending schema migrations and loads the pinned
// object id length. It is safe to call on every open.
func (s *Store) Initialize() error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return s.loadOidLen()
}

// DB returns the underlying database connection for advanced queries
func (s *Store) DB() *sql.DB {
	return s.db
}

// GetMeta gets a value from the meta table, empty string when unset
func (s *Store) GetMeta(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// SetMeta sets a value in the meta table
func (s *Store) SetMeta(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = ?",
		key, value, value,
	)
	return err
}

// SetOidLen pins the object id length for this database so one database
// never mixes SHA-1 and SHA-256 identifiers.
func (s *Store) SetOidLen(n int) error {
	if n != models.OidLenSHA1 && n != models.OidLenSHA256 {
		return fmt.Errorf("unsupported oid length %d", n)
	}
	if err := s.SetMeta(metaOidLen, strconv.Itoa(n)); err != nil {
		return fmt.Errorf("failed to record oid length: %w", err)
	}
	s.oidLen = n
	return nil
}

// OidLen returns the pinned object id length, 0 when none is recorded.
func (s *Store) OidLen() int {
	return s.oidLen
}

func (s *Store) loadOidLen() error {
	v, err := s.GetMeta(metaOidLen)
	if err != nil || v == "" {
		return err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("corrupt %s meta value %q: %w", metaOidLen, v, err)
	}
	s.oidLen = n
	return nil
}

// checkOid validates an oid against the hash lengths Git uses and, when
// the database has a pinned length, against that length.
func (s *Store) checkOid(oid models.Oid) error {
	if len(oid) != models.OidLenSHA1 && len(oid) != models.OidLenSHA256 {
		return fmt.Errorf("oid %s has invalid length %d", oid, len(oid))
	}
	if s.oidLen != 0 && len(oid) != s.oidLen {
		return fmt.Errorf("oid %s is %d bytes, database uses %d-byte ids", oid, len(oid), s.oidLen)
	}
	return nil
}
