package store

import (
	"crypto/sha1"
	"crypto/sha256"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

// newTestStore creates a migrated store on a temp database for testing.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Initialize())
	t.Cleanup(func() { st.Close() })
	return st
}

// testOid derives a deterministic 20-byte oid from a seed.
func testOid(seed string) models.Oid {
	sum := sha1.Sum([]byte(seed))
	return models.Oid(sum[:])
}

// testOid256 derives a deterministic 32-byte oid from a seed.
func testOid256(seed string) models.Oid {
	sum := sha256.Sum256([]byte(seed))
	return models.Oid(sum[:])
}

var testWhen = time.Unix(1700000000, 0).UTC()

// putCommit inserts a commit whose root tree is treeOid.
func putCommit(t *testing.T, st *Store, seed string, treeOid models.Oid, parents ...models.Oid) *models.Commit {
	t.Helper()
	sig := models.Signature{Name: "Ada", Email: "ada@example.com", When: testWhen}
	commit := &models.Commit{
		Oid:       testOid("commit-" + seed),
		TreeOid:   treeOid,
		Message:   seed,
		Parents:   parents,
		Author:    sig,
		Committer: sig,
	}
	require.NoError(t, st.PutCommit(commit))
	return commit
}

// ==================== Store Tests ====================

func TestStore_Initialize(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := New(dbPath)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Initialize())

	// Idempotent on an already-migrated database.
	assert.NoError(t, st.Initialize())

	// Tables are queryable.
	repos, err := st.ListRepos()
	assert.NoError(t, err)
	assert.Empty(t, repos)
}

func TestStore_GetSetMeta(t *testing.T) {
	st := newTestStore(t)

	err := st.SetMeta("test_key", "test_value")
	require.NoError(t, err)

	val, err := st.GetMeta("test_key")
	require.NoError(t, err)
	assert.Equal(t, "test_value", val)

	// Missing key returns empty
	val, err = st.GetMeta("nonexistent")
	require.NoError(t, err)
	assert.Equal(t, "", val)

	// Update existing value
	err = st.SetMeta("test_key", "new_value")
	require.NoError(t, err)

	val, err = st.GetMeta("test_key")
	require.NoError(t, err)
	assert.Equal(t, "new_value", val)
}

func TestStore_OidLenPinning(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Initialize())

	assert.Equal(t, 0, st.OidLen())
	require.NoError(t, st.SetOidLen(models.OidLenSHA1))
	assert.Equal(t, models.OidLenSHA1, st.OidLen())

	// A pinned database rejects ids of the other length.
	err = st.PutBlob(testOid256("b"), []byte("content"))
	assert.Error(t, err)

	// And rejects lengths that are not a hash length at all.
	err = st.PutBlob(models.Oid(make([]byte, 24)), []byte("content"))
	assert.Error(t, err)

	require.NoError(t, st.Close())

	// The pin survives reopening.
	st, err = New(dbPath)
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.Initialize())
	assert.Equal(t, models.OidLenSHA1, st.OidLen())
}

func TestStore_SetOidLen_Invalid(t *testing.T) {
	st := newTestStore(t)
	assert.Error(t, st.SetOidLen(24))
}

// ==================== Repos Tests ====================

func TestStore_CreateAndGetRepo(t *testing.T) {
	st := newTestStore(t)

	repo, err := st.CreateRepo("linux")
	require.NoError(t, err)
	assert.NotZero(t, repo.ID)

	byID, err := st.GetRepo(repo.ID)
	require.NoError(t, err)
	assert.Equal(t, "linux", byID.Name)

	byName, err := st.GetRepoByName("linux")
	require.NoError(t, err)
	assert.Equal(t, repo.ID, byName.ID)

	_, err = st.GetRepoByName("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetRepo(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_RepoNameUnique(t *testing.T) {
	st := newTestStore(t)

	_, err := st.CreateRepo("linux")
	require.NoError(t, err)

	_, err = st.CreateRepo("linux")
	assert.Error(t, err)
}

func TestStore_ListRepos(t *testing.T) {
	st := newTestStore(t)

	for _, name := range []string{"zsh", "git", "linux"} {
		_, err := st.CreateRepo(name)
		require.NoError(t, err)
	}

	repos, err := st.ListRepos()
	require.NoError(t, err)
	require.Len(t, repos, 3)
	assert.Equal(t, "git", repos[0].Name)
	assert.Equal(t, "linux", repos[1].Name)
	assert.Equal(t, "zsh", repos[2].Name)
}
