package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

// sampleGraph is the canonical fixture: a commit whose root tree holds
// a file and a subdirectory with one file.
//
//	commit -> T1 { "a.txt": B1, "dir": T2 }
//	                            T2 { "b.txt": B2 }
type sampleGraph struct {
	commit *models.Commit
	t1, t2 models.Oid
	b1, b2 models.Oid
}

func buildSampleGraph(t *testing.T, st *Store) sampleGraph {
	t.Helper()

	g := sampleGraph{
		t1: testOid("tree-1"),
		t2: testOid("tree-2"),
		b1: testOid("blob-1"),
		b2: testOid("blob-2"),
	}

	require.NoError(t, st.PutBlob(g.b1, []byte("contents of a.txt")))
	require.NoError(t, st.PutBlob(g.b2, []byte("contents of b.txt")))

	require.NoError(t, st.PutTree(g.t1, []*models.TreeEntry{
		{Name: "a.txt", Kind: models.KindBlob, Oid: g.b1},
		{Name: "dir", Kind: models.KindTree, Oid: g.t2},
	}))
	require.NoError(t, st.PutTree(g.t2, []*models.TreeEntry{
		{Name: "b.txt", Kind: models.KindBlob, Oid: g.b2},
	}))

	g.commit = putCommit(t, st, "sample", g.t1)
	return g
}

func TestStore_PathsAtCommit(t *testing.T) {
	st := newTestStore(t)
	g := buildSampleGraph(t, st)

	entries, err := st.PathsAtCommit(g.commit.Oid)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Exactly the two files, ordered by path. The directory itself is
	// not a result row.
	assert.Equal(t, "a.txt", entries[0].Path)
	assert.True(t, g.b1.Equal(entries[0].Oid))
	assert.Equal(t, "dir/b.txt", entries[1].Path)
	assert.True(t, g.b2.Equal(entries[1].Oid))

	for _, entry := range entries {
		assert.NotEqual(t, "dir", entry.Path)
	}
}

func TestStore_PathsAtCommit_DeepNesting(t *testing.T) {
	st := newTestStore(t)

	// a/b/c/leaf.txt
	leaf := testOid("leaf")
	tc := testOid("tree-c")
	tb := testOid("tree-b")
	ta := testOid("tree-a")
	root := testOid("tree-root")

	require.NoError(t, st.PutTree(tc, []*models.TreeEntry{
		{Name: "leaf.txt", Kind: models.KindBlob, Oid: leaf},
	}))
	require.NoError(t, st.PutTree(tb, []*models.TreeEntry{
		{Name: "c", Kind: models.KindTree, Oid: tc},
	}))
	require.NoError(t, st.PutTree(ta, []*models.TreeEntry{
		{Name: "b", Kind: models.KindTree, Oid: tb},
	}))
	require.NoError(t, st.PutTree(root, []*models.TreeEntry{
		{Name: "a", Kind: models.KindTree, Oid: ta},
	}))

	commit := putCommit(t, st, "deep", root)

	entries, err := st.PathsAtCommit(commit.Oid)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a/b/c/leaf.txt", entries[0].Path)
	assert.True(t, leaf.Equal(entries[0].Oid))
}

func TestStore_PathsAtCommit_SameNameAcrossLevels(t *testing.T) {
	st := newTestStore(t)

	// "x" is both a root file and a file inside a directory named
	// "sub"; sibling uniqueness is per tree, not global.
	sub := testOid("tree-sub")
	root := testOid("tree-root")

	require.NoError(t, st.PutTree(sub, []*models.TreeEntry{
		{Name: "x", Kind: models.KindBlob, Oid: testOid("blob-inner")},
	}))
	require.NoError(t, st.PutTree(root, []*models.TreeEntry{
		{Name: "sub", Kind: models.KindTree, Oid: sub},
		{Name: "x", Kind: models.KindBlob, Oid: testOid("blob-outer")},
	}))

	commit := putCommit(t, st, "levels", root)

	entries, err := st.PathsAtCommit(commit.Oid)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sub/x", entries[0].Path)
	assert.Equal(t, "x", entries[1].Path)
}

func TestStore_PathsAtCommit_EmptyTree(t *testing.T) {
	st := newTestStore(t)

	// The commit's tree has no tree_entries rows: an empty result,
	// not an error.
	commit := putCommit(t, st, "empty", testOid("empty-tree"))

	entries, err := st.PathsAtCommit(commit.Oid)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_PathsAtCommit_UnknownCommit(t *testing.T) {
	st := newTestStore(t)

	entries, err := st.PathsAtCommit(testOid("never-ingested"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_PathsAtCommit_SkipsNonBlobLeaves(t *testing.T) {
	st := newTestStore(t)

	// A submodule (gitlink) entry is neither descended nor emitted.
	root := testOid("tree-root")
	require.NoError(t, st.PutTree(root, []*models.TreeEntry{
		{Name: "vendor", Kind: models.KindCommit, Oid: testOid("submodule-commit")},
		{Name: "main.go", Kind: models.KindBlob, Oid: testOid("blob-main")},
	}))

	commit := putCommit(t, st, "gitlink", root)

	entries, err := st.PathsAtCommit(commit.Oid)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "main.go", entries[0].Path)
}
