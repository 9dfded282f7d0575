package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

func TestStore_PutTreeAndGetEntries(t *testing.T) {
	st := newTestStore(t)

	tree := testOid("t1")
	err := st.PutTree(tree, []*models.TreeEntry{
		{Name: "zebra.txt", Kind: models.KindBlob, Oid: testOid("b1")},
		{Name: "apple.txt", Kind: models.KindBlob, Oid: testOid("b2")},
		{Name: "lib", Kind: models.KindTree, Oid: testOid("t2")},
	})
	require.NoError(t, err)

	entries, err := st.GetTreeEntries(tree)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ordered by name.
	assert.Equal(t, "apple.txt", entries[0].Name)
	assert.Equal(t, "lib", entries[1].Name)
	assert.Equal(t, "zebra.txt", entries[2].Name)

	assert.Equal(t, models.KindTree, entries[1].Kind)
	assert.True(t, tree.Equal(entries[0].TreeOid))
	assert.True(t, testOid("b2").Equal(entries[0].Oid))
}

func TestStore_PutTreeEntry_DuplicateNameRejected(t *testing.T) {
	st := newTestStore(t)

	tree := testOid("t1")
	err := st.PutTreeEntry(&models.TreeEntry{
		TreeOid: tree, Name: "a.txt", Kind: models.KindBlob, Oid: testOid("b1"),
	})
	require.NoError(t, err)

	// Same (tree_oid, name) violates the primary key even with a
	// different child oid.
	err = st.PutTreeEntry(&models.TreeEntry{
		TreeOid: tree, Name: "a.txt", Kind: models.KindBlob, Oid: testOid("b2"),
	})
	assert.Error(t, err)
}

func TestStore_PutTreeEntry_SameNameAcrossTrees(t *testing.T) {
	st := newTestStore(t)

	// The same child name is fine in different trees.
	for _, tree := range []models.Oid{testOid("t1"), testOid("t2")} {
		err := st.PutTreeEntry(&models.TreeEntry{
			TreeOid: tree, Name: "README", Kind: models.KindBlob, Oid: testOid("b1"),
		})
		require.NoError(t, err)
	}
}

func TestStore_PutTree_RollsBackOnDuplicate(t *testing.T) {
	st := newTestStore(t)

	tree := testOid("t1")
	err := st.PutTree(tree, []*models.TreeEntry{
		{Name: "a.txt", Kind: models.KindBlob, Oid: testOid("b1")},
		{Name: "a.txt", Kind: models.KindBlob, Oid: testOid("b2")},
	})
	require.Error(t, err)

	// Nothing from the failed transaction is visible.
	entries, err := st.GetTreeEntries(tree)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_GetTreeEntries_EmptyTree(t *testing.T) {
	st := newTestStore(t)

	entries, err := st.GetTreeEntries(testOid("nothing"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
