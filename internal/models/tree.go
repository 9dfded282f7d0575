package models

// TreeEntry is one child of a directory snapshot. A tree is not a row
// of its own: it is the set of tree_entries rows sharing a tree_oid,
// keyed by child name.
type TreeEntry struct {
	TreeOid Oid
	Name    string
	Kind    ObjectKind
	Oid     Oid
}
