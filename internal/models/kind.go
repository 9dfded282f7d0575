package models

import "fmt"

// ObjectKind is the small integer code stored in the tree_entries.kind
// column to discriminate what a child oid points at. The codes follow
// libgit2's object-type table.
type ObjectKind int

const (
	KindInvalid ObjectKind = 0
	KindAny     ObjectKind = 1
	KindCommit  ObjectKind = 2 // a submodule/gitlink entry
	KindTree    ObjectKind = 3
	KindBlob    ObjectKind = 4
	KindTag     ObjectKind = 5
)

// String returns the Git object type name for the kind code.
func (k ObjectKind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindCommit:
		return "commit"
	case KindTree:
		return "tree"
	case KindBlob:
		return "blob"
	case KindTag:
		return "tag"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
