package models

import (
	"fmt"
	"time"
)

// Signature identifies an author, committer, or tagger at a point in
// time. Timestamps are stored as Unix seconds.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// Commit is a snapshot pointer: one root tree, zero or more parent
// commits, authorship metadata, and a message. Commits are immutable
// once inserted.
type Commit struct {
	Oid       Oid
	TreeOid   Oid
	Message   string
	Parents   []Oid
	Author    Signature
	Committer Signature
}

// IsRoot reports whether the commit has no parents.
func (c *Commit) IsRoot() bool {
	return len(c.Parents) == 0
}

// IsMerge returns true if this commit has more than one parent
func (c *Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// Summary returns the first line of the commit message.
func (c *Commit) Summary() string {
	for i := 0; i < len(c.Message); i++ {
		if c.Message[i] == '\n' {
			return c.Message[:i]
		}
	}
	return c.Message
}

// EncodeParents packs parent oids into the opaque blob stored in the
// commits.parents column: the raw hashes concatenated in parent order.
// A root commit encodes to an empty (non-nil) blob.
func EncodeParents(parents []Oid) []byte {
	size := 0
	for _, p := range parents {
		size += len(p)
	}
	blob := make([]byte, 0, size)
	for _, p := range parents {
		blob = append(blob, p...)
	}
	return blob
}

// DecodeParents splits a parents blob back into oids. oidLen is the
// hash length in use by the surrounding database; a blob whose length
// is not a whole multiple of it is malformed.
func DecodeParents(blob []byte, oidLen int) ([]Oid, error) {
	if oidLen != OidLenSHA1 && oidLen != OidLenSHA256 {
		return nil, fmt.Errorf("unsupported oid length %d", oidLen)
	}
	if len(blob)%oidLen != 0 {
		return nil, fmt.Errorf("parents blob of %d bytes is not a multiple of oid length %d", len(blob), oidLen)
	}
	parents := make([]Oid, 0, len(blob)/oidLen)
	for off := 0; off < len(blob); off += oidLen {
		oid := make(Oid, oidLen)
		copy(oid, blob[off:off+oidLen])
		parents = append(parents, oid)
	}
	return parents, nil
}
