// Package models defines the core data structures of the stored object
// graph: object identifiers, commits, tree entries, tags, refs, and the
// row types produced by the traversal queries.
package models

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Object id lengths in bytes for the two hash algorithms Git uses.
const (
	OidLenSHA1   = 20
	OidLenSHA256 = 32
)

// Oid is a raw object identifier: the bytes of a cryptographic content
// hash. Oids stay binary everywhere and render to hex only at the
// output boundary.
type Oid []byte

// ParseOid decodes a full hex-encoded object id.
func ParseOid(s string) (Oid, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid oid %q: %w", s, err)
	}
	if len(raw) != OidLenSHA1 && len(raw) != OidLenSHA256 {
		return nil, fmt.Errorf("invalid oid %q: %d bytes, want %d or %d", s, len(raw), OidLenSHA1, OidLenSHA256)
	}
	return Oid(raw), nil
}

// String returns the lowercase hex form of the oid.
func (o Oid) String() string {
	return hex.EncodeToString(o)
}

// Short returns the first 8 hex characters of the oid
func (o Oid) Short() string {
	s := o.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// Equal reports whether two oids identify the same object.
func (o Oid) Equal(other Oid) bool {
	return bytes.Equal(o, other)
}

// IsZero reports whether the oid is unset.
func (o Oid) IsZero() bool {
	return len(o) == 0
}
