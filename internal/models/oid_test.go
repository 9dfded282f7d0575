package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOid(t *testing.T) {
	sha1Hex := strings.Repeat("ab", 20)
	sha256Hex := strings.Repeat("cd", 32)

	oid, err := ParseOid(sha1Hex)
	require.NoError(t, err)
	assert.Len(t, []byte(oid), OidLenSHA1)
	assert.Equal(t, sha1Hex, oid.String())

	oid, err = ParseOid(sha256Hex)
	require.NoError(t, err)
	assert.Len(t, []byte(oid), OidLenSHA256)
	assert.Equal(t, sha256Hex, oid.String())
}

func TestParseOid_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not hex", strings.Repeat("zz", 20)},
		{"odd length", strings.Repeat("ab", 20) + "a"},
		{"too short", strings.Repeat("ab", 10)},
		{"between sha1 and sha256", strings.Repeat("ab", 25)},
		{"too long", strings.Repeat("ab", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOid(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestOid_Short(t *testing.T) {
	oid, err := ParseOid("0123456789abcdef0123456789abcdef01234567")
	require.NoError(t, err)
	assert.Equal(t, "01234567", oid.Short())
}

func TestOid_EqualAndIsZero(t *testing.T) {
	a, err := ParseOid(strings.Repeat("ab", 20))
	require.NoError(t, err)
	b, err := ParseOid(strings.Repeat("ab", 20))
	require.NoError(t, err)
	c, err := ParseOid(strings.Repeat("cd", 20))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.IsZero())
	assert.True(t, Oid(nil).IsZero())
}

func TestObjectKind_String(t *testing.T) {
	assert.Equal(t, "tree", KindTree.String())
	assert.Equal(t, "blob", KindBlob.String())
	assert.Equal(t, "commit", KindCommit.String())
	assert.Equal(t, "tag", KindTag.String())
	assert.Equal(t, "any", KindAny.String())
	assert.Equal(t, "kind(0)", KindInvalid.String())
	assert.Equal(t, "kind(9)", ObjectKind(9).String())
}
