package models

// PathEntry is one file produced by path resolution: the '/'-joined
// path below the root tree and the blob oid found at that path.
type PathEntry struct {
	Path string
	Oid  Oid
}

// BlobLocation records one place a blob's content appears: the commit
// whose root tree reaches it and the path within that commit.
type BlobLocation struct {
	BlobOid   Oid
	CommitOid Oid
	Path      string
}
