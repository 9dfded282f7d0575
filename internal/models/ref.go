package models

// Repo is a named container scoping refs. Objects themselves are
// content-addressed and shared across repos.
type Repo struct {
	ID   int64
	Name string
}

// DirectRef is a named pointer to an object oid within a repo. Direct
// refs are the only mutable rows in the schema: their target moves as
// a branch advances.
type DirectRef struct {
	RepoID int64
	Name   string
	Target Oid
}

// SymbolicRef is a named pointer to another ref by name. Indirection is
// a single level; resolution does not chase symbolic targets
// transitively.
type SymbolicRef struct {
	RepoID     int64
	Name       string
	TargetName string
}
