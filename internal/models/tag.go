package models

// Tag is an annotated tag object pointing at a target object.
type Tag struct {
	Oid       Oid
	Name      string
	Message   string
	Tagger    Signature
	TargetOid Oid
}
