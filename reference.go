package openapiv3

import "encoding/json"

// ReferenceOr is a value that is either an inline item of type T or a
// pointer string ("$ref") naming an item elsewhere in the document.
// Exactly one of Ref and Value is populated; a node with neither never
// resolves.
//
// The pointer string itself is opaque data: it is parsed during
// resolution, never re-interpreted as containing another reference.
type ReferenceOr[T any] struct {
	// Ref is the pointer string, e.g. "#/components/schemas/Pet".
	// Empty for inline nodes.
	Ref string
	// Value is the inline item. Nil for pointer nodes.
	Value *T
}

// NewItem returns an inline reference node holding item.
func NewItem[T any](item T) *ReferenceOr[T] {
	return &ReferenceOr[T]{Value: &item}
}

// NewRef returns a pointer reference node for the given pointer string.
func NewRef[T any](ref string) *ReferenceOr[T] {
	return &ReferenceOr[T]{Ref: ref}
}

// IsRef reports whether the node is a pointer rather than an inline item.
func (r *ReferenceOr[T]) IsRef() bool {
	return r != nil && r.Ref != ""
}

// refObject is the wire form of a pointer node.
type refObject struct {
	Ref string `yaml:"$ref" json:"$ref"`
}

// UnmarshalYAML decodes either form of the node: an object carrying a
// non-empty $ref key becomes a pointer node, anything else is decoded as
// an inline T.
func (r *ReferenceOr[T]) UnmarshalYAML(unmarshal func(any) error) error {
	var probe refObject
	if err := unmarshal(&probe); err == nil && probe.Ref != "" {
		r.Ref = probe.Ref
		r.Value = nil
		return nil
	}
	var item T
	if err := unmarshal(&item); err != nil {
		return err
	}
	r.Ref = ""
	r.Value = &item
	return nil
}

// MarshalYAML emits {"$ref": ...} for pointer nodes and the inline item
// otherwise.
func (r ReferenceOr[T]) MarshalYAML() (any, error) {
	if r.Ref != "" {
		return refObject{Ref: r.Ref}, nil
	}
	return r.Value, nil
}

// UnmarshalJSON decodes either form of the node, mirroring UnmarshalYAML.
func (r *ReferenceOr[T]) UnmarshalJSON(data []byte) error {
	var probe refObject
	if err := json.Unmarshal(data, &probe); err == nil && probe.Ref != "" {
		r.Ref = probe.Ref
		r.Value = nil
		return nil
	}
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	r.Ref = ""
	r.Value = &item
	return nil
}

// MarshalJSON mirrors MarshalYAML.
func (r ReferenceOr[T]) MarshalJSON() ([]byte, error) {
	if r.Ref != "" {
		return json.Marshal(refObject{Ref: r.Ref})
	}
	return json.Marshal(r.Value)
}
