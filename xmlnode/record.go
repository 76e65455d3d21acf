// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package xmlnode

// Record is a writable view of a Node whose named children are keyed
// by the field type F.  Encoders embed a Record to get typed get, set,
// and delete operations.
type Record[F ~string] struct {
	node *Node
}

// NewRecord creates a Record around a fresh root node with tag.
func NewRecord[F ~string](tag string) Record[F] {
	return Record[F]{node: New(tag)}
}

// RecordOf creates a Record around an existing node.
func RecordOf[F ~string](n *Node) Record[F] {
	return Record[F]{node: n}
}

// Node returns the root node of this record.
func (r Record[F]) Node() *Node {
	return r.node
}

// Get returns the text of field, with ok false if it is absent.
func (r Record[F]) Get(field F) (string, bool) {
	return r.node.Get(string(field))
}

// Set creates or replaces field.
func (r Record[F]) Set(field F, value string) {
	r.node.Set(string(field), value)
}

// SetNullable sets field from an optional value; see Node.SetNullable.
func (r Record[F]) SetNullable(field F, value *string) {
	r.node.SetNullable(string(field), value)
}

// Delete removes field, returning true if it was present.
func (r Record[F]) Delete(field F) bool {
	return r.node.Delete(string(field))
}

// String serializes the record as XML text.
func (r Record[F]) String() string {
	return r.node.String()
}

// View is a read-only view of a Node keyed by the field type F.
// Decoders embed a View.
type View[F ~string] struct {
	node *Node
}

// ViewOf creates a View around an existing node.
func ViewOf[F ~string](n *Node) View[F] {
	return View[F]{node: n}
}

// Node returns the root node of this view.
func (v View[F]) Node() *Node {
	return v.node
}

// Get returns the text of field, with ok false if it is absent.
func (v View[F]) Get(field F) (string, bool) {
	return v.node.Get(string(field))
}

// Text returns the text of field, or the empty string if it is absent.
func (v View[F]) Text(field F) string {
	s, _ := v.node.Get(string(field))
	return s
}

// Bool returns field interpreted as an XML boolean.  Absent or
// unparseable values are false.
func (v View[F]) Bool(field F) bool {
	s, _ := v.node.Get(string(field))
	return s == "true" || s == "1"
}

// Int returns field parsed as a decimal integer.  ok is false if the
// field is absent or not a number.
func (v View[F]) Int(field F) (int, bool) {
	return parseInt(v.node, string(field))
}

// Float returns field parsed as a floating-point number.
func (v View[F]) Float(field F) (float64, bool) {
	return parseFloat(v.node, string(field))
}
