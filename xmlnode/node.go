// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package xmlnode provides the small mutable XML tree wrapper shared by
// every GeoServer encoder and decoder.
//
// A Node wraps one element of a github.com/beevik/etree document.  Named
// children are addressed by a field name, which may be a slash-separated
// path to a nested child:
//
//     n := xmlnode.New("coverageDimension")
//     n.Set("name", "GRAY_INDEX")
//     n.Set("range/min", "0")
//     n.String()
//     // <coverageDimension><name>GRAY_INDEX</name><range><min>0</min></range></coverageDimension>
//
// Nothing in this package returns an error.  An absent child is
// reported with a false "ok" value, a deletion that removes nothing
// returns false, and text that cannot be parsed yields a nil Node.
package xmlnode

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Node is a single element in an XML tree: a tag, attributes, ordered
// child elements, and text content.
type Node struct {
	elem *etree.Element
}

// New creates a fresh root node with the given tag.
func New(tag string) *Node {
	return &Node{elem: etree.NewElement(tag)}
}

// Wrap returns a Node around an existing etree element, or nil if e is
// nil.
func Wrap(e *etree.Element) *Node {
	if e == nil {
		return nil
	}
	return &Node{elem: e}
}

// Parse parses XML text and returns its root element.  If the text is
// not well-formed XML, or contains no element at all, returns nil.
// Documents declaring a non-UTF-8 encoding are transcoded.
func Parse(text string) *Node {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromString(text); err != nil {
		return nil
	}
	// etree tolerates several roots and text outside the root
	if len(doc.ChildElements()) != 1 {
		return nil
	}
	for _, token := range doc.Child {
		if cd, isText := token.(*etree.CharData); isText && strings.TrimSpace(cd.Data) != "" {
			return nil
		}
	}
	return Wrap(doc.Root())
}

// Element returns the underlying etree element.
func (n *Node) Element() *etree.Element {
	return n.elem
}

// Tag returns the element name of this node.
func (n *Node) Tag() string {
	return n.elem.Tag
}

// Text returns the trimmed text content of this node.
func (n *Node) Text() string {
	return strings.TrimSpace(n.elem.Text())
}

// SetText replaces the text content of this node.
func (n *Node) SetText(text string) {
	n.elem.SetText(text)
}

// splitField breaks a field path into its element names.
func splitField(field string) []string {
	return strings.Split(strings.Trim(field, "/"), "/")
}

// Child returns the first child element named by field, or nil.
func (n *Node) Child(field string) *Node {
	e := n.elem
	for _, tag := range splitField(field) {
		e = e.SelectElement(tag)
		if e == nil {
			return nil
		}
	}
	return &Node{elem: e}
}

// Ensure returns the child named by field, creating it and any
// intermediate elements if they do not exist.
func (n *Node) Ensure(field string) *Node {
	e := n.elem
	for _, tag := range splitField(field) {
		next := e.SelectElement(tag)
		if next == nil {
			next = e.CreateElement(tag)
		}
		e = next
	}
	return &Node{elem: e}
}

// Get returns the trimmed text of the child named by field.  ok is
// false if there is no such child.
func (n *Node) Get(field string) (value string, ok bool) {
	c := n.Child(field)
	if c == nil {
		return "", false
	}
	return c.Text(), true
}

// Set creates the child named by field if it is absent, and sets its
// text to value.
func (n *Node) Set(field, value string) {
	n.Ensure(field).SetText(value)
}

// SetNullable sets a field from an optional value.  A non-nil value
// behaves like Set.  A nil value clears the text of an existing child
// and does nothing if the child does not exist.
func (n *Node) SetNullable(field string, value *string) {
	if value != nil {
		n.Set(field, *value)
		return
	}
	if c := n.Child(field); c != nil {
		c.SetText("")
	}
}

// Delete removes the child named by field.  Returns true if a child
// was removed.
func (n *Node) Delete(field string) bool {
	c := n.Child(field)
	if c == nil {
		return false
	}
	parent := c.elem.Parent()
	return parent.RemoveChild(c.elem) != nil
}

// Attr returns the value of an attribute of this node.
func (n *Node) Attr(key string) (string, bool) {
	a := n.elem.SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// SetAttr creates or replaces an attribute of this node.
func (n *Node) SetAttr(key, value string) {
	n.elem.CreateAttr(key, value)
}

// DeleteAttr removes an attribute.  Returns true if it was present.
func (n *Node) DeleteAttr(key string) bool {
	return n.elem.RemoveAttr(key) != nil
}

// ChildElements returns all of the direct child elements of this node,
// in document order.
func (n *Node) ChildElements() []*Node {
	elems := n.elem.ChildElements()
	result := make([]*Node, len(elems))
	for i, e := range elems {
		result[i] = &Node{elem: e}
	}
	return result
}

// Children returns every child element named by field.  A path selects
// the elements named by its last segment under the first match of
// the preceding segments.
func (n *Node) Children(field string) []*Node {
	tags := splitField(field)
	parent := n
	if len(tags) > 1 {
		parent = n.Child(strings.Join(tags[:len(tags)-1], "/"))
		if parent == nil {
			return nil
		}
	}
	last := tags[len(tags)-1]
	var result []*Node
	for _, e := range parent.elem.SelectElements(last) {
		result = append(result, &Node{elem: e})
	}
	return result
}

// Texts returns the trimmed text of every child named by field.
func (n *Node) Texts(field string) []string {
	var result []string
	for _, c := range n.Children(field) {
		result = append(result, c.Text())
	}
	return result
}

// Append adds child as the last child element of this node.  If child
// already belongs to another tree it is moved.
func (n *Node) Append(child *Node) {
	n.elem.AddChild(child.elem)
}

// RemoveChild removes child if it is a direct child of this node, and
// returns true if it was.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil {
		return false
	}
	return n.elem.RemoveChild(child.elem) != nil
}

// AppendNew creates a new child element with the given tag at the end
// of this node.
func (n *Node) AppendNew(tag string) *Node {
	return &Node{elem: n.elem.CreateElement(tag)}
}

// Copy returns a deep copy of this node, detached from any tree.
func (n *Node) Copy() *Node {
	return &Node{elem: n.elem.Copy()}
}

// String serializes this node and its descendants as XML text.
func (n *Node) String() string {
	doc := etree.NewDocument()
	doc.SetRoot(n.elem.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		// Writing to an in-memory string does not fail
		return ""
	}
	return s
}
