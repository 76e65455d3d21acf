// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package xmlnode

import (
	"strings"
)

// Filter is a predicate over child nodes, used to locate or remove
// entries in a list-valued element.
type Filter func(*Node) bool

// ByField matches nodes that have a child named by field whose trimmed
// text equals value.
func ByField(field, value string) Filter {
	return func(n *Node) bool {
		text, ok := n.Get(field)
		return ok && text == strings.TrimSpace(value)
	}
}

// ByAttr matches nodes carrying attribute key with exactly value.
func ByAttr(key, value string) Filter {
	return func(n *Node) bool {
		v, ok := n.Attr(key)
		return ok && v == value
	}
}

// ByTag matches nodes with the given element name.
func ByTag(tag string) Filter {
	return func(n *Node) bool {
		return n.Tag() == tag
	}
}

// ByText matches nodes whose own trimmed text equals value.
func ByText(value string) Filter {
	return func(n *Node) bool {
		return n.Text() == strings.TrimSpace(value)
	}
}

// And matches nodes that satisfy every filter.
func And(filters ...Filter) Filter {
	return func(n *Node) bool {
		for _, f := range filters {
			if !f(n) {
				return false
			}
		}
		return true
	}
}

// Find returns the first direct child matching filter, or nil.
func (n *Node) Find(filter Filter) *Node {
	for _, c := range n.ChildElements() {
		if filter(c) {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child matching filter, in order.
func (n *Node) FindAll(filter Filter) []*Node {
	var result []*Node
	for _, c := range n.ChildElements() {
		if filter(c) {
			result = append(result, c)
		}
	}
	return result
}

// Remove deletes every direct child matching filter and returns the
// number removed.
func (n *Node) Remove(filter Filter) int {
	removed := 0
	for _, c := range n.FindAll(filter) {
		if n.elem.RemoveChild(c.elem) != nil {
			removed++
		}
	}
	return removed
}

// Replace removes every direct child matching filter and then appends
// child at the end.  The remaining children keep their order.
func (n *Node) Replace(filter Filter, child *Node) {
	n.Remove(filter)
	n.Append(child)
}
