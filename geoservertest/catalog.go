// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoservertest

import (
	"strings"

	"github.com/diffeo/go-geoserver/xmlnode"
)

// atomNamespace is bound to the "atom" prefix in list documents.
const atomNamespace = "http://www.w3.org/2005/Atom"

// collection is an ordered set of catalog objects under one REST
// path.  A nil collection is empty.
type collection struct {
	keys  []string
	items map[string]*xmlnode.Node
}

func (c *collection) get(key string) *xmlnode.Node {
	if c == nil {
		return nil
	}
	return c.items[key]
}

func (c *collection) add(key string, n *xmlnode.Node) {
	if _, present := c.items[key]; !present {
		c.keys = append(c.keys, key)
	}
	c.items[key] = n
}

func (c *collection) remove(key string) bool {
	if c.get(key) == nil {
		return false
	}
	delete(c.items, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection) len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// names returns a copy of the keys in insertion order.
func (c *collection) names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.keys...)
}

// catalog maps REST collection paths, such as
// "workspaces/topp/datastores", to their contents.
type catalog map[string]*collection

// lookup returns the collection at path, or nil.
func (cat catalog) lookup(path string) *collection {
	return cat[path]
}

// collection returns the collection at path, creating it if needed.
func (cat catalog) collection(path string) *collection {
	c := cat[path]
	if c == nil {
		c = &collection{items: make(map[string]*xmlnode.Node)}
		cat[path] = c
	}
	return c
}

// occupied reports whether any collection under prefix has items.
func (cat catalog) occupied(prefix string) bool {
	for path, c := range cat {
		if strings.HasPrefix(path, prefix) && c.len() > 0 {
			return true
		}
	}
	return false
}

// drop removes every collection under prefix.
func (cat catalog) drop(prefix string) {
	for path := range cat {
		if strings.HasPrefix(path, prefix) {
			delete(cat, path)
		}
	}
}

// listDocument renders c the way GeoServer renders a collection,
// with an atom link to each item under base.
func listDocument(listTag, itemTag, base string, c *collection) *xmlnode.Node {
	root := xmlnode.New(listTag)
	for _, key := range c.names() {
		item := root.AppendNew(itemTag)
		item.Set("name", key)
		link := item.AppendNew("atom:link")
		link.SetAttr("xmlns:atom", atomNamespace)
		link.SetAttr("rel", "alternate")
		link.SetAttr("href", base+"/"+key+".xml")
		link.SetAttr("type", "application/xml")
	}
	return root
}

// merge replaces each child of dst that src also has with a copy of
// src's, and appends the children only src has.
func merge(dst, src *xmlnode.Node) {
	for _, child := range src.ChildElements() {
		for _, old := range dst.Children(child.Tag()) {
			dst.RemoveChild(old)
		}
		dst.Append(child.Copy())
	}
}
