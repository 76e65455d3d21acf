// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

import (
	"github.com/diffeo/go-geoserver/xmlnode"
)

// NameList reads a collection document such as GET /rest/workspaces:
//
//	<workspaces>
//	  <workspace>
//	    <name>topp</name>
//	    <atom:link rel="alternate" href="http://.../workspaces/topp.xml"/>
//	  </workspace>
//	</workspaces>
//
// It also reads the flat <list><string>a</string></list> form some
// endpoints return.
type NameList struct {
	node *xmlnode.Node
}

// BuildNameList parses a collection document.
func BuildNameList(text string) *NameList {
	return build(text, func(n *xmlnode.Node) *NameList { return &NameList{node: n} })
}

// Node returns the root of the collection.
func (l *NameList) Node() *xmlnode.Node {
	return l.node
}

// Len returns the number of items.
func (l *NameList) Len() int {
	return len(l.node.ChildElements())
}

// Names returns the name of every item, in document order.  An item
// without a <name> child contributes its own text.
func (l *NameList) Names() []string {
	names := []string{}
	for _, item := range l.node.ChildElements() {
		if name, ok := item.Get("name"); ok {
			names = append(names, name)
		} else {
			names = append(names, item.Text())
		}
	}
	return names
}

// Hrefs returns the atom link of every item that has one.
func (l *NameList) Hrefs() []string {
	hrefs := []string{}
	for _, item := range l.node.ChildElements() {
		if link := item.Child("link"); link != nil {
			if href, ok := link.Attr("href"); ok {
				hrefs = append(hrefs, href)
			}
		}
	}
	return hrefs
}

// Contains reports whether some item is named name.
func (l *NameList) Contains(name string) bool {
	for _, n := range l.Names() {
		if n == name {
			return true
		}
	}
	return false
}
