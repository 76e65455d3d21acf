// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

// This file contains helpers for list-valued and metadata children
// that several encoders share.

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Encoder is anything that can be serialized as a REST request body.
type Encoder interface {
	// Node returns the root element of the request document.
	Node() *xmlnode.Node

	// String serializes the document as XML text.
	String() string
}

// addItem appends a copy of item to the list element named by list,
// creating the list if needed.
func addItem(parent *xmlnode.Node, list string, item *xmlnode.Node) {
	parent.Ensure(list).Append(item.Copy())
}

// setItem replaces any entries of list matching filter with a copy of
// item, appended at the end of the list.
func setItem(parent *xmlnode.Node, list string, filter xmlnode.Filter, item *xmlnode.Node) {
	parent.Ensure(list).Replace(filter, item.Copy())
}

// delItems removes entries of list matching filter, returning true if
// any were removed.
func delItems(parent *xmlnode.Node, list string, filter xmlnode.Filter) bool {
	l := parent.Child(list)
	if l == nil {
		return false
	}
	return l.Remove(filter) > 0
}

// metadataEntry selects the <entry> with a given key.
func metadataEntry(key string) xmlnode.Filter {
	return xmlnode.And(xmlnode.ByTag("entry"), xmlnode.ByAttr("key", key))
}

// setMetadataNode stores a copy of value as the content of the
// <metadata> entry key, replacing any existing entry with that key.
func setMetadataNode(parent *xmlnode.Node, key string, value *xmlnode.Node) {
	entry := xmlnode.New("entry")
	entry.SetAttr("key", key)
	entry.Append(value.Copy())
	setItem(parent, "metadata", metadataEntry(key), entry)
}

// setMetadataValue stores text as the <metadata> entry key.
func setMetadataValue(parent *xmlnode.Node, key, value string) {
	entry := xmlnode.New("entry")
	entry.SetAttr("key", key)
	entry.SetText(value)
	setItem(parent, "metadata", metadataEntry(key), entry)
}

// delMetadata removes the <metadata> entry key.
func delMetadata(parent *xmlnode.Node, key string) bool {
	return delItems(parent, "metadata", metadataEntry(key))
}

// setEntry stores a key/value pair in a map-like element such as
// <connectionParameters>.
func setEntry(parent *xmlnode.Node, mapName, key, value string) {
	entry := xmlnode.New("entry")
	entry.SetAttr("key", key)
	entry.SetText(value)
	setItem(parent, mapName, metadataEntry(key), entry)
}

// addString appends <string>value</string> to a string list such as
// <keywords>.
func addString(parent *xmlnode.Node, list, value string) {
	parent.Ensure(list).AppendNew("string").SetText(value)
}

// delString removes every <string> equal to value from a string list.
func delString(parent *xmlnode.Node, list, value string) bool {
	return delItems(parent, list, xmlnode.And(xmlnode.ByTag("string"), xmlnode.ByText(value)))
}

// setBoundingBox replaces the bounding box element named field.
func setBoundingBox(parent *xmlnode.Node, field string, bbox geoserver.BoundingBox) {
	parent.Delete(field)
	box := xmlnode.RecordOf[geoserver.BoundingBoxField](parent.Ensure(field))
	box.SetFloat(geoserver.BoundingBoxMinX, bbox.MinX)
	box.SetFloat(geoserver.BoundingBoxMaxX, bbox.MaxX)
	box.SetFloat(geoserver.BoundingBoxMinY, bbox.MinY)
	box.SetFloat(geoserver.BoundingBoxMaxY, bbox.MaxY)
	if bbox.CRS != "" {
		box.Set(geoserver.BoundingBoxCRS, bbox.CRS)
	}
}

// keywordWithVocabulary renders a keyword in GeoServer's
// "keyword\@language=xx\;\@vocabulary=yy\;" form.  Empty language or
// vocabulary parts are omitted.
func keywordWithVocabulary(keyword, language, vocabulary string) string {
	s := keyword
	if language != "" {
		s += `\@language=` + language + `\;`
	}
	if vocabulary != "" {
		s += `\@vocabulary=` + vocabulary + `\;`
	}
	return s
}
