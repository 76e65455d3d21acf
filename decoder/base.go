// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// build parses text and wraps its root with wrap, or returns nil.
func build[T any](text string, wrap func(*xmlnode.Node) *T) *T {
	root := xmlnode.Parse(text)
	if root == nil {
		return nil
	}
	return wrap(root)
}

// each wraps every child named by field.
func each[T any](n *xmlnode.Node, field string, wrap func(*xmlnode.Node) *T) []*T {
	var result []*T
	for _, c := range n.Children(field) {
		result = append(result, wrap(c))
	}
	return result
}

// boundingBox reads a bounding box element.  ok is false unless all
// four coordinates are present and numeric.
func boundingBox(n *xmlnode.Node, field string) (bbox geoserver.BoundingBox, ok bool) {
	c := n.Child(field)
	if c == nil {
		return bbox, false
	}
	v := xmlnode.ViewOf[geoserver.BoundingBoxField](c)
	var okMinX, okMaxX, okMinY, okMaxY bool
	bbox.MinX, okMinX = v.Float(geoserver.BoundingBoxMinX)
	bbox.MaxX, okMaxX = v.Float(geoserver.BoundingBoxMaxX)
	bbox.MinY, okMinY = v.Float(geoserver.BoundingBoxMinY)
	bbox.MaxY, okMaxY = v.Float(geoserver.BoundingBoxMaxY)
	bbox.CRS = v.Text(geoserver.BoundingBoxCRS)
	return bbox, okMinX && okMaxX && okMinY && okMaxY
}

// entries reads a map-like element of <entry key="..."> children.
// Entries whose value is an element rather than text map to "".
func entries(n *xmlnode.Node, field string) map[string]string {
	result := make(map[string]string)
	c := n.Child(field)
	if c == nil {
		return result
	}
	for _, entry := range c.Children("entry") {
		if key, ok := entry.Attr("key"); ok {
			result[key] = entry.Text()
		}
	}
	return result
}

// entry finds the <entry key="..."> child of field.
func entry(n *xmlnode.Node, field, key string) *xmlnode.Node {
	c := n.Child(field)
	if c == nil {
		return nil
	}
	return c.Find(xmlnode.And(xmlnode.ByTag("entry"), xmlnode.ByAttr("key", key)))
}
