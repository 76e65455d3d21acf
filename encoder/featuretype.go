// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// FeatureType encodes a <featureType>, a vector resource published
// from a data store.  The document always carries an <attributes>
// list, which may be empty.
type FeatureType struct {
	Resource
}

// NewFeatureType creates an empty feature type.
func NewFeatureType() *FeatureType {
	ft := &FeatureType{newResource("featureType")}
	ft.Node().Ensure("attributes")
	return ft
}

// NewFeatureTypeNamed creates a feature type with its name and, if
// non-empty, its native name, title, and declared SRS.  Only the name
// is required by GeoServer.
func NewFeatureTypeNamed(name, nativeName, title, srs string) *FeatureType {
	ft := NewFeatureType()
	ft.SetName(name)
	if nativeName != "" {
		ft.SetNativeName(nativeName)
	}
	if title != "" {
		ft.SetTitle(title)
	}
	if srs != "" {
		ft.SetSRS(srs)
	}
	return ft
}

func attributeFilter(name string) xmlnode.Filter {
	return xmlnode.ByField(string(geoserver.AttributeName), name)
}

// AddAttribute appends an attribute.
func (ft *FeatureType) AddAttribute(a *Attribute) {
	addItem(ft.Node(), "attributes", a.Node())
}

// SetAttribute adds an attribute, replacing any attribute with the
// same name.  The new attribute goes at the end of the list.
func (ft *FeatureType) SetAttribute(a *Attribute) {
	name, _ := a.Get(geoserver.AttributeName)
	setItem(ft.Node(), "attributes", attributeFilter(name), a.Node())
}

// DelAttribute removes the attribute name.
func (ft *FeatureType) DelAttribute(name string) bool {
	return delItems(ft.Node(), "attributes", attributeFilter(name))
}

// SetVirtualTable defines this feature type by a SQL view, replacing
// any existing view.
func (ft *FeatureType) SetVirtualTable(vt *VirtualTable) {
	setMetadataNode(ft.Node(), geoserver.VirtualTableKey, vt.Node())
}

// DelVirtualTable removes the SQL view definition.
func (ft *FeatureType) DelVirtualTable() bool {
	return delMetadata(ft.Node(), geoserver.VirtualTableKey)
}

// SetMaxFeatures limits the number of features returned per request.
func (ft *FeatureType) SetMaxFeatures(max int) {
	ft.SetInt(geoserver.ResourceMaxFeatures, max)
}

// SetNumDecimals sets the number of decimals in output coordinates.
func (ft *FeatureType) SetNumDecimals(n int) {
	ft.SetInt(geoserver.ResourceNumDecimals, n)
}

// SetCQLFilter restricts the published features with a CQL filter.
func (ft *FeatureType) SetCQLFilter(filter string) {
	ft.Set(geoserver.ResourceCQLFilter, filter)
}
