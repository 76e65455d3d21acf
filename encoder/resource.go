// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Resource holds the fields common to feature types and coverages.
// It is embedded in FeatureType and Coverage and is not used on its
// own.
type Resource struct {
	xmlnode.Record[geoserver.ResourceField]
}

func newResource(tag string) Resource {
	return Resource{xmlnode.NewRecord[geoserver.ResourceField](tag)}
}

// SetName sets the published name of the resource.
func (r Resource) SetName(name string) {
	r.Set(geoserver.ResourceName, name)
}

// SetNativeName sets the name of the resource in its store, such as
// a database table name.
func (r Resource) SetNativeName(name string) {
	r.Set(geoserver.ResourceNativeName, name)
}

// SetTitle sets the human-readable title.
func (r Resource) SetTitle(title string) {
	r.Set(geoserver.ResourceTitle, title)
}

// SetAbstract sets the descriptive abstract.
func (r Resource) SetAbstract(abstract string) {
	r.Set(geoserver.ResourceAbstract, abstract)
}

// SetDescription sets the description.
func (r Resource) SetDescription(description string) {
	r.Set(geoserver.ResourceDescription, description)
}

// SetEnabled turns the resource on or off.
func (r Resource) SetEnabled(enabled bool) {
	r.SetBool(geoserver.ResourceEnabled, enabled)
}

// SetSRS sets the declared spatial reference system, e.g. "EPSG:4326".
func (r Resource) SetSRS(srs string) {
	r.Set(geoserver.ResourceSRS, srs)
}

// SetNativeCRS sets the native coordinate reference system, as a code
// or WKT.
func (r Resource) SetNativeCRS(crs string) {
	r.Set(geoserver.ResourceNativeCRS, crs)
}

// SetProjectionPolicy sets how the native CRS and declared SRS are
// reconciled.
func (r Resource) SetProjectionPolicy(policy geoserver.ProjectionPolicy) {
	r.Set(geoserver.ResourceProjectionPolicy, string(policy))
}

// SetNamespace sets the namespace prefix of the resource.
func (r Resource) SetNamespace(prefix string) {
	r.Set(geoserver.ResourceNamespace, prefix)
}

// SetStore sets the store the resource belongs to.  class is
// "dataStore" or "coverageStore"; name is usually "workspace:store".
func (r Resource) SetStore(class, name string) {
	r.Set(geoserver.ResourceStore, name)
	r.Node().Child("store").SetAttr("class", class)
}

// AddKeyword appends a keyword.
func (r Resource) AddKeyword(keyword string) {
	addString(r.Node(), "keywords", keyword)
}

// AddKeywordWithVocabulary appends a keyword qualified with a
// language and vocabulary, either of which may be empty.
func (r Resource) AddKeywordWithVocabulary(keyword, language, vocabulary string) {
	r.AddKeyword(keywordWithVocabulary(keyword, language, vocabulary))
}

// DelKeyword removes every copy of keyword.  Returns true if any were
// present.
func (r Resource) DelKeyword(keyword string) bool {
	return delString(r.Node(), "keywords", keyword)
}

// SetLatLonBoundingBox sets the WGS84 extent of the resource.
func (r Resource) SetLatLonBoundingBox(bbox geoserver.BoundingBox) {
	setBoundingBox(r.Node(), "latLonBoundingBox", bbox)
}

// SetNativeBoundingBox sets the extent in the native CRS.
func (r Resource) SetNativeBoundingBox(bbox geoserver.BoundingBox) {
	setBoundingBox(r.Node(), "nativeBoundingBox", bbox)
}

// SetMetadata stores a plain string metadata entry, replacing any
// existing entry with the same key.
func (r Resource) SetMetadata(key, value string) {
	setMetadataValue(r.Node(), key, value)
}

// DelMetadata removes the metadata entry key.
func (r Resource) DelMetadata(key string) bool {
	return delMetadata(r.Node(), key)
}

// SetDimensionInfo stores dimension configuration under key, usually
// geoserver.TimeDimension, geoserver.ElevationDimension, or a
// geoserver.CustomDimension name.  Any existing configuration under
// the same key is replaced.
func (r Resource) SetDimensionInfo(key string, d *DimensionInfo) {
	setMetadataNode(r.Node(), key, d.Node())
}

// DelDimensionInfo removes the dimension configuration under key.
func (r Resource) DelDimensionInfo(key string) bool {
	return delMetadata(r.Node(), key)
}

// AddMetadataLink appends a metadata link.
func (r Resource) AddMetadataLink(link *MetadataLink) {
	addItem(r.Node(), "metadataLinks", link.Node())
}

// SetMetadataLink adds a metadata link, replacing any link with the
// same content URL.
func (r Resource) SetMetadataLink(link *MetadataLink) {
	content, _ := link.Get(geoserver.MetadataLinkContent)
	setItem(r.Node(), "metadataLinks", metadataLinkFilter(content), link.Node())
}

// DelMetadataLink removes metadata links whose content URL is
// content.
func (r Resource) DelMetadataLink(content string) bool {
	return delItems(r.Node(), "metadataLinks", metadataLinkFilter(content))
}

func metadataLinkFilter(content string) xmlnode.Filter {
	return xmlnode.ByField(string(geoserver.MetadataLinkContent), content)
}
