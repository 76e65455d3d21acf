// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Resource reads the fields shared by <featureType> and <coverage>.
type Resource struct {
	xmlnode.View[geoserver.ResourceField]
}

func wrapResource(n *xmlnode.Node) Resource {
	return Resource{xmlnode.ViewOf[geoserver.ResourceField](n)}
}

// Name returns the published name.
func (r Resource) Name() string {
	return r.Text(geoserver.ResourceName)
}

// NativeName returns the name in the underlying store.
func (r Resource) NativeName() string {
	return r.Text(geoserver.ResourceNativeName)
}

// Title returns the human-readable title.
func (r Resource) Title() string {
	return r.Text(geoserver.ResourceTitle)
}

// Abstract returns the resource abstract.
func (r Resource) Abstract() string {
	return r.Text(geoserver.ResourceAbstract)
}

// Enabled reports whether the resource is enabled.
func (r Resource) Enabled() bool {
	return r.Bool(geoserver.ResourceEnabled)
}

// SRS returns the declared SRS, such as "EPSG:4326".
func (r Resource) SRS() string {
	return r.Text(geoserver.ResourceSRS)
}

// NativeCRS returns the native CRS, which GeoServer usually reports
// as WKT.
func (r Resource) NativeCRS() string {
	return r.Text(geoserver.ResourceNativeCRS)
}

// ProjectionPolicy returns how the native CRS is reconciled with the
// declared SRS.
func (r Resource) ProjectionPolicy() geoserver.ProjectionPolicy {
	return geoserver.ProjectionPolicy(r.Text(geoserver.ResourceProjectionPolicy))
}

// Namespace returns the namespace prefix.
func (r Resource) Namespace() string {
	return r.Text(geoserver.ResourceNamespace)
}

// Store returns the name of the store and its element class, such as
// "dataStore".
func (r Resource) Store() (name, class string) {
	name = r.Text(geoserver.ResourceStore)
	if store := r.Node().Child("store"); store != nil {
		class, _ = store.Attr("class")
	}
	return name, class
}

// Keywords returns the keyword list.  Keywords with a vocabulary keep
// GeoServer's "kw\@language=l\;" encoding.
func (r Resource) Keywords() []string {
	return r.Node().Texts("keywords/string")
}

// LatLonBoundingBox returns the WGS84 extent.
func (r Resource) LatLonBoundingBox() (geoserver.BoundingBox, bool) {
	return boundingBox(r.Node(), "latLonBoundingBox")
}

// NativeBoundingBox returns the extent in the native CRS.
func (r Resource) NativeBoundingBox() (geoserver.BoundingBox, bool) {
	return boundingBox(r.Node(), "nativeBoundingBox")
}

// Metadata returns the text of the metadata entry key.
func (r Resource) Metadata(key string) (string, bool) {
	e := entry(r.Node(), "metadata", key)
	if e == nil {
		return "", false
	}
	return e.Text(), true
}

// DimensionInfo returns the dimension stored under a metadata key
// such as geoserver.TimeDimension, or nil.
func (r Resource) DimensionInfo(key string) *DimensionInfo {
	e := entry(r.Node(), "metadata", key)
	if e == nil {
		return nil
	}
	d := e.Child("dimensionInfo")
	if d == nil {
		return nil
	}
	return wrapDimensionInfo(d)
}

// MetadataLinks returns the metadata links.
func (r Resource) MetadataLinks() []*MetadataLink {
	return each(r.Node(), "metadataLinks/metadataLink", wrapMetadataLink)
}

// FeatureType reads a <featureType>.
type FeatureType struct {
	Resource
}

// BuildFeatureType parses a feature type document.
func BuildFeatureType(text string) *FeatureType {
	return build(text, func(n *xmlnode.Node) *FeatureType {
		return &FeatureType{wrapResource(n)}
	})
}

// Attributes returns the attribute declarations.
func (ft *FeatureType) Attributes() []*Attribute {
	return each(ft.Node(), "attributes/attribute", wrapAttribute)
}

// VirtualTable returns the SQL view definition, or nil.
func (ft *FeatureType) VirtualTable() *VirtualTable {
	e := entry(ft.Node(), "metadata", geoserver.VirtualTableKey)
	if e == nil {
		return nil
	}
	vt := e.Child("virtualTable")
	if vt == nil {
		return nil
	}
	return wrapVirtualTable(vt)
}

// MaxFeatures returns the per-request feature limit.
func (ft *FeatureType) MaxFeatures() (int, bool) {
	return ft.Int(geoserver.ResourceMaxFeatures)
}

// NumDecimals returns the number of decimals in GML output.
func (ft *FeatureType) NumDecimals() (int, bool) {
	return ft.Int(geoserver.ResourceNumDecimals)
}

// CQLFilter returns the filter restricting published features.
func (ft *FeatureType) CQLFilter() string {
	return ft.Text(geoserver.ResourceCQLFilter)
}

// Coverage reads a <coverage>.
type Coverage struct {
	Resource
}

// BuildCoverage parses a coverage document.
func BuildCoverage(text string) *Coverage {
	return build(text, func(n *xmlnode.Node) *Coverage {
		return &Coverage{wrapResource(n)}
	})
}

// CoverageDimensions returns the bands of the coverage.
func (c *Coverage) CoverageDimensions() []*CoverageDimension {
	return each(c.Node(), "dimensions/coverageDimension", wrapCoverageDimension)
}

// NativeFormat returns the raster format, e.g. "GeoTIFF".
func (c *Coverage) NativeFormat() string {
	return c.Text(geoserver.ResourceNativeFormat)
}

// NativeCoverageName returns the coverage name within its store.
func (c *Coverage) NativeCoverageName() string {
	return c.Text(geoserver.ResourceNativeCoverageName)
}

// DefaultInterpolationMethod returns the default resampling method.
func (c *Coverage) DefaultInterpolationMethod() string {
	return c.Text(geoserver.ResourceDefaultInterpolationMethod)
}

// RequestSRS returns the SRS list accepted in requests.
func (c *Coverage) RequestSRS() []string {
	return c.Node().Texts("requestSRS/string")
}

// ResponseSRS returns the SRS list available in responses.
func (c *Coverage) ResponseSRS() []string {
	return c.Node().Texts("responseSRS/string")
}

// SupportedFormats returns the output formats.
func (c *Coverage) SupportedFormats() []string {
	return c.Node().Texts("supportedFormats/string")
}
