// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Coverage encodes a <coverage>, a raster resource published from a
// coverage store.  The document always carries a <dimensions> list.
type Coverage struct {
	Resource
}

// NewCoverage creates an empty coverage.
func NewCoverage() *Coverage {
	c := &Coverage{newResource("coverage")}
	c.Node().Ensure("dimensions")
	return c
}

// NewCoverageNamed creates a coverage with a name and, if non-empty,
// a title and declared SRS.
func NewCoverageNamed(name, title, srs string) *Coverage {
	c := NewCoverage()
	c.SetName(name)
	if title != "" {
		c.SetTitle(title)
	}
	if srs != "" {
		c.SetSRS(srs)
	}
	return c
}

// SetNativeFormat sets the name of the source format, such as
// "GeoTIFF".
func (c *Coverage) SetNativeFormat(format string) {
	c.Set(geoserver.ResourceNativeFormat, format)
}

// SetNativeCoverageName selects a coverage within a multi-coverage
// store.
func (c *Coverage) SetNativeCoverageName(name string) {
	c.Set(geoserver.ResourceNativeCoverageName, name)
}

// SetDefaultInterpolationMethod sets the interpolation used when a
// request does not specify one ("nearest neighbor", "bilinear",
// "bicubic").
func (c *Coverage) SetDefaultInterpolationMethod(method string) {
	c.Set(geoserver.ResourceDefaultInterpolationMethod, method)
}

// AddRequestSRS appends an SRS accepted in requests.
func (c *Coverage) AddRequestSRS(srs string) {
	addString(c.Node(), "requestSRS", srs)
}

// AddResponseSRS appends an SRS offered in responses.
func (c *Coverage) AddResponseSRS(srs string) {
	addString(c.Node(), "responseSRS", srs)
}

// AddSupportedFormat appends an output format.
func (c *Coverage) AddSupportedFormat(format string) {
	addString(c.Node(), "supportedFormats", format)
}

// AddInterpolationMethod appends an allowed interpolation method.
func (c *Coverage) AddInterpolationMethod(method string) {
	addString(c.Node(), "interpolationMethods", method)
}

func coverageDimensionFilter(name string) xmlnode.Filter {
	return xmlnode.ByField(string(geoserver.CoverageDimensionName), name)
}

// AddCoverageDimension appends a band description.
func (c *Coverage) AddCoverageDimension(cd *CoverageDimension) {
	addItem(c.Node(), "dimensions", cd.Node())
}

// SetCoverageDimension adds a band description, replacing any with
// the same name.
func (c *Coverage) SetCoverageDimension(cd *CoverageDimension) {
	name, _ := cd.Get(geoserver.CoverageDimensionName)
	setItem(c.Node(), "dimensions", coverageDimensionFilter(name), cd.Node())
}

// DelCoverageDimension removes the band description name.
func (c *Coverage) DelCoverageDimension(name string) bool {
	return delItems(c.Node(), "dimensions", coverageDimensionFilter(name))
}
