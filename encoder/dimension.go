// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// DimensionInfo encodes <dimensionInfo>: the configuration of a time,
// elevation, or custom dimension.  It is stored in a resource's
// metadata under a dimension key; see Resource.SetDimensionInfo.
type DimensionInfo struct {
	xmlnode.Record[geoserver.DimensionInfoField]
}

// NewDimensionInfo creates dimension info with its enabled flag set.
func NewDimensionInfo(enabled bool) *DimensionInfo {
	d := &DimensionInfo{xmlnode.NewRecord[geoserver.DimensionInfoField]("dimensionInfo")}
	d.SetEnabled(enabled)
	return d
}

// SetEnabled turns the dimension on or off.
func (d *DimensionInfo) SetEnabled(enabled bool) {
	d.SetBool(geoserver.DimensionInfoEnabled, enabled)
}

// SetAttribute names the feature attribute holding dimension values.
// This applies to vector data only.
func (d *DimensionInfo) SetAttribute(attribute string) {
	d.Set(geoserver.DimensionInfoAttribute, attribute)
}

// SetEndAttribute names the attribute holding the end of a value
// range.  This applies to vector data only.
func (d *DimensionInfo) SetEndAttribute(attribute string) {
	d.Set(geoserver.DimensionInfoEndAttribute, attribute)
}

// SetPresentation sets how values are advertised.  resolution is only
// meaningful for geoserver.PresentationDiscrete; for other
// presentations it is ignored and any existing resolution is removed.
func (d *DimensionInfo) SetPresentation(p geoserver.Presentation, resolution float64) {
	d.Set(geoserver.DimensionInfoPresentation, string(p))
	if p == geoserver.PresentationDiscrete {
		d.SetFloat(geoserver.DimensionInfoResolution, resolution)
	} else {
		d.Delete(geoserver.DimensionInfoResolution)
	}
}

// SetUnits sets the unit of measure and its symbol.  The symbol may
// be empty.
func (d *DimensionInfo) SetUnits(units, symbol string) {
	d.Set(geoserver.DimensionInfoUnits, units)
	if symbol != "" {
		d.Set(geoserver.DimensionInfoUnitSymbol, symbol)
	}
}

// SetNearestMatch enables nearest-value matching of requests.
func (d *DimensionInfo) SetNearestMatch(enabled bool) {
	d.SetBool(geoserver.DimensionInfoNearestMatchEnabled, enabled)
}

// SetDefaultValue sets the strategy choosing the default dimension
// value ("MINIMUM", "MAXIMUM", "NEAREST", "FIXED"), and its reference
// value, which may be empty.
func (d *DimensionInfo) SetDefaultValue(strategy, reference string) {
	d.Set(geoserver.DimensionInfoDefaultStrategy, strategy)
	if reference != "" {
		d.Set(geoserver.DimensionInfoDefaultReference, reference)
	} else {
		d.Delete(geoserver.DimensionInfoDefaultReference)
	}
}

// CoverageDimension encodes a <coverageDimension>, one band of a
// coverage.
type CoverageDimension struct {
	xmlnode.Record[geoserver.CoverageDimensionField]
}

// NewCoverageDimension creates a coverage dimension.  name is
// required; description, unit, and dimensionType (such as
// "REAL_32BITS") may be empty and are then omitted.
func NewCoverageDimension(name, description string, min, max float64, unit, dimensionType string) *CoverageDimension {
	cd := &CoverageDimension{xmlnode.NewRecord[geoserver.CoverageDimensionField]("coverageDimension")}
	cd.Set(geoserver.CoverageDimensionName, name)
	if description != "" {
		cd.Set(geoserver.CoverageDimensionDescription, description)
	}
	cd.SetRange(min, max)
	if unit != "" {
		cd.Set(geoserver.CoverageDimensionUnit, unit)
	}
	if dimensionType != "" {
		cd.Set(geoserver.CoverageDimensionDimensionType, dimensionType)
	}
	return cd
}

// SetRange sets the range of values of the band.
func (cd *CoverageDimension) SetRange(min, max float64) {
	cd.SetFloat(geoserver.CoverageDimensionRangeMin, min)
	cd.SetFloat(geoserver.CoverageDimensionRangeMax, max)
}
