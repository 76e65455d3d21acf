// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoserver

import (
	"strings"
)

// ProjectionPolicy defines how GeoServer reconciles a resource's native
// CRS with its declared SRS.
type ProjectionPolicy string

const (
	// ForceDeclared uses the declared SRS regardless of the native
	// CRS.
	ForceDeclared ProjectionPolicy = "FORCE_DECLARED"

	// ReprojectToDeclared reprojects data from the native CRS to
	// the declared SRS.
	ReprojectToDeclared ProjectionPolicy = "REPROJECT_TO_DECLARED"

	// KeepNative keeps the native CRS.
	KeepNative ProjectionPolicy = "NONE"
)

// Presentation defines how the values of a dimension are advertised
// in capabilities documents.
type Presentation string

const (
	// PresentationList lists every distinct value.
	PresentationList Presentation = "LIST"

	// PresentationContinuous advertises a min/max interval.
	PresentationContinuous Presentation = "CONTINUOUS_INTERVAL"

	// PresentationDiscrete advertises an interval with a fixed
	// resolution.
	PresentationDiscrete Presentation = "DISCRETE_INTERVAL"
)

// Well-known metadata entry keys.
const (
	// TimeDimension is the metadata key of time dimension info.
	TimeDimension = "time"

	// ElevationDimension is the metadata key of elevation dimension
	// info.
	ElevationDimension = "elevation"

	// VirtualTableKey is the metadata key of a JDBC virtual table.
	VirtualTableKey = "JDBC_VIRTUAL_TABLE"

	customDimensionPrefix = "custom_dimension_"
)

// CustomDimension returns the metadata key for a custom raster
// dimension.  GeoServer upper-cases custom dimension names.
func CustomDimension(name string) string {
	return customDimensionPrefix + strings.ToUpper(name)
}

// LayerKind is the type of a published layer.
type LayerKind string

// Layer types reported by GeoServer.
const (
	VectorLayer LayerKind = "VECTOR"
	RasterLayer LayerKind = "RASTER"
	RemoteLayer LayerKind = "REMOTE"
	WMSLayer    LayerKind = "WMS"
	WMTSLayer   LayerKind = "WMTS"
	GroupLayer  LayerKind = "GROUP"
)

// GroupMode controls how a layer group is presented to clients.
type GroupMode string

// Layer group modes.
const (
	GroupSingle    GroupMode = "SINGLE"
	GroupNamed     GroupMode = "NAMED"
	GroupContainer GroupMode = "CONTAINER"
	GroupEO        GroupMode = "EO"
)

// ServiceKind names one of the OGC services whose settings can be
// configured.  Its value is both the root element name of the
// settings document and the REST path component.
type ServiceKind string

// Configurable services.
const (
	WMS  ServiceKind = "wms"
	WFS  ServiceKind = "wfs"
	WCS  ServiceKind = "wcs"
	WMTS ServiceKind = "wmts"
)

// SeedType is the kind of GeoWebCache seeding task to start.
type SeedType string

const (
	// Seed generates missing tiles.
	Seed SeedType = "seed"

	// Reseed regenerates all tiles.
	Reseed SeedType = "reseed"

	// Truncate removes cached tiles.
	Truncate SeedType = "truncate"
)

// SeedTypes lists every seeding request type.
var SeedTypes = []SeedType{Seed, Reseed, Truncate}

// SeedKillType selects which GeoWebCache tasks to terminate.
type SeedKillType string

// Seed termination selectors.
const (
	KillRunning SeedKillType = "running"
	KillPending SeedKillType = "pending"
	KillAll     SeedKillType = "all"
)
