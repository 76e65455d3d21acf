// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoserver

// BoundingBox is an axis-aligned extent in some coordinate reference
// system.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64

	// CRS is the coordinate reference system of the box, such as
	// "EPSG:4326".  May be empty.
	CRS string
}
