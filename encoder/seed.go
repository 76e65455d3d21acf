// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// SeedRequest encodes a GeoWebCache <seedRequest>.
type SeedRequest struct {
	xmlnode.Record[geoserver.SeedRequestField]
}

// NewSeedRequest creates a request to seed, reseed, or truncate a
// layer.  Other fields default on the server: EPSG:4326, zoom 0 to 0,
// image/png, one thread.
func NewSeedRequest(layer string, kind geoserver.SeedType) *SeedRequest {
	r := &SeedRequest{xmlnode.NewRecord[geoserver.SeedRequestField]("seedRequest")}
	r.Set(geoserver.SeedRequestName, layer)
	r.Set(geoserver.SeedRequestKind, string(kind))
	return r
}

// SetSRS sets the EPSG code of the projection to seed.
func (r *SeedRequest) SetSRS(epsg int) {
	r.SetInt(geoserver.SeedRequestSRS, epsg)
}

// SetZoomLevels sets the inclusive range of zoom levels.
func (r *SeedRequest) SetZoomLevels(start, stop int) {
	r.SetInt(geoserver.SeedRequestZoomStart, start)
	r.SetInt(geoserver.SeedRequestZoomStop, stop)
}

// SetFormat sets the tile MIME type.
func (r *SeedRequest) SetFormat(format string) {
	r.Set(geoserver.SeedRequestFormat, format)
}

// SetThreadCount sets how many seeding tasks run in parallel.
func (r *SeedRequest) SetThreadCount(n int) {
	r.SetInt(geoserver.SeedRequestThreadCount, n)
}

// SetGridSetID selects the grid set, overriding the SRS.
func (r *SeedRequest) SetGridSetID(id string) {
	r.Set(geoserver.SeedRequestGridSetID, id)
}

// SetBounds limits seeding to an extent, in the request's SRS.
func (r *SeedRequest) SetBounds(bbox geoserver.BoundingBox) {
	r.Node().Delete("bounds")
	coords := r.Node().Ensure("bounds/coords")
	for _, v := range []float64{bbox.MinX, bbox.MinY, bbox.MaxX, bbox.MaxY} {
		coords.AppendNew("double").SetText(xmlnode.FormatFloat(v))
	}
}

func parameterEntry(key string) xmlnode.Filter {
	return func(n *xmlnode.Node) bool {
		strs := n.Children("string")
		return n.Tag() == "entry" && len(strs) > 0 && strs[0].Text() == key
	}
}

// SetParameter sets a parameter filter value, such as a STYLES or
// TIME value, replacing any existing value for key.
func (r *SeedRequest) SetParameter(key, value string) {
	entry := xmlnode.New("entry")
	entry.AppendNew("string").SetText(key)
	entry.AppendNew("string").SetText(value)
	setItem(r.Node(), "parameters", parameterEntry(key), entry)
}

// DelParameter removes a parameter filter value.
func (r *SeedRequest) DelParameter(key string) bool {
	return delItems(r.Node(), "parameters", parameterEntry(key))
}
