// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

import (
	"github.com/ugorji/go/codec"

	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// seedStatus is the JSON document GeoWebCache returns from
// /gwc/rest/seed[/layer].json.
// Any entry may be null, and Tasks is nil if the report key is
// missing.
type seedStatus struct {
	Tasks *[][]*int64 `codec:"long-array-array"`
}

// BuildSeedStatus parses a GeoWebCache seeding status report.  It
// returns nil if text is not a status report, and an empty slice if
// no tasks are running.
func BuildSeedStatus(text string) []geoserver.SeedTask {
	var status seedStatus
	json := &codec.JsonHandle{}
	decoder := codec.NewDecoderBytes([]byte(text), json)
	if err := decoder.Decode(&status); err != nil || status.Tasks == nil {
		return nil
	}
	tasks := make([]geoserver.SeedTask, len(*status.Tasks))
	for i, values := range *status.Tasks {
		tasks[i] = geoserver.NewSeedTaskEntries(values)
	}
	return tasks
}

// SeedRequest reads a <seedRequest>.
type SeedRequest struct {
	xmlnode.View[geoserver.SeedRequestField]
}

// BuildSeedRequest parses a seed request document.
func BuildSeedRequest(text string) *SeedRequest {
	return build(text, func(n *xmlnode.Node) *SeedRequest {
		return &SeedRequest{xmlnode.ViewOf[geoserver.SeedRequestField](n)}
	})
}

// Name returns the layer to seed.
func (r *SeedRequest) Name() string {
	return r.Text(geoserver.SeedRequestName)
}

// Type returns the kind of request.  An absent or unknown type reads
// as geoserver.Seed.
func (r *SeedRequest) Type() geoserver.SeedType {
	kind, err := geoserver.ParseSeedType(r.Text(geoserver.SeedRequestKind))
	if err != nil {
		return geoserver.Seed
	}
	return kind
}

// SRS returns the EPSG code to seed.
func (r *SeedRequest) SRS() (int, bool) {
	return r.Int(geoserver.SeedRequestSRS)
}

// ZoomLevels returns the zoom range, defaulting each bound to 0.
func (r *SeedRequest) ZoomLevels() (start, stop int) {
	start, _ = r.Int(geoserver.SeedRequestZoomStart)
	stop, _ = r.Int(geoserver.SeedRequestZoomStop)
	return start, stop
}

// Format returns the tile MIME type.
func (r *SeedRequest) Format() string {
	return r.Text(geoserver.SeedRequestFormat)
}

// ThreadCount returns the number of seeding tasks, at least 1.
func (r *SeedRequest) ThreadCount() int {
	n, ok := r.Int(geoserver.SeedRequestThreadCount)
	if !ok || n < 1 {
		return 1
	}
	return n
}

// GridSetID returns the grid set, if one was named.
func (r *SeedRequest) GridSetID() string {
	return r.Text(geoserver.SeedRequestGridSetID)
}

// Parameters returns the parameter filter values.
func (r *SeedRequest) Parameters() map[string]string {
	result := make(map[string]string)
	for _, e := range r.Node().Children("parameters/entry") {
		if strs := e.Texts("string"); len(strs) == 2 {
			result[strs[0]] = strs[1]
		}
	}
	return result
}
