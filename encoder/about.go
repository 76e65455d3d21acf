// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// About encodes an /about/version document, listing the versions of
// the server's components.
type About struct {
	node *xmlnode.Node
}

// NewAbout creates an empty version report.
func NewAbout() *About {
	return &About{node: xmlnode.New("about")}
}

// Node returns the root <about> element.
func (a *About) Node() *xmlnode.Node {
	return a.node
}

// String serializes the report.
func (a *About) String() string {
	return a.node.String()
}

// AddResource appends a component such as "GeoServer" or
// "GeoTools".  Empty revision or timestamp values are omitted.
func (a *About) AddResource(name, version, revision, timestamp string) {
	res := xmlnode.New("resource")
	res.SetAttr("name", name)
	r := xmlnode.RecordOf[geoserver.AboutField](res)
	r.Set(geoserver.AboutVersion, version)
	if revision != "" {
		r.Set(geoserver.AboutGitRevision, revision)
	}
	if timestamp != "" {
		r.Set(geoserver.AboutBuildTimestamp, timestamp)
	}
	a.node.Append(res)
}
