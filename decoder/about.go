// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// About reads the /rest/about/version document.
type About struct {
	node *xmlnode.Node
}

// BuildAbout parses a version report.
func BuildAbout(text string) *About {
	return build(text, func(n *xmlnode.Node) *About { return &About{node: n} })
}

// Node returns the root of the report.
func (a *About) Node() *xmlnode.Node {
	return a.node
}

// Resources returns every component listed in the report.
func (a *About) Resources() []*AboutResource {
	return each(a.node, "resource", wrapAboutResource)
}

// Resource returns the component named name, or nil.
func (a *About) Resource(name string) *AboutResource {
	r := a.node.Find(xmlnode.And(xmlnode.ByTag("resource"), xmlnode.ByAttr("name", name)))
	if r == nil {
		return nil
	}
	return wrapAboutResource(r)
}

// GeoServer returns the GeoServer component of the report, or nil.
func (a *About) GeoServer() *AboutResource {
	return a.Resource("GeoServer")
}

// Version classifies the GeoServer version.  If the report has no
// GeoServer component, returns geoserver.VersionUnrecognized.
func (a *About) Version() geoserver.Version {
	r := a.GeoServer()
	if r == nil {
		return geoserver.VersionUnrecognized
	}
	return geoserver.ClassifyVersion(r.Version())
}

// BuildVersion classifies the GeoServer version in a version report.
// Unparseable text yields geoserver.VersionUnrecognized.
func BuildVersion(text string) geoserver.Version {
	a := BuildAbout(text)
	if a == nil {
		return geoserver.VersionUnrecognized
	}
	return a.Version()
}

// AboutResource is one <resource> of a version report.
type AboutResource struct {
	xmlnode.View[geoserver.AboutField]
}

func wrapAboutResource(n *xmlnode.Node) *AboutResource {
	return &AboutResource{xmlnode.ViewOf[geoserver.AboutField](n)}
}

// Name returns the component name, such as "GeoTools".
func (r *AboutResource) Name() string {
	name, _ := r.Node().Attr("name")
	return name
}

// Version returns the version string as reported.
func (r *AboutResource) Version() string {
	return r.Text(geoserver.AboutVersion)
}

// GitRevision returns the source revision of the build.
func (r *AboutResource) GitRevision() string {
	return r.Text(geoserver.AboutGitRevision)
}

// BuildTimestamp returns the build time as reported.
func (r *AboutResource) BuildTimestamp() string {
	return r.Text(geoserver.AboutBuildTimestamp)
}
