// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Layer reads a <layer>.
type Layer struct {
	xmlnode.View[geoserver.LayerField]
}

// BuildLayer parses a layer document.
func BuildLayer(text string) *Layer {
	return build(text, func(n *xmlnode.Node) *Layer {
		return &Layer{xmlnode.ViewOf[geoserver.LayerField](n)}
	})
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.Text(geoserver.LayerName)
}

// Path returns the WMS capabilities path.
func (l *Layer) Path() string {
	return l.Text(geoserver.LayerPath)
}

// Type returns the layer type.
func (l *Layer) Type() geoserver.LayerKind {
	return geoserver.LayerKind(l.Text(geoserver.LayerKindField))
}

// DefaultStyle returns the name of the default style.
func (l *Layer) DefaultStyle() string {
	return l.Text(geoserver.LayerDefaultStyle)
}

// Styles returns the names of the alternate styles.
func (l *Layer) Styles() []string {
	return l.Node().Texts("styles/style/name")
}

// Enabled reports whether the layer is enabled.
func (l *Layer) Enabled() bool {
	return l.Bool(geoserver.LayerEnabled)
}

// Queryable reports whether GetFeatureInfo is allowed.
func (l *Layer) Queryable() bool {
	return l.Bool(geoserver.LayerQueryable)
}

// Advertised reports whether the layer appears in capabilities.
// GeoServer omits the field when it is true.
func (l *Layer) Advertised() bool {
	if _, ok := l.Get(geoserver.LayerAdvertised); !ok {
		return true
	}
	return l.Bool(geoserver.LayerAdvertised)
}

// Opaque reports whether the layer is opaque.
func (l *Layer) Opaque() bool {
	return l.Bool(geoserver.LayerOpaque)
}

// Resource returns the name of the published resource and its class,
// such as "featureType" or "coverage".
func (l *Layer) Resource() (name, class string) {
	name = l.Text(geoserver.LayerResource)
	if r := l.Node().Child("resource"); r != nil {
		class, _ = r.Attr("class")
	}
	return name, class
}

// AuthorityURLs returns the layer's authority URLs.
func (l *Layer) AuthorityURLs() []*AuthorityURL {
	return each(l.Node(), "authorityURLs/AuthorityURL", wrapAuthorityURL)
}

// Identifiers returns the layer's identifiers.
func (l *Layer) Identifiers() []*Identifier {
	return each(l.Node(), "identifiers/Identifier", wrapIdentifier)
}

// LayerGroup reads a <layerGroup>.
type LayerGroup struct {
	xmlnode.View[geoserver.LayerGroupField]
}

// BuildLayerGroup parses a layer group document.
func BuildLayerGroup(text string) *LayerGroup {
	return build(text, func(n *xmlnode.Node) *LayerGroup {
		return &LayerGroup{xmlnode.ViewOf[geoserver.LayerGroupField](n)}
	})
}

// Name returns the group name.
func (g *LayerGroup) Name() string {
	return g.Text(geoserver.LayerGroupName)
}

// Mode returns how the group is presented.
func (g *LayerGroup) Mode() geoserver.GroupMode {
	return geoserver.GroupMode(g.Text(geoserver.LayerGroupModeField))
}

// Title returns the group title.
func (g *LayerGroup) Title() string {
	return g.Text(geoserver.LayerGroupTitle)
}

// Abstract returns the group abstract.
func (g *LayerGroup) Abstract() string {
	return g.Text(geoserver.LayerGroupAbstract)
}

// Workspace returns the group's workspace, or "" for a global group.
func (g *LayerGroup) Workspace() string {
	return g.Text(geoserver.LayerGroupWorkspace)
}

// Bounds returns the group extent.
func (g *LayerGroup) Bounds() (geoserver.BoundingBox, bool) {
	return boundingBox(g.Node(), "bounds")
}

// Published is one member of a layer group.
type Published struct {
	// Kind is "layer" or "layerGroup".
	Kind string

	// Name is the name of the member.
	Name string

	// Style is the style the group draws the member with,
	// or "" for its default.
	Style string
}

// Published returns the group members in drawing order, each paired
// with its style.
func (g *LayerGroup) Published() []Published {
	members := g.Node().Children("publishables/published")
	styles := g.Node().Children("styles/style")
	result := make([]Published, len(members))
	for i, m := range members {
		result[i].Kind, _ = m.Attr("type")
		result[i].Name, _ = m.Get("name")
		if i < len(styles) {
			result[i].Style, _ = styles[i].Get("name")
		}
	}
	return result
}
