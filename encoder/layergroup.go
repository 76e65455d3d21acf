// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// LayerGroup encodes a <layerGroup>.  Its <publishables> and
// <styles> lists are parallel: the i-th style applies to the i-th
// published item, with an empty <style/> meaning the default.
type LayerGroup struct {
	xmlnode.Record[geoserver.LayerGroupField]
}

// NewLayerGroup creates a layer group.  name is required.
func NewLayerGroup(name string) *LayerGroup {
	g := &LayerGroup{xmlnode.NewRecord[geoserver.LayerGroupField]("layerGroup")}
	g.Set(geoserver.LayerGroupName, name)
	return g
}

// SetMode sets how the group is presented.
func (g *LayerGroup) SetMode(mode geoserver.GroupMode) {
	g.Set(geoserver.LayerGroupModeField, string(mode))
}

// SetTitle sets the group title.
func (g *LayerGroup) SetTitle(title string) {
	g.Set(geoserver.LayerGroupTitle, title)
}

// SetAbstract sets the group abstract.
func (g *LayerGroup) SetAbstract(abstract string) {
	g.Set(geoserver.LayerGroupAbstract, abstract)
}

// SetWorkspace places the group in a workspace.
func (g *LayerGroup) SetWorkspace(workspace string) {
	g.Set(geoserver.LayerGroupWorkspace, workspace)
}

// SetBounds sets the group extent.
func (g *LayerGroup) SetBounds(bbox geoserver.BoundingBox) {
	setBoundingBox(g.Node(), "bounds", bbox)
}

// AddLayer appends a layer, drawn with style; an empty style uses the
// layer's default.
func (g *LayerGroup) AddLayer(layer, style string) {
	g.addPublished("layer", layer, style)
}

// AddLayerGroup appends a nested layer group.
func (g *LayerGroup) AddLayerGroup(group string) {
	g.addPublished("layerGroup", group, "")
}

func (g *LayerGroup) addPublished(kind, name, style string) {
	published := g.Node().Ensure("publishables").AppendNew("published")
	published.SetAttr("type", kind)
	published.Set("name", name)
	s := g.Node().Ensure("styles").AppendNew("style")
	if style != "" {
		s.Set("name", style)
	}
}

// DelPublished removes the first published item named name, along
// with its style.
func (g *LayerGroup) DelPublished(name string) bool {
	publishables := g.Node().Child("publishables")
	if publishables == nil {
		return false
	}
	for i, p := range publishables.ChildElements() {
		if !xmlnode.ByField("name", name)(p) {
			continue
		}
		publishables.RemoveChild(p)
		if styles := g.Node().Child("styles"); styles != nil {
			if all := styles.ChildElements(); i < len(all) {
				styles.RemoveChild(all[i])
			}
		}
		return true
	}
	return false
}
