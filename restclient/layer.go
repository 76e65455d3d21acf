// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/encoder"
)

// Layers returns the names of all layers, qualified as
// "workspace:layer".
func (c *Client) Layers(ctx context.Context) ([]string, error) {
	return c.list(ctx, "layer", "rest/layers", nil)
}

// Layer fetches one layer.  name should be qualified with its
// workspace.
func (c *Client) Layer(ctx context.Context, name string) (*decoder.Layer, error) {
	return get(ctx, c, "layer", name, "rest/layers/{layer}", vars{"layer": name}, decoder.BuildLayer)
}

// UpdateLayer changes the fields of a layer present in l.
func (c *Client) UpdateLayer(ctx context.Context, name string, l *encoder.Layer) error {
	return c.update(ctx, "layer", name, "rest/layers/{layer}", vars{"layer": name}, l)
}

// DeleteLayer deletes a layer.  If recurse is set, its resource is
// deleted too.
func (c *Client) DeleteLayer(ctx context.Context, name string, recurse bool) error {
	return c.remove(ctx, "layer", name, "rest/layers/{layer}{?recurse}",
		recurseVars(vars{"layer": name}, recurse))
}

// LayerGroups returns the names of the layer groups in a workspace,
// or of the global groups if workspace is empty.
func (c *Client) LayerGroups(ctx context.Context, workspace string) ([]string, error) {
	return c.list(ctx, "layerGroup",
		scoped(workspace, "rest/layergroups", "rest/workspaces/{workspace}/layergroups"),
		vars{"workspace": workspace})
}

// LayerGroup fetches one layer group.
func (c *Client) LayerGroup(ctx context.Context, workspace, name string) (*decoder.LayerGroup, error) {
	return get(ctx, c, "layerGroup", name,
		scoped(workspace, "rest/layergroups/{group}", "rest/workspaces/{workspace}/layergroups/{group}"),
		vars{"workspace": workspace, "group": name}, decoder.BuildLayerGroup)
}

// CreateLayerGroup creates a layer group.
func (c *Client) CreateLayerGroup(ctx context.Context, workspace string, g *encoder.LayerGroup) error {
	return c.create(ctx, "layerGroup",
		scoped(workspace, "rest/layergroups", "rest/workspaces/{workspace}/layergroups"),
		vars{"workspace": workspace}, g)
}

// UpdateLayerGroup changes the fields of a layer group present in g.
func (c *Client) UpdateLayerGroup(ctx context.Context, workspace, name string, g *encoder.LayerGroup) error {
	return c.update(ctx, "layerGroup", name,
		scoped(workspace, "rest/layergroups/{group}", "rest/workspaces/{workspace}/layergroups/{group}"),
		vars{"workspace": workspace, "group": name}, g)
}

// DeleteLayerGroup deletes a layer group, leaving its layers.
func (c *Client) DeleteLayerGroup(ctx context.Context, workspace, name string) error {
	return c.remove(ctx, "layerGroup", name,
		scoped(workspace, "rest/layergroups/{group}", "rest/workspaces/{workspace}/layergroups/{group}"),
		vars{"workspace": workspace, "group": name})
}
