// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/encoder"
)

// DataStores returns the names of the data stores in a workspace.
func (c *Client) DataStores(ctx context.Context, workspace string) ([]string, error) {
	return c.list(ctx, "dataStore", "rest/workspaces/{workspace}/datastores",
		vars{"workspace": workspace})
}

// DataStore fetches one data store.
func (c *Client) DataStore(ctx context.Context, workspace, name string) (*decoder.DataStore, error) {
	return get(ctx, c, "dataStore", name, "rest/workspaces/{workspace}/datastores/{store}",
		vars{"workspace": workspace, "store": name}, decoder.BuildDataStore)
}

// CreateDataStore creates a data store.  ds is typically a
// *encoder.DataStore or one of its specializations, such as
// *encoder.PostGISDataStore.
func (c *Client) CreateDataStore(ctx context.Context, workspace string, ds encoder.Encoder) error {
	return c.create(ctx, "dataStore", "rest/workspaces/{workspace}/datastores",
		vars{"workspace": workspace}, ds)
}

// UpdateDataStore changes the fields of a data store present in ds.
func (c *Client) UpdateDataStore(ctx context.Context, workspace, name string, ds encoder.Encoder) error {
	return c.update(ctx, "dataStore", name, "rest/workspaces/{workspace}/datastores/{store}",
		vars{"workspace": workspace, "store": name}, ds)
}

// DeleteDataStore deletes a data store.  Unless recurse is set, it
// must not have any feature types.
func (c *Client) DeleteDataStore(ctx context.Context, workspace, name string, recurse bool) error {
	return c.remove(ctx, "dataStore", name, "rest/workspaces/{workspace}/datastores/{store}{?recurse}",
		recurseVars(vars{"workspace": workspace, "store": name}, recurse))
}

// CoverageStores returns the names of the coverage stores in a
// workspace.
func (c *Client) CoverageStores(ctx context.Context, workspace string) ([]string, error) {
	return c.list(ctx, "coverageStore", "rest/workspaces/{workspace}/coveragestores",
		vars{"workspace": workspace})
}

// CoverageStore fetches one coverage store.
func (c *Client) CoverageStore(ctx context.Context, workspace, name string) (*decoder.CoverageStore, error) {
	return get(ctx, c, "coverageStore", name, "rest/workspaces/{workspace}/coveragestores/{store}",
		vars{"workspace": workspace, "store": name}, decoder.BuildCoverageStore)
}

// CreateCoverageStore creates a coverage store.
func (c *Client) CreateCoverageStore(ctx context.Context, workspace string, cs *encoder.CoverageStore) error {
	return c.create(ctx, "coverageStore", "rest/workspaces/{workspace}/coveragestores",
		vars{"workspace": workspace}, cs)
}

// DeleteCoverageStore deletes a coverage store.
func (c *Client) DeleteCoverageStore(ctx context.Context, workspace, name string, recurse bool) error {
	return c.remove(ctx, "coverageStore", name, "rest/workspaces/{workspace}/coveragestores/{store}{?recurse}",
		recurseVars(vars{"workspace": workspace, "store": name}, recurse))
}

// WMSStores returns the names of the cascaded WMS stores in a
// workspace.
func (c *Client) WMSStores(ctx context.Context, workspace string) ([]string, error) {
	return c.list(ctx, "wmsStore", "rest/workspaces/{workspace}/wmsstores",
		vars{"workspace": workspace})
}

// WMSStore fetches one WMS store.
func (c *Client) WMSStore(ctx context.Context, workspace, name string) (*decoder.WMSStore, error) {
	return get(ctx, c, "wmsStore", name, "rest/workspaces/{workspace}/wmsstores/{store}",
		vars{"workspace": workspace, "store": name}, decoder.BuildWMSStore)
}

// CreateWMSStore creates a WMS store.
func (c *Client) CreateWMSStore(ctx context.Context, workspace string, s *encoder.WMSStore) error {
	return c.create(ctx, "wmsStore", "rest/workspaces/{workspace}/wmsstores",
		vars{"workspace": workspace}, s)
}

// DeleteWMSStore deletes a WMS store.
func (c *Client) DeleteWMSStore(ctx context.Context, workspace, name string, recurse bool) error {
	return c.remove(ctx, "wmsStore", name, "rest/workspaces/{workspace}/wmsstores/{store}{?recurse}",
		recurseVars(vars{"workspace": workspace, "store": name}, recurse))
}
