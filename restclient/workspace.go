// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/encoder"
)

// Workspaces returns the names of all workspaces.
func (c *Client) Workspaces(ctx context.Context) ([]string, error) {
	return c.list(ctx, "workspace", "rest/workspaces", nil)
}

// Workspace fetches one workspace.
func (c *Client) Workspace(ctx context.Context, name string) (*decoder.Workspace, error) {
	return get(ctx, c, "workspace", name, "rest/workspaces/{workspace}",
		vars{"workspace": name}, decoder.BuildWorkspace)
}

// CreateWorkspace creates a workspace, and with it a namespace of the
// same name.
func (c *Client) CreateWorkspace(ctx context.Context, ws *encoder.Workspace) error {
	return c.create(ctx, "workspace", "rest/workspaces", nil, ws)
}

// DeleteWorkspace deletes a workspace.  Unless recurse is set, the
// workspace must be empty.
func (c *Client) DeleteWorkspace(ctx context.Context, name string, recurse bool) error {
	return c.remove(ctx, "workspace", name, "rest/workspaces/{workspace}{?recurse}",
		recurseVars(vars{"workspace": name}, recurse))
}

// Namespaces returns the prefixes of all namespaces.
func (c *Client) Namespaces(ctx context.Context) ([]string, error) {
	return c.list(ctx, "namespace", "rest/namespaces", nil)
}

// Namespace fetches one namespace.
func (c *Client) Namespace(ctx context.Context, prefix string) (*decoder.Namespace, error) {
	return get(ctx, c, "namespace", prefix, "rest/namespaces/{namespace}",
		vars{"namespace": prefix}, decoder.BuildNamespace)
}

// CreateNamespace creates a namespace, and with it a workspace of the
// same name.
func (c *Client) CreateNamespace(ctx context.Context, ns *encoder.Namespace) error {
	prefix, _ := ns.Node().Get("prefix")
	err := c.PostTo(ctx, "rest/namespaces", nil, xmlMediaType, ns.String())
	return translateError(err, "namespace", prefix)
}

// UpdateNamespace changes the URI of a namespace.
func (c *Client) UpdateNamespace(ctx context.Context, ns *encoder.Namespace) error {
	prefix, _ := ns.Node().Get("prefix")
	return c.update(ctx, "namespace", prefix, "rest/namespaces/{namespace}",
		vars{"namespace": prefix}, ns)
}
