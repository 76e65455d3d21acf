// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/encoder"
)

const (
	globalStylesPath = "rest/styles"
	localStylesPath  = "rest/workspaces/{workspace}/styles"
)

// Styles returns the names of the styles in a workspace, or of the
// global styles if workspace is empty.
func (c *Client) Styles(ctx context.Context, workspace string) ([]string, error) {
	return c.list(ctx, "style", scoped(workspace, globalStylesPath, localStylesPath),
		vars{"workspace": workspace})
}

// Style fetches the catalog entry of a style.
func (c *Client) Style(ctx context.Context, workspace, name string) (*decoder.Style, error) {
	return get(ctx, c, "style", name, scoped(workspace, globalStylesPath, localStylesPath)+"/{style}",
		vars{"workspace": workspace, "style": name}, decoder.BuildStyle)
}

// CreateStyle creates the catalog entry of a style.  Its body is
// uploaded with UploadSLD.
func (c *Client) CreateStyle(ctx context.Context, workspace string, s *encoder.Style) error {
	return c.create(ctx, "style", scoped(workspace, globalStylesPath, localStylesPath),
		vars{"workspace": workspace}, s)
}

// UploadSLD replaces the body of an existing style with an SLD
// document.
func (c *Client) UploadSLD(ctx context.Context, workspace, name, sld string) error {
	err := c.PutTo(ctx, scoped(workspace, globalStylesPath, localStylesPath)+"/{style}",
		vars{"workspace": workspace, "style": name}, sldMediaType, sld)
	return translateError(err, "style", name)
}

// DeleteStyle deletes the catalog entry of a style.  If purge is set,
// the style file is deleted from the data directory too.
func (c *Client) DeleteStyle(ctx context.Context, workspace, name string, purge bool) error {
	v := vars{"workspace": workspace, "style": name}
	if purge {
		v["purge"] = "true"
	}
	return c.remove(ctx, "style", name, scoped(workspace, globalStylesPath, localStylesPath)+"/{style}{?purge}", v)
}
