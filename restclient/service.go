// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/encoder"
	"github.com/diffeo/go-geoserver/geoserver"
)

const (
	globalSettingsPath = "rest/services/{service}/settings"
	localSettingsPath  = "rest/services/{service}/workspaces/{workspace}/settings"
)

// ServiceSettings fetches the settings of an OGC service, either the
// global ones or, if workspace is non-empty, that workspace's.
func (c *Client) ServiceSettings(ctx context.Context, kind geoserver.ServiceKind, workspace string) (*decoder.ServiceSettings, error) {
	return get(ctx, c, "service", string(kind), scoped(workspace, globalSettingsPath, localSettingsPath),
		vars{"service": string(kind), "workspace": workspace}, decoder.BuildServiceSettings)
}

// UpdateServiceSettings changes the settings present in s.  If
// workspace is non-empty, that workspace's settings are changed,
// creating them if needed.
func (c *Client) UpdateServiceSettings(ctx context.Context, workspace string, s *encoder.ServiceSettings) error {
	kind := s.Node().Tag()
	return c.update(ctx, "service", kind, scoped(workspace, globalSettingsPath, localSettingsPath),
		vars{"service": kind, "workspace": workspace}, s)
}

// DeleteServiceSettings removes a workspace's settings, reverting it
// to the global ones.
func (c *Client) DeleteServiceSettings(ctx context.Context, kind geoserver.ServiceKind, workspace string) error {
	return c.remove(ctx, "service", string(kind), localSettingsPath,
		vars{"service": string(kind), "workspace": workspace})
}
