// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/encoder"
)

const (
	featureTypesPath = "rest/workspaces/{workspace}/datastores/{store}/featuretypes"
	featureTypePath  = featureTypesPath + "/{name}"
	coveragesPath    = "rest/workspaces/{workspace}/coveragestores/{store}/coverages"
	coveragePath     = coveragesPath + "/{name}"
)

// FeatureTypes returns the names of the feature types published from
// a data store.
func (c *Client) FeatureTypes(ctx context.Context, workspace, store string) ([]string, error) {
	return c.list(ctx, "featureType", featureTypesPath,
		vars{"workspace": workspace, "store": store})
}

// FeatureType fetches one feature type.
func (c *Client) FeatureType(ctx context.Context, workspace, store, name string) (*decoder.FeatureType, error) {
	return get(ctx, c, "featureType", name, featureTypePath,
		vars{"workspace": workspace, "store": store, "name": name}, decoder.BuildFeatureType)
}

// PublishFeatureType creates a feature type from a table or file in a
// data store.  GeoServer creates a layer of the same name.
func (c *Client) PublishFeatureType(ctx context.Context, workspace, store string, ft *encoder.FeatureType) error {
	return c.create(ctx, "featureType", featureTypesPath,
		vars{"workspace": workspace, "store": store}, ft)
}

// UpdateFeatureType changes the fields of a feature type present in
// ft.
func (c *Client) UpdateFeatureType(ctx context.Context, workspace, store, name string, ft *encoder.FeatureType) error {
	return c.update(ctx, "featureType", name, featureTypePath,
		vars{"workspace": workspace, "store": store, "name": name}, ft)
}

// DeleteFeatureType deletes a feature type.  Unless recurse is set,
// its layer must be deleted first.
func (c *Client) DeleteFeatureType(ctx context.Context, workspace, store, name string, recurse bool) error {
	return c.remove(ctx, "featureType", name, featureTypePath+"{?recurse}",
		recurseVars(vars{"workspace": workspace, "store": store, "name": name}, recurse))
}

// Coverages returns the names of the coverages published from a
// coverage store.
func (c *Client) Coverages(ctx context.Context, workspace, store string) ([]string, error) {
	return c.list(ctx, "coverage", coveragesPath,
		vars{"workspace": workspace, "store": store})
}

// Coverage fetches one coverage.
func (c *Client) Coverage(ctx context.Context, workspace, store, name string) (*decoder.Coverage, error) {
	return get(ctx, c, "coverage", name, coveragePath,
		vars{"workspace": workspace, "store": store, "name": name}, decoder.BuildCoverage)
}

// PublishCoverage creates a coverage from a coverage store.
// GeoServer creates a layer of the same name.
func (c *Client) PublishCoverage(ctx context.Context, workspace, store string, cov *encoder.Coverage) error {
	return c.create(ctx, "coverage", coveragesPath,
		vars{"workspace": workspace, "store": store}, cov)
}

// UpdateCoverage changes the fields of a coverage present in cov.
func (c *Client) UpdateCoverage(ctx context.Context, workspace, store, name string, cov *encoder.Coverage) error {
	return c.update(ctx, "coverage", name, coveragePath,
		vars{"workspace": workspace, "store": store, "name": name}, cov)
}

// DeleteCoverage deletes a coverage.
func (c *Client) DeleteCoverage(ctx context.Context, workspace, store, name string, recurse bool) error {
	return c.remove(ctx, "coverage", name, coveragePath+"{?recurse}",
		recurseVars(vars{"workspace": workspace, "store": store, "name": name}, recurse))
}
