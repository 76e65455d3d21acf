// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file contains helpers shared by the catalog operations.

import (
	"context"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/encoder"
	"github.com/diffeo/go-geoserver/geoserver"
)

// vars is shorthand for URI template variables.
type vars = map[string]interface{}

// scoped picks the workspace-local template if workspace is
// non-empty, or the global one otherwise.
func scoped(workspace, global, local string) string {
	if workspace == "" {
		return global
	}
	return local
}

// recurseVars adds the "recurse" query parameter if set.
func recurseVars(v vars, recurse bool) vars {
	if recurse {
		v["recurse"] = "true"
	}
	return v
}

// nameOf returns the <name> of an encoded object.
func nameOf(e encoder.Encoder) string {
	name, _ := e.Node().Get("name")
	return name
}

// list fetches a collection document and returns its item names.
func (c *Client) list(ctx context.Context, kind, template string, v vars) ([]string, error) {
	body, err := c.GetFrom(ctx, template, v)
	if err != nil {
		return nil, translateError(err, kind, "")
	}
	names := decoder.BuildNameList(body)
	if names == nil {
		return nil, geoserver.ErrMalformedResponse{Kind: kind + " list"}
	}
	return names.Names(), nil
}

// get fetches one catalog object and decodes it with build.
func get[T any](ctx context.Context, c *Client, kind, name, template string, v vars, build func(string) *T) (*T, error) {
	body, err := c.GetFrom(ctx, template, v)
	if err != nil {
		return nil, translateError(err, kind, name)
	}
	result := build(body)
	if result == nil {
		return nil, geoserver.ErrMalformedResponse{Kind: kind}
	}
	return result, nil
}

// create POSTs an encoded object to a collection.
func (c *Client) create(ctx context.Context, kind, template string, v vars, e encoder.Encoder) error {
	err := c.PostTo(ctx, template, v, xmlMediaType, e.String())
	return translateError(err, kind, nameOf(e))
}

// update PUTs an encoded, possibly partial, object.
func (c *Client) update(ctx context.Context, kind, name, template string, v vars, e encoder.Encoder) error {
	err := c.PutTo(ctx, template, v, xmlMediaType, e.String())
	return translateError(err, kind, name)
}

// remove DELETEs a catalog object.
func (c *Client) remove(ctx context.Context, kind, name, template string, v vars) error {
	return translateError(c.DeleteAt(ctx, template, v), kind, name)
}
