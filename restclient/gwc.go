// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file talks to the GeoWebCache REST API embedded in GeoServer.

import (
	"context"
	"net/url"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/encoder"
	"github.com/diffeo/go-geoserver/geoserver"
)

// Seed starts seeding, reseeding, or truncating the tile cache of the
// layer named in r.  It returns once GeoWebCache has queued the
// tasks; use SeedStatus or WaitForSeed to follow them.
func (c *Client) Seed(ctx context.Context, r *encoder.SeedRequest) error {
	layer := nameOf(r)
	err := c.PostTo(ctx, "gwc/rest/seed/{layer}.xml", vars{"layer": layer}, xmlMediaType, r.String())
	return translateError(err, "layer", layer)
}

// SeedStatus returns the seeding tasks of one layer.
func (c *Client) SeedStatus(ctx context.Context, layer string) ([]geoserver.SeedTask, error) {
	return c.seedStatus(ctx, "gwc/rest/seed/{layer}.json", layer)
}

// AllSeedStatus returns the seeding tasks of every layer.
func (c *Client) AllSeedStatus(ctx context.Context) ([]geoserver.SeedTask, error) {
	return c.seedStatus(ctx, "gwc/rest/seed.json", "")
}

func (c *Client) seedStatus(ctx context.Context, template, layer string) ([]geoserver.SeedTask, error) {
	body, err := c.GetJSONFrom(ctx, template, vars{"layer": layer})
	if err != nil {
		return nil, translateError(err, "layer", layer)
	}
	tasks := decoder.BuildSeedStatus(body)
	if tasks == nil {
		return nil, geoserver.ErrMalformedResponse{Kind: "seed status"}
	}
	return tasks, nil
}

// TerminateSeed stops the selected tasks of one layer, or of every
// layer if layer is empty.
func (c *Client) TerminateSeed(ctx context.Context, layer string, kind geoserver.SeedKillType) error {
	form := url.Values{"kill_all": {string(kind)}}
	err := c.PostTo(ctx, scoped(layer, "gwc/rest/seed", "gwc/rest/seed/{layer}"),
		vars{"layer": layer}, formMediaType, form.Encode())
	return translateError(err, "layer", layer)
}

// activeSeedTasks counts the tasks that are still pending or running.
func activeSeedTasks(tasks []geoserver.SeedTask) int {
	active := 0
	for _, task := range tasks {
		if task.Status == geoserver.SeedPending || task.Status == geoserver.SeedRunning {
			active++
		}
	}
	return active
}

// WaitForSeed polls the seeding status of layer every PollInterval
// (DefaultPollInterval if PollInterval is not positive) until it has no pending or running tasks, or until ctx is done.
// It returns the last status seen.
func (c *Client) WaitForSeed(ctx context.Context, layer string) ([]geoserver.SeedTask, error) {
	log := c.logger().WithField("layer", layer)
	for {
		tasks, err := c.SeedStatus(ctx, layer)
		if err != nil {
			return nil, err
		}
		active := activeSeedTasks(tasks)
		if active == 0 {
			return tasks, nil
		}
		log.WithField("active", active).Debug("waiting for seeding")
		select {
		case <-ctx.Done():
			return tasks, ctx.Err()
		case <-c.clock().After(c.pollInterval()):
		}
	}
}

