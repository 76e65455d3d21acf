// Copyright 2015 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient talks to the GeoServer REST configuration API.
//
// Call New() with the base URL of a GeoServer instance; for instance,
//
//	c, err := restclient.New("http://localhost:8080/geoserver/")
//	c.Header.Set("Authorization", "Basic "+credentials)
//	ws, err := c.Workspaces(ctx)
//
// Request bodies are built with the encoder package and responses are
// read with the decoder package.  The client adds no authentication,
// retries, or caching of its own; set HTTPClient and Header for
// those.
package restclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/geoserver"
)

// Client is a GeoServer REST client.  Its exported fields may be
// changed before the first request; after that the client may be
// used from multiple goroutines.
type Client struct {
	resource

	// HTTPClient performs requests.  If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client

	// Header is added to every request.
	Header http.Header

	// Logger receives a Debug entry for each request and a Warn
	// entry for each failure.  If nil, the standard logrus logger
	// is used.
	Logger *logrus.Entry

	// Clock times requests and paces WaitForSeed.  If nil, the
	// system clock is used.
	Clock clock.Clock

	// PollInterval is how often WaitForSeed checks seeding
	// status.
	PollInterval time.Duration
}

// DefaultPollInterval is the initial PollInterval of a new Client.
const DefaultPollInterval = 5 * time.Second

// New creates a client for the GeoServer at baseURL, which should
// name the web application root (usually ending in "/geoserver").
// It does not contact the server.
func New(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid GeoServer URL %q", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &Client{
		resource:     resource{URL: u},
		Header:       make(http.Header),
		PollInterval: DefaultPollInterval,
	}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func (c *Client) logger() *logrus.Entry {
	if c.Logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return c.Logger
}

func (c *Client) pollInterval() time.Duration {
	if c.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return c.PollInterval
}

func (c *Client) clock() clock.Clock {
	if c.Clock == nil {
		return clock.New()
	}
	return c.Clock
}

// About fetches the server's component version report.
func (c *Client) About(ctx context.Context) (*decoder.About, error) {
	body, err := c.GetFrom(ctx, "rest/about/version", nil)
	if err != nil {
		return nil, err
	}
	about := decoder.BuildAbout(body)
	if about == nil {
		return nil, geoserver.ErrMalformedResponse{Kind: "version"}
	}
	return about, nil
}

// Version fetches and classifies the GeoServer version.
func (c *Client) Version(ctx context.Context) (geoserver.Version, error) {
	about, err := c.About(ctx)
	if err != nil {
		return geoserver.VersionUnrecognized, err
	}
	return about.Version(), nil
}

// Reload rereads the catalog and configuration from disk.
func (c *Client) Reload(ctx context.Context) error {
	return c.PostTo(ctx, "rest/reload", nil, xmlMediaType, "")
}

// Reset clears the server's resource caches.
func (c *Client) Reset(ctx context.Context) error {
	return c.PostTo(ctx, "rest/reset", nil, xmlMediaType, "")
}
