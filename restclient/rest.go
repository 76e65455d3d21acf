// Copyright 2015 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jtacoma/uritemplates"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/diffeo/go-geoserver/geoserver"
)

// Media types sent in Content-Type and Accept headers.
const (
	xmlMediaType  = "application/xml"
	jsonMediaType = "application/json"
	sldMediaType  = "application/vnd.ogc.sld+xml"
	formMediaType = "application/x-www-form-urlencoded"
)

// resource is any object that has a URL.
type resource struct {
	URL *url.URL
}

// Template expands a URI template with vars and returns the result
// relative to the resource's URL.  Values are percent-encoded by the
// expansion, so names containing "/" or ":" are safe.
func (r *resource) Template(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}
	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return nil, err
	}
	return r.URL.Parse(expanded)
}

// request describes one exchange with the server.
type request struct {
	Method      string
	URL         *url.URL
	ContentType string
	Body        string
	Accept      string
}

// do performs some HTTP action and returns the response body.  Any
// non-2xx response produces an ErrorHTTP.
func (c *Client) do(ctx context.Context, r request) (body string, err error) {
	var in io.Reader
	if r.ContentType != "" {
		in = strings.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), in)
	if err != nil {
		return "", err
	}
	for key, values := range c.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}
	if r.Accept != "" {
		req.Header.Set("Accept", r.Accept)
	}
	requestID := uuid.NewV4().String()
	req.Header.Set("X-Request-Id", requestID)

	log := c.logger().WithFields(logrus.Fields{
		"method":     r.Method,
		"url":        r.URL.String(),
		"request_id": requestID,
	})

	start := c.clock().Now()
	resp, err := c.httpClient().Do(req)
	elapsed := c.clock().Now().Sub(start)
	if err != nil {
		requestCounter.WithLabelValues(r.Method, "error").Inc()
		log.WithFields(logrus.Fields{
			"err":     err,
			"elapsed": elapsed,
		}).Warn("GeoServer request failed")
		return "", err
	}
	requestCounter.WithLabelValues(r.Method, strconv.Itoa(resp.StatusCode)).Inc()
	requestDuration.WithLabelValues(r.Method).Observe(elapsed.Seconds())

	// If the response included a body, clean up afterwards
	if resp.Body != nil {
		defer func() {
			err = firstError(err, resp.Body.Close())
		}()
	}

	log = log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": elapsed,
	})
	if err = checkHTTPStatus(resp); err != nil {
		log.WithField("err", err).Warn("GeoServer request unsuccessful")
		return "", err
	}
	log.Debug("GeoServer request")

	if resp.Body != nil {
		var bytes []byte
		bytes, err = ioutil.ReadAll(resp.Body)
		body = string(bytes)
	}
	return body, err
}

// GetFrom retrieves XML from a URL built from template and vars.
func (c *Client) GetFrom(ctx context.Context, template string, vars map[string]interface{}) (string, error) {
	return c.fetch(ctx, template, vars, xmlMediaType)
}

// GetJSONFrom retrieves JSON from a URL built from template and vars.
func (c *Client) GetJSONFrom(ctx context.Context, template string, vars map[string]interface{}) (string, error) {
	return c.fetch(ctx, template, vars, jsonMediaType)
}

func (c *Client) fetch(ctx context.Context, template string, vars map[string]interface{}, accept string) (string, error) {
	url, err := c.Template(template, vars)
	if err != nil {
		return "", err
	}
	return c.do(ctx, request{Method: "GET", URL: url, Accept: accept})
}

// PutTo sends body to a URL built from template and vars with a PUT
// request.
func (c *Client) PutTo(ctx context.Context, template string, vars map[string]interface{}, contentType, body string) error {
	return c.send(ctx, "PUT", template, vars, contentType, body)
}

// PostTo sends body to a URL built from template and vars with a POST
// request.
func (c *Client) PostTo(ctx context.Context, template string, vars map[string]interface{}, contentType, body string) error {
	return c.send(ctx, "POST", template, vars, contentType, body)
}

func (c *Client) send(ctx context.Context, method, template string, vars map[string]interface{}, contentType, body string) error {
	url, err := c.Template(template, vars)
	if err == nil {
		_, err = c.do(ctx, request{Method: method, URL: url, ContentType: contentType, Body: body})
	}
	return err
}

// DeleteAt deletes the resource at a URL built from template and
// vars.
func (c *Client) DeleteAt(ctx context.Context, template string, vars map[string]interface{}) error {
	url, err := c.Template(template, vars)
	if err == nil {
		_, err = c.do(ctx, request{Method: "DELETE", URL: url})
	}
	return err
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	if e.Body == "" {
		return e.Response.Status
	}
	return e.Response.Status + ": " + e.Body
}

// HTTPStatus returns the status code of the failing response.
func (e ErrorHTTP) HTTPStatus() int {
	return e.Response.StatusCode
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.
func checkHTTPStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var body []byte
	var err error
	if resp.Body != nil {
		body, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
	}
	return ErrorHTTP{Response: resp, Body: strings.TrimSpace(string(body))}
}

// translateError converts well-known HTTP failures on a named object
// to the matching geoserver error.  GeoServer reports conflicts as
// 409 on current versions and as a 500 mentioning "already exists"
// on older ones.
func translateError(err error, kind, name string) error {
	httpErr, ok := err.(ErrorHTTP)
	if !ok {
		return err
	}
	switch {
	case httpErr.Response.StatusCode == http.StatusNotFound:
		return geoserver.ErrNoSuchResource{Kind: kind, Name: name}
	case httpErr.Response.StatusCode == http.StatusConflict,
		strings.Contains(httpErr.Body, "already exists"):
		return geoserver.ErrAlreadyExists{Kind: kind, Name: name}
	}
	return err
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
