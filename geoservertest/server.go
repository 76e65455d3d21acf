// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package geoservertest provides an in-memory imitation of the
// GeoServer REST configuration API, for testing clients without a
// running GeoServer.
//
//	srv := geoservertest.NewServer()
//	ts := httptest.NewServer(srv)
//	defer ts.Close()
//	c, err := restclient.New(ts.URL + "/geoserver")
//
// The server keeps the documents it is sent, fills in the references
// GeoServer would add, and creates a layer for each published feature
// type or coverage.  It does not validate documents against GeoServer's
// schema, and it has no data behind its stores.
//
// GeoWebCache seeding tasks advance one step each time their status is
// requested, and are reported once more after they finish.
package geoservertest

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"

	"github.com/diffeo/go-geoserver/encoder"
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Root is the path the server's web application is mounted at.
const Root = "/geoserver"

// Server is a fake GeoServer.  Its exported fields may be changed
// before it serves its first request.
type Server struct {
	// Version is the GeoServer version reported by
	// /rest/about/version.
	Version string

	// SeedTiles is the number of tiles each seeding task
	// generates.
	SeedTiles int64

	// SeedStep is the number of tiles a running task generates
	// between status requests.
	SeedStep int64

	// Logger receives a Debug entry for each request.
	Logger *logrus.Entry

	handler http.Handler

	mu        sync.Mutex
	catalog   catalog
	resources map[string]resourceRef
	sld       map[string]string
	seeds     map[string][]*seedTask
	nextTask  int64
	reloads   int
	resets    int
}

// resourceRef locates the feature type or coverage behind a layer.
type resourceRef struct {
	path string
	name string
}

// NewServer creates a fake GeoServer with an empty catalog and
// default settings for every OGC service.
func NewServer() *Server {
	s := &Server{
		Version:   "2.6.1",
		SeedTiles: 300,
		SeedStep:  100,
		Logger:    logrus.NewEntry(logrus.StandardLogger()),
		catalog:   make(catalog),
		resources: make(map[string]resourceRef),
		sld:       make(map[string]string),
		seeds:     make(map[string][]*seedTask),
	}
	services := s.catalog.collection("services")
	for _, kind := range []geoserver.ServiceKind{geoserver.WMS, geoserver.WFS, geoserver.WCS, geoserver.WMTS} {
		settings := encoder.NewServiceSettings(kind)
		settings.SetEnabled(true)
		settings.Set(geoserver.ServiceName, string(kind))
		services.add(string(kind), settings.Node())
	}

	r := mux.NewRouter()
	s.populateRouter(r.PathPrefix(Root).Subrouter())

	recovery := negroni.NewRecovery()
	recovery.PrintStack = false
	recovery.Logger = s.Logger
	n := negroni.New(recovery)
	n.UseHandler(r)
	s.handler = n
	return s
}

// ServeHTTP handles one REST request.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.handler.ServeHTTP(w, req)
}

// Reloads returns the number of catalog reloads requested.
func (s *Server) Reloads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloads
}

// Resets returns the number of cache resets requested.
func (s *Server) Resets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resets
}

// SLD returns the style body uploaded for a style.  workspace is
// empty for global styles.
func (s *Server) SLD(workspace, style string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.sld[sldKey(workspace, style)]
	return body, ok
}

func sldKey(workspace, style string) string {
	if workspace == "" {
		return style
	}
	return workspace + ":" + style
}

// response is the outcome of a handler.
type response struct {
	status      int
	contentType string
	body        string
}

func xmlResponse(n *xmlnode.Node) *response {
	return &response{status: http.StatusOK, contentType: "application/xml", body: n.String()}
}

func created(name string) *response {
	return &response{status: http.StatusCreated, contentType: "text/plain", body: name}
}

func ok() *response {
	return &response{status: http.StatusOK}
}

// handlerFunc serves one request.  Handlers run with the server lock
// held.
type handlerFunc func(req *http.Request, vars map[string]string) (*response, error)

func (s *Server) handle(h handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		resp, err := func() (*response, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return h(req, mux.Vars(req))
		}()
		if err != nil {
			status := http.StatusInternalServerError
			if errS, hasStatus := err.(geoserver.ErrorStatus); hasStatus {
				status = errS.HTTPStatus()
			}
			resp = &response{status: status, contentType: "text/plain", body: err.Error()}
		}
		s.Logger.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
			"status": resp.status,
		}).Debug("fake GeoServer request")
		if resp.contentType != "" {
			w.Header().Set("Content-Type", resp.contentType)
		}
		w.WriteHeader(resp.status)
		_, _ = io.WriteString(w, resp.body)
	})
}

// readDocument parses the XML request body.
func readDocument(req *http.Request) (*xmlnode.Node, error) {
	body, err := ioutil.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	doc := xmlnode.Parse(string(body))
	if doc == nil {
		return nil, errBadRequest{Text: "request body is not an XML document"}
	}
	return doc, nil
}

// baseURL is the absolute URL of the REST API as seen by req's
// client.
func baseURL(req *http.Request) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s/rest", scheme, req.Host, Root)
}

func (s *Server) populateRouter(r *mux.Router) {
	rest := r.PathPrefix("/rest").Subrouter()
	rest.Path("/about/version").Methods("GET").Handler(s.handle(s.getAbout))
	rest.Path("/reload").Methods("POST", "PUT").Handler(s.handle(s.postReload))
	rest.Path("/reset").Methods("POST", "PUT").Handler(s.handle(s.postReset))
	s.populateCatalog(rest)
	s.populateServices(rest)
	s.populateGWC(r.PathPrefix("/gwc/rest").Subrouter())
}

func (s *Server) getAbout(req *http.Request, vars map[string]string) (*response, error) {
	about := encoder.NewAbout()
	about.AddResource("GeoServer", s.Version, "4e1b3a5c2f", "01-Jan-2017 00:00")
	about.AddResource("GeoTools", "14.1", "", "")
	return xmlResponse(about.Node()), nil
}

func (s *Server) postReload(req *http.Request, vars map[string]string) (*response, error) {
	s.reloads++
	return ok(), nil
}

func (s *Server) postReset(req *http.Request, vars map[string]string) (*response, error) {
	s.resets++
	return ok(), nil
}
