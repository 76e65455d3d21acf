// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoservertest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

const serviceVar = "{service:wms|wfs|wcs|wmts}"

func (s *Server) populateServices(r *mux.Router) {
	global := "/services/" + serviceVar + "/settings"
	local := "/services/" + serviceVar + "/workspaces/{workspace}/settings"
	r.Path(global).Methods("GET").Handler(s.handle(s.getSettings))
	r.Path(global).Methods("PUT").Handler(s.handle(s.putSettings))
	r.Path(local).Methods("GET").Handler(s.handle(s.getSettings))
	r.Path(local).Methods("PUT").Handler(s.handle(s.putSettings))
	r.Path(local).Methods("DELETE").Handler(s.handle(s.deleteSettings))
}

// settingsPath returns the collection holding the settings a request
// addresses: the global ones, or one workspace's.
func (s *Server) settingsPath(vars map[string]string) (string, error) {
	workspace, local := vars["workspace"]
	if !local {
		return "services", nil
	}
	if s.catalog.lookup(workspaceKind.path).get(workspace) == nil {
		return "", geoserver.ErrNoSuchResource{Kind: "workspace", Name: workspace}
	}
	return "workspaces/" + workspace + "/services", nil
}

func (s *Server) getSettings(req *http.Request, vars map[string]string) (*response, error) {
	path, err := s.settingsPath(vars)
	if err != nil {
		return nil, err
	}
	settings := s.catalog.lookup(path).get(vars["service"])
	if settings == nil {
		return nil, geoserver.ErrNoSuchResource{Kind: "service", Name: vars["service"]}
	}
	return xmlResponse(settings), nil
}

// putSettings updates settings, creating workspace settings from
// scratch if the workspace had none.
func (s *Server) putSettings(req *http.Request, vars map[string]string) (*response, error) {
	path, err := s.settingsPath(vars)
	if err != nil {
		return nil, err
	}
	doc, err := readDocument(req)
	if err != nil {
		return nil, err
	}
	service := vars["service"]
	if doc.Tag() != service {
		return nil, errBadRequest{Text: "expected a <" + service + "> document, got <" + doc.Tag() + ">"}
	}
	c := s.catalog.collection(path)
	settings := c.get(service)
	if settings == nil {
		settings = xmlnode.New(service)
		if workspace, local := vars["workspace"]; local {
			settings.Set(string(geoserver.ServiceWorkspace), workspace)
		}
		c.add(service, settings)
	}
	merge(settings, doc)
	return ok(), nil
}

func (s *Server) deleteSettings(req *http.Request, vars map[string]string) (*response, error) {
	path, err := s.settingsPath(vars)
	if err != nil {
		return nil, err
	}
	if !s.catalog.lookup(path).remove(vars["service"]) {
		return nil, geoserver.ErrNoSuchResource{Kind: "service", Name: vars["service"]}
	}
	return ok(), nil
}
