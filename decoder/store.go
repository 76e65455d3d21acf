// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Store reads the fields shared by every kind of store.
type Store struct {
	xmlnode.View[geoserver.StoreField]
}

func wrapStore(n *xmlnode.Node) Store {
	return Store{xmlnode.ViewOf[geoserver.StoreField](n)}
}

// Name returns the store name.
func (s Store) Name() string {
	return s.Text(geoserver.StoreName)
}

// Description returns the store description.
func (s Store) Description() string {
	return s.Text(geoserver.StoreDescription)
}

// Type returns the store type, such as "PostGIS" or "GeoTIFF".
func (s Store) Type() string {
	return s.Text(geoserver.StoreType)
}

// Enabled reports whether the store is enabled.
func (s Store) Enabled() bool {
	return s.Bool(geoserver.StoreEnabled)
}

// Workspace returns the name of the store's workspace.
func (s Store) Workspace() string {
	return s.Text(geoserver.StoreWorkspace)
}

// DataStore reads a <dataStore>.
type DataStore struct {
	Store
}

// BuildDataStore parses a data store document.
func BuildDataStore(text string) *DataStore {
	return build(text, func(n *xmlnode.Node) *DataStore {
		return &DataStore{wrapStore(n)}
	})
}

// ConnectionParameters returns every connection parameter.  The map
// is never nil.
func (ds *DataStore) ConnectionParameters() map[string]string {
	return entries(ds.Node(), "connectionParameters")
}

// ConnectionParameter returns one connection parameter.
func (ds *DataStore) ConnectionParameter(key string) (string, bool) {
	e := entry(ds.Node(), "connectionParameters", key)
	if e == nil {
		return "", false
	}
	return e.Text(), true
}

// CoverageStore reads a <coverageStore>.
type CoverageStore struct {
	Store
}

// BuildCoverageStore parses a coverage store document.
func BuildCoverageStore(text string) *CoverageStore {
	return build(text, func(n *xmlnode.Node) *CoverageStore {
		return &CoverageStore{wrapStore(n)}
	})
}

// URL returns the location of the raster data.
func (cs *CoverageStore) URL() string {
	return cs.Text(geoserver.StoreURL)
}

// WMSStore reads a <wmsStore>.
type WMSStore struct {
	Store
}

// BuildWMSStore parses a WMS store document.
func BuildWMSStore(text string) *WMSStore {
	return build(text, func(n *xmlnode.Node) *WMSStore {
		return &WMSStore{wrapStore(n)}
	})
}

// CapabilitiesURL returns the remote capabilities document URL.
func (s *WMSStore) CapabilitiesURL() string {
	return s.Text(geoserver.StoreCapabilitiesURL)
}

// User returns the user name presented to the remote server.
func (s *WMSStore) User() string {
	return s.Text(geoserver.StoreUser)
}

// MaxConnections returns the remote connection limit.
func (s *WMSStore) MaxConnections() (int, bool) {
	return s.Int(geoserver.StoreMaxConnections)
}
