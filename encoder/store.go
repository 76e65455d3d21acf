// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Store holds the fields common to data stores, coverage stores, and
// WMS stores.
type Store struct {
	xmlnode.Record[geoserver.StoreField]
}

func newStore(tag, name, storeType string) Store {
	s := Store{xmlnode.NewRecord[geoserver.StoreField](tag)}
	s.Set(geoserver.StoreName, name)
	if storeType != "" {
		s.Set(geoserver.StoreType, storeType)
	}
	return s
}

// SetDescription sets the store description.
func (s Store) SetDescription(description string) {
	s.Set(geoserver.StoreDescription, description)
}

// SetEnabled turns the store on or off.
func (s Store) SetEnabled(enabled bool) {
	s.SetBool(geoserver.StoreEnabled, enabled)
}

// SetWorkspace names the workspace holding the store.  GeoServer
// takes this from the request URL, so it is rarely needed.
func (s Store) SetWorkspace(workspace string) {
	s.Set(geoserver.StoreWorkspace, workspace)
}

// DataStore encodes a <dataStore>, a source of vector data configured
// by a map of connection parameters.
type DataStore struct {
	Store
}

// NewDataStore creates a data store of a given GeoTools type, such as
// "PostGIS" or "Shapefile".  storeType may be empty, in which case
// GeoServer infers the type from the connection parameters.
func NewDataStore(name, storeType string) *DataStore {
	return &DataStore{newStore("dataStore", name, storeType)}
}

// SetConnectionParameter sets one connection parameter, replacing any
// existing value.
func (ds *DataStore) SetConnectionParameter(key, value string) {
	setEntry(ds.Node(), "connectionParameters", key, value)
}

// ConnectionParameter returns the value of a connection parameter.
func (ds *DataStore) ConnectionParameter(key string) (string, bool) {
	params := ds.Node().Child("connectionParameters")
	if params == nil {
		return "", false
	}
	entry := params.Find(metadataEntry(key))
	if entry == nil {
		return "", false
	}
	return entry.Text(), true
}

// DelConnectionParameter removes a connection parameter.
func (ds *DataStore) DelConnectionParameter(key string) bool {
	return delItems(ds.Node(), "connectionParameters", metadataEntry(key))
}

// CoverageStore encodes a <coverageStore>, a source of raster data
// located by a URL.
type CoverageStore struct {
	Store
}

// NewCoverageStore creates a coverage store.  storeType is a format
// name such as "GeoTIFF" or "ImageMosaic", and url locates the data,
// e.g. "file:data/sfdem.tif".
func NewCoverageStore(name, storeType, url string) *CoverageStore {
	cs := &CoverageStore{newStore("coverageStore", name, storeType)}
	if url != "" {
		cs.SetURL(url)
	}
	return cs
}

// SetURL sets the location of the raster data.
func (cs *CoverageStore) SetURL(url string) {
	cs.Set(geoserver.StoreURL, url)
}

// WMSStore encodes a <wmsStore>, a cascaded remote WMS server.
type WMSStore struct {
	Store
}

// NewWMSStore creates a WMS store pointing at a remote capabilities
// document.
func NewWMSStore(name, capabilitiesURL string) *WMSStore {
	s := &WMSStore{newStore("wmsStore", name, "WMS")}
	s.Set(geoserver.StoreCapabilitiesURL, capabilitiesURL)
	return s
}

// SetCredentials sets the user name and password GeoServer presents
// to the remote server.
func (s *WMSStore) SetCredentials(user, password string) {
	s.Set(geoserver.StoreUser, user)
	s.Set(geoserver.StorePassword, password)
}

// SetMaxConnections limits concurrent connections to the remote
// server.
func (s *WMSStore) SetMaxConnections(n int) {
	s.SetInt(geoserver.StoreMaxConnections, n)
}

// SetTimeouts sets the read and connect timeouts, in seconds.
func (s *WMSStore) SetTimeouts(read, connect int) {
	s.SetInt(geoserver.StoreReadTimeout, read)
	s.SetInt(geoserver.StoreConnectTimeout, connect)
}
