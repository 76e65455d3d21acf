// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import "strconv"

// Shapefile connection parameter keys.
const (
	ShapefileURL             = "url"
	ShapefileCharset         = "charset"
	ShapefileNamespace       = "namespace"
	ShapefileSpatialIndex    = "create spatial index"
	ShapefileMemoryMapped    = "memory mapped buffer"
	ShapefileCacheMemoryMaps = "cache and reuse memory maps"
	ShapefileFileType        = "filetype"
)

// ShapefileDataStore is a DataStore reading one shapefile, or a
// directory of them.
type ShapefileDataStore struct {
	DataStore
}

// NewShapefileDataStore creates a store for the single shapefile at
// url, e.g. "file:data/roads.shp".
func NewShapefileDataStore(name, url string) *ShapefileDataStore {
	ds := &ShapefileDataStore{*NewDataStore(name, "Shapefile")}
	ds.SetConnectionParameter(ShapefileURL, url)
	return ds
}

// NewDirectoryOfShapefilesDataStore creates a store publishing every
// shapefile in the directory at url.
func NewDirectoryOfShapefilesDataStore(name, url string) *ShapefileDataStore {
	ds := &ShapefileDataStore{*NewDataStore(name, "Directory of spatial files (shapefiles)")}
	ds.SetConnectionParameter(ShapefileURL, url)
	ds.SetConnectionParameter(ShapefileFileType, "shapefile")
	return ds
}

// SetURL sets the shapefile or directory location.
func (ds *ShapefileDataStore) SetURL(url string) {
	ds.SetConnectionParameter(ShapefileURL, url)
}

// SetCharset sets the character set of the .dbf file.
func (ds *ShapefileDataStore) SetCharset(charset string) {
	ds.SetConnectionParameter(ShapefileCharset, charset)
}

// SetNamespace sets the namespace URI of published feature types.
func (ds *ShapefileDataStore) SetNamespace(uri string) {
	ds.SetConnectionParameter(ShapefileNamespace, uri)
}

// SetCreateSpatialIndex creates a .qix index if one is missing.
func (ds *ShapefileDataStore) SetCreateSpatialIndex(create bool) {
	ds.SetConnectionParameter(ShapefileSpatialIndex, strconv.FormatBool(create))
}

// SetMemoryMapped sets whether files are read through memory mapping,
// and whether mapped buffers are cached between reads.
func (ds *ShapefileDataStore) SetMemoryMapped(mapped, cache bool) {
	ds.SetConnectionParameter(ShapefileMemoryMapped, strconv.FormatBool(mapped))
	ds.SetConnectionParameter(ShapefileCacheMemoryMaps, strconv.FormatBool(cache))
}
