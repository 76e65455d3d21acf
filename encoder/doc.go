// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package encoder builds the XML request bodies of the GeoServer REST
// configuration API.
//
// Each encoder wraps a document rooted at the element GeoServer
// expects, such as <featureType> or <layer>, and offers setters for
// its fields.  Only fields that are set appear in the document, so an
// encoder doubles as a partial update: PUT a Layer carrying only
// <enabled> to change just that.
//
//	ft := encoder.NewFeatureTypeNamed("roads", "roads", "Roads", "EPSG:4326")
//	ft.SetProjectionPolicy(geoserver.ForceDeclared)
//	ft.AddKeyword("transport")
//	body := ft.String()
//
// List-valued children with a natural key (attributes by name,
// metadata entries by key, authority URLs by name) have Set methods
// that replace any entry with the same key; the new entry goes at the
// end of the list.  Encoders never fail.  The one exception is
// PostGISDataStore.SetFromURL, which reports unparseable URLs.
package encoder
