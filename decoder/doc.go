// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package decoder reads the XML response documents of the GeoServer
// REST configuration API.
//
// Every decoder has a Build function taking response text.  Build
// returns nil, not an error, if the text is not well-formed XML, so
// callers must check:
//
//	ft := decoder.BuildFeatureType(body)
//	if ft == nil {
//		return geoserver.ErrMalformedResponse{Kind: "featureType"}
//	}
//	fmt.Println(ft.Title())
//
// Named getters return the trimmed text of a field, or the empty
// string if it is absent; the embedded View's Get reports absence
// explicitly.  Build does not check the root element name, so a
// decoder reads whatever fields of its schema the document has.
package decoder
