// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package geoserver defines the vocabulary shared by the GeoServer
// encoder, decoder, and restclient packages: the field schema of every
// catalog resource, the enumerations GeoServer and GeoWebCache use on
// the wire, and the errors the REST client returns.
//
// Field Schemas
//
// Each resource kind has its own string type listing the child
// elements it recognizes.  A field value is the path of the child
// below the resource's root element, so nested values such as a
// coverage dimension's range are addressed as "range/min":
//
//     <coverageDimension>
//         <name>GRAY_INDEX</name>
//         <range><min>0</min><max>255</max></range>
//     </coverageDimension>
//
// Versions
//
// ClassifyVersion sorts a server's reported version string into one of
// a small set of ordered tiers, so callers can write checks such as
//
//     if geoserver.ClassifyVersion(v).AtLeast(geoserver.V25) { ... }
//
// GeoWebCache
//
// Seeding status is reported by GeoWebCache as lists of five integers;
// NewSeedTask decodes one such list.
package geoserver
