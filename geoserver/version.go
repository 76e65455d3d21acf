// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoserver

import (
	"regexp"
)

// Version is a coarse classification of a GeoServer release.  Versions
// are ordered, so a client can ask whether a server is at least some
// release.
type Version int

const (
	// VersionUnrecognized is any version string that does not look
	// like a GeoServer 2.x release, including an empty string.
	VersionUnrecognized Version = iota

	// V22 is GeoServer 2.2.x.
	V22

	// V23 is GeoServer 2.3.x.
	V23

	// V24 is GeoServer 2.4.x.
	V24

	// V25 is GeoServer 2.5.x.
	V25

	// V26 is GeoServer 2.6.x.
	V26

	// VersionAbove is any 2.x release newer than every version
	// listed here.  Releases older than 2.2 are unrecognized.
	VersionAbove
)

// versionPatterns is checked in order; the first matching pattern
// wins.  The catch-all for VersionAbove must come after every
// specific minor version.
var versionPatterns = []struct {
	Version Version
	Pattern *regexp.Regexp
}{
	{V22, regexp.MustCompile(`^2\.2([^0-9].*)?$`)},
	{V23, regexp.MustCompile(`^2\.3([^0-9].*)?$`)},
	{V24, regexp.MustCompile(`^2\.4([^0-9].*)?$`)},
	{V25, regexp.MustCompile(`^2\.5([^0-9].*)?$`)},
	{V26, regexp.MustCompile(`^2\.6([^0-9].*)?$`)},
	{VersionAbove, regexp.MustCompile(`^2\.([7-9]|[1-9][0-9]+)([^0-9].*)?$`)},
}

// ClassifyVersion maps a free-form version string, as reported by
// /rest/about/version, to a Version.  Suffixes such as "-SNAPSHOT" or
// ".1" do not affect the result.
func ClassifyVersion(s string) Version {
	for _, p := range versionPatterns {
		if p.Pattern.MatchString(s) {
			return p.Version
		}
	}
	return VersionUnrecognized
}

// Compare returns -1, 0, or 1 as v is older than, the same as, or
// newer than other.
func (v Version) Compare(other Version) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	default:
		return 0
	}
}

// AtLeast returns true if v is a recognized version no older than
// other.
func (v Version) AtLeast(other Version) bool {
	return v != VersionUnrecognized && v >= other
}
