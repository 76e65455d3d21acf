// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Style encodes the catalog entry of a <style>.  The style body (SLD)
// is uploaded separately.
type Style struct {
	xmlnode.Record[geoserver.StyleField]
}

// NewStyle creates a style entry.  filename may be empty, in which
// case GeoServer derives it from the name.
func NewStyle(name, filename string) *Style {
	s := &Style{xmlnode.NewRecord[geoserver.StyleField]("style")}
	s.Set(geoserver.StyleName, name)
	if filename != "" {
		s.Set(geoserver.StyleFilename, filename)
	}
	return s
}

// SetFormat sets the style language, such as "sld" or "css".
func (s *Style) SetFormat(format string) {
	s.Set(geoserver.StyleFormat, format)
}

// SetLanguageVersion sets the version of the style language.
func (s *Style) SetLanguageVersion(version string) {
	s.Set(geoserver.StyleLanguageVersion, version)
}

// SetWorkspace places the style in a workspace.
func (s *Style) SetWorkspace(workspace string) {
	s.Set(geoserver.StyleWorkspace, workspace)
}
