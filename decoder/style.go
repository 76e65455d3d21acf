// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Style reads the catalog entry of a <style>.
type Style struct {
	xmlnode.View[geoserver.StyleField]
}

// BuildStyle parses a style document.
func BuildStyle(text string) *Style {
	return build(text, func(n *xmlnode.Node) *Style {
		return &Style{xmlnode.ViewOf[geoserver.StyleField](n)}
	})
}

// Name returns the style name.
func (s *Style) Name() string {
	return s.Text(geoserver.StyleName)
}

// Filename returns the name of the style body file.
func (s *Style) Filename() string {
	return s.Text(geoserver.StyleFilename)
}

// Format returns the style language, defaulting to "sld".
func (s *Style) Format() string {
	if f := s.Text(geoserver.StyleFormat); f != "" {
		return f
	}
	return "sld"
}

// LanguageVersion returns the version of the style language.
func (s *Style) LanguageVersion() string {
	return s.Text(geoserver.StyleLanguageVersion)
}

// Workspace returns the style's workspace, or "" for a global style.
func (s *Style) Workspace() string {
	return s.Text(geoserver.StyleWorkspace)
}
