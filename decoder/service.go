// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// ServiceSettings reads the settings of one OGC service.
type ServiceSettings struct {
	xmlnode.View[geoserver.ServiceField]
}

// BuildServiceSettings parses a service settings document.
func BuildServiceSettings(text string) *ServiceSettings {
	return build(text, func(n *xmlnode.Node) *ServiceSettings {
		return &ServiceSettings{xmlnode.ViewOf[geoserver.ServiceField](n)}
	})
}

// Kind returns the service, taken from the root element name.
func (s *ServiceSettings) Kind() geoserver.ServiceKind {
	return geoserver.ServiceKind(s.Node().Tag())
}

// Enabled reports whether the service is enabled.
func (s *ServiceSettings) Enabled() bool {
	return s.Bool(geoserver.ServiceEnabled)
}

// Title returns the service title.
func (s *ServiceSettings) Title() string {
	return s.Text(geoserver.ServiceTitle)
}

// Abstract returns the service abstract.
func (s *ServiceSettings) Abstract() string {
	return s.Text(geoserver.ServiceAbstract)
}

// Keywords returns the service keywords.
func (s *ServiceSettings) Keywords() []string {
	return s.Node().Texts("keywords/string")
}

// Versions returns the advertised protocol versions.
func (s *ServiceSettings) Versions() []string {
	return s.Node().Texts("versions/org.geotools.util.Version/version")
}

// Workspace returns the workspace of workspace-specific settings.
func (s *ServiceSettings) Workspace() string {
	return s.Text(geoserver.ServiceWorkspace)
}

// MaxFeatures returns the WFS feature limit.
func (s *ServiceSettings) MaxFeatures() (int, bool) {
	return s.Int(geoserver.ServiceMaxFeatures)
}

// ServiceLevel returns the WFS service level.
func (s *ServiceSettings) ServiceLevel() string {
	return s.Text(geoserver.ServiceLevel)
}
