// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// ServiceSettings encodes the settings of one OGC service.  Its root
// element is named after the service kind, e.g. <wms>.
type ServiceSettings struct {
	xmlnode.Record[geoserver.ServiceField]
}

// NewServiceSettings creates an empty settings update for kind.
func NewServiceSettings(kind geoserver.ServiceKind) *ServiceSettings {
	return &ServiceSettings{xmlnode.NewRecord[geoserver.ServiceField](string(kind))}
}

// SetEnabled turns the service on or off.
func (s *ServiceSettings) SetEnabled(enabled bool) {
	s.SetBool(geoserver.ServiceEnabled, enabled)
}

// SetTitle sets the service title advertised in capabilities.
func (s *ServiceSettings) SetTitle(title string) {
	s.Set(geoserver.ServiceTitle, title)
}

// SetAbstract sets the service abstract.
func (s *ServiceSettings) SetAbstract(abstract string) {
	s.Set(geoserver.ServiceAbstract, abstract)
}

// SetMaintainer sets the maintainer contact.
func (s *ServiceSettings) SetMaintainer(maintainer string) {
	s.Set(geoserver.ServiceMaintainer, maintainer)
}

// SetAccessConstraints sets the access constraints statement.
func (s *ServiceSettings) SetAccessConstraints(constraints string) {
	s.Set(geoserver.ServiceAccessConstraints, constraints)
}

// SetFees sets the fees statement.
func (s *ServiceSettings) SetFees(fees string) {
	s.Set(geoserver.ServiceFees, fees)
}

// SetOnlineResource sets the service's online resource URL.
func (s *ServiceSettings) SetOnlineResource(url string) {
	s.Set(geoserver.ServiceOnlineResource, url)
}

// SetVerbose turns on pretty-printed responses.
func (s *ServiceSettings) SetVerbose(verbose bool) {
	s.SetBool(geoserver.ServiceVerbose, verbose)
}

// SetCiteCompliant enforces strict OGC CITE compliance.
func (s *ServiceSettings) SetCiteCompliant(compliant bool) {
	s.SetBool(geoserver.ServiceCiteCompliant, compliant)
}

// SetWorkspace scopes the settings to a workspace.
func (s *ServiceSettings) SetWorkspace(workspace string) {
	s.Set(geoserver.ServiceWorkspace, workspace)
}

// SetMaxFeatures limits features returned per request.  WFS only.
func (s *ServiceSettings) SetMaxFeatures(max int) {
	s.SetInt(geoserver.ServiceMaxFeatures, max)
}

// SetServiceLevel sets the WFS service level, such as "COMPLETE".
func (s *ServiceSettings) SetServiceLevel(level string) {
	s.Set(geoserver.ServiceLevel, level)
}

// AddKeyword appends a keyword.
func (s *ServiceSettings) AddKeyword(keyword string) {
	addString(s.Node(), "keywords", keyword)
}

// DelKeyword removes a keyword.
func (s *ServiceSettings) DelKeyword(keyword string) bool {
	return delString(s.Node(), "keywords", keyword)
}

func versionFilter(version string) xmlnode.Filter {
	return xmlnode.ByField("version", version)
}

// AddVersion advertises a protocol version, such as "1.3.0", unless
// it is already listed.
func (s *ServiceSettings) AddVersion(version string) {
	versions := s.Node().Ensure("versions")
	if versions.Find(versionFilter(version)) != nil {
		return
	}
	versions.AppendNew("org.geotools.util.Version").Set("version", version)
}

// DelVersion stops advertising a protocol version.
func (s *ServiceSettings) DelVersion(version string) bool {
	return delItems(s.Node(), "versions", versionFilter(version))
}
