// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Layer encodes a <layer>, the published face of a feature type or
// coverage.  Layers are created implicitly by GeoServer when a
// resource is published; this encoder is used to update them.
type Layer struct {
	xmlnode.Record[geoserver.LayerField]
}

// NewLayer creates an empty layer update.
func NewLayer() *Layer {
	return &Layer{xmlnode.NewRecord[geoserver.LayerField]("layer")}
}

// SetName sets the layer name.
func (l *Layer) SetName(name string) {
	l.Set(geoserver.LayerName, name)
}

// SetPath sets the WMS capabilities path of the layer.
func (l *Layer) SetPath(path string) {
	l.Set(geoserver.LayerPath, path)
}

// SetType sets the layer type.
func (l *Layer) SetType(kind geoserver.LayerKind) {
	l.Set(geoserver.LayerKindField, string(kind))
}

// SetDefaultStyle sets the style used when a request names none.
func (l *Layer) SetDefaultStyle(style string) {
	l.Set(geoserver.LayerDefaultStyle, style)
}

// SetEnabled turns the layer on or off.
func (l *Layer) SetEnabled(enabled bool) {
	l.SetBool(geoserver.LayerEnabled, enabled)
}

// SetQueryable controls whether GetFeatureInfo is allowed.
func (l *Layer) SetQueryable(queryable bool) {
	l.SetBool(geoserver.LayerQueryable, queryable)
}

// SetAdvertised controls whether the layer appears in capabilities.
func (l *Layer) SetAdvertised(advertised bool) {
	l.SetBool(geoserver.LayerAdvertised, advertised)
}

// SetOpaque marks the layer as opaque.
func (l *Layer) SetOpaque(opaque bool) {
	l.SetBool(geoserver.LayerOpaque, opaque)
}

func styleFilter(name string) xmlnode.Filter {
	return xmlnode.ByField("name", name)
}

// AddStyle adds an alternate style, unless it is already listed.
func (l *Layer) AddStyle(name string) {
	styles := l.Node().Ensure("styles")
	if styles.Find(styleFilter(name)) != nil {
		return
	}
	styles.AppendNew("style").Set("name", name)
}

// DelStyle removes an alternate style.
func (l *Layer) DelStyle(name string) bool {
	return delItems(l.Node(), "styles", styleFilter(name))
}

func authorityURLByName(name string) xmlnode.Filter {
	return xmlnode.ByField(string(geoserver.AuthorityURLName), name)
}

func authorityURLByHref(href string) xmlnode.Filter {
	return xmlnode.ByField(string(geoserver.AuthorityURLHref), href)
}

// AddAuthorityURL appends an authority URL.
func (l *Layer) AddAuthorityURL(u *AuthorityURL) {
	addItem(l.Node(), "authorityURLs", u.Node())
}

// SetAuthorityURL adds an authority URL, replacing any with the same
// name.
func (l *Layer) SetAuthorityURL(u *AuthorityURL) {
	name, _ := u.Get(geoserver.AuthorityURLName)
	setItem(l.Node(), "authorityURLs", authorityURLByName(name), u.Node())
}

// DelAuthorityURL removes authority URLs named name.
func (l *Layer) DelAuthorityURL(name string) bool {
	return delItems(l.Node(), "authorityURLs", authorityURLByName(name))
}

// DelAuthorityURLByHref removes authority URLs pointing at href.
func (l *Layer) DelAuthorityURLByHref(href string) bool {
	return delItems(l.Node(), "authorityURLs", authorityURLByHref(href))
}

func identifierFilter(authority string) xmlnode.Filter {
	return xmlnode.ByField(string(geoserver.IdentifierAuthority), authority)
}

// AddIdentifier appends an identifier.
func (l *Layer) AddIdentifier(id *Identifier) {
	addItem(l.Node(), "identifiers", id.Node())
}

// SetIdentifier adds an identifier, replacing any identifier issued
// by the same authority.
func (l *Layer) SetIdentifier(id *Identifier) {
	authority, _ := id.Get(geoserver.IdentifierAuthority)
	setItem(l.Node(), "identifiers", identifierFilter(authority), id.Node())
}

// DelIdentifier removes identifiers issued by authority.
func (l *Layer) DelIdentifier(authority string) bool {
	return delItems(l.Node(), "identifiers", identifierFilter(authority))
}
