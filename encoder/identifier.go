// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Identifier encodes a layer <Identifier>, an identifier issued by a
// named authority.
type Identifier struct {
	xmlnode.Record[geoserver.IdentifierField]
}

// NewIdentifier creates an identifier.  Both fields are required by
// GeoServer but neither is checked here.
func NewIdentifier(authority, identifier string) *Identifier {
	id := &Identifier{xmlnode.NewRecord[geoserver.IdentifierField]("Identifier")}
	id.SetAuthority(authority)
	id.SetIdentifier(identifier)
	return id
}

// SetAuthority sets the name of the issuing authority.
func (id *Identifier) SetAuthority(authority string) {
	id.Set(geoserver.IdentifierAuthority, authority)
}

// SetIdentifier sets the identifier value.
func (id *Identifier) SetIdentifier(identifier string) {
	id.Set(geoserver.IdentifierIdentifier, identifier)
}

// AuthorityURL encodes a layer <AuthorityURL>, naming an authority
// and the URL describing it.
type AuthorityURL struct {
	xmlnode.Record[geoserver.AuthorityURLField]
}

// NewAuthorityURL creates an authority URL.  name is the key that
// identifiers refer to; href is the authority's URL.
func NewAuthorityURL(name, href string) *AuthorityURL {
	u := &AuthorityURL{xmlnode.NewRecord[geoserver.AuthorityURLField]("AuthorityURL")}
	u.SetName(name)
	u.SetHref(href)
	return u
}

// SetName sets the authority name.
func (u *AuthorityURL) SetName(name string) {
	u.Set(geoserver.AuthorityURLName, name)
}

// SetHref sets the authority URL.
func (u *AuthorityURL) SetHref(href string) {
	u.Set(geoserver.AuthorityURLHref, href)
}
