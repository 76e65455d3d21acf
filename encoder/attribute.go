// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Attribute encodes one <attribute> of a feature type.
type Attribute struct {
	xmlnode.Record[geoserver.AttributeField]
}

// NewAttribute creates an attribute with a name and a Java binding
// class such as "java.lang.String" or
// "com.vividsolutions.jts.geom.Point".  The binding may be empty.
func NewAttribute(name, binding string) *Attribute {
	a := &Attribute{xmlnode.NewRecord[geoserver.AttributeField]("attribute")}
	a.Set(geoserver.AttributeName, name)
	if binding != "" {
		a.Set(geoserver.AttributeBinding, binding)
	}
	return a
}

// SetOccurs sets the minimum and maximum occurrence counts.
func (a *Attribute) SetOccurs(min, max int) {
	a.SetInt(geoserver.AttributeMinOccurs, min)
	a.SetInt(geoserver.AttributeMaxOccurs, max)
}

// SetNillable sets whether the attribute may be null.
func (a *Attribute) SetNillable(nillable bool) {
	a.SetBool(geoserver.AttributeNillable, nillable)
}

// SetLength sets the maximum length of a string attribute.
func (a *Attribute) SetLength(length int) {
	a.SetInt(geoserver.AttributeLength, length)
}

// MetadataLink encodes a <metadataLink> to an external metadata
// record.
type MetadataLink struct {
	xmlnode.Record[geoserver.MetadataLinkField]
}

// NewMetadataLink creates a metadata link.  mimeType is the type of
// the linked document ("text/xml"), metadataType its standard
// ("ISO19115:2003", "FGDC", "TC211"), and content its URL.
func NewMetadataLink(mimeType, metadataType, content string) *MetadataLink {
	l := &MetadataLink{xmlnode.NewRecord[geoserver.MetadataLinkField]("metadataLink")}
	l.Set(geoserver.MetadataLinkType, mimeType)
	l.Set(geoserver.MetadataLinkMetadataType, metadataType)
	l.Set(geoserver.MetadataLinkContent, content)
	return l
}
