// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffeo/go-geoserver/encoder"
	"github.com/diffeo/go-geoserver/geoserver"
)

func TestLayerFields(t *testing.T) {
	l := encoder.NewLayer()
	l.SetDefaultStyle("line")
	l.SetEnabled(true)
	l.SetQueryable(false)
	l.SetType(geoserver.VectorLayer)
	assert.Equal(t,
		"<layer><defaultStyle><name>line</name></defaultStyle><enabled>true</enabled>"+
			"<queryable>false</queryable><type>VECTOR</type></layer>",
		l.String())
}

func TestLayerStyles(t *testing.T) {
	l := encoder.NewLayer()
	l.AddStyle("line")
	l.AddStyle("point")
	l.AddStyle("line")
	assert.Equal(t, []string{"line", "point"}, l.Node().Texts("styles/style/name"))
	assert.True(t, l.DelStyle("line"))
	assert.False(t, l.DelStyle("line"))
	assert.Equal(t, []string{"point"}, l.Node().Texts("styles/style/name"))
}

func TestLayerAuthorityURLs(t *testing.T) {
	l := encoder.NewLayer()
	l.AddAuthorityURL(encoder.NewAuthorityURL("auth1", "http://a.example.com"))
	l.AddAuthorityURL(encoder.NewAuthorityURL("auth2", "http://b.example.com"))
	l.SetAuthorityURL(encoder.NewAuthorityURL("auth1", "http://c.example.com"))

	urls := l.Node().Children("authorityURLs/AuthorityURL")
	require.Len(t, urls, 2)
	name, _ := urls[0].Get("name")
	assert.Equal(t, "auth2", name)
	href, _ := urls[1].Get("href")
	assert.Equal(t, "http://c.example.com", href)

	assert.True(t, l.DelAuthorityURLByHref("http://b.example.com"))
	assert.False(t, l.DelAuthorityURLByHref("http://b.example.com"))
	assert.True(t, l.DelAuthorityURL("auth1"))
	assert.Empty(t, l.Node().Children("authorityURLs/AuthorityURL"))
}

func TestLayerIdentifiers(t *testing.T) {
	l := encoder.NewLayer()
	l.AddIdentifier(encoder.NewIdentifier("auth1", "id1"))
	l.SetIdentifier(encoder.NewIdentifier("auth1", "id2"))
	l.SetIdentifier(encoder.NewIdentifier("auth2", "id3"))

	ids := l.Node().Children("identifiers/Identifier")
	require.Len(t, ids, 2)
	id, _ := ids[0].Get("identifier")
	assert.Equal(t, "id2", id)

	assert.True(t, l.DelIdentifier("auth2"))
	assert.False(t, l.DelIdentifier("auth3"))
}

func TestIdentifierRecord(t *testing.T) {
	id := encoder.NewIdentifier("auth", "x")
	assert.Equal(t,
		"<Identifier><authority>auth</authority><identifier>x</identifier></Identifier>",
		id.String())

	u := encoder.NewAuthorityURL("auth", "http://example.com")
	u.SetHref("http://example.org")
	assert.Equal(t,
		"<AuthorityURL><name>auth</name><href>http://example.org</href></AuthorityURL>",
		u.String())
}

func TestLayerGroup(t *testing.T) {
	g := encoder.NewLayerGroup("base")
	g.SetMode(geoserver.GroupNamed)
	g.SetWorkspace("topp")
	g.AddLayer("topp:roads", "line")
	g.AddLayer("topp:states", "")
	g.AddLayerGroup("overlays")

	published := g.Node().Children("publishables/published")
	require.Len(t, published, 3)
	kind, _ := published[2].Attr("type")
	assert.Equal(t, "layerGroup", kind)
	styles := g.Node().Children("styles/style")
	require.Len(t, styles, 3)
	_, ok := styles[1].Get("name")
	assert.False(t, ok, "an unstyled entry keeps an empty <style/>")

	assert.True(t, g.DelPublished("topp:states"))
	assert.False(t, g.DelPublished("topp:states"))
	assert.Equal(t, []string{"topp:roads", "overlays"}, g.Node().Texts("publishables/published/name"))
	assert.Len(t, g.Node().Children("styles/style"), 2)

	mode, _ := g.Get(geoserver.LayerGroupModeField)
	assert.Equal(t, "NAMED", mode)
}
