// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/geoserver"
)

var malformed = []string{
	"",
	"   ",
	"not xml at all",
	"<featureType><name>roads</featureType>",
	"<unterminated",
}

func TestBuildMalformed(t *testing.T) {
	for _, text := range malformed {
		assert.Nil(t, decoder.BuildFeatureType(text), "%q", text)
		assert.Nil(t, decoder.BuildCoverage(text), "%q", text)
		assert.Nil(t, decoder.BuildLayer(text), "%q", text)
		assert.Nil(t, decoder.BuildLayerGroup(text), "%q", text)
		assert.Nil(t, decoder.BuildWorkspace(text), "%q", text)
		assert.Nil(t, decoder.BuildNamespace(text), "%q", text)
		assert.Nil(t, decoder.BuildDataStore(text), "%q", text)
		assert.Nil(t, decoder.BuildCoverageStore(text), "%q", text)
		assert.Nil(t, decoder.BuildWMSStore(text), "%q", text)
		assert.Nil(t, decoder.BuildStyle(text), "%q", text)
		assert.Nil(t, decoder.BuildServiceSettings(text), "%q", text)
		assert.Nil(t, decoder.BuildNameList(text), "%q", text)
		assert.Nil(t, decoder.BuildAbout(text), "%q", text)
		assert.Nil(t, decoder.BuildSeedRequest(text), "%q", text)
		assert.Nil(t, decoder.BuildIdentifier(text), "%q", text)
		assert.Nil(t, decoder.BuildAttribute(text), "%q", text)
		assert.Equal(t, geoserver.VersionUnrecognized, decoder.BuildVersion(text), "%q", text)
	}
}

func TestAbsentFields(t *testing.T) {
	ft := decoder.BuildFeatureType("<featureType><name> roads </name></featureType>")
	require.NotNil(t, ft)
	assert.Equal(t, "roads", ft.Name())
	assert.Equal(t, "", ft.Title())
	_, ok := ft.Get(geoserver.ResourceTitle)
	assert.False(t, ok)
	_, ok = ft.LatLonBoundingBox()
	assert.False(t, ok)
	assert.Nil(t, ft.VirtualTable())
	assert.Nil(t, ft.DimensionInfo(geoserver.TimeDimension))
	assert.Empty(t, ft.Attributes())
}

const aboutVersion = `<about>
  <resource name="GeoServer">
    <Build-Timestamp>11-Dec-2012 17:55</Build-Timestamp>
    <Git-Revision>e66f8da85ed3e8bd8e2a1a54e0fa377c4a7d0d8b</Git-Revision>
    <Version>2.3-SNAPSHOT</Version>
  </resource>
  <resource name="GeoTools">
    <Version>9-SNAPSHOT</Version>
  </resource>
</about>`

func TestAbout(t *testing.T) {
	a := decoder.BuildAbout(aboutVersion)
	require.NotNil(t, a)
	assert.Len(t, a.Resources(), 2)
	gs := a.GeoServer()
	require.NotNil(t, gs)
	assert.Equal(t, "GeoServer", gs.Name())
	assert.Equal(t, "2.3-SNAPSHOT", gs.Version())
	assert.Equal(t, "11-Dec-2012 17:55", gs.BuildTimestamp())
	assert.Equal(t, geoserver.V23, a.Version())
	assert.Equal(t, geoserver.V23, decoder.BuildVersion(aboutVersion))
	assert.Nil(t, a.Resource("GeoWebCache"))

	assert.Equal(t, geoserver.VersionUnrecognized,
		decoder.BuildVersion(`<about><resource name="GeoTools"><Version>9</Version></resource></about>`))
}

const workspaceList = `<workspaces>
  <workspace>
    <name>topp</name>
    <atom:link xmlns:atom="http://www.w3.org/2005/Atom" rel="alternate"
      href="http://localhost:8080/geoserver/rest/workspaces/topp.xml" type="application/xml"/>
  </workspace>
  <workspace>
    <name>sf</name>
    <atom:link xmlns:atom="http://www.w3.org/2005/Atom" rel="alternate"
      href="http://localhost:8080/geoserver/rest/workspaces/sf.xml" type="application/xml"/>
  </workspace>
</workspaces>`

func TestNameList(t *testing.T) {
	l := decoder.BuildNameList(workspaceList)
	require.NotNil(t, l)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"topp", "sf"}, l.Names())
	assert.Equal(t, []string{
		"http://localhost:8080/geoserver/rest/workspaces/topp.xml",
		"http://localhost:8080/geoserver/rest/workspaces/sf.xml",
	}, l.Hrefs())
	assert.True(t, l.Contains("sf"))
	assert.False(t, l.Contains("nurc"))

	empty := decoder.BuildNameList("<workspaces/>")
	require.NotNil(t, empty)
	assert.Equal(t, []string{}, empty.Names())

	flat := decoder.BuildNameList("<list><string>a</string><string>b</string></list>")
	require.NotNil(t, flat)
	assert.Equal(t, []string{"a", "b"}, flat.Names())
	assert.Empty(t, flat.Hrefs())
}

const layerGroup = `<layerGroup>
  <name>spearfish</name>
  <mode>SINGLE</mode>
  <publishables>
    <published type="layer"><name>sf:roads</name></published>
    <published type="layer"><name>sf:streams</name></published>
    <published type="layerGroup"><name>tasmania</name></published>
  </publishables>
  <styles>
    <style><name>simple_roads</name></style>
    <style/>
  </styles>
  <bounds>
    <minx>589425.93</minx><maxx>609518.28</maxx>
    <miny>4913959.77</miny><maxy>4928082.49</maxy>
    <crs class="projected">EPSG:26713</crs>
  </bounds>
</layerGroup>`

func TestLayerGroup(t *testing.T) {
	g := decoder.BuildLayerGroup(layerGroup)
	require.NotNil(t, g)
	assert.Equal(t, "spearfish", g.Name())
	assert.Equal(t, geoserver.GroupSingle, g.Mode())
	assert.Equal(t, []decoder.Published{
		{Kind: "layer", Name: "sf:roads", Style: "simple_roads"},
		{Kind: "layer", Name: "sf:streams"},
		{Kind: "layerGroup", Name: "tasmania"},
	}, g.Published())

	bounds, ok := g.Bounds()
	assert.True(t, ok)
	assert.Equal(t, 589425.93, bounds.MinX)
	assert.Equal(t, "EPSG:26713", bounds.CRS)
}

func TestLayerAdvertisedDefault(t *testing.T) {
	l := decoder.BuildLayer("<layer><name>roads</name></layer>")
	require.NotNil(t, l)
	assert.True(t, l.Advertised())
	l = decoder.BuildLayer("<layer><advertised>false</advertised></layer>")
	require.NotNil(t, l)
	assert.False(t, l.Advertised())
}

func TestStyleFormatDefault(t *testing.T) {
	s := decoder.BuildStyle("<style><name>line</name><filename>line.sld</filename></style>")
	require.NotNil(t, s)
	assert.Equal(t, "sld", s.Format())
	assert.Equal(t, "line.sld", s.Filename())
}

func TestLatin1Document(t *testing.T) {
	text := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><workspace><name>caf\xe9</name></workspace>"
	ws := decoder.BuildWorkspace(text)
	require.NotNil(t, ws)
	assert.Equal(t, "café", ws.Name())
}
