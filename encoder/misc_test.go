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

func TestCoverage(t *testing.T) {
	c := encoder.NewCoverage()
	assert.Equal(t, "<coverage><dimensions/></coverage>", c.String())

	c = encoder.NewCoverageNamed("dem", "Elevation", "EPSG:4326")
	c.AddCoverageDimension(encoder.NewCoverageDimension("GRAY_INDEX", "", 0, 255, "m", "REAL_32BITS"))
	c.AddCoverageDimension(encoder.NewCoverageDimension("ALPHA", "", 0, 1, "", ""))
	c.SetCoverageDimension(encoder.NewCoverageDimension("GRAY_INDEX", "elevation", -10, 9000, "m", ""))
	c.AddRequestSRS("EPSG:4326")
	c.AddSupportedFormat("GEOTIFF")
	c.AddSupportedFormat("PNG")

	dims := c.Node().Children("dimensions/coverageDimension")
	require.Len(t, dims, 2)
	min, _ := dims[1].Get("range/min")
	assert.Equal(t, "-10", min)
	assert.Equal(t, []string{"GEOTIFF", "PNG"}, c.Node().Texts("supportedFormats/string"))
	assert.True(t, c.DelCoverageDimension("ALPHA"))
	assert.False(t, c.DelCoverageDimension("ALPHA"))

	c.SetDimensionInfo(geoserver.CustomDimension("depth"), encoder.NewDimensionInfo(true))
	key, _ := c.Node().Child("metadata/entry").Attr("key")
	assert.Equal(t, "custom_dimension_DEPTH", key)
}

func TestWorkspaceNamespace(t *testing.T) {
	ws := encoder.NewWorkspace("topp")
	ws.SetIsolated(true)
	assert.Equal(t, "<workspace><name>topp</name><isolated>true</isolated></workspace>", ws.String())

	ns := encoder.NewNamespace("topp", "http://www.openplans.org/topp")
	assert.Equal(t,
		"<namespace><prefix>topp</prefix><uri>http://www.openplans.org/topp</uri></namespace>",
		ns.String())
}

func TestStyle(t *testing.T) {
	s := encoder.NewStyle("roads", "roads.sld")
	s.SetFormat("sld")
	s.SetLanguageVersion("1.0.0")
	s.SetWorkspace("topp")
	version, _ := s.Get(geoserver.StyleLanguageVersion)
	assert.Equal(t, "1.0.0", version)
	ws, _ := s.Get(geoserver.StyleWorkspace)
	assert.Equal(t, "topp", ws)

	s = encoder.NewStyle("bare", "")
	_, ok := s.Get(geoserver.StyleFilename)
	assert.False(t, ok)
}

func TestServiceSettings(t *testing.T) {
	s := encoder.NewServiceSettings(geoserver.WFS)
	s.SetEnabled(true)
	s.SetAbstract("roads service")
	s.SetMaxFeatures(1000)
	s.AddVersion("1.1.0")
	s.AddVersion("2.0.0")
	s.AddVersion("1.1.0")
	s.AddKeyword("WFS")

	assert.Equal(t, "wfs", s.Node().Tag())
	abstract, _ := s.Get(geoserver.ServiceAbstract)
	assert.Equal(t, "roads service", abstract)
	assert.Equal(t, []string{"1.1.0", "2.0.0"}, s.Node().Texts("versions/org.geotools.util.Version/version"))
	assert.True(t, s.DelVersion("1.1.0"))
	assert.True(t, s.DelKeyword("WFS"))
}

func TestSeedRequest(t *testing.T) {
	r := encoder.NewSeedRequest("topp:states", geoserver.Reseed)
	r.SetSRS(900913)
	r.SetZoomLevels(0, 12)
	r.SetFormat("image/png")
	r.SetThreadCount(2)
	assert.Equal(t,
		"<seedRequest><name>topp:states</name><type>reseed</type><srs><number>900913</number></srs>"+
			"<zoomStart>0</zoomStart><zoomStop>12</zoomStop><format>image/png</format>"+
			"<threadCount>2</threadCount></seedRequest>",
		r.String())

	r.SetBounds(geoserver.BoundingBox{MinX: -124, MinY: 21, MaxX: -66.5, MaxY: 49})
	assert.Equal(t, []string{"-124", "21", "-66.5", "49"}, r.Node().Texts("bounds/coords/double"))

	r.SetParameter("STYLES", "pophatch")
	r.SetParameter("STYLES", "polygon")
	entries := r.Node().Children("parameters/entry")
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"STYLES", "polygon"}, entries[0].Texts("string"))
	assert.True(t, r.DelParameter("STYLES"))
}

func TestAbout(t *testing.T) {
	a := encoder.NewAbout()
	a.AddResource("GeoServer", "2.5.1", "abc123", "")
	assert.Equal(t,
		`<about><resource name="GeoServer"><Version>2.5.1</Version>`+
			`<Git-Revision>abc123</Git-Revision></resource></about>`,
		a.String())
}

func TestEncodersImplementEncoder(t *testing.T) {
	encoders := []encoder.Encoder{
		encoder.NewFeatureType(),
		encoder.NewCoverage(),
		encoder.NewLayer(),
		encoder.NewLayerGroup("g"),
		encoder.NewWorkspace("w"),
		encoder.NewNamespace("n", "urn:n"),
		encoder.NewDataStore("d", ""),
		encoder.NewPostGISDataStore("p"),
		encoder.NewCoverageStore("c", "GeoTIFF", ""),
		encoder.NewWMSStore("s", "http://example.com"),
		encoder.NewStyle("s", ""),
		encoder.NewServiceSettings(geoserver.WMS),
		encoder.NewSeedRequest("l", geoserver.Seed),
		encoder.NewAbout(),
	}
	for _, e := range encoders {
		assert.NotEmpty(t, e.String())
		assert.Equal(t, e.Node().String(), e.String())
	}
}
