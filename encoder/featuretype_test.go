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

func TestFeatureTypeCarriesAttributes(t *testing.T) {
	ft := encoder.NewFeatureType()
	assert.Equal(t, "<featureType><attributes/></featureType>", ft.String())
}

func TestFeatureTypeNamed(t *testing.T) {
	ft := encoder.NewFeatureTypeNamed("roads", "roads_src", "Roads", "EPSG:4326")
	assert.Equal(t,
		"<featureType><attributes/><name>roads</name><nativeName>roads_src</nativeName>"+
			"<title>Roads</title><srs>EPSG:4326</srs></featureType>",
		ft.String())

	ft = encoder.NewFeatureTypeNamed("roads", "", "", "")
	_, ok := ft.Get(geoserver.ResourceNativeName)
	assert.False(t, ok)
	_, ok = ft.Get(geoserver.ResourceSRS)
	assert.False(t, ok)
}

func TestResourceSetGetDelete(t *testing.T) {
	ft := encoder.NewFeatureType()
	ft.SetTitle("first")
	ft.SetTitle("second")
	title, ok := ft.Get(geoserver.ResourceTitle)
	assert.True(t, ok)
	assert.Equal(t, "second", title)
	assert.Len(t, ft.Node().Children("title"), 1)

	assert.True(t, ft.Delete(geoserver.ResourceTitle))
	assert.False(t, ft.Delete(geoserver.ResourceTitle))

	ft.SetEnabled(false)
	enabled, _ := ft.Get(geoserver.ResourceEnabled)
	assert.Equal(t, "false", enabled)

	ft.SetProjectionPolicy(geoserver.KeepNative)
	policy, _ := ft.Get(geoserver.ResourceProjectionPolicy)
	assert.Equal(t, "NONE", policy)

	ft.SetNamespace("topp")
	ns, _ := ft.Get(geoserver.ResourceNamespace)
	assert.Equal(t, "topp", ns)
}

func TestResourceStore(t *testing.T) {
	ft := encoder.NewFeatureType()
	ft.SetStore("dataStore", "ws:pg")
	store := ft.Node().Child("store")
	require.NotNil(t, store)
	class, _ := store.Attr("class")
	assert.Equal(t, "dataStore", class)
	name, _ := ft.Get(geoserver.ResourceStore)
	assert.Equal(t, "ws:pg", name)
}

func TestKeywords(t *testing.T) {
	ft := encoder.NewFeatureType()
	ft.AddKeyword("roads")
	ft.AddKeywordWithVocabulary("transport", "en", "GEMET")
	ft.AddKeywordWithVocabulary("plain", "", "")
	assert.Equal(t,
		[]string{"roads", `transport\@language=en\;\@vocabulary=GEMET\;`, "plain"},
		ft.Node().Texts("keywords/string"))

	assert.True(t, ft.DelKeyword("roads"))
	assert.False(t, ft.DelKeyword("roads"))
	assert.Len(t, ft.Node().Texts("keywords/string"), 2)
}

func TestBoundingBox(t *testing.T) {
	ft := encoder.NewFeatureType()
	ft.SetLatLonBoundingBox(geoserver.BoundingBox{MinX: -180, MaxX: 180, MinY: -90, MaxY: 90, CRS: "EPSG:4326"})
	ft.SetLatLonBoundingBox(geoserver.BoundingBox{MinX: 1, MaxX: 2.5, MinY: 3, MaxY: 4})
	assert.Len(t, ft.Node().Children("latLonBoundingBox"), 1)
	assert.Equal(t,
		"<latLonBoundingBox><minx>1</minx><maxx>2.5</maxx><miny>3</miny><maxy>4</maxy></latLonBoundingBox>",
		ft.Node().Child("latLonBoundingBox").String())
}

func TestAttributes(t *testing.T) {
	ft := encoder.NewFeatureType()
	a := encoder.NewAttribute("the_geom", "org.locationtech.jts.geom.LineString")
	a.SetOccurs(0, 1)
	a.SetNillable(true)
	ft.AddAttribute(a)
	ft.AddAttribute(encoder.NewAttribute("name", "java.lang.String"))

	// The encoder keeps its own copy.
	a.SetLength(99)
	assert.Nil(t, ft.Node().Child("attributes/attribute/length"))

	replacement := encoder.NewAttribute("the_geom", "org.locationtech.jts.geom.MultiLineString")
	ft.SetAttribute(replacement)

	attrs := ft.Node().Children("attributes/attribute")
	require.Len(t, attrs, 2)
	name, _ := attrs[0].Get("name")
	assert.Equal(t, "name", name)
	binding, _ := attrs[1].Get("binding")
	assert.Equal(t, "org.locationtech.jts.geom.MultiLineString", binding)

	assert.True(t, ft.DelAttribute("name"))
	assert.False(t, ft.DelAttribute("name"))
	assert.Len(t, ft.Node().Children("attributes/attribute"), 1)
}

func TestMetadataEntries(t *testing.T) {
	ft := encoder.NewFeatureType()
	ft.SetMetadata("cachingEnabled", "true")
	ft.SetMetadata("cacheAgeMax", "3600")
	ft.SetMetadata("cachingEnabled", "false")

	entries := ft.Node().Children("metadata/entry")
	require.Len(t, entries, 2)
	key, _ := entries[1].Attr("key")
	assert.Equal(t, "cachingEnabled", key)
	assert.Equal(t, "false", entries[1].Text())

	assert.True(t, ft.DelMetadata("cacheAgeMax"))
	assert.False(t, ft.DelMetadata("cacheAgeMax"))
}

func TestDimensionInfo(t *testing.T) {
	d := encoder.NewDimensionInfo(true)
	d.SetAttribute("obs_time")
	d.SetPresentation(geoserver.PresentationDiscrete, 3600000)
	res, ok := d.Get(geoserver.DimensionInfoResolution)
	assert.True(t, ok)
	assert.Equal(t, "3600000", res)

	d.SetPresentation(geoserver.PresentationList, 10)
	_, ok = d.Get(geoserver.DimensionInfoResolution)
	assert.False(t, ok, "resolution only applies to discrete intervals")

	d.SetDefaultValue("FIXED", "2017-01-01T00:00:00Z")
	strategy, _ := d.Get(geoserver.DimensionInfoDefaultStrategy)
	assert.Equal(t, "FIXED", strategy)
	d.SetDefaultValue("MINIMUM", "")
	_, ok = d.Get(geoserver.DimensionInfoDefaultReference)
	assert.False(t, ok)

	ft := encoder.NewFeatureType()
	ft.SetDimensionInfo(geoserver.TimeDimension, d)
	ft.SetDimensionInfo(geoserver.ElevationDimension, encoder.NewDimensionInfo(false))
	entry := ft.Node().Child("metadata/entry")
	require.NotNil(t, entry)
	key, _ := entry.Attr("key")
	assert.Equal(t, "time", key)
	attr, _ := entry.Get("dimensionInfo/attribute")
	assert.Equal(t, "obs_time", attr)

	assert.True(t, ft.DelDimensionInfo(geoserver.TimeDimension))
	assert.Len(t, ft.Node().Children("metadata/entry"), 1)
}

func TestVirtualTable(t *testing.T) {
	vt := encoder.NewVirtualTable("pop", "select * from cities where pop > %min%",
		[]string{"id"},
		[]*encoder.VirtualTableGeometry{encoder.NewVirtualTableGeometry("geom", "Point", 4326)},
		[]*encoder.VirtualTableParameter{encoder.NewVirtualTableParameter("min", "1000", `^[\d]+$`)})
	vt.SetEscapeSQL(false)
	vt.SetParameter(encoder.NewVirtualTableParameter("min", "5000", ""))
	vt.SetParameter(encoder.NewVirtualTableParameter("max", "", ""))

	params := vt.Node().Children("parameter")
	require.Len(t, params, 2)
	def, _ := params[0].Get("defaultValue")
	assert.Equal(t, "5000", def)
	_, ok := params[0].Get("regexpValidator")
	assert.False(t, ok)

	srid, _ := vt.Node().Get("geometry/srid")
	assert.Equal(t, "4326", srid)

	assert.True(t, vt.DelKeyColumn("id"))
	assert.True(t, vt.DelGeometry("geom"))
	assert.False(t, vt.DelParameter("nope"))

	ft := encoder.NewFeatureType()
	ft.SetVirtualTable(vt)
	ft.SetVirtualTable(vt)
	assert.Len(t, ft.Node().Children("metadata/entry"), 1)
	sql, _ := ft.Node().Get("metadata/entry/virtualTable/sql")
	assert.Equal(t, "select * from cities where pop > %min%", sql)
	assert.True(t, ft.DelVirtualTable())
}

func TestMetadataLinks(t *testing.T) {
	ft := encoder.NewFeatureType()
	ft.AddMetadataLink(encoder.NewMetadataLink("text/xml", "ISO19115:2003", "http://example.com/a.xml"))
	ft.SetMetadataLink(encoder.NewMetadataLink("text/html", "ISO19115:2003", "http://example.com/a.xml"))
	links := ft.Node().Children("metadataLinks/metadataLink")
	require.Len(t, links, 1)
	mime, _ := links[0].Get("type")
	assert.Equal(t, "text/html", mime)
	assert.True(t, ft.DelMetadataLink("http://example.com/a.xml"))
}

func TestFeatureTypeLimits(t *testing.T) {
	ft := encoder.NewFeatureType()
	ft.SetMaxFeatures(500)
	ft.SetNumDecimals(4)
	ft.SetCQLFilter("pop > 1000")
	max, _ := ft.Get(geoserver.ResourceMaxFeatures)
	assert.Equal(t, "500", max)
	n, _ := ft.Get(geoserver.ResourceNumDecimals)
	assert.Equal(t, "4", n)
	cql, _ := ft.Get(geoserver.ResourceCQLFilter)
	assert.Equal(t, "pop > 1000", cql)
}
