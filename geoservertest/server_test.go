// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoservertest_test

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/encoder"
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/geoservertest"
)

type fixture struct {
	t      *testing.T
	server *geoservertest.Server
	http   *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	srv := geoservertest.NewServer()
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return &fixture{t: t, server: srv, http: ts}
}

func (f *fixture) do(method, path, contentType, body string) (int, string) {
	req, err := http.NewRequest(method, f.http.URL+geoservertest.Root+path, strings.NewReader(body))
	require.NoError(f.t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(f.t, err)
	defer resp.Body.Close()
	bytes, err := ioutil.ReadAll(resp.Body)
	require.NoError(f.t, err)
	return resp.StatusCode, string(bytes)
}

func (f *fixture) post(path string, e encoder.Encoder) int {
	status, _ := f.do("POST", path, "application/xml", e.String())
	return status
}

func (f *fixture) names(path string) []string {
	status, body := f.do("GET", path, "", "")
	require.Equal(f.t, http.StatusOK, status, body)
	list := decoder.BuildNameList(body)
	require.NotNil(f.t, list)
	return list.Names()
}

func TestAbout(t *testing.T) {
	f := newFixture(t)
	f.server.Version = "2.5.2"
	status, body := f.do("GET", "/rest/about/version", "", "")
	assert.Equal(t, http.StatusOK, status)
	about := decoder.BuildAbout(body)
	require.NotNil(t, about)
	assert.Equal(t, geoserver.V25, about.Version())
	assert.Equal(t, "2.5.2", about.GeoServer().Version())
}

func TestWorkspaceCreatesNamespace(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []string{}, f.names("/rest/workspaces"))

	assert.Equal(t, http.StatusCreated, f.post("/rest/workspaces", encoder.NewWorkspace("topp")))
	assert.Equal(t, http.StatusConflict, f.post("/rest/workspaces", encoder.NewWorkspace("topp")))
	assert.Equal(t, []string{"topp"}, f.names("/rest/workspaces"))

	status, body := f.do("GET", "/rest/namespaces/topp", "", "")
	require.Equal(t, http.StatusOK, status)
	ns := decoder.BuildNamespace(body)
	require.NotNil(t, ns)
	assert.Equal(t, "topp", ns.Prefix())
	assert.Equal(t, "http://topp", ns.URI())
}

func TestListHasAtomLinks(t *testing.T) {
	f := newFixture(t)
	f.post("/rest/workspaces", encoder.NewWorkspace("topp"))
	f.post("/rest/workspaces", encoder.NewWorkspace("sf"))
	_, body := f.do("GET", "/rest/workspaces", "", "")
	list := decoder.BuildNameList(body)
	require.NotNil(t, list)
	assert.Equal(t, []string{"topp", "sf"}, list.Names())
	assert.Equal(t, []string{
		f.http.URL + "/geoserver/rest/workspaces/topp.xml",
		f.http.URL + "/geoserver/rest/workspaces/sf.xml",
	}, list.Hrefs())
}

func TestBadRequests(t *testing.T) {
	f := newFixture(t)
	status, _ := f.do("POST", "/rest/workspaces", "application/xml", "<workspace>")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = f.do("POST", "/rest/workspaces", "application/xml", "<style><name>x</name></style>")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = f.do("POST", "/rest/workspaces", "application/xml", "<workspace/>")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = f.do("GET", "/rest/workspaces/nope", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = f.do("GET", "/rest/workspaces/nope/datastores", "", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func publishRoads(f *fixture) {
	require.Equal(f.t, http.StatusCreated, f.post("/rest/workspaces", encoder.NewWorkspace("topp")))
	ds := encoder.NewPostGISDataStore("pg")
	ds.SetHost("db", 5432)
	require.Equal(f.t, http.StatusCreated, f.post("/rest/workspaces/topp/datastores", ds))
	ft := encoder.NewFeatureTypeNamed("roads", "", "", "EPSG:4326")
	require.Equal(f.t, http.StatusCreated, f.post("/rest/workspaces/topp/datastores/pg/featuretypes", ft))
}

func TestPublishCreatesLayer(t *testing.T) {
	f := newFixture(t)
	publishRoads(f)

	assert.Equal(t, []string{"topp:roads"}, f.names("/rest/layers"))
	status, body := f.do("GET", "/rest/layers/topp:roads", "", "")
	require.Equal(t, http.StatusOK, status)
	layer := decoder.BuildLayer(body)
	require.NotNil(t, layer)
	assert.Equal(t, "roads", layer.Name())
	assert.Equal(t, geoserver.VectorLayer, layer.Type())
	name, class := layer.Resource()
	assert.Equal(t, "topp:roads", name)
	assert.Equal(t, "featureType", class)

	_, body = f.do("GET", "/rest/workspaces/topp/datastores/pg/featuretypes/roads", "", "")
	ft := decoder.BuildFeatureType(body)
	require.NotNil(t, ft)
	assert.Equal(t, "roads", ft.NativeName())
	assert.Equal(t, "topp", ft.Namespace())
	store, storeClass := ft.Store()
	assert.Equal(t, "topp:pg", store)
	assert.Equal(t, "dataStore", storeClass)

	_, body = f.do("GET", "/rest/workspaces/topp/datastores/pg", "", "")
	ds := decoder.BuildDataStore(body)
	require.NotNil(t, ds)
	assert.Equal(t, "topp", ds.Workspace())
	host, _ := ds.ConnectionParameter(encoder.PostGISHost)
	assert.Equal(t, "db", host)
}

func TestUpdateMerges(t *testing.T) {
	f := newFixture(t)
	publishRoads(f)

	update := encoder.NewLayer()
	update.SetDefaultStyle("line")
	update.SetQueryable(true)
	status, _ := f.do("PUT", "/rest/layers/topp:roads", "application/xml", update.String())
	require.Equal(t, http.StatusOK, status)

	_, body := f.do("GET", "/rest/layers/topp:roads", "", "")
	layer := decoder.BuildLayer(body)
	require.NotNil(t, layer)
	assert.Equal(t, "line", layer.DefaultStyle())
	assert.True(t, layer.Queryable())
	assert.Equal(t, "roads", layer.Name())
	assert.Equal(t, geoserver.VectorLayer, layer.Type())
}

func TestDeleteNeedsRecurse(t *testing.T) {
	f := newFixture(t)
	publishRoads(f)

	status, _ := f.do("DELETE", "/rest/workspaces/topp", "", "")
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = f.do("DELETE", "/rest/workspaces/topp/datastores/pg/featuretypes/roads", "", "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = f.do("DELETE", "/rest/workspaces/topp?recurse=true", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{}, f.names("/rest/workspaces"))
	assert.Equal(t, []string{}, f.names("/rest/namespaces"))
	assert.Equal(t, []string{}, f.names("/rest/layers"))
}

func TestDeleteLayerRecurse(t *testing.T) {
	f := newFixture(t)
	publishRoads(f)

	status, _ := f.do("DELETE", "/rest/layers/topp:roads?recurse=true", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{}, f.names("/rest/workspaces/topp/datastores/pg/featuretypes"))
	status, _ = f.do("DELETE", "/rest/workspaces/topp", "", "")
	assert.Equal(t, http.StatusForbidden, status, "data store remains")
}

func TestLayerGroupChecksLayers(t *testing.T) {
	f := newFixture(t)
	publishRoads(f)

	g := encoder.NewLayerGroup("base")
	g.AddLayer("topp:rivers", "")
	assert.Equal(t, http.StatusBadRequest, f.post("/rest/layergroups", g))

	g = encoder.NewLayerGroup("base")
	g.AddLayer("topp:roads", "")
	assert.Equal(t, http.StatusCreated, f.post("/rest/workspaces/topp/layergroups", g))
	_, body := f.do("GET", "/rest/workspaces/topp/layergroups/base", "", "")
	group := decoder.BuildLayerGroup(body)
	require.NotNil(t, group)
	assert.Equal(t, "topp", group.Workspace())
	assert.Equal(t, []string{}, f.names("/rest/layergroups"))
}

func TestStyleUpload(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusCreated, f.post("/rest/styles", encoder.NewStyle("roads", "")))

	sld := `<StyledLayerDescriptor version="1.0.0"><NamedLayer><Name>roads</Name></NamedLayer></StyledLayerDescriptor>`
	status, _ := f.do("PUT", "/rest/styles/roads", "application/vnd.ogc.sld+xml", sld)
	assert.Equal(t, http.StatusOK, status)
	body, ok := f.server.SLD("", "roads")
	assert.True(t, ok)
	assert.Contains(t, body, "<Name>roads</Name>")

	_, text := f.do("GET", "/rest/styles/roads", "", "")
	style := decoder.BuildStyle(text)
	require.NotNil(t, style)
	assert.Equal(t, "roads.sld", style.Filename())

	status, _ = f.do("DELETE", "/rest/styles/roads?purge=true", "", "")
	assert.Equal(t, http.StatusOK, status)
	_, ok = f.server.SLD("", "roads")
	assert.False(t, ok)
}

func TestServiceSettings(t *testing.T) {
	f := newFixture(t)
	status, body := f.do("GET", "/rest/services/wms/settings", "", "")
	require.Equal(t, http.StatusOK, status)
	settings := decoder.BuildServiceSettings(body)
	require.NotNil(t, settings)
	assert.Equal(t, geoserver.WMS, settings.Kind())
	assert.True(t, settings.Enabled())

	status, _ = f.do("GET", "/rest/services/wfs/workspaces/topp/settings", "", "")
	assert.Equal(t, http.StatusNotFound, status)

	f.post("/rest/workspaces", encoder.NewWorkspace("topp"))
	status, _ = f.do("GET", "/rest/services/wfs/workspaces/topp/settings", "", "")
	assert.Equal(t, http.StatusNotFound, status)

	wfs := encoder.NewServiceSettings(geoserver.WFS)
	wfs.SetTitle("Topp features")
	status, _ = f.do("PUT", "/rest/services/wfs/workspaces/topp/settings", "application/xml", wfs.String())
	require.Equal(t, http.StatusOK, status)
	_, body = f.do("GET", "/rest/services/wfs/workspaces/topp/settings", "", "")
	settings = decoder.BuildServiceSettings(body)
	require.NotNil(t, settings)
	assert.Equal(t, "Topp features", settings.Title())
	assert.Equal(t, "topp", settings.Workspace())

	status, _ = f.do("PUT", "/rest/services/wms/settings", "application/xml", wfs.String())
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSeedProgress(t *testing.T) {
	f := newFixture(t)
	publishRoads(f)

	req := encoder.NewSeedRequest("topp:roads", geoserver.Seed)
	req.SetThreadCount(2)
	status, _ := f.do("POST", "/gwc/rest/seed/topp:roads.xml", "application/xml", req.String())
	require.Equal(t, http.StatusOK, status)

	poll := func() []geoserver.SeedTask {
		status, body := f.do("GET", "/gwc/rest/seed/topp:roads.json", "", "")
		require.Equal(t, http.StatusOK, status)
		tasks := decoder.BuildSeedStatus(body)
		require.NotNil(t, tasks)
		return tasks
	}

	tasks := poll()
	require.Len(t, tasks, 2)
	assert.Equal(t, geoserver.SeedRunning, tasks[0].Status)
	assert.Equal(t, int64(0), tasks[0].TilesProcessed)
	assert.Equal(t, int64(300), tasks[0].TotalTiles)
	assert.NotEqual(t, tasks[0].TaskID, tasks[1].TaskID)

	poll()
	poll()
	tasks = poll()
	require.Len(t, tasks, 2)
	assert.Equal(t, geoserver.SeedDone, tasks[0].Status)
	assert.Equal(t, int64(300), tasks[0].TilesProcessed)

	assert.Empty(t, poll())
}

func TestSeedKill(t *testing.T) {
	f := newFixture(t)
	publishRoads(f)

	req := encoder.NewSeedRequest("topp:roads", geoserver.Reseed)
	f.do("POST", "/gwc/rest/seed/topp:roads.xml", "application/xml", req.String())
	f.do("POST", "/gwc/rest/seed/topp:roads.xml", "application/xml", req.String())

	status, _ := f.do("POST", "/gwc/rest/seed", "application/x-www-form-urlencoded", "kill_all=bogus")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = f.do("POST", "/gwc/rest/seed/topp:roads", "application/x-www-form-urlencoded", "kill_all=all")
	assert.Equal(t, http.StatusOK, status)

	_, body := f.do("GET", "/gwc/rest/seed.json", "", "")
	assert.Empty(t, decoder.BuildSeedStatus(body))
}

func TestSeedUnknownLayer(t *testing.T) {
	f := newFixture(t)
	req := encoder.NewSeedRequest("topp:roads", geoserver.Seed)
	status, _ := f.do("POST", "/gwc/rest/seed/topp:roads.xml", "application/xml", req.String())
	assert.Equal(t, http.StatusNotFound, status)
}

func TestReloadReset(t *testing.T) {
	f := newFixture(t)
	status, _ := f.do("POST", "/rest/reload", "", "")
	assert.Equal(t, http.StatusOK, status)
	f.do("POST", "/rest/reset", "", "")
	f.do("POST", "/rest/reset", "", "")
	assert.Equal(t, 1, f.server.Reloads())
	assert.Equal(t, 2, f.server.Resets())
}
