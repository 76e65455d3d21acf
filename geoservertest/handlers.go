// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoservertest

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/diffeo/go-geoserver/encoder"
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// kind describes one kind of catalog object.
type kind struct {
	// item is the root element of one object, and the kind
	// reported in errors.
	item string

	// list is the root element of a collection.
	list string

	// path is the collection path, with {var} references to
	// route variables.
	path string

	// key is the route variable naming one object.
	key string

	// field is the child holding the object's name.
	field string

	// parent, if set, must contain the object named by its key.
	parent *kind
}

var (
	workspaceKind = &kind{item: "workspace", list: "workspaces",
		path: "workspaces", key: "workspace", field: "name"}
	namespaceKind = &kind{item: "namespace", list: "namespaces",
		path: "namespaces", key: "namespace", field: "prefix"}
	dataStoreKind = &kind{item: "dataStore", list: "dataStores",
		path: "workspaces/{workspace}/datastores", key: "store", field: "name",
		parent: workspaceKind}
	coverageStoreKind = &kind{item: "coverageStore", list: "coverageStores",
		path: "workspaces/{workspace}/coveragestores", key: "store", field: "name",
		parent: workspaceKind}
	wmsStoreKind = &kind{item: "wmsStore", list: "wmsStores",
		path: "workspaces/{workspace}/wmsstores", key: "store", field: "name",
		parent: workspaceKind}
	featureTypeKind = &kind{item: "featureType", list: "featureTypes",
		path: "workspaces/{workspace}/datastores/{store}/featuretypes", key: "name", field: "name",
		parent: dataStoreKind}
	coverageKind = &kind{item: "coverage", list: "coverages",
		path: "workspaces/{workspace}/coveragestores/{store}/coverages", key: "name", field: "name",
		parent: coverageStoreKind}
	layerKind = &kind{item: "layer", list: "layers",
		path: "layers", key: "layer", field: "name"}
	layerGroupKind = &kind{item: "layerGroup", list: "layerGroups",
		path: "layergroups", key: "group", field: "name"}
	localLayerGroupKind = &kind{item: "layerGroup", list: "layerGroups",
		path: "workspaces/{workspace}/layergroups", key: "group", field: "name",
		parent: workspaceKind}
	styleKind = &kind{item: "style", list: "styles",
		path: "styles", key: "style", field: "name"}
	localStyleKind = &kind{item: "style", list: "styles",
		path: "workspaces/{workspace}/styles", key: "style", field: "name",
		parent: workspaceKind}
)

// collectionPath expands k.path with route variables.
func (k *kind) collectionPath(vars map[string]string) string {
	path := k.path
	for name, value := range vars {
		path = strings.Replace(path, "{"+name+"}", value, -1)
	}
	return path
}

// hook runs before a new object is stored, and may change it.
type hook func(req *http.Request, vars map[string]string, doc *xmlnode.Node) error

// deleteHook runs before an object is removed.
type deleteHook func(req *http.Request, vars map[string]string, key string) error

func recurse(req *http.Request) bool {
	return req.URL.Query().Get("recurse") == "true"
}

func (s *Server) checkParents(k *kind, vars map[string]string) error {
	if k.parent == nil {
		return nil
	}
	if err := s.checkParents(k.parent, vars); err != nil {
		return err
	}
	name := vars[k.parent.key]
	if s.catalog.lookup(k.parent.collectionPath(vars)).get(name) == nil {
		return geoserver.ErrNoSuchResource{Kind: k.parent.item, Name: name}
	}
	return nil
}

func (s *Server) find(k *kind, vars map[string]string) (*xmlnode.Node, error) {
	if err := s.checkParents(k, vars); err != nil {
		return nil, err
	}
	name := vars[k.key]
	doc := s.catalog.lookup(k.collectionPath(vars)).get(name)
	if doc == nil {
		return nil, geoserver.ErrNoSuchResource{Kind: k.item, Name: name}
	}
	return doc, nil
}

func (s *Server) listItems(k *kind) handlerFunc {
	return func(req *http.Request, vars map[string]string) (*response, error) {
		if err := s.checkParents(k, vars); err != nil {
			return nil, err
		}
		path := k.collectionPath(vars)
		return xmlResponse(listDocument(k.list, k.item, baseURL(req)+"/"+path, s.catalog.lookup(path))), nil
	}
}

func (s *Server) getItem(k *kind) handlerFunc {
	return func(req *http.Request, vars map[string]string) (*response, error) {
		doc, err := s.find(k, vars)
		if err != nil {
			return nil, err
		}
		return xmlResponse(doc), nil
	}
}

func (s *Server) createItem(k *kind, hooks ...hook) handlerFunc {
	return func(req *http.Request, vars map[string]string) (*response, error) {
		if err := s.checkParents(k, vars); err != nil {
			return nil, err
		}
		doc, err := readDocument(req)
		if err != nil {
			return nil, err
		}
		if doc.Tag() != k.item {
			return nil, errBadRequest{Text: "expected a <" + k.item + "> document, got <" + doc.Tag() + ">"}
		}
		name, _ := doc.Get(k.field)
		if name == "" {
			return nil, errBadRequest{Text: k.item + " " + k.field + " is required"}
		}
		c := s.catalog.collection(k.collectionPath(vars))
		if c.get(name) != nil {
			return nil, geoserver.ErrAlreadyExists{Kind: k.item, Name: name}
		}
		for _, h := range hooks {
			if err := h(req, vars, doc); err != nil {
				return nil, err
			}
		}
		c.add(name, doc)
		return created(name), nil
	}
}

func (s *Server) updateItem(k *kind) handlerFunc {
	return func(req *http.Request, vars map[string]string) (*response, error) {
		doc, err := s.find(k, vars)
		if err != nil {
			return nil, err
		}
		update, err := readDocument(req)
		if err != nil {
			return nil, err
		}
		if update.Tag() != k.item {
			return nil, errBadRequest{Text: "expected a <" + k.item + "> document, got <" + update.Tag() + ">"}
		}
		// Objects keep their names; renaming is not supported
		update.Delete(k.field)
		merge(doc, update)
		return ok(), nil
	}
}

func (s *Server) deleteItem(k *kind, hooks ...deleteHook) handlerFunc {
	return func(req *http.Request, vars map[string]string) (*response, error) {
		if _, err := s.find(k, vars); err != nil {
			return nil, err
		}
		name := vars[k.key]
		for _, h := range hooks {
			if err := h(req, vars, name); err != nil {
				return nil, err
			}
		}
		s.catalog.lookup(k.collectionPath(vars)).remove(name)
		return ok(), nil
	}
}

// route registers the collection and item endpoints of k.  Objects
// may be created only if create is set.
func (s *Server) route(r *mux.Router, k *kind, create []hook, remove []deleteHook) {
	collection := "/" + k.path
	item := collection + "/{" + k.key + "}"
	r.Path(collection).Methods("GET").Handler(s.handle(s.listItems(k)))
	if create != nil {
		r.Path(collection).Methods("POST").Handler(s.handle(s.createItem(k, create...)))
	}
	r.Path(item).Methods("GET").Handler(s.handle(s.getItem(k)))
	r.Path(item).Methods("PUT").Handler(s.handle(s.updateItem(k)))
	r.Path(item).Methods("DELETE").Handler(s.handle(s.deleteItem(k, remove...)))
}

func (s *Server) populateCatalog(r *mux.Router) {
	s.route(r, workspaceKind, []hook{s.addNamespace}, []deleteHook{s.deleteWorkspace})
	s.route(r, namespaceKind, []hook{s.addWorkspace}, []deleteHook{s.deleteNamespace})
	s.route(r, dataStoreKind, []hook{s.storeWorkspace}, []deleteHook{s.deleteStore(featureTypeKind)})
	s.route(r, coverageStoreKind, []hook{s.storeWorkspace}, []deleteHook{s.deleteStore(coverageKind)})
	s.route(r, wmsStoreKind, []hook{s.storeWorkspace}, nil)
	s.route(r, featureTypeKind,
		[]hook{s.publish(featureTypeKind, "dataStore", geoserver.VectorLayer, "polygon")},
		[]deleteHook{s.deleteResource})
	s.route(r, coverageKind,
		[]hook{s.publish(coverageKind, "coverageStore", geoserver.RasterLayer, "raster")},
		[]deleteHook{s.deleteResource})
	s.route(r, layerKind, nil, []deleteHook{s.deleteLayer})
	s.route(r, layerGroupKind, []hook{s.checkPublished}, nil)
	s.route(r, localLayerGroupKind, []hook{s.checkPublished, s.groupWorkspace}, nil)
	s.routeStyles(r, styleKind, nil)
	s.routeStyles(r, localStyleKind, []hook{s.styleWorkspace})
}

// addNamespace creates the namespace matching a new workspace.
func (s *Server) addNamespace(req *http.Request, vars map[string]string, doc *xmlnode.Node) error {
	name, _ := doc.Get("name")
	namespaces := s.catalog.collection(namespaceKind.path)
	if namespaces.get(name) == nil {
		namespaces.add(name, encoder.NewNamespace(name, "http://"+name).Node())
	}
	return nil
}

// addWorkspace creates the workspace matching a new namespace.
func (s *Server) addWorkspace(req *http.Request, vars map[string]string, doc *xmlnode.Node) error {
	prefix, _ := doc.Get("prefix")
	if _, hasURI := doc.Get("uri"); !hasURI {
		return errBadRequest{Text: "namespace uri is required"}
	}
	workspaces := s.catalog.collection(workspaceKind.path)
	if workspaces.get(prefix) == nil {
		workspaces.add(prefix, encoder.NewWorkspace(prefix).Node())
	}
	return nil
}

// deleteWorkspace removes the workspace's contents, if allowed.
func (s *Server) deleteWorkspace(req *http.Request, vars map[string]string, name string) error {
	prefix := "workspaces/" + name + "/"
	if !recurse(req) && s.catalog.occupied(prefix) {
		return errForbidden{Text: "workspace " + name + " is not empty"}
	}
	s.catalog.drop(prefix)
	layers := s.catalog.collection(layerKind.path)
	for _, layer := range layers.names() {
		if strings.HasPrefix(layer, name+":") {
			s.dropLayer(layer)
		}
	}
	s.catalog.collection(namespaceKind.path).remove(name)
	for key := range s.sld {
		if strings.HasPrefix(key, name+":") {
			delete(s.sld, key)
		}
	}
	return nil
}

// deleteNamespace removes the matching workspace, which must be
// empty.
func (s *Server) deleteNamespace(req *http.Request, vars map[string]string, prefix string) error {
	if s.catalog.occupied("workspaces/" + prefix + "/") {
		return errForbidden{Text: "namespace " + prefix + " is not empty"}
	}
	s.catalog.collection(workspaceKind.path).remove(prefix)
	return nil
}

func (s *Server) storeWorkspace(req *http.Request, vars map[string]string, doc *xmlnode.Node) error {
	doc.Set(string(geoserver.StoreWorkspace), vars["workspace"])
	if _, ok := doc.Get(string(geoserver.StoreEnabled)); !ok {
		doc.Set(string(geoserver.StoreEnabled), "true")
	}
	return nil
}

// deleteStore removes a store's resources and their layers, if
// allowed.
func (s *Server) deleteStore(child *kind) deleteHook {
	return func(req *http.Request, vars map[string]string, name string) error {
		path := child.collectionPath(vars)
		resources := s.catalog.lookup(path)
		if resources.len() > 0 && !recurse(req) {
			return errForbidden{Text: "store " + name + " has published resources"}
		}
		for _, resource := range resources.names() {
			s.dropLayer(vars["workspace"] + ":" + resource)
		}
		delete(s.catalog, path)
		return nil
	}
}

// publish fills in the references GeoServer adds to a new resource,
// and creates its layer.
func (s *Server) publish(k *kind, storeClass string, layerType geoserver.LayerKind, style string) hook {
	return func(req *http.Request, vars map[string]string, doc *xmlnode.Node) error {
		workspace := vars["workspace"]
		name, _ := doc.Get("name")
		qualified := workspace + ":" + name
		layers := s.catalog.collection(layerKind.path)
		if layers.get(qualified) != nil {
			return geoserver.ErrAlreadyExists{Kind: "layer", Name: qualified}
		}

		if _, ok := doc.Get(string(geoserver.ResourceNativeName)); !ok {
			doc.Set(string(geoserver.ResourceNativeName), name)
		}
		if _, ok := doc.Get(string(geoserver.ResourceEnabled)); !ok {
			doc.Set(string(geoserver.ResourceEnabled), "true")
		}
		doc.Set(string(geoserver.ResourceNamespace), workspace)
		doc.Set(string(geoserver.ResourceStore), workspace+":"+vars["store"])
		doc.Child("store").SetAttr("class", storeClass)

		layer := encoder.NewLayer()
		layer.SetName(name)
		layer.SetType(layerType)
		layer.SetDefaultStyle(style)
		layer.SetEnabled(true)
		layer.Set(geoserver.LayerResource, qualified)
		layer.Node().Child("resource").SetAttr("class", k.item)
		layers.add(qualified, layer.Node())
		s.resources[qualified] = resourceRef{path: k.collectionPath(vars), name: name}
		return nil
	}
}

// deleteResource removes a resource's layer, if allowed.
func (s *Server) deleteResource(req *http.Request, vars map[string]string, name string) error {
	qualified := vars["workspace"] + ":" + name
	if s.catalog.lookup(layerKind.path).get(qualified) != nil {
		if !recurse(req) {
			return errForbidden{Text: "resource " + name + " is published as layer " + qualified}
		}
		s.dropLayer(qualified)
	}
	return nil
}

// deleteLayer removes a layer and, if recursing, its resource.
func (s *Server) deleteLayer(req *http.Request, vars map[string]string, name string) error {
	ref, hasResource := s.resources[name]
	if hasResource && recurse(req) {
		s.catalog.lookup(ref.path).remove(ref.name)
	}
	delete(s.resources, name)
	delete(s.seeds, name)
	return nil
}

// dropLayer removes a layer and everything attached to it except its
// resource.
func (s *Server) dropLayer(name string) {
	s.catalog.collection(layerKind.path).remove(name)
	delete(s.resources, name)
	delete(s.seeds, name)
}

// checkPublished requires every layer or group in a new layer group
// to exist.
func (s *Server) checkPublished(req *http.Request, vars map[string]string, doc *xmlnode.Node) error {
	layers := s.catalog.lookup(layerKind.path)
	groups := s.catalog.lookup(layerGroupKind.path)
	local := s.catalog.lookup(localLayerGroupKind.collectionPath(vars))
	for _, published := range doc.Children("publishables/published") {
		name, _ := published.Get("name")
		if layers.get(name) == nil && groups.get(name) == nil && local.get(name) == nil {
			return errBadRequest{Text: "no such layer or layer group " + name}
		}
	}
	return nil
}

func (s *Server) groupWorkspace(req *http.Request, vars map[string]string, doc *xmlnode.Node) error {
	doc.Set(string(geoserver.LayerGroupWorkspace), vars["workspace"])
	return nil
}

func (s *Server) styleWorkspace(req *http.Request, vars map[string]string, doc *xmlnode.Node) error {
	doc.Set(string(geoserver.StyleWorkspace), vars["workspace"])
	return nil
}

// routeStyles registers style endpoints.  A PUT with an SLD body
// replaces the style's body; any other PUT updates its catalog
// entry.  The SLD route is registered first so that it is matched
// first.
func (s *Server) routeStyles(r *mux.Router, k *kind, create []hook) {
	create = append(create, func(req *http.Request, vars map[string]string, doc *xmlnode.Node) error {
		if _, ok := doc.Get(string(geoserver.StyleFilename)); !ok {
			name, _ := doc.Get(string(geoserver.StyleName))
			doc.Set(string(geoserver.StyleFilename), name+".sld")
		}
		return nil
	})
	item := "/" + k.path + "/{" + k.key + "}"
	update := s.updateItem(k)
	r.Path(item).Methods("PUT").Handler(s.handle(func(req *http.Request, vars map[string]string) (*response, error) {
		if !strings.HasPrefix(req.Header.Get("Content-Type"), "application/vnd.ogc.sld+xml") {
			return update(req, vars)
		}
		if _, err := s.find(k, vars); err != nil {
			return nil, err
		}
		body, err := readDocument(req)
		if err != nil {
			return nil, err
		}
		s.sld[sldKey(vars["workspace"], vars[k.key])] = body.String()
		return ok(), nil
	}))
	s.route(r, k, create, []deleteHook{func(req *http.Request, vars map[string]string, name string) error {
		if req.URL.Query().Get("purge") == "true" {
			delete(s.sld, sldKey(vars["workspace"], name))
		}
		return nil
	}})
}
