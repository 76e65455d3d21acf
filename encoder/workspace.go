// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Workspace encodes a <workspace>.
type Workspace struct {
	xmlnode.Record[geoserver.WorkspaceField]
}

// NewWorkspace creates a workspace with the given name.
func NewWorkspace(name string) *Workspace {
	ws := &Workspace{xmlnode.NewRecord[geoserver.WorkspaceField]("workspace")}
	ws.Set(geoserver.WorkspaceName, name)
	return ws
}

// SetIsolated marks the workspace as isolated, so its namespace URI
// may be shared with another workspace.
func (ws *Workspace) SetIsolated(isolated bool) {
	ws.SetBool(geoserver.WorkspaceIsolated, isolated)
}

// Namespace encodes a <namespace>, the XML namespace bound to a
// workspace of the same prefix.
type Namespace struct {
	xmlnode.Record[geoserver.NamespaceField]
}

// NewNamespace creates a namespace.  Both fields are required.
func NewNamespace(prefix, uri string) *Namespace {
	ns := &Namespace{xmlnode.NewRecord[geoserver.NamespaceField]("namespace")}
	ns.Set(geoserver.NamespacePrefix, prefix)
	ns.Set(geoserver.NamespaceURI, uri)
	return ns
}
