// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Workspace reads a <workspace>.
type Workspace struct {
	xmlnode.View[geoserver.WorkspaceField]
}

// BuildWorkspace parses a workspace document.
func BuildWorkspace(text string) *Workspace {
	return build(text, func(n *xmlnode.Node) *Workspace {
		return &Workspace{xmlnode.ViewOf[geoserver.WorkspaceField](n)}
	})
}

// Name returns the workspace name.
func (ws *Workspace) Name() string {
	return ws.Text(geoserver.WorkspaceName)
}

// Isolated reports whether the workspace is isolated.
func (ws *Workspace) Isolated() bool {
	return ws.Bool(geoserver.WorkspaceIsolated)
}

// Namespace reads a <namespace>.
type Namespace struct {
	xmlnode.View[geoserver.NamespaceField]
}

// BuildNamespace parses a namespace document.
func BuildNamespace(text string) *Namespace {
	return build(text, func(n *xmlnode.Node) *Namespace {
		return &Namespace{xmlnode.ViewOf[geoserver.NamespaceField](n)}
	})
}

// Prefix returns the namespace prefix.
func (ns *Namespace) Prefix() string {
	return ns.Text(geoserver.NamespacePrefix)
}

// URI returns the namespace URI.
func (ns *Namespace) URI() string {
	return ns.Text(geoserver.NamespaceURI)
}
