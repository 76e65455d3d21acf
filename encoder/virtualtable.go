// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package encoder

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// VirtualTable encodes a <virtualTable>, a feature type defined by a
// SQL query against a JDBC data store.
type VirtualTable struct {
	xmlnode.Record[geoserver.VirtualTableField]
}

// VirtualTableGeometry encodes one geometry column of a virtual table.
type VirtualTableGeometry struct {
	xmlnode.Record[geoserver.VirtualTableGeometryField]
}

// VirtualTableParameter encodes one %name% parameter of a virtual
// table query.
type VirtualTableParameter struct {
	xmlnode.Record[geoserver.VirtualTableParameterField]
}

// NewVirtualTable creates a virtual table.  name and sql are required.
// keyColumns, geometries, and parameters are optional and may be nil.
func NewVirtualTable(name, sql string, keyColumns []string, geometries []*VirtualTableGeometry, parameters []*VirtualTableParameter) *VirtualTable {
	vt := &VirtualTable{xmlnode.NewRecord[geoserver.VirtualTableField]("virtualTable")}
	vt.Set(geoserver.VirtualTableName, name)
	vt.Set(geoserver.VirtualTableSQL, sql)
	for _, col := range keyColumns {
		vt.AddKeyColumn(col)
	}
	for _, g := range geometries {
		vt.SetGeometry(g)
	}
	for _, p := range parameters {
		vt.SetParameter(p)
	}
	return vt
}

// NewVirtualTableGeometry creates a geometry column description.
// geometryType is a name such as "Point" or "MultiPolygon"; srid is
// the EPSG code.
func NewVirtualTableGeometry(name, geometryType string, srid int) *VirtualTableGeometry {
	g := &VirtualTableGeometry{xmlnode.NewRecord[geoserver.VirtualTableGeometryField]("geometry")}
	g.Set(geoserver.VirtualTableGeometryName, name)
	g.Set(geoserver.VirtualTableGeometryType, geometryType)
	g.SetInt(geoserver.VirtualTableGeometrySRID, srid)
	return g
}

// NewVirtualTableParameter creates a query parameter.  defaultValue
// and regexpValidator may be empty and are then omitted.
func NewVirtualTableParameter(name, defaultValue, regexpValidator string) *VirtualTableParameter {
	p := &VirtualTableParameter{xmlnode.NewRecord[geoserver.VirtualTableParameterField]("parameter")}
	p.Set(geoserver.VirtualTableParameterName, name)
	if defaultValue != "" {
		p.Set(geoserver.VirtualTableParameterDefaultValue, defaultValue)
	}
	if regexpValidator != "" {
		p.Set(geoserver.VirtualTableParameterRegexpValidator, regexpValidator)
	}
	return p
}

// SetEscapeSQL controls whether parameter values are SQL-escaped.
func (vt *VirtualTable) SetEscapeSQL(escape bool) {
	vt.SetBool(geoserver.VirtualTableEscapeSQL, escape)
}

// AddKeyColumn appends a primary key column.
func (vt *VirtualTable) AddKeyColumn(column string) {
	vt.Node().AppendNew(string(geoserver.VirtualTableKeyColumn)).SetText(column)
}

// DelKeyColumn removes a primary key column.
func (vt *VirtualTable) DelKeyColumn(column string) bool {
	filter := xmlnode.And(xmlnode.ByTag(string(geoserver.VirtualTableKeyColumn)), xmlnode.ByText(column))
	return vt.Node().Remove(filter) > 0
}

// SetGeometry adds a geometry column, replacing any with the same
// name.
func (vt *VirtualTable) SetGeometry(g *VirtualTableGeometry) {
	name, _ := g.Get(geoserver.VirtualTableGeometryName)
	vt.Node().Replace(vt.geometryFilter(name), g.Node().Copy())
}

// DelGeometry removes the geometry column name.
func (vt *VirtualTable) DelGeometry(name string) bool {
	return vt.Node().Remove(vt.geometryFilter(name)) > 0
}

func (vt *VirtualTable) geometryFilter(name string) xmlnode.Filter {
	return xmlnode.And(xmlnode.ByTag("geometry"),
		xmlnode.ByField(string(geoserver.VirtualTableGeometryName), name))
}

// SetParameter adds a query parameter, replacing any with the same
// name.
func (vt *VirtualTable) SetParameter(p *VirtualTableParameter) {
	name, _ := p.Get(geoserver.VirtualTableParameterName)
	vt.Node().Replace(vt.parameterFilter(name), p.Node().Copy())
}

// DelParameter removes the query parameter name.
func (vt *VirtualTable) DelParameter(name string) bool {
	return vt.Node().Remove(vt.parameterFilter(name)) > 0
}

func (vt *VirtualTable) parameterFilter(name string) xmlnode.Filter {
	return xmlnode.And(xmlnode.ByTag("parameter"),
		xmlnode.ByField(string(geoserver.VirtualTableParameterName), name))
}
