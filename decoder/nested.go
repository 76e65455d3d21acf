// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package decoder

// This file contains decoders for elements that appear inside
// resource documents.  Each also has a Build function for reading a
// fragment on its own.

import (
	"github.com/diffeo/go-geoserver/geoserver"
	"github.com/diffeo/go-geoserver/xmlnode"
)

// Identifier reads a layer <Identifier>.
type Identifier struct {
	xmlnode.View[geoserver.IdentifierField]
}

func wrapIdentifier(n *xmlnode.Node) *Identifier {
	return &Identifier{xmlnode.ViewOf[geoserver.IdentifierField](n)}
}

// BuildIdentifier parses an identifier fragment.
func BuildIdentifier(text string) *Identifier {
	return build(text, wrapIdentifier)
}

// Authority returns the name of the issuing authority.
func (id *Identifier) Authority() string {
	return id.Text(geoserver.IdentifierAuthority)
}

// Identifier returns the identifier value.
func (id *Identifier) Identifier() string {
	return id.Text(geoserver.IdentifierIdentifier)
}

// AuthorityURL reads a layer <AuthorityURL>.
type AuthorityURL struct {
	xmlnode.View[geoserver.AuthorityURLField]
}

func wrapAuthorityURL(n *xmlnode.Node) *AuthorityURL {
	return &AuthorityURL{xmlnode.ViewOf[geoserver.AuthorityURLField](n)}
}

// BuildAuthorityURL parses an authority URL fragment.
func BuildAuthorityURL(text string) *AuthorityURL {
	return build(text, wrapAuthorityURL)
}

// Name returns the authority name.
func (u *AuthorityURL) Name() string {
	return u.Text(geoserver.AuthorityURLName)
}

// Href returns the authority URL.
func (u *AuthorityURL) Href() string {
	return u.Text(geoserver.AuthorityURLHref)
}

// Attribute reads a feature type <attribute>.
type Attribute struct {
	xmlnode.View[geoserver.AttributeField]
}

func wrapAttribute(n *xmlnode.Node) *Attribute {
	return &Attribute{xmlnode.ViewOf[geoserver.AttributeField](n)}
}

// BuildAttribute parses an attribute fragment.
func BuildAttribute(text string) *Attribute {
	return build(text, wrapAttribute)
}

// Name returns the attribute name.
func (a *Attribute) Name() string {
	return a.Text(geoserver.AttributeName)
}

// Binding returns the Java class of attribute values.
func (a *Attribute) Binding() string {
	return a.Text(geoserver.AttributeBinding)
}

// Nillable reports whether the attribute may be null.
func (a *Attribute) Nillable() bool {
	return a.Bool(geoserver.AttributeNillable)
}

// MetadataLink reads a <metadataLink>.
type MetadataLink struct {
	xmlnode.View[geoserver.MetadataLinkField]
}

func wrapMetadataLink(n *xmlnode.Node) *MetadataLink {
	return &MetadataLink{xmlnode.ViewOf[geoserver.MetadataLinkField](n)}
}

// BuildMetadataLink parses a metadata link fragment.
func BuildMetadataLink(text string) *MetadataLink {
	return build(text, wrapMetadataLink)
}

// Type returns the MIME type of the linked document.
func (l *MetadataLink) Type() string {
	return l.Text(geoserver.MetadataLinkType)
}

// MetadataType returns the metadata standard, e.g. "ISO19115:2003".
func (l *MetadataLink) MetadataType() string {
	return l.Text(geoserver.MetadataLinkMetadataType)
}

// Content returns the link target.
func (l *MetadataLink) Content() string {
	return l.Text(geoserver.MetadataLinkContent)
}

// CoverageDimension reads a <coverageDimension>.
type CoverageDimension struct {
	xmlnode.View[geoserver.CoverageDimensionField]
}

func wrapCoverageDimension(n *xmlnode.Node) *CoverageDimension {
	return &CoverageDimension{xmlnode.ViewOf[geoserver.CoverageDimensionField](n)}
}

// BuildCoverageDimension parses a coverage dimension fragment.
func BuildCoverageDimension(text string) *CoverageDimension {
	return build(text, wrapCoverageDimension)
}

// Name returns the band name.
func (cd *CoverageDimension) Name() string {
	return cd.Text(geoserver.CoverageDimensionName)
}

// Description returns the band description.
func (cd *CoverageDimension) Description() string {
	return cd.Text(geoserver.CoverageDimensionDescription)
}

// Range returns the band's value range.  ok is false unless both
// bounds are present and numeric; GeoServer writes "-inf" and "inf"
// for unbounded ranges, which parse.
func (cd *CoverageDimension) Range() (min, max float64, ok bool) {
	var okMin, okMax bool
	min, okMin = cd.Float(geoserver.CoverageDimensionRangeMin)
	max, okMax = cd.Float(geoserver.CoverageDimensionRangeMax)
	return min, max, okMin && okMax
}

// Unit returns the unit of band values.
func (cd *CoverageDimension) Unit() string {
	return cd.Text(geoserver.CoverageDimensionUnit)
}

// DimensionType returns the sample type, e.g. "REAL_32BITS".
func (cd *CoverageDimension) DimensionType() string {
	return cd.Text(geoserver.CoverageDimensionDimensionType)
}

// DimensionInfo reads a <dimensionInfo> metadata value.
type DimensionInfo struct {
	xmlnode.View[geoserver.DimensionInfoField]
}

func wrapDimensionInfo(n *xmlnode.Node) *DimensionInfo {
	return &DimensionInfo{xmlnode.ViewOf[geoserver.DimensionInfoField](n)}
}

// BuildDimensionInfo parses a dimension info fragment.
func BuildDimensionInfo(text string) *DimensionInfo {
	return build(text, wrapDimensionInfo)
}

// Enabled reports whether the dimension is published.
func (d *DimensionInfo) Enabled() bool {
	return d.Bool(geoserver.DimensionInfoEnabled)
}

// Attribute returns the attribute holding dimension values.
func (d *DimensionInfo) Attribute() string {
	return d.Text(geoserver.DimensionInfoAttribute)
}

// EndAttribute returns the attribute holding interval ends.
func (d *DimensionInfo) EndAttribute() string {
	return d.Text(geoserver.DimensionInfoEndAttribute)
}

// Presentation returns how the dimension is advertised.
func (d *DimensionInfo) Presentation() geoserver.Presentation {
	return geoserver.Presentation(d.Text(geoserver.DimensionInfoPresentation))
}

// Resolution returns the interval of a discrete presentation.
func (d *DimensionInfo) Resolution() (float64, bool) {
	return d.Float(geoserver.DimensionInfoResolution)
}

// Units returns the dimension's units and unit symbol.
func (d *DimensionInfo) Units() (units, symbol string) {
	return d.Text(geoserver.DimensionInfoUnits), d.Text(geoserver.DimensionInfoUnitSymbol)
}

// DefaultStrategy returns the default value strategy, such as
// "MINIMUM" or "FIXED".
func (d *DimensionInfo) DefaultStrategy() string {
	return d.Text(geoserver.DimensionInfoDefaultStrategy)
}

// VirtualTable reads a JDBC <virtualTable>.
type VirtualTable struct {
	xmlnode.View[geoserver.VirtualTableField]
}

func wrapVirtualTable(n *xmlnode.Node) *VirtualTable {
	return &VirtualTable{xmlnode.ViewOf[geoserver.VirtualTableField](n)}
}

// BuildVirtualTable parses a virtual table fragment.
func BuildVirtualTable(text string) *VirtualTable {
	return build(text, wrapVirtualTable)
}

// Name returns the virtual table name.
func (vt *VirtualTable) Name() string {
	return vt.Text(geoserver.VirtualTableName)
}

// SQL returns the defining query.
func (vt *VirtualTable) SQL() string {
	return vt.Text(geoserver.VirtualTableSQL)
}

// EscapeSQL reports whether parameter values are escaped.
func (vt *VirtualTable) EscapeSQL() bool {
	return vt.Bool(geoserver.VirtualTableEscapeSQL)
}

// KeyColumns returns the primary key columns.
func (vt *VirtualTable) KeyColumns() []string {
	return vt.Node().Texts(string(geoserver.VirtualTableKeyColumn))
}

// Geometries returns the geometry column declarations.
func (vt *VirtualTable) Geometries() []*VirtualTableGeometry {
	return each(vt.Node(), "geometry", func(n *xmlnode.Node) *VirtualTableGeometry {
		return &VirtualTableGeometry{xmlnode.ViewOf[geoserver.VirtualTableGeometryField](n)}
	})
}

// Parameters returns the query parameter declarations.
func (vt *VirtualTable) Parameters() []*VirtualTableParameter {
	return each(vt.Node(), "parameter", func(n *xmlnode.Node) *VirtualTableParameter {
		return &VirtualTableParameter{xmlnode.ViewOf[geoserver.VirtualTableParameterField](n)}
	})
}

// VirtualTableGeometry reads a virtual table <geometry>.
type VirtualTableGeometry struct {
	xmlnode.View[geoserver.VirtualTableGeometryField]
}

// Name returns the geometry column name.
func (g *VirtualTableGeometry) Name() string {
	return g.Text(geoserver.VirtualTableGeometryName)
}

// Type returns the geometry type, e.g. "Point".
func (g *VirtualTableGeometry) Type() string {
	return g.Text(geoserver.VirtualTableGeometryType)
}

// SRID returns the spatial reference ID.
func (g *VirtualTableGeometry) SRID() (int, bool) {
	return g.Int(geoserver.VirtualTableGeometrySRID)
}

// VirtualTableParameter reads a virtual table <parameter>.
type VirtualTableParameter struct {
	xmlnode.View[geoserver.VirtualTableParameterField]
}

// Name returns the parameter name.
func (p *VirtualTableParameter) Name() string {
	return p.Text(geoserver.VirtualTableParameterName)
}

// DefaultValue returns the value used when a request omits the
// parameter.
func (p *VirtualTableParameter) DefaultValue() string {
	return p.Text(geoserver.VirtualTableParameterDefaultValue)
}

// RegexpValidator returns the pattern parameter values must match.
func (p *VirtualTableParameter) RegexpValidator() string {
	return p.Text(geoserver.VirtualTableParameterRegexpValidator)
}
