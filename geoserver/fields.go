// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoserver

// This file contains the field schemas of every resource.  Each field
// constant is the path of one child element below the resource's root
// element; a "/" separates nested elements.

// AuthorityURLField names a child of <AuthorityURL>.
type AuthorityURLField string

// Fields of an authority URL.
const (
	AuthorityURLName AuthorityURLField = "name"
	AuthorityURLHref AuthorityURLField = "href"
)

// IdentifierField names a child of <Identifier>.
type IdentifierField string

// Fields of a layer identifier.
const (
	IdentifierAuthority  IdentifierField = "authority"
	IdentifierIdentifier IdentifierField = "identifier"
)

// AttributeField names a child of a feature type <attribute>.
type AttributeField string

// Fields of a feature type attribute.
const (
	AttributeName      AttributeField = "name"
	AttributeMinOccurs AttributeField = "minOccurs"
	AttributeMaxOccurs AttributeField = "maxOccurs"
	AttributeNillable  AttributeField = "nillable"
	AttributeBinding   AttributeField = "binding"
	AttributeLength    AttributeField = "length"
)

// MetadataLinkField names a child of <metadataLink>.
type MetadataLinkField string

// Fields of a metadata link.
const (
	MetadataLinkType         MetadataLinkField = "type"
	MetadataLinkMetadataType MetadataLinkField = "metadataType"
	MetadataLinkContent      MetadataLinkField = "content"
)

// CoverageDimensionField names a child of <coverageDimension>.
type CoverageDimensionField string

// Fields of a coverage dimension (band).
const (
	CoverageDimensionName          CoverageDimensionField = "name"
	CoverageDimensionDescription   CoverageDimensionField = "description"
	CoverageDimensionRangeMin      CoverageDimensionField = "range/min"
	CoverageDimensionRangeMax      CoverageDimensionField = "range/max"
	CoverageDimensionUnit          CoverageDimensionField = "unit"
	CoverageDimensionDimensionType CoverageDimensionField = "dimensionType/name"
)

// DimensionInfoField names a child of <dimensionInfo>.
type DimensionInfoField string

// Fields of dimension (time, elevation, custom) metadata.
const (
	DimensionInfoEnabled             DimensionInfoField = "enabled"
	DimensionInfoAttribute           DimensionInfoField = "attribute"
	DimensionInfoEndAttribute        DimensionInfoField = "endAttribute"
	DimensionInfoPresentation        DimensionInfoField = "presentation"
	DimensionInfoResolution          DimensionInfoField = "resolution"
	DimensionInfoUnits               DimensionInfoField = "units"
	DimensionInfoUnitSymbol          DimensionInfoField = "unitSymbol"
	DimensionInfoNearestMatchEnabled DimensionInfoField = "nearestMatchEnabled"
	DimensionInfoDefaultStrategy     DimensionInfoField = "defaultValue/strategy"
	DimensionInfoDefaultReference    DimensionInfoField = "defaultValue/referenceValue"
)

// VirtualTableField names a child of <virtualTable>.
type VirtualTableField string

// Fields of a JDBC virtual table (SQL view).
const (
	VirtualTableName      VirtualTableField = "name"
	VirtualTableSQL       VirtualTableField = "sql"
	VirtualTableEscapeSQL VirtualTableField = "escapeSql"
	VirtualTableKeyColumn VirtualTableField = "keyColumn"
)

// VirtualTableGeometryField names a child of a virtual table <geometry>.
type VirtualTableGeometryField string

// Fields of a virtual table geometry column.
const (
	VirtualTableGeometryName VirtualTableGeometryField = "name"
	VirtualTableGeometryType VirtualTableGeometryField = "type"
	VirtualTableGeometrySRID VirtualTableGeometryField = "srid"
)

// VirtualTableParameterField names a child of a virtual table <parameter>.
type VirtualTableParameterField string

// Fields of a virtual table query parameter.
const (
	VirtualTableParameterName            VirtualTableParameterField = "name"
	VirtualTableParameterDefaultValue    VirtualTableParameterField = "defaultValue"
	VirtualTableParameterRegexpValidator VirtualTableParameterField = "regexpValidator"
)

// ResourceField names a child common to <featureType> and <coverage>.
type ResourceField string

// Fields shared by every published resource.
const (
	ResourceName             ResourceField = "name"
	ResourceNativeName       ResourceField = "nativeName"
	ResourceTitle            ResourceField = "title"
	ResourceAbstract         ResourceField = "abstract"
	ResourceDescription      ResourceField = "description"
	ResourceEnabled          ResourceField = "enabled"
	ResourceSRS              ResourceField = "srs"
	ResourceNativeCRS        ResourceField = "nativeCRS"
	ResourceProjectionPolicy ResourceField = "projectionPolicy"
	ResourceNamespace        ResourceField = "namespace/name"
	ResourceStore            ResourceField = "store/name"
	ResourceAdvertised       ResourceField = "advertised"

	// FeatureType-specific fields

	ResourceMaxFeatures ResourceField = "maxFeatures"
	ResourceNumDecimals ResourceField = "numDecimals"
	ResourceCQLFilter   ResourceField = "cqlFilter"

	// Coverage-specific fields

	ResourceNativeFormat               ResourceField = "nativeFormat"
	ResourceNativeCoverageName         ResourceField = "nativeCoverageName"
	ResourceDefaultInterpolationMethod ResourceField = "defaultInterpolationMethod"
)

// BoundingBoxField names a child of a bounding box element.
type BoundingBoxField string

// Fields of <latLonBoundingBox>, <nativeBoundingBox>, and <bounds>.
const (
	BoundingBoxMinX BoundingBoxField = "minx"
	BoundingBoxMaxX BoundingBoxField = "maxx"
	BoundingBoxMinY BoundingBoxField = "miny"
	BoundingBoxMaxY BoundingBoxField = "maxy"
	BoundingBoxCRS  BoundingBoxField = "crs"
)

// LayerField names a child of <layer>.
type LayerField string

// Fields of a published layer.
const (
	LayerName         LayerField = "name"
	LayerPath         LayerField = "path"
	LayerKindField    LayerField = "type"
	LayerDefaultStyle LayerField = "defaultStyle/name"
	LayerEnabled      LayerField = "enabled"
	LayerQueryable    LayerField = "queryable"
	LayerAdvertised   LayerField = "advertised"
	LayerOpaque       LayerField = "opaque"
	LayerResource     LayerField = "resource/name"
)

// LayerGroupField names a child of <layerGroup>.
type LayerGroupField string

// Fields of a layer group.
const (
	LayerGroupName      LayerGroupField = "name"
	LayerGroupModeField LayerGroupField = "mode"
	LayerGroupTitle     LayerGroupField = "title"
	LayerGroupAbstract  LayerGroupField = "abstractTxt"
	LayerGroupWorkspace LayerGroupField = "workspace/name"
)

// WorkspaceField names a child of <workspace>.
type WorkspaceField string

// Fields of a workspace.
const (
	WorkspaceName     WorkspaceField = "name"
	WorkspaceIsolated WorkspaceField = "isolated"
)

// NamespaceField names a child of <namespace>.
type NamespaceField string

// Fields of a namespace.
const (
	NamespacePrefix NamespaceField = "prefix"
	NamespaceURI    NamespaceField = "uri"
)

// StoreField names a child of <dataStore>, <coverageStore>, or <wmsStore>.
type StoreField string

// Fields shared by all stores, and specific to some store kinds.
const (
	StoreName        StoreField = "name"
	StoreDescription StoreField = "description"
	StoreType        StoreField = "type"
	StoreEnabled     StoreField = "enabled"
	StoreWorkspace   StoreField = "workspace/name"

	// Coverage store fields

	StoreURL StoreField = "url"

	// WMS store fields

	StoreCapabilitiesURL StoreField = "capabilitiesURL"
	StoreUser            StoreField = "user"
	StorePassword        StoreField = "password"
	StoreMaxConnections  StoreField = "maxConnections"
	StoreReadTimeout     StoreField = "readTimeout"
	StoreConnectTimeout  StoreField = "connectTimeout"
)

// StyleField names a child of <style>.
type StyleField string

// Fields of a style.
const (
	StyleName            StyleField = "name"
	StyleFilename        StyleField = "filename"
	StyleFormat          StyleField = "format"
	StyleLanguageVersion StyleField = "languageVersion/version"
	StyleWorkspace       StyleField = "workspace/name"
)

// ServiceField names a child of the <wms>, <wfs>, <wcs>, or <wmts>
// service settings element.
type ServiceField string

// Fields of OGC service settings.
const (
	ServiceEnabled           ServiceField = "enabled"
	ServiceName              ServiceField = "name"
	ServiceTitle             ServiceField = "title"
	ServiceAbstract          ServiceField = "abstrct"
	ServiceMaintainer        ServiceField = "maintainer"
	ServiceAccessConstraints ServiceField = "accessConstraints"
	ServiceFees              ServiceField = "fees"
	ServiceOnlineResource    ServiceField = "onlineResource"
	ServiceSchemaBaseURL     ServiceField = "schemaBaseURL"
	ServiceVerbose           ServiceField = "verbose"
	ServiceCiteCompliant     ServiceField = "citeCompliant"
	ServiceWorkspace         ServiceField = "workspace/name"
	ServiceMaxFeatures       ServiceField = "maxFeatures"
	ServiceLevel             ServiceField = "serviceLevel"
)

// SeedRequestField names a child of a GeoWebCache <seedRequest>.
type SeedRequestField string

// Fields of a seed request.
const (
	SeedRequestName        SeedRequestField = "name"
	SeedRequestSRS         SeedRequestField = "srs/number"
	SeedRequestZoomStart   SeedRequestField = "zoomStart"
	SeedRequestZoomStop    SeedRequestField = "zoomStop"
	SeedRequestFormat      SeedRequestField = "format"
	SeedRequestKind        SeedRequestField = "type"
	SeedRequestThreadCount SeedRequestField = "threadCount"
	SeedRequestGridSetID   SeedRequestField = "gridSetId"
)

// AboutField names a child of a <resource> in the /about/version
// document.
type AboutField string

// Fields of a component in the version report.
const (
	AboutVersion        AboutField = "Version"
	AboutGitRevision    AboutField = "Git-Revision"
	AboutBuildTimestamp AboutField = "Build-Timestamp"
)
