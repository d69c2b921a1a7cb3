package omxml

import "github.com/OpenMath/go-openmath/om"

// Namespace is the OpenMath XML namespace.
const Namespace = "http://www.openmath.org/OpenMath"

// Element names of the OpenMath XML encoding.
const (
	TagObject        = "OMOBJ"
	TagInteger       = "OMI"
	TagFloat         = "OMF"
	TagString        = "OMSTR"
	TagBytes         = "OMB"
	TagSymbol        = "OMS"
	TagVariable      = "OMV"
	TagApplication   = "OMA"
	TagAttribution   = "OMATTR"
	TagAttrPairs     = "OMATP"
	TagBinding       = "OMBIND"
	TagBindVariables = "OMBVAR"
	TagError         = "OME"
	TagReference     = "OMR"
	TagForeign       = "OMFOREIGN"
)

// Attribute names of the OpenMath XML encoding.
const (
	AttrID       = "id"
	AttrCDBase   = "cdbase"
	AttrCD       = "cd"
	AttrName     = "name"
	AttrHref     = "href"
	AttrDec      = "dec"
	AttrEncoding = "encoding"
	AttrVersion  = "version"
)

var tagTypes = map[string]om.Type{
	TagInteger:     om.IntegerType,
	TagFloat:       om.FloatType,
	TagString:      om.StringType,
	TagBytes:       om.BytesType,
	TagSymbol:      om.SymbolType,
	TagVariable:    om.VariableType,
	TagApplication: om.ApplicationType,
	TagAttribution: om.AttributionType,
	TagBinding:     om.BindingType,
	TagError:       om.ErrorType,
	TagReference:   om.ReferenceType,
	TagForeign:     om.ForeignType,
}

var typeTags = map[om.Type]string{}

func init() {
	for tag, t := range tagTypes {
		typeTags[t] = tag
	}
}

// TypeForTag maps an element name to its node variant. The second
// result is false for names outside the fixed tag set (including the
// OMOBJ, OMATP and OMBVAR wrappers, which are not variants).
func TypeForTag(tag string) (om.Type, bool) {
	t, ok := tagTypes[tag]
	return t, ok
}

// TagForType maps a node variant to its element name.
func TagForType(t om.Type) string {
	return typeTags[t]
}
