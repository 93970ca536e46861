package model

import "time"

// DummyLocation is the reserved storage slot for items without a physical position.
const DummyLocation = "00"

// DummyLabel is how DummyLocation is shown in option lists.
const DummyLabel = "00 (Dummy)"

// Item represents one stocked part, identified by its article code.
type Item struct {
	Article  string `json:"article"`
	Name     string `json:"name"`
	BN       string `json:"bn"`
	Category string `json:"category"`
	Location string `json:"location"`

	Qty       int `json:"qty"`
	PackSize  int `json:"pack_size"`
	SmallPack int `json:"small_pack"`

	Standard     string `json:"standard"`
	Head         string `json:"head"`
	Recess       string `json:"recess"`
	Dim1         string `json:"dim1"`
	Dim2         string `json:"dim2"`
	ThreadSize   string `json:"thread_size"`
	Length       string `json:"length"`
	Pitch        string `json:"pitch"`
	ShankLength  string `json:"shank_length"`
	HeadD        string `json:"head_d"`
	HeadH        string `json:"head_h"`
	AF           string `json:"af"`
	NutH         string `json:"nut_h"`
	WasherID     string `json:"washer_id"`
	WasherOD     string `json:"washer_od"`
	WasherT      string `json:"washer_t"`
	Material     string `json:"material"`
	Grade        string `json:"grade"`
	Plating      string `json:"plating"`
	FunctionCoat string `json:"function_coat"`
	HERisk       string `json:"he_risk"`

	Notes string `json:"notes"`
	Photo string `json:"photo"`

	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDummy reports whether the item has no physical slot.
func (it Item) IsDummy() bool {
	return it.Location == DummyLocation
}

// LocationLabel returns the display form of the item's location.
func (it Item) LocationLabel() string {
	return LocationLabel(it.Location)
}

// LocationLabel maps the raw dummy sentinel to its display label.
func LocationLabel(location string) string {
	if location == DummyLocation {
		return DummyLabel
	}
	return location
}

// Attribute names a string-valued descriptive field of an Item.
type Attribute string

// Attributes.
const (
	AttrCategory     Attribute = "category"
	AttrStandard     Attribute = "standard"
	AttrMaterial     Attribute = "material"
	AttrGrade        Attribute = "grade"
	AttrPlating      Attribute = "plating"
	AttrHead         Attribute = "head"
	AttrRecess       Attribute = "recess"
	AttrDim1         Attribute = "dim1"
	AttrDim2         Attribute = "dim2"
	AttrLocation     Attribute = "location"
	AttrThreadSize   Attribute = "thread_size"
	AttrLength       Attribute = "length"
	AttrPitch        Attribute = "pitch"
	AttrShankLength  Attribute = "shank_length"
	AttrHeadD        Attribute = "head_d"
	AttrHeadH        Attribute = "head_h"
	AttrAF           Attribute = "af"
	AttrNutH         Attribute = "nut_h"
	AttrWasherID     Attribute = "washer_id"
	AttrWasherOD     Attribute = "washer_od"
	AttrWasherT      Attribute = "washer_t"
	AttrFunctionCoat Attribute = "function_coat"
	AttrHERisk       Attribute = "he_risk"
)

// FilterAttributes are the sidebar facets, in the order filters are applied.
var FilterAttributes = []Attribute{
	AttrStandard, AttrMaterial, AttrGrade, AttrPlating,
	AttrHead, AttrRecess, AttrDim1, AttrDim2, AttrLocation,
}

// TechnicalAttributes are the fields compared when looking for an equivalent part.
var TechnicalAttributes = []Attribute{
	AttrStandard, AttrHead, AttrRecess, AttrThreadSize, AttrLength, AttrPitch,
	AttrShankLength, AttrHeadD, AttrHeadH, AttrAF, AttrWasherID, AttrWasherOD,
	AttrWasherT, AttrMaterial, AttrGrade, AttrPlating, AttrFunctionCoat, AttrHERisk,
}

// Attr returns the value of a descriptive attribute, or "" for unknown names.
func (it Item) Attr(a Attribute) string {
	switch a {
	case AttrCategory:
		return it.Category
	case AttrStandard:
		return it.Standard
	case AttrMaterial:
		return it.Material
	case AttrGrade:
		return it.Grade
	case AttrPlating:
		return it.Plating
	case AttrHead:
		return it.Head
	case AttrRecess:
		return it.Recess
	case AttrDim1:
		return it.Dim1
	case AttrDim2:
		return it.Dim2
	case AttrLocation:
		return it.Location
	case AttrThreadSize:
		return it.ThreadSize
	case AttrLength:
		return it.Length
	case AttrPitch:
		return it.Pitch
	case AttrShankLength:
		return it.ShankLength
	case AttrHeadD:
		return it.HeadD
	case AttrHeadH:
		return it.HeadH
	case AttrAF:
		return it.AF
	case AttrNutH:
		return it.NutH
	case AttrWasherID:
		return it.WasherID
	case AttrWasherOD:
		return it.WasherOD
	case AttrWasherT:
		return it.WasherT
	case AttrFunctionCoat:
		return it.FunctionCoat
	case AttrHERisk:
		return it.HERisk
	}
	return ""
}

// ParseAttribute validates a facet name coming from outside the process.
func ParseAttribute(s string) (Attribute, bool) {
	a := Attribute(s)
	if a == AttrCategory || a == AttrNutH || a == AttrLocation {
		return a, true
	}
	for _, known := range TechnicalAttributes {
		if a == known {
			return a, true
		}
	}
	for _, known := range FilterAttributes {
		if a == known {
			return a, true
		}
	}
	return "", false
}

// Field is one named, comparable value of an Item.
type Field struct {
	Name  string
	Value any
}

// Fields lists every comparable field except provenance, in a fixed order.
func (it Item) Fields() []Field {
	return []Field{
		{"article", it.Article},
		{"name", it.Name},
		{"bn", it.BN},
		{"category", it.Category},
		{"location", it.Location},
		{"qty", it.Qty},
		{"pack_size", it.PackSize},
		{"small_pack", it.SmallPack},
		{"standard", it.Standard},
		{"head", it.Head},
		{"recess", it.Recess},
		{"dim1", it.Dim1},
		{"dim2", it.Dim2},
		{"thread_size", it.ThreadSize},
		{"length", it.Length},
		{"pitch", it.Pitch},
		{"shank_length", it.ShankLength},
		{"head_d", it.HeadD},
		{"head_h", it.HeadH},
		{"af", it.AF},
		{"nut_h", it.NutH},
		{"washer_id", it.WasherID},
		{"washer_od", it.WasherOD},
		{"washer_t", it.WasherT},
		{"material", it.Material},
		{"grade", it.Grade},
		{"plating", it.Plating},
		{"function_coat", it.FunctionCoat},
		{"he_risk", it.HERisk},
		{"notes", it.Notes},
		{"photo", it.Photo},
	}
}
