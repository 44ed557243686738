package ax

// PropertyKind identifies one of the globally enumerated node properties.
//
// The declaration order below is the canonical global order: when a builder
// finalizes a node, property table offsets are assigned by scanning the full
// kind domain in this order. Two builders that set the same kinds therefore
// always derive byte-identical property indices, no matter in which order
// their SetProperty calls arrived. Class sharing depends on this.
//
// Role is deliberately not a property kind; it lives directly in NodeClass.
//
// The total count must stay below 256 so an index entry fits in one byte.
type PropertyKind uint8

const (
	// String-valued properties.
	KindText PropertyKind = iota
	KindLabel
	KindDescription
	KindPlaceholder
	KindTooltip
	KindURL
	KindLanguage
	KindAccessKey

	// Boolean-valued properties.
	KindChecked
	KindDisabled
	KindExpanded
	KindHidden
	KindModal
	KindMultiline
	KindReadOnly
	KindRequired
	KindSelected

	// Integer-valued properties.
	KindLevel
	KindRowCount
	KindColumnCount
	KindRowIndex
	KindColumnIndex

	// Float-valued properties.
	KindNumericValue
	KindMinNumericValue
	KindMaxNumericValue
	KindNumericValueStep

	// Geometry.
	KindBounds

	// Node-id-list relations.
	KindChildren
	KindControls
	KindLabelledBy
	KindFlowTo

	// NumPropertyKinds is the size of the kind domain. It is not itself a
	// valid kind.
	NumPropertyKinds
)

var kindNames = [NumPropertyKinds]string{
	KindText:             "Text",
	KindLabel:            "Label",
	KindDescription:      "Description",
	KindPlaceholder:      "Placeholder",
	KindTooltip:          "Tooltip",
	KindURL:              "URL",
	KindLanguage:         "Language",
	KindAccessKey:        "AccessKey",
	KindChecked:          "Checked",
	KindDisabled:         "Disabled",
	KindExpanded:         "Expanded",
	KindHidden:           "Hidden",
	KindModal:            "Modal",
	KindMultiline:        "Multiline",
	KindReadOnly:         "ReadOnly",
	KindRequired:         "Required",
	KindSelected:         "Selected",
	KindLevel:            "Level",
	KindRowCount:         "RowCount",
	KindColumnCount:      "ColumnCount",
	KindRowIndex:         "RowIndex",
	KindColumnIndex:      "ColumnIndex",
	KindNumericValue:     "NumericValue",
	KindMinNumericValue:  "MinNumericValue",
	KindMaxNumericValue:  "MaxNumericValue",
	KindNumericValueStep: "NumericValueStep",
	KindBounds:           "Bounds",
	KindChildren:         "Children",
	KindControls:         "Controls",
	KindLabelledBy:       "LabelledBy",
	KindFlowTo:           "FlowTo",
}

// Valid returns true if k is within the enumerated kind domain.
func (k PropertyKind) Valid() bool {
	return k < NumPropertyKinds
}

// String returns the kind name, or "?" for out-of-range values.
func (k PropertyKind) String() string {
	if !k.Valid() {
		return "?"
	}
	return kindNames[k]
}
