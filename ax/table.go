package ax

// PropertyTable is the dense sequence of property values set on exactly one
// node. table entry i holds the value for whichever kind the owning class's
// PropertyIndex maps to offset i. The table is owned exclusively by its
// node and never mutated after construction; changing a property means
// building a replacement node.
type PropertyTable struct {
	values []Variant
}

// newPropertyTable wraps an already-packed value slice. The builder is the
// only producer; it guarantees the slice is dense and never aliased.
func newPropertyTable(values []Variant) PropertyTable {
	return PropertyTable{values: values}
}

// Get returns the value at the given offset.
// Panics if offset is out of range; a bad offset can only come from a
// class/table pairing bug, not from caller input.
func (t *PropertyTable) Get(offset uint8) Variant {
	if int(offset) >= len(t.values) {
		panic("PropertyTable.Get: offset out of range")
	}
	return t.values[offset]
}

// Len returns the number of values in the table.
func (t *PropertyTable) Len() int {
	return len(t.values)
}
