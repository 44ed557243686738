package ax

// SentinelOffset marks a property kind as absent in a PropertyIndex.
const SentinelOffset = 0xFF

// PropertyIndex maps every property kind to either an offset into a node's
// property table or SentinelOffset for "not set on this node". One byte per
// kind keeps the whole index inside a small fixed array, so lookup is a
// single load and structural comparison is plain array equality.
//
// A well-formed index assigns unique offsets that are dense from zero: the
// non-sentinel entries form exactly 0..k-1 where k is the number of set
// kinds. The paired property table can then be a plain dense slice.
type PropertyIndex [NumPropertyKinds]uint8

// NewPropertyIndex returns an index with every kind absent.
func NewPropertyIndex() PropertyIndex {
	var ix PropertyIndex
	for i := range ix {
		ix[i] = SentinelOffset
	}
	return ix
}

// Offset returns the table offset for kind, with ok=false if the kind is
// absent or out of range.
func (ix *PropertyIndex) Offset(kind PropertyKind) (uint8, bool) {
	if !kind.Valid() {
		return 0, false
	}
	off := ix[kind]
	if off == SentinelOffset {
		return 0, false
	}
	return off, true
}

// Has returns true if kind has an offset assigned.
func (ix *PropertyIndex) Has(kind PropertyKind) bool {
	_, ok := ix.Offset(kind)
	return ok
}

// Count returns the number of kinds with an offset assigned.
func (ix *PropertyIndex) Count() int {
	n := 0
	for _, off := range ix {
		if off != SentinelOffset {
			n++
		}
	}
	return n
}

// set assigns an offset during index construction. Only the builder and
// the wire decoder construct indices; finished indices are never mutated.
func (ix *PropertyIndex) set(kind PropertyKind, offset uint8) {
	if !kind.Valid() {
		panic("PropertyIndex.set: kind out of range")
	}
	if offset == SentinelOffset {
		panic("PropertyIndex.set: offset collides with sentinel")
	}
	ix[kind] = offset
}

// checkDense panics unless the non-sentinel entries are unique and form
// the dense range 0..k-1. A malformed index is a programming defect: a
// corrupted shared class would poison every node referencing it, so this
// fails loudly rather than being tolerated.
func (ix *PropertyIndex) checkDense() {
	var seen [NumPropertyKinds]bool
	count := 0
	for kind, off := range ix {
		if off == SentinelOffset {
			continue
		}
		if int(off) >= len(ix) {
			panic("PropertyIndex: offset out of range for kind " + PropertyKind(kind).String())
		}
		if seen[off] {
			panic("PropertyIndex: duplicate offset for kind " + PropertyKind(kind).String())
		}
		seen[off] = true
		count++
	}
	for off := 0; off < count; off++ {
		if !seen[off] {
			panic("PropertyIndex: offsets are not dense from zero")
		}
	}
}
