// Package wire implements the cross-process transport encoding for
// accessibility trees. Nodes travel as sparse (kind, value) pair lists with
// their id, role, and action set; property table offsets and class sharing
// never cross the wire — sharing is a process-local memory optimization,
// and a receiver re-derives it through its own interner.
//
// Encoding is CBOR with integer keys and canonical options, so equal
// updates always serialize to identical bytes.
package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// FormatVersion is the current update encoding version. Receivers reject
// updates with a version they do not know.
const FormatVersion = 1

// Value is one property payload on the wire. Tag selects the case; the
// matching payload field is set and the rest are omitted.
type Value struct {
	Tag  uint8     `cbor:"1,keyasint"`
	Num  uint64    `cbor:"2,keyasint,omitempty"` // bool (0/1), int64 bits, float64 bits
	Str  string    `cbor:"3,keyasint,omitempty"`
	Rect []float64 `cbor:"4,keyasint,omitempty"` // x, y, width, height
	IDs  []uint64  `cbor:"5,keyasint,omitempty"`
}

// Property pairs a property kind with its value.
type Property struct {
	Kind  uint8 `cbor:"1,keyasint"`
	Value Value `cbor:"2,keyasint"`
}

// NodeSnapshot is one node in transport form.
type NodeSnapshot struct {
	ID      uint64     `cbor:"1,keyasint"`
	Role    uint8      `cbor:"2,keyasint"`
	Actions uint32     `cbor:"3,keyasint,omitempty"`
	Props   []Property `cbor:"4,keyasint,omitempty"`
}

// TreeUpdate carries a batch of node insertions/replacements and removals
// for one tree. An update with every live node and Root set is a full
// snapshot; smaller batches are incremental.
type TreeUpdate struct {
	Format   uint8          `cbor:"1,keyasint"`
	TreeID   string         `cbor:"2,keyasint,omitempty"`
	Root     uint64         `cbor:"3,keyasint,omitempty"`
	Nodes    []NodeSnapshot `cbor:"4,keyasint,omitempty"`
	Removals []uint64       `cbor:"5,keyasint,omitempty"`
}

// cborEncMode holds CBOR encoding options with canonical mode for
// deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalUpdate serializes a TreeUpdate to CBOR bytes.
func MarshalUpdate(u *TreeUpdate) ([]byte, error) {
	return cborEncMode.Marshal(u)
}

// UnmarshalUpdate deserializes a TreeUpdate from CBOR bytes.
func UnmarshalUpdate(data []byte) (*TreeUpdate, error) {
	var u TreeUpdate
	if err := cbor.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("wire: unmarshal update: %w", err)
	}
	if u.Format != FormatVersion {
		return nil, fmt.Errorf("wire: unsupported update format %d", u.Format)
	}
	return &u, nil
}
