package wire

import (
	"math"
	"sort"

	"github.com/chazu/axtree/ax"
)

// EncodeValue converts a Variant to its transport form.
func EncodeValue(v ax.Variant) Value {
	switch v.Tag() {
	case ax.TagBool:
		b, _ := v.Bool()
		var n uint64
		if b {
			n = 1
		}
		return Value{Tag: uint8(ax.TagBool), Num: n}
	case ax.TagInt:
		n, _ := v.Int()
		return Value{Tag: uint8(ax.TagInt), Num: uint64(n)}
	case ax.TagFloat:
		f, _ := v.Float()
		return Value{Tag: uint8(ax.TagFloat), Num: math.Float64bits(f)}
	case ax.TagString:
		s, _ := v.Str()
		return Value{Tag: uint8(ax.TagString), Str: s}
	case ax.TagRect:
		r, _ := v.Rect()
		return Value{Tag: uint8(ax.TagRect), Rect: []float64{r.X, r.Y, r.Width, r.Height}}
	case ax.TagIDList:
		ids, _ := v.IDList()
		raw := make([]uint64, len(ids))
		for i, id := range ids {
			raw[i] = uint64(id)
		}
		return Value{Tag: uint8(ax.TagIDList), IDs: raw}
	default:
		panic("wire.EncodeValue: unknown variant tag")
	}
}

// EncodeNode converts a built node to its transport form: the sparse
// (kind, value) pair list in canonical kind order.
func EncodeNode(n *ax.Node) NodeSnapshot {
	snap := NodeSnapshot{
		ID:      uint64(n.ID()),
		Role:    uint8(n.Role()),
		Actions: uint32(n.Actions()),
	}
	if count := n.PropertyCount(); count > 0 {
		snap.Props = make([]Property, 0, count)
	}
	n.ForEachProperty(func(kind ax.PropertyKind, value ax.Variant) {
		snap.Props = append(snap.Props, Property{
			Kind:  uint8(kind),
			Value: EncodeValue(value),
		})
	})
	return snap
}

// Snapshot captures a whole tree as a full update: every node, the root
// id, and no removals. Nodes are ordered by id so equal trees snapshot to
// identical bytes.
func Snapshot(t *ax.Tree) *TreeUpdate {
	ids := t.IDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	u := &TreeUpdate{
		Format: FormatVersion,
		TreeID: t.ID(),
		Root:   uint64(t.Root()),
		Nodes:  make([]NodeSnapshot, 0, len(ids)),
	}
	for _, id := range ids {
		if n := t.Node(id); n != nil {
			u.Nodes = append(u.Nodes, EncodeNode(n))
		}
	}
	return u
}
