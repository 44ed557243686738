package wire

import (
	"fmt"
	"math"

	"github.com/chazu/axtree/ax"
)

// DecodeValue converts a transport value back to a Variant. Wire data is
// external input, so malformed payloads are errors, not panics.
func DecodeValue(v Value) (ax.Variant, error) {
	switch ax.VariantTag(v.Tag) {
	case ax.TagBool:
		return ax.BoolVariant(v.Num != 0), nil
	case ax.TagInt:
		return ax.IntVariant(int64(v.Num)), nil
	case ax.TagFloat:
		return ax.FloatVariant(math.Float64frombits(v.Num)), nil
	case ax.TagString:
		return ax.StringVariant(v.Str), nil
	case ax.TagRect:
		if len(v.Rect) != 4 {
			return ax.Variant{}, fmt.Errorf("wire: rect payload has %d elements, want 4", len(v.Rect))
		}
		return ax.RectVariant(ax.Rect{
			X:      v.Rect[0],
			Y:      v.Rect[1],
			Width:  v.Rect[2],
			Height: v.Rect[3],
		}), nil
	case ax.TagIDList:
		ids := make([]ax.NodeID, len(v.IDs))
		for i, raw := range v.IDs {
			ids[i] = ax.NodeID(raw)
		}
		return ax.IDListVariant(ids), nil
	default:
		return ax.Variant{}, fmt.Errorf("wire: unknown variant tag %d", v.Tag)
	}
}

// DecodeNode reconstructs a node from its transport form against the
// receiver's interner. The resulting class sharing is re-derived locally:
// structurally equal snapshots yield the same class instance here even
// though the sender's instances were different pointers.
func DecodeNode(snap NodeSnapshot, interner *ax.ClassInterner) (*ax.Node, error) {
	role := ax.Role(snap.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("wire: node %d: unknown role %d", snap.ID, snap.Role)
	}
	actions := ax.ActionSet(snap.Actions)
	if !actions.Valid() {
		return nil, fmt.Errorf("wire: node %d: unknown action bits %#x", snap.ID, snap.Actions)
	}

	b := ax.NewNodeBuilder().SetRole(role).SetActions(actions)
	for _, p := range snap.Props {
		kind := ax.PropertyKind(p.Kind)
		if !kind.Valid() {
			return nil, fmt.Errorf("wire: node %d: unknown property kind %d", snap.ID, p.Kind)
		}
		value, err := DecodeValue(p.Value)
		if err != nil {
			return nil, fmt.Errorf("wire: node %d: property %s: %w", snap.ID, kind, err)
		}
		b.SetProperty(kind, value)
	}
	return b.Build(ax.NodeID(snap.ID), interner), nil
}

// Apply applies an update to a tree: decodes and inserts every node
// (replacing prior versions), processes removals, and adopts the root id.
//
// Decoding is staged before any mutation, so a malformed update leaves the
// tree untouched. Decoded-but-unapplied nodes are released on error.
func Apply(t *ax.Tree, u *TreeUpdate) error {
	if u.Format != FormatVersion {
		return fmt.Errorf("wire: unsupported update format %d", u.Format)
	}

	nodes := make([]*ax.Node, 0, len(u.Nodes))
	for _, snap := range u.Nodes {
		n, err := DecodeNode(snap, t.Interner())
		if err != nil {
			for _, staged := range nodes {
				staged.Release()
			}
			return err
		}
		nodes = append(nodes, n)
	}

	for _, n := range nodes {
		t.Put(n)
	}
	for _, id := range u.Removals {
		t.Remove(ax.NodeID(id))
	}
	if u.Root != 0 {
		t.SetRoot(ax.NodeID(u.Root))
	}
	return nil
}
