package wire

import (
	"testing"

	"github.com/chazu/axtree/ax"
)

func buildSampleTree(t *testing.T) *ax.Tree {
	t.Helper()
	tree := ax.NewTree()
	tree.Put(ax.NewNodeBuilder().
		SetRole(ax.RoleWindow).
		SetString(ax.KindLabel, "Demo").
		SetIDList(ax.KindChildren, []ax.NodeID{2, 3}).
		Build(1, tree.Interner()))
	tree.Put(ax.NewNodeBuilder().
		SetRole(ax.RoleStaticText).
		SetString(ax.KindText, "Hello").
		SetRect(ax.KindBounds, ax.Rect{X: 0, Y: 0, Width: 10, Height: 10}).
		Build(2, tree.Interner()))
	tree.Put(ax.NewNodeBuilder().
		SetRole(ax.RoleButton).
		SetActions(ax.ActionsOf(ax.ActionClick, ax.ActionFocus)).
		SetString(ax.KindLabel, "OK").
		SetBool(ax.KindDisabled, false).
		SetFloat(ax.KindNumericValue, 0.5).
		SetInt(ax.KindLevel, 2).
		Build(3, tree.Interner()))
	tree.SetRoot(1)
	return tree
}

// ---------------------------------------------------------------------------
// Round trip
// ---------------------------------------------------------------------------

func TestSnapshotRoundTrip(t *testing.T) {
	src := buildSampleTree(t)
	defer src.Clear()

	data, err := MarshalUpdate(Snapshot(src))
	if err != nil {
		t.Fatalf("MarshalUpdate: %v", err)
	}

	update, err := UnmarshalUpdate(data)
	if err != nil {
		t.Fatalf("UnmarshalUpdate: %v", err)
	}
	if update.TreeID != src.ID() {
		t.Errorf("TreeID = %q, want %q", update.TreeID, src.ID())
	}

	// The receiver runs its own interner and re-derives sharing.
	dst := ax.NewTreeWithID(update.TreeID)
	defer dst.Clear()
	if err := Apply(dst, update); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if dst.Len() != src.Len() {
		t.Fatalf("dst.Len() = %d, want %d", dst.Len(), src.Len())
	}
	if dst.Root() != src.Root() {
		t.Errorf("dst.Root() = %d, want %d", dst.Root(), src.Root())
	}

	for _, id := range src.IDs() {
		sn, dn := src.Node(id), dst.Node(id)
		if dn == nil {
			t.Fatalf("node %d missing after round trip", id)
		}
		if dn.Role() != sn.Role() {
			t.Errorf("node %d role = %v, want %v", id, dn.Role(), sn.Role())
		}
		if dn.Actions() != sn.Actions() {
			t.Errorf("node %d actions = %v, want %v", id, dn.Actions(), sn.Actions())
		}
		sn.ForEachProperty(func(kind ax.PropertyKind, want ax.Variant) {
			got, ok := dn.Get(kind)
			if !ok {
				t.Errorf("node %d missing property %s", id, kind)
				return
			}
			if !got.Equal(want) {
				t.Errorf("node %d property %s = %v, want %v", id, kind, got, want)
			}
		})
		if dn.PropertyCount() != sn.PropertyCount() {
			t.Errorf("node %d has %d properties, want %d",
				id, dn.PropertyCount(), sn.PropertyCount())
		}
	}
}

// Class sharing never crosses the wire, but structurally equal nodes must
// re-converge on one class inside the receiver's interner.
func TestDecodeRederivesSharing(t *testing.T) {
	src := ax.NewTree()
	defer src.Clear()
	for i := ax.NodeID(1); i <= 4; i++ {
		src.Put(ax.NewNodeBuilder().
			SetRole(ax.RoleListItem).
			SetString(ax.KindLabel, "item").
			Build(i, src.Interner()))
	}

	data, err := MarshalUpdate(Snapshot(src))
	if err != nil {
		t.Fatalf("MarshalUpdate: %v", err)
	}
	update, err := UnmarshalUpdate(data)
	if err != nil {
		t.Fatalf("UnmarshalUpdate: %v", err)
	}

	dst := ax.NewTree()
	defer dst.Clear()
	if err := Apply(dst, update); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if dst.Interner().Len() != 1 {
		t.Errorf("receiver interner Len() = %d, want 1", dst.Interner().Len())
	}
	cls := dst.Node(1).Class()
	for i := ax.NodeID(2); i <= 4; i++ {
		if dst.Node(i).Class() != cls {
			t.Errorf("node %d did not re-share the class", i)
		}
	}
	if refs := dst.Interner().LiveRefs(cls); refs != 4 {
		t.Errorf("LiveRefs = %d, want 4", refs)
	}
}

func TestDeterministicEncoding(t *testing.T) {
	src := buildSampleTree(t)
	defer src.Clear()

	a, err := MarshalUpdate(Snapshot(src))
	if err != nil {
		t.Fatalf("MarshalUpdate: %v", err)
	}
	b, err := MarshalUpdate(Snapshot(src))
	if err != nil {
		t.Fatalf("MarshalUpdate: %v", err)
	}
	if string(a) != string(b) {
		t.Error("snapshots of an unchanged tree should encode identically")
	}
}

// ---------------------------------------------------------------------------
// Incremental updates
// ---------------------------------------------------------------------------

func TestApplyIncrementalUpdate(t *testing.T) {
	tree := buildSampleTree(t)
	defer tree.Clear()

	update := &TreeUpdate{
		Format: FormatVersion,
		Nodes: []NodeSnapshot{{
			ID:   2,
			Role: uint8(ax.RoleStaticText),
			Props: []Property{{
				Kind:  uint8(ax.KindText),
				Value: Value{Tag: uint8(ax.TagString), Str: "Goodbye"},
			}},
		}},
		Removals: []uint64{3},
	}
	if err := Apply(tree, update); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if tree.Node(3) != nil {
		t.Error("node 3 should be removed")
	}
	v, ok := tree.Node(2).Get(ax.KindText)
	if !ok {
		t.Fatal("node 2 lost its Text property")
	}
	if s, _ := v.Str(); s != "Goodbye" {
		t.Errorf("node 2 Text = %q, want Goodbye", s)
	}
	// The replacement dropped Bounds; the old shape must be gone with it.
	if tree.Node(2).Has(ax.KindBounds) {
		t.Error("replacement node should not carry Bounds")
	}
}

// ---------------------------------------------------------------------------
// Malformed input
// ---------------------------------------------------------------------------

func TestUnmarshalRejectsBadInput(t *testing.T) {
	if _, err := UnmarshalUpdate([]byte{0xFF, 0x00}); err == nil {
		t.Error("garbage bytes should not unmarshal")
	}

	data, err := MarshalUpdate(&TreeUpdate{Format: 99})
	if err != nil {
		t.Fatalf("MarshalUpdate: %v", err)
	}
	if _, err := UnmarshalUpdate(data); err == nil {
		t.Error("unknown format version should be rejected")
	}
}

func TestApplyRejectsMalformedNodes(t *testing.T) {
	tests := []struct {
		name string
		snap NodeSnapshot
	}{
		{"unknown role", NodeSnapshot{ID: 1, Role: 200}},
		{"unknown action bits", NodeSnapshot{ID: 1, Actions: 1 << 30}},
		{"unknown kind", NodeSnapshot{ID: 1, Props: []Property{{Kind: 200}}}},
		{"unknown tag", NodeSnapshot{ID: 1, Props: []Property{{
			Kind:  uint8(ax.KindText),
			Value: Value{Tag: 50},
		}}}},
		{"short rect", NodeSnapshot{ID: 1, Props: []Property{{
			Kind:  uint8(ax.KindBounds),
			Value: Value{Tag: uint8(ax.TagRect), Rect: []float64{1, 2}},
		}}}},
	}
	for _, tt := range tests {
		tree := ax.NewTree()
		update := &TreeUpdate{Format: FormatVersion, Nodes: []NodeSnapshot{tt.snap}}
		if err := Apply(tree, update); err == nil {
			t.Errorf("%s: Apply should fail", tt.name)
		}
		if tree.Len() != 0 {
			t.Errorf("%s: failed Apply mutated the tree", tt.name)
		}
		if tree.Interner().Len() != 0 {
			t.Errorf("%s: failed Apply leaked classes", tt.name)
		}
		tree.Clear()
	}
}

// A mix of one good and one bad node must stage-and-release cleanly.
func TestApplyAtomicOnError(t *testing.T) {
	tree := ax.NewTree()
	defer tree.Clear()

	update := &TreeUpdate{
		Format: FormatVersion,
		Nodes: []NodeSnapshot{
			{ID: 1, Role: uint8(ax.RoleButton)},
			{ID: 2, Role: 200},
		},
	}
	if err := Apply(tree, update); err == nil {
		t.Fatal("Apply should fail on the malformed node")
	}
	if tree.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tree.Len())
	}
	if tree.Interner().Len() != 0 {
		t.Errorf("interner Len() = %d, want 0 (staged node not released)", tree.Interner().Len())
	}
}
