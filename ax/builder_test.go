package ax

import "testing"

// ---------------------------------------------------------------------------
// Building
// ---------------------------------------------------------------------------

func TestBuildRoundTripAllPayloadTypes(t *testing.T) {
	ci := NewClassInterner()

	assignments := map[PropertyKind]Variant{
		KindText:         StringVariant("Hello"),
		KindChecked:      BoolVariant(true),
		KindLevel:        IntVariant(3),
		KindNumericValue: FloatVariant(0.5),
		KindBounds:       RectVariant(Rect{0, 0, 10, 10}),
		KindChildren:     IDListVariant([]NodeID{4, 5}),
	}

	b := NewNodeBuilder().SetRole(RoleSlider)
	for kind, value := range assignments {
		b.SetProperty(kind, value)
	}
	n := b.Build(1, ci)
	defer n.Release()

	for kind, want := range assignments {
		got, ok := n.Get(kind)
		if !ok {
			t.Errorf("Get(%s) absent, want present", kind)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("Get(%s) = %v, want %v", kind, got, want)
		}
	}
	if n.PropertyCount() != len(assignments) {
		t.Errorf("PropertyCount() = %d, want %d", n.PropertyCount(), len(assignments))
	}
}

func TestBuildLastWriteWins(t *testing.T) {
	ci := NewClassInterner()
	n := NewNodeBuilder().
		SetString(KindText, "first").
		SetString(KindText, "second").
		Build(1, ci)
	defer n.Release()

	v, ok := n.Get(KindText)
	if !ok {
		t.Fatal("Get(Text) absent")
	}
	if s, _ := v.Str(); s != "second" {
		t.Errorf("Get(Text) = %q, want %q", s, "second")
	}
	if n.PropertyCount() != 1 {
		t.Errorf("PropertyCount() = %d, want 1", n.PropertyCount())
	}
}

// Two builders setting the same kinds in different orders must share a
// class: offsets come from the canonical kind order, not call order.
func TestBuildOrderIndependentSharing(t *testing.T) {
	ci := NewClassInterner()

	a := NewNodeBuilder().
		SetRole(RoleStaticText).
		SetString(KindText, "a").
		SetRect(KindBounds, Rect{0, 0, 1, 1}).
		Build(1, ci)
	defer a.Release()

	b := NewNodeBuilder().
		SetRole(RoleStaticText).
		SetRect(KindBounds, Rect{5, 5, 1, 1}).
		SetString(KindText, "b").
		Build(2, ci)
	defer b.Release()

	if a.Class() != b.Class() {
		t.Error("same kind set in different call order should share a class")
	}
}

func TestBuildOffsetsDenseInCanonicalOrder(t *testing.T) {
	ci := NewClassInterner()
	// Set in reverse canonical order on purpose.
	n := NewNodeBuilder().
		SetIDList(KindChildren, nil).
		SetRect(KindBounds, Rect{}).
		SetBool(KindChecked, false).
		SetString(KindText, "").
		Build(1, ci)
	defer n.Release()

	wantOffsets := map[PropertyKind]uint8{
		KindText:     0, // Text declared first
		KindChecked:  1,
		KindBounds:   2,
		KindChildren: 3,
	}
	for kind, want := range wantOffsets {
		got, ok := n.Class().PropertyOffset(kind)
		if !ok {
			t.Errorf("PropertyOffset(%s) absent", kind)
			continue
		}
		if got != want {
			t.Errorf("PropertyOffset(%s) = %d, want %d", kind, got, want)
		}
	}
}

func TestClearPropertyAffectsShape(t *testing.T) {
	ci := NewClassInterner()

	a := NewNodeBuilder().SetString(KindText, "x").Build(1, ci)
	defer a.Release()

	b := NewNodeBuilder().
		SetString(KindText, "x").
		SetBool(KindChecked, true).
		ClearProperty(KindChecked).
		Build(2, ci)
	defer b.Release()

	if a.Class() != b.Class() {
		t.Error("cleared property should not contribute to the class shape")
	}
}

func TestBuildEmpty(t *testing.T) {
	ci := NewClassInterner()
	n := NewNodeBuilder().Build(1, ci)
	defer n.Release()

	if n.Role() != RoleUnknown {
		t.Errorf("Role() = %v, want Unknown", n.Role())
	}
	if !n.Actions().IsEmpty() {
		t.Errorf("Actions() = %v, want empty", n.Actions())
	}
	if n.PropertyCount() != 0 {
		t.Errorf("PropertyCount() = %d, want 0", n.PropertyCount())
	}
	if ci.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (the empty shape still gets a class)", ci.Len())
	}
}

// ---------------------------------------------------------------------------
// Builder lifecycle
// ---------------------------------------------------------------------------

func TestBuilderSingleUse(t *testing.T) {
	ci := NewClassInterner()
	b := NewNodeBuilder().SetRole(RoleButton)
	n := b.Build(1, ci)
	defer n.Release()

	mustPanic(t, "Build after Build", func() { b.Build(2, ci) })
	mustPanic(t, "SetRole after Build", func() { b.SetRole(RoleLink) })
	mustPanic(t, "SetProperty after Build", func() { b.SetString(KindText, "x") })
}

func TestBuilderReset(t *testing.T) {
	ci := NewClassInterner()
	b := NewNodeBuilder().SetRole(RoleButton).SetString(KindText, "x")
	a := b.Build(1, ci)
	defer a.Release()

	c := b.Reset().Build(2, ci)
	defer c.Release()

	if c.Role() != RoleUnknown {
		t.Errorf("Role() after Reset = %v, want Unknown", c.Role())
	}
	if c.Has(KindText) {
		t.Error("property survived Reset")
	}
}

func TestBuilderActions(t *testing.T) {
	ci := NewClassInterner()
	n := NewNodeBuilder().
		SetActions(ActionsOf(ActionClick)).
		AddAction(ActionFocus).
		Build(1, ci)
	defer n.Release()

	if !n.Actions().Has(ActionClick) || !n.Actions().Has(ActionFocus) {
		t.Errorf("Actions() = %v, want {Click|Focus}", n.Actions())
	}
	if n.Actions().Len() != 2 {
		t.Errorf("Actions().Len() = %d, want 2", n.Actions().Len())
	}
}

func TestBuilderRejectsInvalidInput(t *testing.T) {
	mustPanic(t, "invalid role", func() { NewNodeBuilder().SetRole(NumRoles) })
	mustPanic(t, "invalid action", func() { NewNodeBuilder().AddAction(NumActions) })
	mustPanic(t, "invalid action bits", func() {
		NewNodeBuilder().SetActions(ActionSet(1 << 31))
	})
	mustPanic(t, "invalid kind", func() {
		NewNodeBuilder().SetProperty(NumPropertyKinds, BoolVariant(true))
	})
	mustPanic(t, "nil interner", func() { NewNodeBuilder().Build(1, nil) })
}

func TestGenerateNodeID(t *testing.T) {
	a := GenerateNodeID()
	b := GenerateNodeID()
	if a == b {
		t.Error("generated ids should be unique")
	}
	if a == 0 || b == 0 {
		t.Error("generated ids should never be zero")
	}
}
