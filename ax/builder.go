package ax

// NodeBuilder accumulates role, actions, and property assignments for one
// node, then finalizes them into an immutable Node.
//
// Setters may arrive in any order; setting the same kind twice overwrites
// the earlier value. At Build time the property index is derived by
// scanning the full kind domain in canonical declaration order, so two
// builders that set the same kinds — in whatever call order — produce
// byte-identical indices and share one class.
//
// A builder is single-use: Build finalizes it, and further use panics
// until Reset is called. The zero value is ready to use.
type NodeBuilder struct {
	role    Role
	actions ActionSet
	present [NumPropertyKinds]bool
	values  [NumPropertyKinds]Variant
	built   bool
}

// NewNodeBuilder creates an empty builder with RoleUnknown and no actions.
func NewNodeBuilder() *NodeBuilder {
	return &NodeBuilder{}
}

// SetRole sets the node role.
func (b *NodeBuilder) SetRole(r Role) *NodeBuilder {
	b.checkUsable()
	if !r.Valid() {
		panic("NodeBuilder.SetRole: role out of range")
	}
	b.role = r
	return b
}

// SetActions replaces the supported-action set.
func (b *NodeBuilder) SetActions(s ActionSet) *NodeBuilder {
	b.checkUsable()
	if !s.Valid() {
		panic("NodeBuilder.SetActions: set contains unknown action bits")
	}
	b.actions = s
	return b
}

// AddAction adds one action to the supported set.
func (b *NodeBuilder) AddAction(a Action) *NodeBuilder {
	b.checkUsable()
	if !a.Valid() {
		panic("NodeBuilder.AddAction: action out of range")
	}
	b.actions = b.actions.With(a)
	return b
}

// SetProperty assigns a property value. Last write per kind wins.
func (b *NodeBuilder) SetProperty(kind PropertyKind, value Variant) *NodeBuilder {
	b.checkUsable()
	if !kind.Valid() {
		panic("NodeBuilder.SetProperty: kind out of range")
	}
	b.present[kind] = true
	b.values[kind] = value
	return b
}

// Typed setter helpers wrapping the Variant constructors.

// SetBool assigns a Bool property.
func (b *NodeBuilder) SetBool(kind PropertyKind, v bool) *NodeBuilder {
	return b.SetProperty(kind, BoolVariant(v))
}

// SetInt assigns an Int property.
func (b *NodeBuilder) SetInt(kind PropertyKind, v int64) *NodeBuilder {
	return b.SetProperty(kind, IntVariant(v))
}

// SetFloat assigns a Float property.
func (b *NodeBuilder) SetFloat(kind PropertyKind, v float64) *NodeBuilder {
	return b.SetProperty(kind, FloatVariant(v))
}

// SetString assigns a String property.
func (b *NodeBuilder) SetString(kind PropertyKind, v string) *NodeBuilder {
	return b.SetProperty(kind, StringVariant(v))
}

// SetRect assigns a Rect property.
func (b *NodeBuilder) SetRect(kind PropertyKind, v Rect) *NodeBuilder {
	return b.SetProperty(kind, RectVariant(v))
}

// SetIDList assigns an IDList property. The slice is copied.
func (b *NodeBuilder) SetIDList(kind PropertyKind, ids []NodeID) *NodeBuilder {
	return b.SetProperty(kind, IDListVariant(ids))
}

// ClearProperty removes a pending assignment for kind, if any.
func (b *NodeBuilder) ClearProperty(kind PropertyKind) *NodeBuilder {
	b.checkUsable()
	if !kind.Valid() {
		panic("NodeBuilder.ClearProperty: kind out of range")
	}
	b.present[kind] = false
	b.values[kind] = Variant{}
	return b
}

// Build finalizes the accumulated state into a Node:
//
//  1. Derive the property index by assigning dense offsets 0..k-1 to the
//     set kinds in canonical order.
//  2. Intern the (role, actions, index) class, acquiring one reference.
//  3. Pack each value into the dense property table at its offset.
//
// The node owns the acquired class reference; dropping the node must
// release it (directly or through its owning Tree).
func (b *NodeBuilder) Build(id NodeID, interner *ClassInterner) *Node {
	b.checkUsable()
	if interner == nil {
		panic("NodeBuilder.Build: nil interner")
	}
	b.built = true

	index := NewPropertyIndex()
	next := uint8(0)
	for k := PropertyKind(0); k < NumPropertyKinds; k++ {
		if b.present[k] {
			index.set(k, next)
			next++
		}
	}

	class := interner.Intern(b.role, b.actions, index)

	values := make([]Variant, next)
	for k := PropertyKind(0); k < NumPropertyKinds; k++ {
		if b.present[k] {
			off, _ := index.Offset(k)
			values[off] = b.values[k]
		}
	}

	return &Node{
		id:       id,
		class:    class,
		table:    newPropertyTable(values),
		interner: interner,
	}
}

// BuildWithGeneratedID is Build with a fresh generated node id.
func (b *NodeBuilder) BuildWithGeneratedID(interner *ClassInterner) *Node {
	return b.Build(GenerateNodeID(), interner)
}

// Reset returns the builder to its empty state so it can stage another node.
func (b *NodeBuilder) Reset() *NodeBuilder {
	*b = NodeBuilder{}
	return b
}

func (b *NodeBuilder) checkUsable() {
	if b.built {
		panic("NodeBuilder: reuse after Build without Reset")
	}
}
