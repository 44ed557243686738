package ax

import "fmt"

// NodeClass bundles the structurally common part of many nodes: their role,
// supported-action bitset, and which property kinds they carry at which
// table offsets. Nodes built with the same shape share one NodeClass
// instance instead of each paying for its own copy, collapsing per-node
// metadata into O(distinct shapes) objects.
//
// A NodeClass is immutable after creation and is only ever handed out by a
// ClassInterner, which also owns its reference count. Two classes with
// equal content are the same pointer while any node references either.
type NodeClass struct {
	role    Role
	actions ActionSet
	index   PropertyIndex
}

// Role returns the node role shared by every node of this class.
func (c *NodeClass) Role() Role {
	return c.role
}

// Actions returns the supported-action set shared by every node of this class.
func (c *NodeClass) Actions() ActionSet {
	return c.actions
}

// PropertyOffset returns the property table offset for kind, with ok=false
// if nodes of this class do not carry the property.
func (c *NodeClass) PropertyOffset(kind PropertyKind) (uint8, bool) {
	return c.index.Offset(kind)
}

// HasProperty returns true if nodes of this class carry the given kind.
func (c *NodeClass) HasProperty(kind PropertyKind) bool {
	return c.index.Has(kind)
}

// PropertyCount returns the number of property kinds nodes of this class carry.
func (c *NodeClass) PropertyCount() int {
	return c.index.Count()
}

// Kinds returns the property kinds of this class in canonical order.
func (c *NodeClass) Kinds() []PropertyKind {
	kinds := make([]PropertyKind, 0, c.index.Count())
	for k := PropertyKind(0); k < NumPropertyKinds; k++ {
		if c.index.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// String renders the class shape for debugging.
func (c *NodeClass) String() string {
	return fmt.Sprintf("%s %s %d props", c.role, c.actions, c.PropertyCount())
}
