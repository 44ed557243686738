package ax

import (
	"fmt"
	"sync/atomic"
)

// NodeID uniquely identifies a node within one tree. IDs are assigned by
// the caller (toolkits usually derive them from widget identity) or
// generated with GenerateNodeID.
type NodeID uint64

// nodeIDCounter backs GenerateNodeID. Starts above zero so generated ids
// never collide with the common caller habit of using 0 for the root.
var nodeIDCounter atomic.Uint64

func init() {
	nodeIDCounter.Store(1 << 32)
}

// GenerateNodeID returns a fresh process-unique node id.
func GenerateNodeID() NodeID {
	return NodeID(nodeIDCounter.Add(1))
}

// Node is one finished accessibility tree node: a tree-unique id, a shared
// reference to its NodeClass, and an exclusively owned property table.
//
// Nodes are immutable; "updating" a node means building a replacement with
// a NodeBuilder and substituting it in the owning tree. Once built, a node
// may be read concurrently from any number of goroutines without locking.
type Node struct {
	id       NodeID
	class    *NodeClass
	table    PropertyTable
	interner *ClassInterner
}

// ID returns the tree-unique node identifier.
func (n *Node) ID() NodeID {
	return n.id
}

// Role returns the node's role.
func (n *Node) Role() Role {
	return n.class.role
}

// Actions returns the node's supported-action set.
func (n *Node) Actions() ActionSet {
	return n.class.actions
}

// Class returns the node's shared class.
func (n *Node) Class() *NodeClass {
	return n.class
}

// Get returns the value stored for kind, with ok=false if the property is
// not set on this node. Absence is a normal outcome, not an error.
func (n *Node) Get(kind PropertyKind) (Variant, bool) {
	off, ok := n.class.index.Offset(kind)
	if !ok {
		return Variant{}, false
	}
	return n.table.Get(off), true
}

// Has returns true if kind is set on this node.
func (n *Node) Has(kind PropertyKind) bool {
	return n.class.index.Has(kind)
}

// PropertyCount returns the number of properties set on this node.
func (n *Node) PropertyCount() int {
	return n.table.Len()
}

// ForEachProperty calls fn for every set property in canonical kind order.
// This is the iteration the wire encoder uses; offsets never escape.
func (n *Node) ForEachProperty(fn func(kind PropertyKind, value Variant)) {
	for k := PropertyKind(0); k < NumPropertyKinds; k++ {
		if off, ok := n.class.index.Offset(k); ok {
			fn(k, n.table.Get(off))
		}
	}
}

// Release returns the node's class reference to its interner. Must be
// called exactly once when the node is dropped from its owning tree;
// releasing twice panics, since the class may already belong to others.
func (n *Node) Release() {
	if n.class == nil {
		panic("Node.Release: node already released")
	}
	n.interner.Release(n.class)
	n.class = nil
	n.table = PropertyTable{}
}

// String renders the node header for debugging.
func (n *Node) String() string {
	if n.class == nil {
		return fmt.Sprintf("Node(%d, released)", n.id)
	}
	return fmt.Sprintf("Node(%d, %s, %d props)", n.id, n.class.role, n.table.Len())
}
