package ax

import (
	"sync"

	"github.com/google/uuid"
)

// Tree owns a set of nodes and the interner their classes live in. It is
// the unit a provider hands to a platform bridge: nodes enter via Put,
// leave via Remove, and the tree releases class references as nodes are
// replaced or dropped.
//
// A tree is identified by a UUID so updates arriving from another process
// can be correlated with the tree they belong to.
//
// Reads take a shared lock; Put/Remove/Clear take an exclusive lock. The
// nodes themselves are immutable and safe to use after the lock is gone.
type Tree struct {
	id       string
	interner *ClassInterner

	mu    sync.RWMutex
	nodes map[NodeID]*Node
	root  NodeID
}

// NewTree creates an empty tree with its own interner and a fresh UUID.
func NewTree() *Tree {
	return &Tree{
		id:       uuid.NewString(),
		interner: NewClassInterner(),
		nodes:    make(map[NodeID]*Node),
	}
}

// NewTreeWithID creates an empty tree with a caller-supplied identity,
// as when reconstructing a tree received from another process.
func NewTreeWithID(id string) *Tree {
	t := NewTree()
	if id != "" {
		t.id = id
	}
	return t
}

// ID returns the tree's UUID string.
func (t *Tree) ID() string {
	return t.id
}

// Interner returns the interner node builders for this tree must use.
func (t *Tree) Interner() *ClassInterner {
	return t.interner
}

// Put inserts a node, replacing (and releasing) any existing node with the
// same id. The tree takes over the node's class reference. Panics if the
// node was built against a different interner; its class would then be
// unaccounted for here.
func (t *Tree) Put(n *Node) {
	if n == nil {
		panic("Tree.Put: nil node")
	}
	if n.interner != t.interner {
		panic("Tree.Put: node built against a different interner")
	}

	t.mu.Lock()
	old := t.nodes[n.id]
	t.nodes[n.id] = n
	t.mu.Unlock()

	if old != nil {
		old.Release()
	}
}

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id NodeID) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes[id]
}

// Remove drops the node with the given id, releasing its class reference.
// Returns true if a node was removed.
func (t *Tree) Remove(id NodeID) bool {
	t.mu.Lock()
	n, ok := t.nodes[id]
	if ok {
		delete(t.nodes, id)
	}
	t.mu.Unlock()

	if ok {
		n.Release()
	}
	return ok
}

// SetRoot designates the root node id. The node need not exist yet; tree
// updates may deliver the root after the id is announced.
func (t *Tree) SetRoot(id NodeID) {
	t.mu.Lock()
	t.root = id
	t.mu.Unlock()
}

// Root returns the root node id (zero if never set).
func (t *Tree) Root() NodeID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes)
}

// IDs returns the ids of all nodes, in no particular order.
func (t *Tree) IDs() []NodeID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]NodeID, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	return ids
}

// Children returns the child ids of the given node, read from its
// Children property. Nodes without the property have no children.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	v, ok := n.Get(KindChildren)
	if !ok {
		return nil
	}
	ids, err := v.IDList()
	if err != nil {
		return nil
	}
	return ids
}

// Walk visits nodes depth-first from the root, calling fn with each node
// and its depth. Returning false from fn prunes that node's children; the
// walk continues with its siblings.
//
// Children id-lists are external input by the time they sit in a tree, so
// the walk tolerates whatever an update delivered: ids absent from the
// tree are skipped (updates may legitimately arrive with dangling
// references while a batch is in flight), and each node is visited at
// most once, so shared or cyclic references terminate instead of looping.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	visited := make(map[NodeID]bool)
	t.walk(t.Root(), 0, visited, fn)
}

func (t *Tree) walk(id NodeID, depth int, visited map[NodeID]bool, fn func(n *Node, depth int) bool) {
	if visited[id] {
		return
	}
	n := t.Node(id)
	if n == nil {
		return
	}
	visited[id] = true
	if !fn(n, depth) {
		return
	}
	for _, child := range t.Children(id) {
		t.walk(child, depth+1, visited, fn)
	}
}

// Clear drops every node, releasing all class references. The interner is
// empty afterwards unless callers hold node references of their own.
func (t *Tree) Clear() {
	t.mu.Lock()
	nodes := t.nodes
	t.nodes = make(map[NodeID]*Node)
	t.root = 0
	t.mu.Unlock()

	for _, n := range nodes {
		n.Release()
	}
}
