package ax

import "sync"

// ---------------------------------------------------------------------------
// ClassInterner: structural deduplication of NodeClasses
// ---------------------------------------------------------------------------

// classKey is the structural identity of a NodeClass. PropertyIndex is a
// fixed byte array, so the whole key is comparable and serves directly as
// a map key; equality is byte-wise.
type classKey struct {
	role    Role
	actions ActionSet
	index   PropertyIndex
}

// classEntry pairs an interned class with its live reference count. The
// count is guarded by the interner mutex, never touched outside it.
type classEntry struct {
	class *NodeClass
	refs  int64
}

// ClassInterner deduplicates NodeClass instances by structural content.
// Interning identical content returns the same shared pointer and bumps
// its reference count; releasing the last reference removes the entry.
//
// One mutex guards the map and all reference counts, so each
// intern/release is atomic as a unit: two goroutines interning the same
// shape cannot create two classes, and a release racing an intern that
// re-raises the count from zero is serialized. Built nodes read their
// class without any locking, since classes are immutable.
//
// Scope an interner explicitly — one per tree, or per test — rather than
// sharing a process singleton, so class state never leaks across owners.
type ClassInterner struct {
	mu      sync.Mutex
	classes map[classKey]*classEntry
}

// NewClassInterner creates an empty interner.
func NewClassInterner() *ClassInterner {
	return &ClassInterner{
		classes: make(map[classKey]*classEntry),
	}
}

// Intern returns the shared class for the given content, creating it on
// first sight. Each call acquires one reference; the caller must pair it
// with exactly one Release. Panics if the index is malformed, since a
// corrupt class would poison every node that comes to share it.
func (ci *ClassInterner) Intern(role Role, actions ActionSet, index PropertyIndex) *NodeClass {
	index.checkDense()

	key := classKey{role: role, actions: actions, index: index}

	ci.mu.Lock()
	defer ci.mu.Unlock()

	if entry, ok := ci.classes[key]; ok {
		entry.refs++
		return entry.class
	}

	class := &NodeClass{role: role, actions: actions, index: index}
	ci.classes[key] = &classEntry{class: class, refs: 1}
	return class
}

// Release returns one reference acquired by Intern. When the count reaches
// zero the class is removed from the interner. Releasing a class this
// interner never handed out, or releasing more times than interned, is a
// refcount discipline bug and panics.
func (ci *ClassInterner) Release(class *NodeClass) {
	if class == nil {
		panic("ClassInterner.Release: nil class")
	}
	key := classKey{role: class.role, actions: class.actions, index: class.index}

	ci.mu.Lock()
	defer ci.mu.Unlock()

	entry, ok := ci.classes[key]
	if !ok || entry.class != class {
		panic("ClassInterner.Release: class not owned by this interner")
	}
	entry.refs--
	if entry.refs < 0 {
		panic("ClassInterner.Release: refcount underflow")
	}
	if entry.refs == 0 {
		delete(ci.classes, key)
	}
}

// Len returns the number of distinct live classes.
func (ci *ClassInterner) Len() int {
	ci.mu.Lock()
	defer ci.mu.Unlock()
	return len(ci.classes)
}

// LiveRefs returns the current reference count for class, or 0 if the
// class is not (or no longer) interned here.
func (ci *ClassInterner) LiveRefs(class *NodeClass) int64 {
	if class == nil {
		return 0
	}
	key := classKey{role: class.role, actions: class.actions, index: class.index}

	ci.mu.Lock()
	defer ci.mu.Unlock()

	if entry, ok := ci.classes[key]; ok && entry.class == class {
		return entry.refs
	}
	return 0
}
