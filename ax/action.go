package ax

import (
	"math/bits"
	"strings"
)

// Action identifies one input action a node advertises support for. This
// package stores only which actions a node supports, as a compact bitset;
// dispatching an action is the embedding toolkit's concern.
type Action uint8

const (
	ActionClick Action = iota
	ActionFocus
	ActionBlur
	ActionExpand
	ActionCollapse
	ActionScrollIntoView
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionIncrement
	ActionDecrement
	ActionSetValue
	ActionShowContextMenu

	// NumActions is the size of the action domain. Must stay ≤ 32 so the
	// set fits one word.
	NumActions
)

var actionNames = [NumActions]string{
	ActionClick:           "Click",
	ActionFocus:           "Focus",
	ActionBlur:            "Blur",
	ActionExpand:          "Expand",
	ActionCollapse:        "Collapse",
	ActionScrollIntoView:  "ScrollIntoView",
	ActionScrollUp:        "ScrollUp",
	ActionScrollDown:      "ScrollDown",
	ActionScrollLeft:      "ScrollLeft",
	ActionScrollRight:     "ScrollRight",
	ActionIncrement:       "Increment",
	ActionDecrement:       "Decrement",
	ActionSetValue:        "SetValue",
	ActionShowContextMenu: "ShowContextMenu",
}

// Valid returns true if a is within the enumerated action domain.
func (a Action) Valid() bool {
	return a < NumActions
}

// String returns the action name, or "?" for out-of-range values.
func (a Action) String() string {
	if !a.Valid() {
		return "?"
	}
	return actionNames[a]
}

// ActionSet is a bitset over the Action domain. The zero value is the
// empty set. ActionSet has value semantics; With/Without return new sets.
type ActionSet uint32

// validActionMask has one bit set for every enumerated action.
const validActionMask ActionSet = (1 << NumActions) - 1

// With returns s with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | (1 << a)
}

// Without returns s with a removed.
func (s ActionSet) Without(a Action) ActionSet {
	return s &^ (1 << a)
}

// Has returns true if a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// Len returns the number of actions in the set.
func (s ActionSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty returns true if no actions are set.
func (s ActionSet) IsEmpty() bool {
	return s == 0
}

// Valid returns true if every set bit corresponds to an enumerated action.
func (s ActionSet) Valid() bool {
	return s&^validActionMask == 0
}

// Actions returns the members of the set in enumeration order.
func (s ActionSet) Actions() []Action {
	if s == 0 {
		return nil
	}
	result := make([]Action, 0, s.Len())
	for a := Action(0); a < NumActions; a++ {
		if s.Has(a) {
			result = append(result, a)
		}
	}
	return result
}

// ActionsOf builds a set from the given actions.
func ActionsOf(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// String returns the set as "{Click|Focus}", or "{}" when empty.
func (s ActionSet) String() string {
	if s == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, a := range s.Actions() {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a.String())
	}
	b.WriteByte('}')
	return b.String()
}
