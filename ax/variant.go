package ax

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// VariantTag identifies which payload case a Variant holds.
type VariantTag uint8

const (
	TagBool VariantTag = iota
	TagInt
	TagFloat
	TagString
	TagRect
	TagIDList

	// NumVariantTags is the size of the tag domain. Not itself a valid tag.
	NumVariantTags
)

var tagNames = [NumVariantTags]string{
	TagBool:   "Bool",
	TagInt:    "Int",
	TagFloat:  "Float",
	TagString: "String",
	TagRect:   "Rect",
	TagIDList: "IDList",
}

// Valid returns true if t is within the enumerated tag domain.
func (t VariantTag) Valid() bool {
	return t < NumVariantTags
}

// String returns the tag name, or "?" for out-of-range values.
func (t VariantTag) String() string {
	if !t.Valid() {
		return "?"
	}
	return tagNames[t]
}

// Rect is an axis-aligned rectangle in the coordinate space of the node's
// containing window. Used for the Bounds property.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// String returns the rect as "(x,y wxh)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// TypeMismatchError reports a typed Variant accessor called against a
// payload of a different case. It is recoverable and returned to the
// caller, never fatal.
type TypeMismatchError struct {
	Want VariantTag
	Got  VariantTag
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("ax: variant type mismatch: want %s, got %s", e.Want, e.Got)
}

// Variant is a tagged union holding one property's value.
//
// Scalar payloads (bool, int64, float64) share a single word; the float
// case stores IEEE 754 bits so the zero value and equality stay exact.
// Variants have value semantics: id-list payloads are copied on the way in
// and on the way out, so no caller ever aliases a stored slice.
type Variant struct {
	tag  VariantTag
	num  uint64
	str  string
	rect Rect
	ids  []NodeID
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// BoolVariant creates a Bool variant.
func BoolVariant(b bool) Variant {
	var n uint64
	if b {
		n = 1
	}
	return Variant{tag: TagBool, num: n}
}

// IntVariant creates an Int variant.
func IntVariant(n int64) Variant {
	return Variant{tag: TagInt, num: uint64(n)}
}

// FloatVariant creates a Float variant.
func FloatVariant(f float64) Variant {
	return Variant{tag: TagFloat, num: math.Float64bits(f)}
}

// StringVariant creates a String variant.
func StringVariant(s string) Variant {
	return Variant{tag: TagString, str: s}
}

// RectVariant creates a Rect variant.
func RectVariant(r Rect) Variant {
	return Variant{tag: TagRect, rect: r}
}

// IDListVariant creates an IDList variant. The slice is copied.
func IDListVariant(ids []NodeID) Variant {
	cp := make([]NodeID, len(ids))
	copy(cp, ids)
	return Variant{tag: TagIDList, ids: cp}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Tag returns the payload case this variant holds.
func (v Variant) Tag() VariantTag {
	return v.tag
}

// Bool returns the payload as a bool, or a TypeMismatchError.
func (v Variant) Bool() (bool, error) {
	if v.tag != TagBool {
		return false, &TypeMismatchError{Want: TagBool, Got: v.tag}
	}
	return v.num != 0, nil
}

// Int returns the payload as an int64, or a TypeMismatchError.
func (v Variant) Int() (int64, error) {
	if v.tag != TagInt {
		return 0, &TypeMismatchError{Want: TagInt, Got: v.tag}
	}
	return int64(v.num), nil
}

// Float returns the payload as a float64, or a TypeMismatchError.
func (v Variant) Float() (float64, error) {
	if v.tag != TagFloat {
		return 0, &TypeMismatchError{Want: TagFloat, Got: v.tag}
	}
	return math.Float64frombits(v.num), nil
}

// Str returns the payload as a string, or a TypeMismatchError.
func (v Variant) Str() (string, error) {
	if v.tag != TagString {
		return "", &TypeMismatchError{Want: TagString, Got: v.tag}
	}
	return v.str, nil
}

// Rect returns the payload as a Rect, or a TypeMismatchError.
func (v Variant) Rect() (Rect, error) {
	if v.tag != TagRect {
		return Rect{}, &TypeMismatchError{Want: TagRect, Got: v.tag}
	}
	return v.rect, nil
}

// IDList returns a copy of the payload id list, or a TypeMismatchError.
func (v Variant) IDList() ([]NodeID, error) {
	if v.tag != TagIDList {
		return nil, &TypeMismatchError{Want: TagIDList, Got: v.tag}
	}
	cp := make([]NodeID, len(v.ids))
	copy(cp, v.ids)
	return cp, nil
}

// ---------------------------------------------------------------------------
// Equality and formatting
// ---------------------------------------------------------------------------

// Equal returns true if both variants hold the same case with an equal
// payload. Float payloads compare by bit pattern, so NaN equals NaN and
// +0 differs from -0; round-trips through the builder stay exact.
func (v Variant) Equal(other Variant) bool {
	if v.tag != other.tag {
		return false
	}
	switch v.tag {
	case TagBool, TagInt, TagFloat:
		return v.num == other.num
	case TagString:
		return v.str == other.str
	case TagRect:
		return v.rect == other.rect
	case TagIDList:
		if len(v.ids) != len(other.ids) {
			return false
		}
		for i := range v.ids {
			if v.ids[i] != other.ids[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the variant for debugging.
func (v Variant) String() string {
	switch v.tag {
	case TagBool:
		return strconv.FormatBool(v.num != 0)
	case TagInt:
		return strconv.FormatInt(int64(v.num), 10)
	case TagFloat:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64)
	case TagString:
		return strconv.Quote(v.str)
	case TagRect:
		return v.rect.String()
	case TagIDList:
		parts := make([]string, len(v.ids))
		for i, id := range v.ids {
			parts[i] = strconv.FormatUint(uint64(id), 10)
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return "?"
	}
}
