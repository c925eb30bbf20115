package data

import (
	"cmp"
	"strconv"
)

// Value is a tagged scalar: either a string or a 64-bit signed integer.
// Values are comparable with == and can be used as map keys.
type Value struct {
	kind Type
	str  string
	num  int64
}

// String creates a string value
func String(s string) Value {
	return Value{kind: TypeString, str: s}
}

// Integer creates an integer value
func Integer(i int64) Value {
	return Value{kind: TypeInteger, num: i}
}

// Type returns the variant tag of the value (empty for the zero Value)
func (v Value) Type() Type {
	return v.kind
}

// Str returns the payload of a string value
func (v Value) Str() (string, bool) {
	return v.str, v.kind == TypeString
}

// Int returns the payload of an integer value
func (v Value) Int() (int64, bool) {
	return v.num, v.kind == TypeInteger
}

// Interface returns the payload as a plain Go value (string or int64)
func (v Value) Interface() any {
	switch v.kind {
	case TypeString:
		return v.str
	case TypeInteger:
		return v.num
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case TypeString:
		return v.str
	case TypeInteger:
		return strconv.FormatInt(v.num, 10)
	default:
		return "NULL"
	}
}

// Equal reports whether both values have the same variant and payload
func (v Value) Equal(other Value) bool {
	return v == other
}

// Compare orders values by variant tag first, then by payload.
// Returns -1, 0 or +1.
func Compare(a, b Value) int {
	if c := cmp.Compare(a.kind.rank(), b.kind.rank()); c != 0 {
		return c
	}
	if a.kind == TypeInteger {
		return cmp.Compare(a.num, b.num)
	}
	return cmp.Compare(a.str, b.str)
}

// Less reports whether a sorts before b
func Less(a, b Value) bool {
	return Compare(a, b) < 0
}
