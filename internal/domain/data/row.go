package data

import "strings"

// Row is an ordered, fixed-arity sequence of values.
// Position i corresponds to attribute i of the owning schema.
type Row []Value

// NewRow creates a row from the given values
func NewRow(values ...Value) Row {
	return Row(values)
}

// Clone returns an independent copy of the row
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Equal reports full-row value equality
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Project builds a new row from the values at the given positions, in that order
func (r Row) Project(positions []int) Row {
	out := make(Row, len(positions))
	for i, pos := range positions {
		out[i] = r[pos]
	}
	return out
}

func (r Row) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// CompareRows orders rows lexicographically by value; a shorter prefix sorts first
func CompareRows(a, b Row) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// LessRows reports whether row a sorts before row b
func LessRows(a, b Row) bool {
	return CompareRows(a, b) < 0
}
