// Package storage holds the in-memory row stores backing a relation.
//
// Two representations exist. Keyed storage is an ordered map from the value
// of the primary key attribute to its row. Surrogate storage is used when a
// relation has no primary key: every inserted row receives the next value of
// a 0-based counter and rows are kept in insertion order.
package storage

import (
	"github.com/google/btree"

	"github.com/leengari/mini-relalg/internal/domain/data"
)

// Kind identifies a storage representation
type Kind int

const (
	KindKeyed Kind = iota
	KindSurrogate
)

func (k Kind) String() string {
	switch k {
	case KindKeyed:
		return "keyed"
	case KindSurrogate:
		return "surrogate"
	default:
		return "unknown"
	}
}

const degree = 32

// Storage is the capability set shared by both representations
type Storage interface {
	Kind() Kind

	// Insert writes the row. It never rejects: duplicate-key checks belong to the caller.
	Insert(row data.Row)

	// Contains reports whether an equivalent row is stored.
	// Keyed storage compares key values, surrogate storage compares whole rows.
	Contains(row data.Row) bool

	// Len returns the number of stored rows
	Len() int

	// Tuples returns copies of all stored rows in iteration order
	Tuples() []data.Row

	// Ascend calls fn for each stored row with its storage key, in iteration order,
	// until fn returns false. The row passed to fn must not be modified.
	Ascend(fn func(key data.Value, row data.Row) bool)
}

// entry is a single slot of either representation
type entry struct {
	key data.Value
	row data.Row
}

func lessEntry(a, b entry) bool {
	return data.Less(a.key, b.key)
}

func newTree() *btree.BTreeG[entry] {
	return btree.NewG[entry](degree, lessEntry)
}

// tuples copies every row of the tree in key order
func tuples(tree *btree.BTreeG[entry]) []data.Row {
	rows := make([]data.Row, 0, tree.Len())
	tree.Ascend(func(e entry) bool {
		rows = append(rows, e.row.Clone())
		return true
	})
	return rows
}

func ascend(tree *btree.BTreeG[entry], fn func(key data.Value, row data.Row) bool) {
	tree.Ascend(func(e entry) bool {
		return fn(e.key, e.row)
	})
}
