package storage

import (
	"github.com/google/btree"

	"github.com/leengari/mini-relalg/internal/domain/data"
)

// Surrogate stores rows under generated sequential identifiers.
// The counter only grows: an identifier is never handed out twice.
type Surrogate struct {
	next int64
	tree *btree.BTreeG[entry]
}

// NewSurrogate creates empty surrogate storage whose first identifier is 0
func NewSurrogate() *Surrogate {
	return &Surrogate{tree: newTree()}
}

func (s *Surrogate) Kind() Kind {
	return KindSurrogate
}

// NextID returns the identifier the next inserted row will receive
func (s *Surrogate) NextID() int64 {
	return s.next
}

// Insert writes row at the current counter value, then advances the counter.
// Duplicate rows are accepted.
func (s *Surrogate) Insert(row data.Row) {
	s.tree.ReplaceOrInsert(entry{key: data.Integer(s.next), row: row})
	s.next++
}

// Contains reports whether a structurally equal row is stored
func (s *Surrogate) Contains(row data.Row) bool {
	found := false
	s.tree.Ascend(func(e entry) bool {
		if e.row.Equal(row) {
			found = true
			return false
		}
		return true
	})
	return found
}

func (s *Surrogate) Len() int {
	return s.tree.Len()
}

// Tuples returns all rows in insertion order
func (s *Surrogate) Tuples() []data.Row {
	return tuples(s.tree)
}

func (s *Surrogate) Ascend(fn func(key data.Value, row data.Row) bool) {
	ascend(s.tree, fn)
}
