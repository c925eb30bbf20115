package storage

import (
	"github.com/google/btree"

	"github.com/leengari/mini-relalg/internal/domain/data"
)

// Keyed stores rows in an ordered map keyed by the value at a fixed position
type Keyed struct {
	keyPos int
	tree   *btree.BTreeG[entry]
}

// NewKeyed creates keyed storage using the attribute at keyPos as key
func NewKeyed(keyPos int) *Keyed {
	return &Keyed{
		keyPos: keyPos,
		tree:   newTree(),
	}
}

func (k *Keyed) Kind() Kind {
	return KindKeyed
}

// KeyPosition returns the row position used as key
func (k *Keyed) KeyPosition() int {
	return k.keyPos
}

// Key extracts the key value of a row
func (k *Keyed) Key(row data.Row) data.Value {
	return row[k.keyPos]
}

// Insert unconditionally writes row at its key, replacing any previous row
func (k *Keyed) Insert(row data.Row) {
	k.tree.ReplaceOrInsert(entry{key: k.Key(row), row: row})
}

// ContainsKey reports key membership
func (k *Keyed) ContainsKey(key data.Value) bool {
	return k.tree.Has(entry{key: key})
}

// Contains reports whether a row with the same key value is stored
func (k *Keyed) Contains(row data.Row) bool {
	if k.keyPos >= len(row) {
		return false
	}
	return k.ContainsKey(k.Key(row))
}

// Get returns the row stored at key
func (k *Keyed) Get(key data.Value) (data.Row, bool) {
	e, ok := k.tree.Get(entry{key: key})
	if !ok {
		return nil, false
	}
	return e.row.Clone(), true
}

func (k *Keyed) Len() int {
	return k.tree.Len()
}

// Tuples returns all rows sorted by key
func (k *Keyed) Tuples() []data.Row {
	return tuples(k.tree)
}

func (k *Keyed) Ascend(fn func(key data.Value, row data.Row) bool) {
	ascend(k.tree, fn)
}
