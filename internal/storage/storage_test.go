package storage

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/leengari/mini-relalg/internal/domain/data"
)

func row(id int64, value string) data.Row {
	return data.NewRow(data.Integer(id), data.String(value))
}

func TestKeyed_InsertAndContains(t *testing.T) {
	k := NewKeyed(0)
	assert.Equal(t, k.Kind(), KindKeyed)

	k.Insert(row(2, "bar"))
	k.Insert(row(1, "foo"))

	assert.Equal(t, k.Len(), 2)
	assert.Check(t, k.ContainsKey(data.Integer(1)))
	assert.Check(t, !k.ContainsKey(data.Integer(3)))
	assert.Check(t, k.Contains(row(1, "anything")))
	assert.Check(t, !k.Contains(data.NewRow()))
}

func TestKeyed_InsertOverwrites(t *testing.T) {
	k := NewKeyed(0)
	k.Insert(row(1, "foo"))
	k.Insert(row(1, "bar"))

	assert.Equal(t, k.Len(), 1)
	got, ok := k.Get(data.Integer(1))
	assert.Check(t, ok)
	assert.DeepEqual(t, got, row(1, "bar"))
}

func TestKeyed_TuplesAreKeySorted(t *testing.T) {
	k := NewKeyed(0)
	k.Insert(row(3, "baz"))
	k.Insert(row(1, "foo"))
	k.Insert(row(2, "bar"))

	assert.DeepEqual(t, k.Tuples(), []data.Row{row(1, "foo"), row(2, "bar"), row(3, "baz")})
}

func TestKeyed_TuplesAreCopies(t *testing.T) {
	k := NewKeyed(0)
	k.Insert(row(1, "foo"))

	tuples := k.Tuples()
	tuples[0][1] = data.String("changed")

	got, _ := k.Get(data.Integer(1))
	assert.Equal(t, got[1], data.String("foo"))
}

func TestSurrogate_CounterAndOrder(t *testing.T) {
	s := NewSurrogate()
	assert.Equal(t, s.Kind(), KindSurrogate)
	assert.Equal(t, s.NextID(), int64(0))

	s.Insert(row(9, "foo"))
	s.Insert(row(9, "foo"))
	s.Insert(row(1, "bar"))

	assert.Equal(t, s.Len(), 3)
	assert.Equal(t, s.NextID(), int64(3))
	assert.DeepEqual(t, s.Tuples(), []data.Row{row(9, "foo"), row(9, "foo"), row(1, "bar")})

	var keys []data.Value
	s.Ascend(func(key data.Value, _ data.Row) bool {
		keys = append(keys, key)
		return true
	})
	assert.DeepEqual(t, keys, []data.Value{data.Integer(0), data.Integer(1), data.Integer(2)})
}

func TestSurrogate_Contains(t *testing.T) {
	s := NewSurrogate()
	s.Insert(row(1, "foo"))

	assert.Check(t, s.Contains(row(1, "foo")))
	assert.Check(t, !s.Contains(row(1, "bar")))
}

func TestAscend_StopsEarly(t *testing.T) {
	k := NewKeyed(0)
	for i := int64(0); i < 5; i++ {
		k.Insert(row(i, "x"))
	}

	visited := 0
	k.Ascend(func(data.Value, data.Row) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, visited, 2)
}

func TestStorageInterface(t *testing.T) {
	for _, s := range []Storage{NewKeyed(0), NewSurrogate()} {
		s.Insert(row(1, "foo"))
		assert.Check(t, s.Contains(row(1, "foo")), s.Kind().String())
		assert.Check(t, is.Len(s.Tuples(), 1), s.Kind().String())
	}
}
