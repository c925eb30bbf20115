package testutil

import (
	"testing"

	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/schema"
)

// Key and Value are the attributes of the canonical key/value test relation
var (
	Key   = schema.Attribute{Name: "key", Type: data.TypeInteger}
	Value = schema.Attribute{Name: "value", Type: data.TypeString}
)

// KeyValueSchema returns the (key INT, value TEXT) schema
func KeyValueSchema() *schema.Schema {
	return schema.NewSchema(Key, Value)
}

// KV builds a (key, value) row
func KV(key int64, value string) data.Row {
	return data.NewRow(data.Integer(key), data.String(value))
}

// Strs builds a row of string values
func Strs(values ...string) data.Row {
	row := make(data.Row, len(values))
	for i, v := range values {
		row[i] = data.String(v)
	}
	return row
}

// CreateKeyedRelation creates an empty key/value relation keyed by "key"
func CreateKeyedRelation(t *testing.T, name string) *schema.Relation {
	t.Helper()
	rel, err := schema.NewKeyed(name, KeyValueSchema(), 0)
	if err != nil {
		t.Fatalf("failed to create relation %s: %v", name, err)
	}
	return rel
}

// CreateTestRelation creates the keyed key/value relation holding
// (1, foo), (2, bar), (3, baz)
func CreateTestRelation(t *testing.T) *schema.Relation {
	t.Helper()
	rel := CreateKeyedRelation(t, "test")
	MustInsert(t, rel, KV(1, "foo"), KV(2, "bar"), KV(3, "baz"))
	return rel
}

// CreateUsersRelation creates a keyed (id, name, city) relation with repeated cities
func CreateUsersRelation(t *testing.T) *schema.Relation {
	t.Helper()
	s := schema.NewSchema(
		schema.Attribute{Name: "id", Type: data.TypeInteger},
		schema.Attribute{Name: "name", Type: data.TypeString},
		schema.Attribute{Name: "city", Type: data.TypeString},
	)
	rel, err := schema.NewKeyed("users", s, 0)
	if err != nil {
		t.Fatalf("failed to create users relation: %v", err)
	}
	MustInsert(t, rel,
		data.NewRow(data.Integer(1), data.String("alice"), data.String("paris")),
		data.NewRow(data.Integer(2), data.String("bob"), data.String("oslo")),
		data.NewRow(data.Integer(3), data.String("carol"), data.String("paris")),
		data.NewRow(data.Integer(4), data.String("alice"), data.String("rome")),
	)
	return rel
}

// MustInsert inserts rows as one batch and fails the test if it is rejected
func MustInsert(t *testing.T, rel *schema.Relation, rows ...data.Row) {
	t.Helper()
	if err := rel.InsertBatch(rows); err != nil {
		t.Fatalf("failed to insert into %s: %v", rel.Name(), err)
	}
}
