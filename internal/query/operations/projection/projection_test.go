package projection_test

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/errors"
	"github.com/leengari/mini-relalg/internal/domain/schema"
	"github.com/leengari/mini-relalg/internal/query/operations/projection"
	"github.com/leengari/mini-relalg/internal/query/operations/testutil"
	"github.com/leengari/mini-relalg/internal/storage"
)

var (
	name = schema.Attribute{Name: "name", Type: data.TypeString}
	city = schema.Attribute{Name: "city", Type: data.TypeString}
	id   = schema.Attribute{Name: "id", Type: data.TypeInteger}
)

// TestProjection_SelectAll tests selecting all attributes
func TestProjection_SelectAll(t *testing.T) {
	rel := testutil.CreateTestRelation(t)

	derived, err := projection.Execute(projection.SelectAll(), rel)
	assert.NilError(t, err)

	testutil.AssertSetEqual(t, derived.Tuples(), []data.Row{
		testutil.KV(1, "foo"),
		testutil.KV(2, "bar"),
		testutil.KV(3, "baz"),
	}, "SELECT *")
	assert.Equal(t, derived.Name(), projection.DerivedName)
	assert.DeepEqual(t, derived.Schema(), rel.Schema())

	pk, ok := derived.PrimaryKey()
	assert.Check(t, ok)
	assert.Equal(t, pk, 0)
}

// TestProjection_NilProjection tests that a nil projection selects everything
func TestProjection_NilProjection(t *testing.T) {
	rel := testutil.CreateTestRelation(t)

	derived, err := projection.Execute(nil, rel)
	assert.NilError(t, err)
	testutil.AssertRowCount(t, derived.Len(), 3, "nil projection")
}

// TestProjection_SelectAllNoPrimaryKey tests that select-all collapses duplicates of a keyless source
func TestProjection_SelectAllNoPrimaryKey(t *testing.T) {
	rel := schema.New("bag", testutil.KeyValueSchema())
	testutil.MustInsert(t, rel, testutil.KV(1, "foo"), testutil.KV(1, "foo"), testutil.KV(2, "bar"))

	derived, err := projection.Execute(projection.SelectAll(), rel)
	assert.NilError(t, err)

	_, ok := derived.PrimaryKey()
	assert.Check(t, !ok)
	assert.Equal(t, derived.StorageKind(), storage.KindSurrogate)
	assert.DeepEqual(t, derived.Tuples(), []data.Row{testutil.KV(1, "foo"), testutil.KV(2, "bar")})
}

// TestProjection_SingleAttribute tests projecting the non-key attribute
func TestProjection_SingleAttribute(t *testing.T) {
	rel := testutil.CreateTestRelation(t)

	derived, err := projection.Execute(projection.New(testutil.Value), rel)
	assert.NilError(t, err)

	_, ok := derived.PrimaryKey()
	assert.Check(t, !ok, "key attribute was dropped")
	assert.Equal(t, derived.StorageKind(), storage.KindSurrogate)

	var keys []data.Value
	derived.Ascend(func(key data.Value, _ data.Row) bool {
		keys = append(keys, key)
		return true
	})
	assert.DeepEqual(t, keys, []data.Value{data.Integer(0), data.Integer(1), data.Integer(2)})

	testutil.AssertSetEqual(t, derived.Tuples(),
		[]data.Row{testutil.Strs("foo"), testutil.Strs("bar"), testutil.Strs("baz")},
		"SELECT value")
}

// TestProjection_Deduplicates tests that collapsing attributes collapses rows
func TestProjection_Deduplicates(t *testing.T) {
	rel := testutil.CreateTestRelation(t)
	testutil.MustInsert(t, rel, testutil.KV(4, "foo"))

	derived, err := projection.Execute(projection.New(testutil.Value), rel)
	assert.NilError(t, err)

	testutil.AssertRowCount(t, derived.Len(), 3, "SELECT value")
	testutil.AssertSetEqual(t, derived.Tuples(),
		[]data.Row{testutil.Strs("foo"), testutil.Strs("bar"), testutil.Strs("baz")},
		"SELECT value")
}

// TestProjection_EnumerationOrder tests that surrogate ids follow source storage order
func TestProjection_EnumerationOrder(t *testing.T) {
	rel := testutil.CreateTestRelation(t)

	derived, err := projection.Execute(projection.New(testutil.Value), rel)
	assert.NilError(t, err)

	// source is key ordered: 1 foo, 2 bar, 3 baz
	assert.DeepEqual(t, derived.Tuples(), []data.Row{testutil.Strs("foo"), testutil.Strs("bar"), testutil.Strs("baz")})
}

// TestProjection_KeepsPrimaryKey tests that the key survives at its new position
func TestProjection_KeepsPrimaryKey(t *testing.T) {
	rel := testutil.CreateUsersRelation(t)

	derived, err := projection.Execute(projection.New(city, id), rel)
	assert.NilError(t, err)

	pk, ok := derived.PrimaryKey()
	assert.Check(t, ok)
	assert.Equal(t, pk, 1)
	assert.Equal(t, derived.StorageKind(), storage.KindKeyed)
	assert.DeepEqual(t, derived.Schema(), schema.NewSchema(city, id))

	testutil.AssertRowCount(t, derived.Len(), 4, "SELECT city, id")
	assert.DeepEqual(t, derived.Tuples()[0], data.NewRow(data.String("paris"), data.Integer(1)))

	var keys []data.Value
	derived.Ascend(func(key data.Value, _ data.Row) bool {
		keys = append(keys, key)
		return true
	})
	assert.DeepEqual(t, keys, []data.Value{data.Integer(1), data.Integer(2), data.Integer(3), data.Integer(4)})
}

// TestProjection_RepeatedKeyAttribute tests that the first occurrence of the key is used
func TestProjection_RepeatedKeyAttribute(t *testing.T) {
	rel := testutil.CreateTestRelation(t)

	derived, err := projection.Execute(projection.New(testutil.Value, testutil.Key, testutil.Key), rel)
	assert.NilError(t, err)

	pk, ok := derived.PrimaryKey()
	assert.Check(t, ok)
	assert.Equal(t, pk, 1)
	assert.DeepEqual(t, derived.Tuples()[0], data.NewRow(data.String("foo"), data.Integer(1), data.Integer(1)))
}

// TestProjection_DropsKeyAndDeduplicates tests multi-attribute projection without the key
func TestProjection_DropsKeyAndDeduplicates(t *testing.T) {
	rel := testutil.CreateUsersRelation(t)

	derived, err := projection.Execute(projection.New(city), rel)
	assert.NilError(t, err)
	assert.DeepEqual(t, derived.Tuples(), []data.Row{testutil.Strs("paris"), testutil.Strs("oslo"), testutil.Strs("rome")})

	derived, err = projection.Execute(projection.New(name, city), rel)
	assert.NilError(t, err)
	testutil.AssertRowCount(t, derived.Len(), 4, "SELECT name, city")

	rows := derived.Tuples()
	for _, row := range rows {
		testutil.AssertColumnCount(t, len(row), 2, "SELECT name, city")
	}
	assert.DeepEqual(t, testutil.Column(rows, 0), []data.Value{
		data.String("alice"), data.String("bob"), data.String("carol"), data.String("alice"),
	})
	assert.DeepEqual(t, testutil.Column(rows, 1), []data.Value{
		data.String("paris"), data.String("oslo"), data.String("paris"), data.String("rome"),
	})
}

// TestProjection_UnknownAttribute tests that unknown attributes give no result
func TestProjection_UnknownAttribute(t *testing.T) {
	rel := testutil.CreateTestRelation(t)

	tests := []struct {
		name  string
		attrs []schema.Attribute
	}{
		{"missing name", []schema.Attribute{{Name: "nonexistent", Type: data.TypeString}}},
		{"wrong type", []schema.Attribute{{Name: "value", Type: data.TypeInteger}}},
		{"one of many", []schema.Attribute{testutil.Key, {Name: "nonexistent", Type: data.TypeString}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			derived, err := projection.Execute(projection.New(tt.attrs...), rel)
			assert.ErrorIs(t, err, errors.ErrUnknownAttribute)
			assert.Check(t, derived == nil)
		})
	}
}

// TestProjection_EmptySource tests that an empty source gives an empty, valid relation
func TestProjection_EmptySource(t *testing.T) {
	rel := testutil.CreateKeyedRelation(t, "empty")

	derived, err := projection.Execute(projection.New(testutil.Value), rel)
	assert.NilError(t, err)
	assert.Check(t, derived != nil)
	assert.Equal(t, derived.Len(), 0)
}

// TestProjection_SelectAllIdempotent tests projecting a derived relation again
func TestProjection_SelectAllIdempotent(t *testing.T) {
	rel := testutil.CreateTestRelation(t)

	first, err := projection.Execute(projection.SelectAll(), rel)
	assert.NilError(t, err)
	second, err := projection.Execute(projection.SelectAll(), first)
	assert.NilError(t, err)

	testutil.AssertSetEqual(t, second.Tuples(), first.Tuples(), "second SELECT *")
	testutil.AssertSetEqual(t, first.Tuples(), rel.Tuples(), "first SELECT *")
}

// TestProjection_Independence tests that source and derived relations share no rows
func TestProjection_Independence(t *testing.T) {
	rel := testutil.CreateTestRelation(t)
	before := rel.Tuples()

	derived, err := projection.Execute(projection.SelectAll(), rel)
	assert.NilError(t, err)

	assert.Check(t, derived.InsertRow(testutil.KV(9, "new")))
	testutil.AssertUnchanged(t, rel, before, "source after derived insert")
	assert.Check(t, rel.InsertRow(testutil.KV(10, "other")))
	assert.Check(t, !derived.Contains(testutil.KV(10, "other")))
}

// TestProjection_ValidateProjection tests projection validation
func TestProjection_ValidateProjection(t *testing.T) {
	rel := testutil.CreateTestRelation(t)

	err := projection.Validate(rel, projection.New(testutil.Key, testutil.Value))
	testutil.AssertNoError(t, err, "Valid projection")

	err = projection.Validate(rel, projection.New(schema.Attribute{Name: "nonexistent", Type: data.TypeString}))
	testutil.AssertError(t, err, "Invalid projection")
	assert.Check(t, is.ErrorContains(err, "nonexistent:TEXT"))

	testutil.AssertNoError(t, projection.Validate(rel, nil), "nil projection")
}

func TestProjection_String(t *testing.T) {
	p := projection.SelectAll()
	assert.Equal(t, p.String(), "*")

	p.AddAttribute(testutil.Value)
	assert.Check(t, !p.IsSelectAll())
	assert.Equal(t, p.String(), "value:TEXT")
}
