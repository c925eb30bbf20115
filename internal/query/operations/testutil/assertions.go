package testutil

import (
	"slices"
	"testing"

	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/schema"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t testing.TB, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if a row has the expected number of values
func AssertColumnCount(t testing.TB, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t testing.TB, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t testing.TB, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}

// AssertSetEqual checks that actual holds no duplicate rows and the same rows
// as expected, ignoring order
func AssertSetEqual(t testing.TB, actual, expected []data.Row, context string) {
	t.Helper()
	if distinct := data.Distinct(actual); len(distinct) != len(actual) {
		t.Errorf("%s: expected distinct rows, got %d duplicates in %v", context, len(actual)-len(distinct), actual)
	}
	got := sortedDistinct(actual)
	want := sortedDistinct(expected)
	if !slices.EqualFunc(got, want, data.Row.Equal) {
		t.Errorf("%s: expected rows %v, got %v", context, want, got)
	}
}

// AssertUnchanged checks that a relation still holds exactly the given rows
func AssertUnchanged(t testing.TB, rel *schema.Relation, before []data.Row, context string) {
	t.Helper()
	after := rel.Tuples()
	if !slices.EqualFunc(after, before, data.Row.Equal) {
		t.Errorf("%s: relation %s changed: before %v, after %v", context, rel.Name(), before, after)
	}
}

// Column collects the values at position pos of every row
func Column(rows []data.Row, pos int) []data.Value {
	out := make([]data.Value, len(rows))
	for i, row := range rows {
		out[i] = row[pos]
	}
	return out
}

func sortedDistinct(rows []data.Row) []data.Row {
	out := data.Distinct(rows)
	slices.SortFunc(out, data.CompareRows)
	return out
}
