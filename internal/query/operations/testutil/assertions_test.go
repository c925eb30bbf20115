package testutil

import (
	"fmt"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/leengari/mini-relalg/internal/domain/data"
)

// recorder captures failures reported by an assertion helper
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertSetEqual_IgnoresOrder(t *testing.T) {
	rec := &recorder{}
	AssertSetEqual(rec,
		[]data.Row{KV(2, "bar"), KV(1, "foo")},
		[]data.Row{KV(1, "foo"), KV(2, "bar")},
		"reordered")
	assert.Check(t, is.Len(rec.failures, 0))
}

func TestAssertSetEqual_RejectsDuplicates(t *testing.T) {
	rec := &recorder{}
	AssertSetEqual(rec,
		[]data.Row{Strs("foo"), Strs("foo"), Strs("bar")},
		[]data.Row{Strs("foo"), Strs("bar")},
		"SELECT value")
	assert.Assert(t, is.Len(rec.failures, 1))
	assert.Check(t, is.Contains(rec.failures[0], "1 duplicates"))
}

func TestAssertSetEqual_RejectsMissingRow(t *testing.T) {
	rec := &recorder{}
	AssertSetEqual(rec,
		[]data.Row{Strs("foo")},
		[]data.Row{Strs("foo"), Strs("bar")},
		"SELECT value")
	assert.Check(t, is.Len(rec.failures, 1))
}

func TestColumn(t *testing.T) {
	rows := []data.Row{KV(1, "foo"), KV(2, "bar")}
	assert.DeepEqual(t, Column(rows, 1), []data.Value{data.String("foo"), data.String("bar")})

	rec := &recorder{}
	AssertColumnCount(rec, len(rows[0]), 3, "KV")
	assert.Check(t, is.Len(rec.failures, 1))
}
