package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAttribute is returned when a projection names an attribute
	// that is not part of the source schema
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrNotSupported is returned by operators that are declared but not evaluated
	// (selection predicates, binary operators)
	ErrNotSupported = errors.New("operation not supported")

	// ErrInvalidPrimaryKey is returned when a primary key position is outside the schema
	ErrInvalidPrimaryKey = errors.New("invalid primary key position")

	// ErrRelationNotFound is returned by catalog lookups
	ErrRelationNotFound = errors.New("relation not found")
)

// Constraint names carried by ConstraintError
const (
	ConstraintArity             = "arity"
	ConstraintTypeMismatch      = "type_mismatch"
	ConstraintPrimaryKey        = "primary_key"
	ConstraintBatchDuplicateKey = "batch_duplicate_key"
)

// ConstraintError represents a rejected insert
// (arity or type mismatch, primary key collision, duplicate keys inside a batch)
type ConstraintError struct {
	Relation   string // relation name
	Attribute  string // attribute name (empty for row-level constraints)
	Value      any    // offending value (may be nil)
	Constraint string // one of the Constraint* names
	Reason     string // human-readable explanation (optional)
	RowIndex   int    // position of the row inside a batch (-1 if not a batch)
}

func (e *ConstraintError) Error() string {
	var parts []string

	if e.Attribute != "" {
		parts = append(parts, fmt.Sprintf("constraint violation in %s.%s", e.Relation, e.Attribute))
	} else {
		parts = append(parts, fmt.Sprintf("constraint violation in %s", e.Relation))
	}

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}

	return strings.Join(parts, " - ")
}

func NewArityMismatch(relation string, got, want, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Relation:   relation,
		Constraint: ConstraintArity,
		Reason:     fmt.Sprintf("expected %d values, got %d", want, got),
		RowIndex:   rowIndex,
	}
}

func NewTypeMismatch(relation, attribute string, value any, expectedType string, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Relation:   relation,
		Attribute:  attribute,
		Value:      value,
		Constraint: ConstraintTypeMismatch,
		Reason:     fmt.Sprintf("expected type %s", expectedType),
		RowIndex:   rowIndex,
	}
}

func NewPrimaryKeyViolation(relation, attribute string, value any, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Relation:   relation,
		Attribute:  attribute,
		Value:      value,
		Constraint: ConstraintPrimaryKey,
		Reason:     "duplicate primary key",
		RowIndex:   rowIndex,
	}
}

func NewBatchDuplicateKey(relation, attribute string, value any, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Relation:   relation,
		Attribute:  attribute,
		Value:      value,
		Constraint: ConstraintBatchDuplicateKey,
		Reason:     "primary key repeated inside batch",
		RowIndex:   rowIndex,
	}
}

// IsConstraint reports whether err is a ConstraintError with the given constraint name
func IsConstraint(err error, constraint string) bool {
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Constraint == constraint
}
