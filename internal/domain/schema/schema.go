package schema

import (
	"fmt"
	"strings"

	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/errors"
)

// Attribute is a named, typed column. Two attributes are equal iff name and type match.
type Attribute struct {
	Name string    `yaml:"name"`
	Type data.Type `yaml:"type"`
}

func (a Attribute) String() string {
	return fmt.Sprintf("%s:%s", a.Name, a.Type)
}

// Schema is the ordered attribute list of a relation.
// Position i of every row corresponds to Attributes[i].
type Schema struct {
	Attributes []Attribute
}

// NewSchema creates a schema from the given attributes, in order
func NewSchema(attrs ...Attribute) *Schema {
	out := make([]Attribute, len(attrs))
	copy(out, attrs)
	return &Schema{Attributes: out}
}

// Len returns the number of attributes
func (s *Schema) Len() int {
	return len(s.Attributes)
}

// Clone returns an independent copy of the schema
func (s *Schema) Clone() *Schema {
	return NewSchema(s.Attributes...)
}

// IndexOf returns the position of an attribute (matched by name and type)
func (s *Schema) IndexOf(attr Attribute) (int, bool) {
	for i, a := range s.Attributes {
		if a == attr {
			return i, true
		}
	}
	return -1, false
}

// Lookup finds an attribute by name only
func (s *Schema) Lookup(name string) (Attribute, bool) {
	for _, a := range s.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// ValidateRow reports whether the row has the schema's arity and every value
// matches the type at its position
func (s *Schema) ValidateRow(row data.Row) bool {
	return s.checkRow("", row, -1) == nil
}

// checkRow is ValidateRow returning the reason of the first mismatch
func (s *Schema) checkRow(relation string, row data.Row, rowIndex int) error {
	if len(row) != len(s.Attributes) {
		return errors.NewArityMismatch(relation, len(row), len(s.Attributes), rowIndex)
	}
	for i, attr := range s.Attributes {
		if !attr.Type.Matches(row[i]) {
			return errors.NewTypeMismatch(relation, attr.Name, row[i].Interface(), string(attr.Type), rowIndex)
		}
	}
	return nil
}

func (s *Schema) String() string {
	parts := make([]string, len(s.Attributes))
	for i, a := range s.Attributes {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
