package selection

import (
	"fmt"

	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/errors"
	"github.com/leengari/mini-relalg/internal/domain/schema"
)

// Comparison is the operator of a selection condition
type Comparison string

const (
	GT Comparison = ">"
	LT Comparison = "<"
	GE Comparison = ">="
	LE Comparison = "<="
	EQ Comparison = "="
	NE Comparison = "!="
)

// Connective joins a condition to the next one in a predicate chain
type Connective string

const (
	AND Connective = "AND"
	OR  Connective = "OR"
)

// Condition compares an attribute with a constant
type Condition struct {
	Attribute schema.Attribute
	Op        Comparison
	Value     data.Value
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %s", c.Attribute.Name, c.Op, c.Value)
}

// Predicate is a chain of conditions joined by connectives.
// The zero Predicate has no condition.
type Predicate struct {
	Condition *Condition
	Next      *Link
}

// Link continues a predicate chain
type Link struct {
	Connective Connective
	Predicate  Predicate
}

// Where starts a predicate with a single condition
func Where(attr schema.Attribute, op Comparison, v data.Value) Predicate {
	return Predicate{Condition: &Condition{Attribute: attr, Op: op, Value: v}}
}

// And appends a condition joined with AND
func (p Predicate) And(next Predicate) Predicate {
	return p.link(AND, next)
}

// Or appends a condition joined with OR
func (p Predicate) Or(next Predicate) Predicate {
	return p.link(OR, next)
}

func (p Predicate) link(conn Connective, next Predicate) Predicate {
	if p.Next == nil {
		p.Next = &Link{Connective: conn, Predicate: next}
		return p
	}
	tail := *p.Next
	tail.Predicate = tail.Predicate.link(conn, next)
	p.Next = &tail
	return p
}

// Conditions returns the conditions of the chain in order
func (p Predicate) Conditions() []Condition {
	var out []Condition
	for cur := &p; cur != nil; {
		if cur.Condition != nil {
			out = append(out, *cur.Condition)
		}
		if cur.Next == nil {
			break
		}
		cur = &cur.Next.Predicate
	}
	return out
}

// Validate always fails: predicates can be built and printed but are not evaluated
func (p Predicate) Validate() error {
	return fmt.Errorf("selection predicate: %w", errors.ErrNotSupported)
}

func (p Predicate) String() string {
	if p.Condition == nil {
		return "true"
	}
	s := p.Condition.String()
	if p.Next != nil {
		s += fmt.Sprintf(" %s %s", p.Next.Connective, p.Next.Predicate)
	}
	return s
}

// Execute is the selection operator. It yields no result.
func Execute(pred Predicate, rel *schema.Relation) (*schema.Relation, error) {
	return nil, fmt.Errorf("selection on %s: %w", rel.Name(), errors.ErrNotSupported)
}
