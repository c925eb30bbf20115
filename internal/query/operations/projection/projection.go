package projection

import (
	"strings"

	"github.com/leengari/mini-relalg/internal/domain/schema"
)

// DerivedName is the name given to every relation produced by a projection
const DerivedName = "derived"

// Projection is the ordered list of attributes a projection keeps.
// An empty list selects every attribute of the source.
type Projection struct {
	Attributes []schema.Attribute
}

// New creates a projection keeping the given attributes, in order
func New(attrs ...schema.Attribute) *Projection {
	out := make([]schema.Attribute, len(attrs))
	copy(out, attrs)
	return &Projection{Attributes: out}
}

// SelectAll creates a projection keeping every attribute (SELECT *)
func SelectAll() *Projection {
	return &Projection{}
}

// IsSelectAll reports whether the projection keeps every attribute.
// A nil projection selects all.
func (p *Projection) IsSelectAll() bool {
	return p == nil || len(p.Attributes) == 0
}

// AddAttribute appends an attribute to the projection
func (p *Projection) AddAttribute(attr schema.Attribute) {
	p.Attributes = append(p.Attributes, attr)
}

func (p *Projection) String() string {
	if p.IsSelectAll() {
		return "*"
	}
	names := make([]string, len(p.Attributes))
	for i, a := range p.Attributes {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
