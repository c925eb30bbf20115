package projection

import (
	"fmt"

	"github.com/leengari/mini-relalg/internal/domain/errors"
	"github.com/leengari/mini-relalg/internal/domain/schema"
)

// Validate checks that every attribute of the projection exists in the
// relation schema, matched by name and type.
// Returns an error wrapping errors.ErrUnknownAttribute for the first missing attribute.
func Validate(rel *schema.Relation, proj *Projection) error {
	_, err := positions(rel.Schema(), proj)
	return err
}

// positions resolves the projection attributes to source schema positions
func positions(s *schema.Schema, proj *Projection) ([]int, error) {
	if proj.IsSelectAll() {
		out := make([]int, s.Len())
		for i := range out {
			out[i] = i
		}
		return out, nil
	}

	out := make([]int, len(proj.Attributes))
	for i, attr := range proj.Attributes {
		pos, found := s.IndexOf(attr)
		if !found {
			return nil, fmt.Errorf("%w: %s", errors.ErrUnknownAttribute, attr)
		}
		out[i] = pos
	}
	return out, nil
}
