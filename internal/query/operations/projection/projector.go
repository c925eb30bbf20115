package projection

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/schema"
)

// Execute applies the projection to rel and returns a new, independent relation
// named DerivedName. The source relation is never modified.
//
// Rows are deduplicated with full-row equality. The derived relation keeps a
// primary key only when the source has one and its attribute is projected;
// otherwise rows get fresh surrogate identifiers in enumeration order.
//
// A nil relation and an error wrapping errors.ErrUnknownAttribute are returned
// when an attribute is not part of the source schema.
func Execute(proj *Projection, rel *schema.Relation) (*schema.Relation, error) {
	source := rel.Schema()
	pos, err := positions(source, proj)
	if err != nil {
		slog.Debug("projection rejected", "relation", rel.Name(), "attributes", proj.String(), "error", err)
		return nil, err
	}

	rows := rel.Tuples()
	if !proj.IsSelectAll() {
		for i, row := range rows {
			rows[i] = row.Project(pos)
		}
	}
	rows = data.Distinct(rows)

	derivedSchema := source
	if !proj.IsSelectAll() {
		derivedSchema = schema.NewSchema(proj.Attributes...)
	}

	derived, err := newDerived(derivedSchema, rel, pos)
	if err != nil {
		return nil, err
	}

	if err := derived.InsertBatch(rows); err != nil {
		return nil, fmt.Errorf("projection of %s: %w", rel.Name(), err)
	}

	slog.Debug("projection evaluated",
		"relation", rel.Name(),
		"attributes", proj.String(),
		"rows_in", rel.Len(),
		"rows_out", derived.Len(),
		"storage", derived.StorageKind().String(),
	)
	return derived, nil
}

// newDerived creates the empty output relation. It is keyed when the source
// primary key attribute survives, at the position of its first occurrence.
func newDerived(s *schema.Schema, rel *schema.Relation, pos []int) (*schema.Relation, error) {
	pk, hasPK := rel.PrimaryKey()
	if !hasPK {
		return schema.New(DerivedName, s), nil
	}

	newPK := slices.Index(pos, pk)
	if newPK < 0 {
		return schema.New(DerivedName, s), nil
	}
	return schema.NewKeyed(DerivedName, s, newPK)
}
