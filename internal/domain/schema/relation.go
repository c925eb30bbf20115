package schema

import (
	"fmt"
	"log/slog"

	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/errors"
	"github.com/leengari/mini-relalg/internal/storage"
)

// Relation is a named, schema-typed collection of rows, optionally identified
// by a primary key attribute.
//
// A relation with a primary key uses keyed storage and rejects duplicate keys.
// A relation without one uses surrogate storage and accepts duplicate rows.
// Relation does no locking: callers sharing one across goroutines must
// serialize access themselves.
type Relation struct {
	name   string
	pk     int
	hasPK  bool
	schema *Schema
	store  storage.Storage
}

// New creates an empty relation without a primary key
func New(name string, s *Schema) *Relation {
	return &Relation{
		name:   name,
		pk:     -1,
		schema: s.Clone(),
		store:  storage.NewSurrogate(),
	}
}

// NewKeyed creates an empty relation whose primary key is the attribute at position pk
func NewKeyed(name string, s *Schema, pk int) (*Relation, error) {
	if pk < 0 || pk >= s.Len() {
		return nil, fmt.Errorf("relation %s: %w: %d (schema has %d attributes)",
			name, errors.ErrInvalidPrimaryKey, pk, s.Len())
	}
	return &Relation{
		name:   name,
		pk:     pk,
		hasPK:  true,
		schema: s.Clone(),
		store:  storage.NewKeyed(pk),
	}, nil
}

// Name returns the relation name
func (r *Relation) Name() string {
	return r.name
}

// Schema returns a copy of the relation schema
func (r *Relation) Schema() *Schema {
	return r.schema.Clone()
}

// PrimaryKey returns the position of the primary key attribute, if one is declared
func (r *Relation) PrimaryKey() (int, bool) {
	return r.pk, r.hasPK
}

// StorageKind reports which storage representation backs the relation
func (r *Relation) StorageKind() storage.Kind {
	return r.store.Kind()
}

// Len returns the number of stored rows
func (r *Relation) Len() int {
	return r.store.Len()
}

// Tuples returns copies of all stored rows in storage order:
// key order for keyed relations, insertion order otherwise
func (r *Relation) Tuples() []data.Row {
	return r.store.Tuples()
}

// Ascend calls fn with the storage key (primary key value or surrogate identifier)
// and a copy of each row, in storage order, until fn returns false
func (r *Relation) Ascend(fn func(key data.Value, row data.Row) bool) {
	r.store.Ascend(func(key data.Value, row data.Row) bool {
		return fn(key, row.Clone())
	})
}

// Contains reports whether the row (or, for keyed relations, its key) is stored
func (r *Relation) Contains(row data.Row) bool {
	return r.store.Contains(row)
}

// InsertRow inserts a single row and reports whether it was accepted
func (r *Relation) InsertRow(row data.Row) bool {
	return r.Insert(row) == nil
}

// InsertRows inserts a batch atomically and reports whether it was accepted
func (r *Relation) InsertRows(rows []data.Row) bool {
	return r.InsertBatch(rows) == nil
}

// Insert adds a row after schema validation and, for keyed relations,
// a primary key uniqueness check. A rejected row leaves the relation unchanged.
func (r *Relation) Insert(row data.Row) error {
	if err := r.schema.checkRow(r.name, row, -1); err != nil {
		r.reject("insert", err)
		return err
	}

	if r.hasPK && r.store.Contains(row) {
		err := errors.NewPrimaryKeyViolation(r.name, r.keyAttribute(), row[r.pk].Interface(), -1)
		r.reject("insert", err)
		return err
	}

	r.store.Insert(row.Clone())
	return nil
}

// InsertBatch adds all rows or none.
//
// Every check runs before the first write: schema validation of each row, then,
// for keyed relations, key uniqueness within the batch and against stored rows.
func (r *Relation) InsertBatch(rows []data.Row) error {
	for i, row := range rows {
		if err := r.schema.checkRow(r.name, row, i); err != nil {
			r.reject("insert_batch", err)
			return err
		}
	}

	if r.hasPK {
		seen := make(map[data.Value]struct{}, len(rows))
		for i, row := range rows {
			key := row[r.pk]
			if _, dup := seen[key]; dup {
				err := errors.NewBatchDuplicateKey(r.name, r.keyAttribute(), key.Interface(), i)
				r.reject("insert_batch", err)
				return err
			}
			seen[key] = struct{}{}
		}

		for i, row := range rows {
			if r.store.Contains(row) {
				err := errors.NewPrimaryKeyViolation(r.name, r.keyAttribute(), row[r.pk].Interface(), i)
				r.reject("insert_batch", err)
				return err
			}
		}
	}

	for _, row := range rows {
		r.store.Insert(row.Clone())
	}
	return nil
}

func (r *Relation) keyAttribute() string {
	if !r.hasPK {
		return ""
	}
	return r.schema.Attributes[r.pk].Name
}

func (r *Relation) reject(op string, err error) {
	slog.Debug("rows rejected", "relation", r.name, "op", op, "reason", err)
}

func (r *Relation) String() string {
	if r.hasPK {
		return fmt.Sprintf("%s%s pk=%s rows=%d", r.name, r.schema, r.keyAttribute(), r.Len())
	}
	return fmt.Sprintf("%s%s rows=%d", r.name, r.schema, r.Len())
}
