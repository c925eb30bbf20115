// Package loader builds base relations from YAML fixture files.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/schema"
)

// LoadFile reads a fixture file and returns its relations in file order
func LoadFile(path string, logger *slog.Logger) ([]*schema.Relation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rels, err := Load(bytes.NewReader(raw), logger)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return rels, nil
}

// Load decodes a fixture document from r
func Load(r io.Reader, logger *slog.Logger) ([]*schema.Relation, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	rels := make([]*schema.Relation, 0, len(doc.Relations))
	seen := make(map[string]bool, len(doc.Relations))
	for _, meta := range doc.Relations {
		if seen[meta.Name] {
			return nil, fmt.Errorf("relation %s defined twice", meta.Name)
		}
		seen[meta.Name] = true

		rel, err := buildRelation(meta)
		if err != nil {
			return nil, err
		}
		logger.Debug("relation loaded",
			slog.String("relation", rel.Name()),
			slog.Int("rows", rel.Len()),
		)
		rels = append(rels, rel)
	}
	return rels, nil
}

func buildRelation(meta RelationMeta) (*schema.Relation, error) {
	if meta.Name == "" {
		return nil, fmt.Errorf("relation without a name")
	}

	attrs := make([]schema.Attribute, 0, len(meta.Attributes))
	pk := -1
	for i, a := range meta.Attributes {
		typ, err := data.ParseType(a.Type)
		if err != nil {
			return nil, fmt.Errorf("relation %s attribute %s: %w", meta.Name, a.Name, err)
		}
		attrs = append(attrs, schema.Attribute{Name: a.Name, Type: typ})
		if a.Name == meta.PrimaryKey && pk < 0 {
			pk = i
		}
	}

	s := schema.NewSchema(attrs...)
	var rel *schema.Relation
	switch {
	case meta.PrimaryKey == "":
		rel = schema.New(meta.Name, s)
	case pk < 0:
		return nil, fmt.Errorf("relation %s: primary key %q is not an attribute", meta.Name, meta.PrimaryKey)
	default:
		var err error
		if rel, err = schema.NewKeyed(meta.Name, s, pk); err != nil {
			return nil, err
		}
	}

	rows := make([]data.Row, len(meta.Rows))
	for i, raw := range meta.Rows {
		row, err := toRow(raw)
		if err != nil {
			return nil, fmt.Errorf("relation %s row %d: %w", meta.Name, i, err)
		}
		rows[i] = row
	}

	if err := rel.InsertBatch(rows); err != nil {
		return nil, err
	}
	return rel, nil
}

// toRow converts decoded YAML scalars to values. No coercion happens here:
// a quoted number stays a string and is rejected by an INT attribute.
func toRow(raw []any) (data.Row, error) {
	row := make(data.Row, len(raw))
	for i, v := range raw {
		switch x := v.(type) {
		case string:
			row[i] = data.String(x)
		case int:
			row[i] = data.Integer(int64(x))
		case int64:
			row[i] = data.Integer(x)
		case uint64:
			if x > math.MaxInt64 {
				return nil, fmt.Errorf("value %d overflows a 64-bit integer", x)
			}
			row[i] = data.Integer(int64(x))
		default:
			return nil, fmt.Errorf("unsupported value %v (%T) at position %d", v, v, i)
		}
	}
	return row, nil
}
