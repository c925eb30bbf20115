package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/schema"
	"github.com/leengari/mini-relalg/internal/plan"
	"github.com/leengari/mini-relalg/internal/query/operations/selection"
	"github.com/leengari/mini-relalg/internal/render"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run inserts and projections over a built-in relation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(a, cmd.OutOrStdout())
		},
	}
}

// runDemo walks through the insert protocol and the projection operator
func runDemo(a *app, w io.Writer) error {
	key := schema.Attribute{Name: "key", Type: data.TypeInteger}
	value := schema.Attribute{Name: "value", Type: data.TypeString}

	rel, err := schema.NewKeyed("test", schema.NewSchema(key, value), 0)
	if err != nil {
		return err
	}

	kv := func(k int64, v string) data.Row {
		return data.NewRow(data.Integer(k), data.String(v))
	}
	inserts := []struct {
		title string
		rows  []data.Row
	}{
		{"insert (1, foo)", []data.Row{kv(1, "foo")}},
		{"insert duplicate key (1, bar)", []data.Row{kv(1, "bar")}},
		{"insert batch (2, bar), (3, baz)", []data.Row{kv(2, "bar"), kv(3, "baz")}},
		{"insert batch with stored key", []data.Row{kv(4, "foo"), kv(1, "qux")}},
		{"insert batch (4, foo)", []data.Row{kv(4, "foo")}},
	}

	fmt.Fprintln(w, "=== INSERT ===")
	for _, ins := range inserts {
		err := rel.InsertBatch(ins.rows)
		status := "accepted"
		if err != nil {
			status = "rejected"
		}
		slog.Debug("demo insert", "step", ins.title, "error", err)
		fmt.Fprintf(w, "%s: %s\n", ins.title, status)
	}
	fmt.Fprintln(w)

	if err := a.engine.Register(rel); err != nil {
		return err
	}

	steps := []struct {
		title string
		op    plan.Operator
	}{
		{"SELECT *", plan.NewProjection(rel)},
		{"SELECT value", plan.NewProjection(rel, value)},
		{"SELECT value, key", plan.NewProjection(rel, value, key)},
		{"SELECT missing", plan.NewProjection(rel, schema.Attribute{Name: "missing", Type: data.TypeString})},
		{"WHERE key = 1", plan.NewSelection(rel, selection.Where(key, selection.EQ, data.Integer(1)))},
	}

	for _, step := range steps {
		fmt.Fprintf(w, "== %s\n", step.title)
		result, err := a.engine.Evaluate(step.op)
		if err != nil {
			fmt.Fprintf(w, "no result: %v\n\n", err)
			continue
		}
		if err := render.Relation(w, result); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
