package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leengari/mini-relalg/internal/plan"
	"github.com/leengari/mini-relalg/internal/query/operations/projection"
	"github.com/leengari/mini-relalg/internal/render"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the relations defined in the fixture file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.engine.ListRelations() {
				rel, err := a.engine.Relation(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d rows)\n", name, rel.Schema(), rel.Len())
			}
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var relName string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every row of a relation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rel, err := a.relation(relName)
			if err != nil {
				return err
			}
			return render.Relation(cmd.OutOrStdout(), rel)
		},
	}
	cmd.Flags().StringVarP(&relName, "relation", "r", "", "relation name")
	return cmd
}

func newProjectCmd(a *app) *cobra.Command {
	var (
		relName string
		attrs   []string
		twice   bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a relation onto attributes (all attributes when none are given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, err := a.projection(relName, attrs)
			if err != nil {
				return err
			}

			result, err := a.engine.Evaluate(op)
			if err != nil {
				return fmt.Errorf("no result: %w", err)
			}

			if twice {
				result, err = a.engine.Evaluate(plan.NewProjection(result))
				if err != nil {
					return fmt.Errorf("no result: %w", err)
				}
			}
			return render.Relation(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&relName, "relation", "r", "", "relation name")
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "attribute to keep, as name or name:TYPE (repeatable)")
	cmd.Flags().BoolVar(&twice, "twice", false, "apply select-all projection to the result again")
	return cmd
}

func newExplainCmd(a *app) *cobra.Command {
	var (
		relName string
		attrs   []string
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Print the operator tree of a projection without evaluating it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, err := a.projection(relName, attrs)
			if err != nil {
				return err
			}
			if err := projection.Validate(op.Input(), op.Projection); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %v\n", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), plan.PrintTree(op))
			return nil
		},
	}
	cmd.Flags().StringVarP(&relName, "relation", "r", "", "relation name")
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "attribute to keep, as name or name:TYPE (repeatable)")
	return cmd
}

func (a *app) projection(relName string, specs []string) (*plan.ProjectionNode, error) {
	rel, err := a.relation(relName)
	if err != nil {
		return nil, err
	}
	attrs, err := parseAttributes(rel.Schema(), specs)
	if err != nil {
		return nil, err
	}
	return plan.NewProjection(rel, attrs...), nil
}
