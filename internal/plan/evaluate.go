package plan

import (
	"fmt"

	"github.com/leengari/mini-relalg/internal/domain/errors"
	"github.com/leengari/mini-relalg/internal/domain/schema"
	"github.com/leengari/mini-relalg/internal/query/operations/projection"
	"github.com/leengari/mini-relalg/internal/query/operations/selection"
)

// Evaluate routes op to its concrete operator and returns the derived relation.
// A nil relation means no result; the error says why.
func Evaluate(op Operator) (*schema.Relation, error) {
	switch o := op.(type) {
	case UnaryOperator:
		return evaluateUnary(o)
	case BinaryOperator:
		return nil, fmt.Errorf("%s: %w", o.NodeType(), errors.ErrNotSupported)
	default:
		return nil, fmt.Errorf("unsupported operator type: %T", op)
	}
}

func evaluateUnary(op UnaryOperator) (*schema.Relation, error) {
	switch o := op.(type) {
	case *ProjectionNode:
		return projection.Execute(o.Projection, o.Input())
	case *SelectionNode:
		return selection.Execute(o.Predicate, o.Input())
	default:
		return nil, fmt.Errorf("unsupported unary operator: %T", op)
	}
}

// Describe returns a one-line description of a node for tree printing
func Describe(node Node) string {
	switch n := node.(type) {
	case *RelationNode:
		return fmt.Sprintf("%s %s", n.NodeType(), n.Relation.Name())
	case *ProjectionNode:
		return fmt.Sprintf("%s [%s]", n.NodeType(), n.Projection)
	case *SelectionNode:
		return fmt.Sprintf("%s [%s]", n.NodeType(), n.Predicate)
	default:
		return node.NodeType()
	}
}
