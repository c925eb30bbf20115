package plan

import (
	"github.com/leengari/mini-relalg/internal/domain/schema"
	"github.com/leengari/mini-relalg/internal/query/operations/projection"
	"github.com/leengari/mini-relalg/internal/query/operations/selection"
)

// Node is the base interface for everything in an operator tree
type Node interface {
	// Children returns child nodes for tree walking
	Children() []Node

	// Metadata returns attached metadata (never nil)
	Metadata() map[string]any

	// NodeType returns the type identifier (for debugging/logging)
	NodeType() string
}

// Operator is a node that can be evaluated: either a unary or a binary operator
type Operator interface {
	Node
	operator()
}

// UnaryOperator is an operator over a single input relation
type UnaryOperator interface {
	Operator
	Input() *schema.Relation
	unary()
}

// BinaryOperator is an operator over two inputs (joins, unions).
// No binary operator is implemented; evaluating one yields no result.
type BinaryOperator interface {
	Operator
	binary()
}

// RelationNode is the leaf referencing an input relation
type RelationNode struct {
	Relation *schema.Relation

	metadata map[string]any
}

func (n *RelationNode) Children() []Node {
	return nil // Leaf node has no children
}

func (n *RelationNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *RelationNode) NodeType() string {
	return "RELATION"
}

// ProjectionNode represents a projection over a relation
type ProjectionNode struct {
	Projection *projection.Projection

	input    *RelationNode
	metadata map[string]any
}

// NewProjection creates a projection of rel onto attrs. No attributes selects all.
func NewProjection(rel *schema.Relation, attrs ...schema.Attribute) *ProjectionNode {
	return &ProjectionNode{
		Projection: projection.New(attrs...),
		input:      &RelationNode{Relation: rel},
	}
}

func (n *ProjectionNode) Input() *schema.Relation {
	return n.input.Relation
}

func (n *ProjectionNode) Children() []Node {
	return []Node{n.input}
}

func (n *ProjectionNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *ProjectionNode) NodeType() string {
	return "PROJECTION"
}

func (n *ProjectionNode) operator() {}
func (n *ProjectionNode) unary()    {}

// SelectionNode represents a selection over a relation.
// Its predicate is not evaluated.
type SelectionNode struct {
	Predicate selection.Predicate

	input    *RelationNode
	metadata map[string]any
}

// NewSelection creates a selection of rel by pred
func NewSelection(rel *schema.Relation, pred selection.Predicate) *SelectionNode {
	return &SelectionNode{
		Predicate: pred,
		input:     &RelationNode{Relation: rel},
	}
}

func (n *SelectionNode) Input() *schema.Relation {
	return n.input.Relation
}

func (n *SelectionNode) Children() []Node {
	return []Node{n.input}
}

func (n *SelectionNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *SelectionNode) NodeType() string {
	return "SELECTION"
}

func (n *SelectionNode) operator() {}
func (n *SelectionNode) unary()    {}
