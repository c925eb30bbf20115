package engine

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/mini-relalg/internal/domain/errors"
	"github.com/leengari/mini-relalg/internal/domain/schema"
	"github.com/leengari/mini-relalg/internal/logging"
	"github.com/leengari/mini-relalg/internal/plan"
)

// Engine keeps a catalog of base relations and evaluates operator trees over them
type Engine struct {
	relations map[string]*schema.Relation
	logger    *slog.Logger
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		relations: make(map[string]*schema.Relation),
		logger:    logger,
		observers: make([]Observer, 0),
	}
}

// Register adds a base relation to the catalog
func (e *Engine) Register(rel *schema.Relation) error {
	if _, exists := e.relations[rel.Name()]; exists {
		return fmt.Errorf("relation %s already registered", rel.Name())
	}
	e.relations[rel.Name()] = rel
	logging.WithRelation(e.logger, rel.Name()).Debug("relation registered", "rows", rel.Len())
	return nil
}

// Relation looks up a registered relation by name
func (e *Engine) Relation(name string) (*schema.Relation, error) {
	rel, ok := e.relations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrRelationNotFound, name)
	}
	return rel, nil
}

// ListRelations returns the sorted names of registered relations
func (e *Engine) ListRelations() []string {
	names := make([]string, 0, len(e.relations))
	for name := range e.relations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Evaluate evaluates op and returns the derived relation.
// Observers are notified when evaluation starts and when it ends or fails.
func (e *Engine) Evaluate(op plan.Operator) (*schema.Relation, error) {
	evalID := uuid.New().String()
	log := logging.WithEvaluation(e.logger, evalID, op.NodeType())

	e.notify(Event{Type: EventEvalStart, EvalID: evalID, Data: plan.PrintTree(op)})

	result, err := plan.Evaluate(op)
	if err != nil {
		log.Debug("no result", "error", err)
		e.notify(Event{Type: EventEvalFailed, EvalID: evalID, Data: err.Error()})
		return nil, fmt.Errorf("evaluation %s: %w", evalID, err)
	}

	log.Debug("evaluated", "rows", result.Len())
	e.notify(Event{Type: EventEvalEnd, EvalID: evalID, Data: map[string]any{
		"rows_returned": result.Len(),
		"storage":       result.StorageKind().String(),
	}})
	return result, nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
