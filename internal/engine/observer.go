package engine

import "time"

// EventType represents different lifecycle phases of an evaluation
type EventType string

const (
	EventEvalStart  EventType = "eval_start"
	EventEvalEnd    EventType = "eval_end"
	EventEvalFailed EventType = "eval_failed"
)

// Event represents a lifecycle event of an operator evaluation
type Event struct {
	Type      EventType // Type of event
	EvalID    string    // Evaluation ID for tracing
	Timestamp time.Time // When the event occurred
	Data      any       // Phase-specific data (operator tree, row count, error)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
