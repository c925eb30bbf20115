package engine

import (
	"context"
	"log/slog"
)

// LoggingObserver logs every event using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer. A nil logger uses slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelDebug
	if event.Type == EventEvalFailed {
		level = slog.LevelWarn
	}
	lo.logger.Log(context.Background(), level, "evaluation_lifecycle",
		"event", event.Type,
		"eval_id", event.EvalID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
