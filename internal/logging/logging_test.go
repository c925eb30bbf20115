package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/leengari/mini-relalg/internal/config"
)

func TestMultiHandler_ForwardsToAll(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer
	multi := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}
	logger := slog.New(multi)

	assert.Check(t, multi.Enabled(context.Background(), slog.LevelDebug))

	WithRelation(logger, "users").Debug("only debug")
	logger.Info("both")

	assert.Check(t, is.Contains(debugBuf.String(), "only debug"))
	assert.Check(t, is.Contains(debugBuf.String(), "relation=users"))
	assert.Check(t, !bytes.Contains(infoBuf.Bytes(), []byte("only debug")))
	assert.Check(t, is.Contains(infoBuf.String(), "both"))
}

func TestMultiHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	multi := &multiHandler{handlers: []slog.Handler{slog.NewTextHandler(&buf, nil)}}

	slog.New(multi).WithGroup("eval").Info("done", "rows", 3)
	assert.Check(t, is.Contains(buf.String(), "eval.rows=3"))
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	logger, closeFn := SetupLogger(config.Default().Logging)
	defer closeFn()

	assert.Check(t, logger != nil)
	assert.Check(t, !logger.Enabled(context.Background(), slog.LevelDebug))
	assert.Check(t, logger.Enabled(context.Background(), slog.LevelInfo))
}
