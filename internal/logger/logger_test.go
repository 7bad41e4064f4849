package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLine redirects l into a buffer, emits one info message, and returns the
// decoded JSON entry.
func logLine(t *testing.T, l *Logger, msg string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Info().Msg(msg)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	entry := logLine(t, NewLogger("resolver"), "defaults loaded")

	assert.Equal(t, "resolver", entry["role"])
	assert.Equal(t, "defaults loaded", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func", "caller should be recorded under func")
}

func TestNewLogger_NamesCallerField(t *testing.T) {
	NewLogger("resolver")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewCLILogger_CarriesRole(t *testing.T) {
	entry := logLine(t, NewCLILogger("protectconf"), "resolving")
	assert.Equal(t, "protectconf", entry["role"])
}

func TestApplyLevel_SetsGlobalLevel(t *testing.T) {
	old := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(old) })

	require.NoError(t, ApplyLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestApplyLevel_UnknownName(t *testing.T) {
	old := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(old) })

	require.Error(t, ApplyLevel("loud"))
	assert.Equal(t, old, zerolog.GlobalLevel(), "failed parse must not change the level")
}

func TestNop_WritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

// The trace middleware tags a child logger per request; fields stamped on the
// child must never leak back into the shared parent.
func TestGetChildLogger_InheritsAndIsolates(t *testing.T) {
	parent := NewLogger("protectconfd")
	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-123")
	})

	childEntry := logLine(t, child, "tagged")
	assert.Equal(t, "protectconfd", childEntry["role"], "child inherits parent fields")
	assert.Equal(t, "t-123", childEntry["trace_id"])

	parentEntry := logLine(t, parent, "untagged")
	_, leaked := parentEntry["trace_id"]
	assert.False(t, leaked, "child fields must not leak into the parent")
}

func TestFromContext_YieldsTheAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "ctx-7").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("recovered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-7", entry["trace_id"])
}

func TestFromContext_BareContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_YieldsTheAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req-9").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/config/defaults", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("recovered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-9", entry["trace_id"])
}

func TestFromRequest_BareRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NotNil(t, FromRequest(req))
}
