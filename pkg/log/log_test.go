package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLogger_LogScript(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	logger.LogScript(ScriptOperation{
		Path:         "hello.ur",
		Status:       ScriptTranspiled,
		Replacements: 3,
	})

	out := buf.String()
	assert.Contains(t, out, "Transpiled hello.ur")
	assert.Contains(t, out, "(3 replacements)")
}

func TestLogger_LogScript_Refused(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	logger.LogScript(ScriptOperation{
		Path:   "evil.ur",
		Status: ScriptRefused,
		Err:    errors.New("unsafe token"),
	})

	out := buf.String()
	assert.Contains(t, out, "Refused evil.ur")
	assert.Contains(t, out, "unsafe token")
}

func TestLogger_Context(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	ctx := NewContext(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))

	assert.Panics(t, func() {
		FromContext(context.Background())
	})
}
