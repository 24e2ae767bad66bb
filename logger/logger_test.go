package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LevelAndJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", false)

	l.Info().Msg("hidden")
	l.Warn().Str("dish", "Tea").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"dish":"Tea"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "loud", false)
	l.Debug().Msg("debug")
	l.Info().Msg("info")
	assert.NotContains(t, buf.String(), `"message":"debug"`)
	assert.Contains(t, buf.String(), `"message":"info"`)
}
