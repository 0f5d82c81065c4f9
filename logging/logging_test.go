package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{Level: zerolog.DebugLevel, Output: buf})

	log.Debug().Str("endpoint", "ping").Msg("response received")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "ping", entry["endpoint"])
	assert.Equal(t, "navisonic", entry["service"])
	assert.Contains(t, entry, "time")
}

func TestNewFiltersBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{Output: buf})

	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Info().Msg("shown")
	assert.NotZero(t, buf.Len())
}

func TestNewConsole(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{Format: FormatConsole, Output: buf})

	log.Info().Msg("connected")
	assert.Contains(t, buf.String(), "connected")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"invalid": zerolog.InfoLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"trace":   zerolog.TraceLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}
