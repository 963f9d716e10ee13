package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"error":   Error,
		"INFO":    Info,
		" debug ": Debug,
		"trace":   Trace,
		"0":       Error,
		"3":       Trace,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "verbose", "4", "-1"} {
		_, err := ParseLevel(in)
		assert.Error(t, err, in)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	prev := CurrentLevel()
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(prev)
	})

	SetLevel(Info)
	Infof("pu=%.2f", 48.51)
	Debugf("hidden")
	Errorf("boom")

	out := buf.String()
	assert.Contains(t, out, "[INFO]  pu=48.51")
	assert.Contains(t, out, "[ERROR] boom")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "logger_test.go")

	buf.Reset()
	SetVerbosity(int(Trace))
	Tracef("visible")
	assert.Contains(t, buf.String(), "[TRACE] visible")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", Debug.String())
	assert.Equal(t, "9", Level(9).String())
}
