package synthlog_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revsynth/revsynth/synthlog"
)

func TestNewJSONWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l := synthlog.NewJSON(&buf)
	l.Info("synthesis started", map[string]any{"n": 5})

	out := buf.String()
	assert.Contains(t, out, "synthesis started")
	assert.Contains(t, out, `"n":5`)
}

func TestErrorIncludesMessage(t *testing.T) {
	var buf bytes.Buffer
	l := synthlog.NewJSON(&buf)
	l.Error("synthesis failed", errors.New("boom"), nil)

	assert.True(t, strings.Contains(buf.String(), "boom"))
}

func TestNoopDiscardsOutput(t *testing.T) {
	l := synthlog.Noop()
	assert.NotPanics(t, func() {
		l.Debug("x", nil)
		l.Info("x", nil)
		l.Warn("x", nil)
		l.Error("x", nil, nil)
	})
}
