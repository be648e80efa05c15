// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionFiltering(t *testing.T) {
	Level.Set(slog.LevelDebug)
	defer Level.Set(slog.LevelInfo)
	Enable("test-on")

	var buf bytes.Buffer
	logger := New(&buf)

	logger.With("section", "test-off").Debug("hidden")
	assert.Empty(t, buf.String())

	logger.With("section", "test-off").Warn("warning")
	assert.Contains(t, buf.String(), "warning")
	buf.Reset()

	logger.With("section", "test-on").Debug("shown", "key", 42)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=42")
	assert.Contains(t, buf.String(), "section=test-on")
	buf.Reset()

	logger.Debug("inline", "section", "test-on.sub")
	assert.Contains(t, buf.String(), "inline")
}

func TestSectionsFromEnv(t *testing.T) {
	assert.Equal(t, []string{"bdd", "cli"}, sectionsFromEnv(" bdd, ,cli"))
	assert.Nil(t, sectionsFromEnv(""))
}
