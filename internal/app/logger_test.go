package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("json format emits json records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&Config{LogLevel: "debug", LogFormat: "json"}, &buf)
		logger.Debug("hello")
		assert.True(t, strings.HasPrefix(buf.String(), "{"))
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("text is the default format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&Config{LogLevel: "warn"}, &buf)
		logger.Warn("plain")
		assert.Contains(t, buf.String(), "msg=plain")
	})

	t.Run("unset and unknown levels default to warn", func(t *testing.T) {
		for _, levelStr := range []string{"", "loud"} {
			var buf bytes.Buffer
			logger := newLogger(&Config{LogLevel: levelStr}, &buf)
			logger.Info("quiet")
			assert.Empty(t, buf.String(), "level %q", levelStr)
			logger.Warn("kept")
			assert.Contains(t, buf.String(), "kept")
		}
	})
}
