package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/verifier/core/error"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "shown", entries[0]["message"])
	assert.Equal(t, "error", entries[1]["level"])
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf, Name: "i18n"}).
		WithField("layer", "embedded")

	logger.Debug("bundle loaded", Fields{"locale": "de"}, Field("keys", 3))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "i18n", entries[0]["logger"])
	assert.Equal(t, "embedded", entries[0]["layer"])
	assert.Equal(t, "de", entries[0]["locale"])
	assert.EqualValues(t, 3, entries[0]["keys"])
}

func TestLogger_WithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	logger.ErrorWithErr("reload failed", errors.New("disk gone"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "disk gone", entries[0]["error"])
}

func TestLogger_LogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	err := mdwerror.New("value must not be nil").
		WithCode(mdwerror.CodeVerificationFailed).
		WithOperation("verify.object.nil").
		WithDetail("name", "user")
	logger.LogError(err)
	logger.LogError(nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "debug", entries[0]["level"], "low severity logs at debug")
	assert.Equal(t, "VERIFICATION_FAILED", entries[0]["code"])
	assert.Equal(t, "verify.object.nil", entries[0]["operation"])
	assert.Equal(t, "user", entries[0]["name"])
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.False(t, logger.IsLevelEnabled(LevelError))
	assert.NotPanics(t, func() {
		logger.Error("nothing")
		logger.WithField("a", 1).Info("nothing")
	})
}

func TestDefault(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger := New()
	SetDefault(logger)
	assert.Same(t, logger, GetDefault())

	SetDefault(nil)
	assert.NotNil(t, GetDefault())
}

func TestLevel_Text(t *testing.T) {
	for _, name := range levelNames {
		var l Level
		require.NoError(t, l.UnmarshalText([]byte(strings.ToUpper(name))))
		text, err := l.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))
	}

	var l Level
	assert.Error(t, l.UnmarshalText([]byte("loud")))
	assert.Equal(t, "unknown", Level(42).String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("Console")
	require.NoError(t, err)
	assert.Equal(t, FormatConsole, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)

	text, err := FormatConsole.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "console", string(text))

	require.NoError(t, f.UnmarshalText([]byte("console")))
	assert.Equal(t, FormatConsole, f)
	assert.Error(t, f.UnmarshalText([]byte("xml")))
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatConsole, Output: &buf, NoColor: true})
	logger.Info("hello", Fields{"locale": "fr"})

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "locale=fr")
}
