// File: i18n_test.go
// Title: Internationalization Module Tests
// Description: Tests for bundle loading, the lookup chain, pattern caching,
//              locale matching and file watching.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: Layers, pattern cache and watcher tests

package i18n

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/verifier/core/error"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func embedded() fstest.MapFS {
	return fstest.MapFS{
		"en.toml": {Data: []byte(`
[messages]
welcome = "Welcome"
count = "{0,choice,0#no files|1#one file|1<{0} files}"
amount = "{0,number}"

[errors]
not_found = "Not found"
`)},
		"de.yaml": {Data: []byte(`
messages:
  welcome: "Willkommen"
  count: "{0,choice,0#keine Dateien|1#eine Datei|1<{0} Dateien}"
`)},
		"fr.jsonc": {Data: []byte(`{
  // commentaires
  "messages": {
    "welcome": "Bienvenue",
  },
}`)},
		"README.md": {Data: []byte("ignored")},
	}
}

func newManager(t *testing.T, opts Options) *Manager {
	t.Helper()
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = "en"
	}
	if opts.Sources == nil {
		opts.Sources = []fs.FS{embedded()}
	}
	m, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestNew(t *testing.T) {
	t.Run("create with valid options", func(t *testing.T) {
		m := newManager(t, Options{})
		assert.Equal(t, language.English, m.DefaultLocale())
		assert.Equal(t, language.English, m.CurrentLocale())
		assert.Equal(t, []language.Tag{language.English, language.German, language.French}, m.AvailableLocales())
		assert.Empty(t, m.LoadErrors())
	})

	t.Run("empty default locale", func(t *testing.T) {
		_, err := New(Options{Sources: []fs.FS{embedded()}})
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
	})

	t.Run("invalid default locale", func(t *testing.T) {
		_, err := New(Options{DefaultLocale: "not a locale", Sources: []fs.FS{embedded()}})
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidLocale))
	})

	t.Run("nonexistent locales directory", func(t *testing.T) {
		_, err := New(Options{DefaultLocale: "en", LocalesDir: "/nonexistent/directory"})
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
	})

	t.Run("default locale without bundle", func(t *testing.T) {
		_, err := New(Options{DefaultLocale: "it", Sources: []fs.FS{embedded()}})
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeBundleLoad))
	})

	t.Run("format restricts extensions", func(t *testing.T) {
		m := newManager(t, Options{Format: FormatTOML})
		assert.Equal(t, []language.Tag{language.English}, m.AvailableLocales())
	})
}

func TestLoad_BrokenFiles(t *testing.T) {
	src := embedded()
	src["es.toml"] = &fstest.MapFile{Data: []byte("this is = = not toml")}
	src["bad locale!.toml"] = &fstest.MapFile{Data: []byte(`a = "b"`)}

	m := newManager(t, Options{Sources: []fs.FS{src}})
	errs := m.LoadErrors()
	require.Len(t, errs, 2)
	for _, err := range errs {
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeBundleLoad))
	}
	assert.False(t, m.HasLocale(language.Spanish))
}

func TestLookupChain(t *testing.T) {
	m := newManager(t, Options{})

	tests := []struct {
		name   string
		key    string
		tag    language.Tag
		want   string
		source language.Tag
	}{
		{"exact", "messages.welcome", language.German, "Willkommen", language.German},
		{"parent locale", "messages.welcome", language.MustParse("de-CH"), "Willkommen", language.German},
		{"default fallback", "errors.not_found", language.German, "Not found", language.English},
		{"unknown locale", "messages.welcome", language.Japanese, "Welcome", language.English},
		{"jsonc bundle", "messages.welcome", language.MustParse("fr-CA"), "Bienvenue", language.French},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, from, ok := m.Lookup(tt.key, tt.tag)
			require.True(t, ok)
			assert.Equal(t, tt.want, msg)
			assert.Equal(t, tt.source, from)
		})
	}

	_, _, ok := m.Lookup("does.not.exist", language.English)
	assert.False(t, ok)
}

func TestLookup_NoFallback(t *testing.T) {
	m := newManager(t, Options{NoFallback: true})

	_, _, ok := m.Lookup("errors.not_found", language.German)
	assert.False(t, ok)
	assert.True(t, m.HasTranslation("messages.welcome", language.German))
}

func TestLayers_DirectoryOverridesSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.toml"), []byte(`
[messages]
welcome = "Servus"
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de_AT.toml"), []byte(`
[messages]
welcome = "Grüß Gott"
`), 0o644))

	m := newManager(t, Options{LocalesDir: dir})

	msg, _, _ := m.Lookup("messages.welcome", language.German)
	assert.Equal(t, "Servus", msg)

	msg, _, _ = m.Lookup("messages.welcome", language.MustParse("de-AT"))
	assert.Equal(t, "Grüß Gott", msg)

	msg, _, _ = m.Lookup("messages.count", language.German)
	assert.Equal(t, "{0,choice,0#keine Dateien|1#eine Datei|1<{0} Dateien}", msg, "keys missing in the directory come from lower layers")

	files := m.Files(language.German)
	assert.Equal(t, []string{"de.toml"}, files[dir])
	assert.Equal(t, []string{"de.yaml"}, files["source[0]"])

	assert.Equal(t, "Servus", m.Messages(language.German)["messages.welcome"])
	assert.Contains(t, m.Messages(language.German), "messages.count")
}

func TestMessage(t *testing.T) {
	m := newManager(t, Options{})

	msg, err := m.Message(language.German, "messages.count", 3)
	require.NoError(t, err)
	assert.Equal(t, "3 Dateien", msg)

	msg, err = m.Message(language.English, "messages.count", 1)
	require.NoError(t, err)
	assert.Equal(t, "one file", msg)

	msg, err = m.Message(language.German, "messages.amount", 1234.5)
	require.NoError(t, err)
	assert.Equal(t, "1.234,5", msg, "numbers follow the requested locale, not the bundle's")

	_, err = m.Message(language.English, "missing.key")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMissingMessage))
}

func TestMessage_InvalidPattern(t *testing.T) {
	src := embedded()
	src["it.toml"] = &fstest.MapFile{Data: []byte(`broken = "{0"`)}
	m := newManager(t, Options{Sources: []fs.FS{src}})

	_, err := m.Message(language.Italian, "broken")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidPattern))
}

func TestT(t *testing.T) {
	m := newManager(t, Options{})

	assert.Equal(t, "Welcome", m.T("messages.welcome"))
	assert.Equal(t, "[missing]", m.T("missing"))

	require.NoError(t, m.SetLocale(language.German))
	assert.Equal(t, language.German, m.CurrentLocale())
	assert.Equal(t, "Willkommen", m.T("messages.welcome"))

	_, err := m.TryT("missing")
	assert.Error(t, err)

	assert.Equal(t, "2 left", m.TWithFallback("missing", "{0} left", 2))

	err = m.SetLocale(language.Japanese)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidLocale))
}

func TestPatternCache(t *testing.T) {
	m := newManager(t, Options{})

	p1, err := m.Pattern("messages.welcome", language.German)
	require.NoError(t, err)
	p2, err := m.Pattern("messages.welcome", language.German)
	require.NoError(t, err)
	assert.Same(t, p1, p2)

	p3, err := m.Pattern("messages.welcome", language.MustParse("de-CH"))
	require.NoError(t, err)
	assert.NotSame(t, p1, p3, "patterns are cached per requested locale")
	assert.Equal(t, language.MustParse("de-CH"), p3.Locale())

	raw1, err := m.Compile("{0} and {1}", language.English)
	require.NoError(t, err)
	raw2, err := m.Compile("{0} and {1}", language.English)
	require.NoError(t, err)
	assert.Same(t, raw1, raw2)

	stats := m.CacheStats()
	assert.EqualValues(t, 2, stats.Hits)
	assert.EqualValues(t, 3, stats.Misses)
	assert.Equal(t, 3, stats.Size)
}

func TestPatternCache_Concurrent(t *testing.T) {
	m := newManager(t, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tag := []language.Tag{language.English, language.German, language.French}[i%3]
			for j := 0; j < 50; j++ {
				_, err := m.Message(tag, "messages.count", j)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 3, m.CacheStats().Size)
}

func TestKeys(t *testing.T) {
	m := newManager(t, Options{})
	assert.Equal(t, []string{"errors.not_found", "messages.amount", "messages.count", "messages.welcome"}, m.Keys(language.English))
	assert.Equal(t, []string{"messages.welcome"}, m.Keys(language.French))
	assert.Empty(t, m.Keys(language.Japanese))
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.toml")
	require.NoError(t, os.WriteFile(path, []byte(`greeting = "Hello"`), 0o644))

	m := newManager(t, Options{LocalesDir: dir, Sources: []fs.FS{}})

	var changed []language.Tag
	m.OnLocaleChange(func(tag language.Tag, messages map[string]string) {
		changed = append(changed, tag)
	})

	msg, err := m.Message(language.English, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "Hello", msg)

	require.NoError(t, os.WriteFile(path, []byte(`greeting = "Hi"`), 0o644))
	require.NoError(t, m.Reload())

	msg, err = m.Message(language.English, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "Hi", msg)
	assert.Equal(t, []language.Tag{language.English}, changed)

	require.NoError(t, os.Remove(path))
	err = m.Reload()
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeBundleLoad))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "de.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[messages]
welcome = "Hallo"
`), 0o644))

	m := newManager(t, Options{LocalesDir: dir, Watch: true})
	require.True(t, m.IsWatching())

	events := make(chan language.Tag, 16)
	m.OnLocaleChange(func(tag language.Tag, _ map[string]string) {
		select {
		case events <- tag:
		default:
		}
	})

	msg, err := m.Message(language.German, "messages.welcome")
	require.NoError(t, err)
	assert.Equal(t, "Hallo", msg)

	require.NoError(t, os.WriteFile(path, []byte(`[messages]
welcome = "Moin"
`), 0o644))

	select {
	case tag := <-events:
		assert.Equal(t, language.German, tag)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after file change")
	}

	assert.Eventually(t, func() bool {
		msg, err := m.Message(language.German, "messages.welcome")
		return err == nil && msg == "Moin"
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "close is idempotent")
}
