// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager: layered message bundles, a lookup
//              chain from the requested locale through its parents to the
//              default locale, and a cache of compiled patterns keyed by
//              message key and locale.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Language tags, fs.FS layers, compiled pattern cache

package i18n

import (
	"io/fs"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/language"

	"github.com/msto63/verifier/core/cache"
	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/core/format"
	"github.com/msto63/verifier/core/log"
	"github.com/msto63/verifier/utils/stringx"
)

// DefaultCacheSize bounds the compiled pattern cache
const DefaultCacheSize = 4096

// rawPatternPrefix marks cache entries compiled from caller supplied patterns
const rawPatternPrefix = "\x00"

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string           // Default locale (e.g., "en")
	LocalesDir    string           // Directory with language files, highest priority
	Sources       []fs.FS          // Further bundle sources in priority order
	Format        Format           // File format (default: auto-detect)
	Watch         bool             // Reload LocalesDir on change
	NoFallback    bool             // Disable fallback to the default locale
	Registry      *format.Registry // Argument formatters (default: format.Default)
	Logger        *log.Logger      // Logger (default: package default)
	CacheSize     int              // Compiled pattern cache size
}

// LocaleChangeHandler is called after the bundles of a locale were reloaded.
// messages is nil when the locale is no longer available.
type LocaleChangeHandler func(locale language.Tag, messages map[string]string)

type patternKey struct {
	key string
	tag language.Tag
}

// Manager manages message bundles for an application
type Manager struct {
	mu            sync.RWMutex
	defaultLocale language.Tag
	currentLocale language.Tag
	localesDir    string
	format        Format
	fallback      bool
	layers        []*layer
	available     []language.Tag
	matcher       language.Matcher
	loadErrors    []error
	handlers      []LocaleChangeHandler

	registry *format.Registry
	patterns *cache.Cache[patternKey, *format.Pattern]
	logger   *log.Logger

	watcher   *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New creates a new i18n manager with the specified options
func New(options Options) (*Manager, error) {
	if stringx.IsBlank(options.DefaultLocale) {
		return nil, mdwerror.New("default locale cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.New")
	}

	defaultTag, err := ParseLocale(options.DefaultLocale)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid default locale").WithOperation("i18n.New")
	}

	if options.CacheSize <= 0 {
		options.CacheSize = DefaultCacheSize
	}
	if options.Registry == nil {
		options.Registry = format.Default()
	}
	if options.Logger == nil {
		options.Logger = log.GetDefault()
	}

	manager := &Manager{
		defaultLocale: defaultTag,
		currentLocale: defaultTag,
		localesDir:    options.LocalesDir,
		format:        options.Format,
		fallback:      !options.NoFallback,
		registry:      options.Registry,
		logger:        options.Logger.WithName("i18n"),
		patterns:      cache.New[patternKey, *format.Pattern](cache.Config{MaxItems: options.CacheSize}),
		done:          make(chan struct{}),
	}

	if !stringx.IsBlank(options.LocalesDir) {
		if info, err := os.Stat(options.LocalesDir); err != nil || !info.IsDir() {
			manager.patterns.Close()
			return nil, mdwerror.New("locales directory not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("i18n.New").
				WithDetail("directory", options.LocalesDir)
		}
		manager.layers = append(manager.layers, &layer{name: options.LocalesDir, fsys: os.DirFS(options.LocalesDir)})
	}
	for i, src := range options.Sources {
		if src == nil {
			continue
		}
		manager.layers = append(manager.layers, &layer{name: sourceName(i), fsys: src})
	}

	manager.mu.Lock()
	manager.loadAllLocales()
	_, hasDefault := manager.localeIndex(defaultTag)
	manager.mu.Unlock()

	if !hasDefault {
		manager.patterns.Close()
		return nil, mdwerror.New("default locale not found").
			WithCode(mdwerror.CodeBundleLoad).
			WithOperation("i18n.loadAllLocales").
			WithDetail("locale", defaultTag.String())
	}

	if options.Watch && manager.localesDir != "" {
		if err := manager.startWatching(); err != nil {
			manager.patterns.Close()
			return nil, err
		}
	}

	return manager, nil
}

// NewWithWatch creates a new i18n manager with file watching enabled
func NewWithWatch(options Options) (*Manager, error) {
	options.Watch = true
	return New(options)
}

func sourceName(i int) string {
	return "source[" + strconv.Itoa(i) + "]"
}

// loadAllLocales loads every layer (must be called with lock held)
func (m *Manager) loadAllLocales() {
	m.loadErrors = nil
	for _, l := range m.layers {
		for _, err := range l.load(m.format) {
			m.logger.LogError(err)
			m.loadErrors = append(m.loadErrors, err)
		}
	}
	m.rebuildIndex()
}

// rebuildIndex recomputes the available locales and the matcher
func (m *Manager) rebuildIndex() {
	seen := make(map[language.Tag]bool)
	var tags []language.Tag
	for _, l := range m.layers {
		for tag := range l.bundles {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })

	// the matcher falls back to its first entry
	available := make([]language.Tag, 0, len(tags))
	if seen[m.defaultLocale] {
		available = append(available, m.defaultLocale)
	}
	for _, tag := range tags {
		if tag != m.defaultLocale {
			available = append(available, tag)
		}
	}
	m.available = available
	m.matcher = language.NewMatcher(available)
}

func (m *Manager) localeIndex(tag language.Tag) (int, bool) {
	for i, t := range m.available {
		if t == tag {
			return i, true
		}
	}
	return -1, false
}

// chain returns the locales consulted for tag in lookup order
func (m *Manager) chain(tag language.Tag) []language.Tag {
	var out []language.Tag
	seen := make(map[language.Tag]bool)
	add := func(t language.Tag) {
		for {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
			if t.IsRoot() {
				return
			}
			t = t.Parent()
		}
	}

	add(tag)
	if m.fallback {
		add(m.defaultLocale)
	}
	return out
}

// lookup finds key for tag, returning the message and the locale it came from
// (must be called with read lock held)
func (m *Manager) lookup(key string, tag language.Tag) (string, language.Tag, bool) {
	for _, t := range m.chain(tag) {
		for _, l := range m.layers {
			if msg, ok := l.bundles[t][key]; ok {
				return msg, t, true
			}
		}
	}
	return "", language.Und, false
}

// Lookup returns the raw message pattern for key in tag and the locale the
// message was found in
func (m *Manager) Lookup(key string, tag language.Tag) (string, language.Tag, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookup(key, tag)
}

// Pattern returns the compiled pattern for key in tag. Patterns are compiled
// once per key and requested locale.
func (m *Manager) Pattern(key string, tag language.Tag) (*format.Pattern, error) {
	return m.patterns.GetOrCompute(patternKey{key: key, tag: tag}, func() (*format.Pattern, error) {
		msg, _, ok := m.Lookup(key, tag)
		if !ok {
			return nil, mdwerror.New("translation not found").
				WithCode(mdwerror.CodeMissingMessage).
				WithOperation("i18n.Pattern").
				WithDetail("key", key).
				WithDetail("locale", tag.String())
		}
		p, err := format.Compile(msg, tag)
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid message pattern").
				WithOperation("i18n.Pattern").
				WithDetail("key", key).
				WithDetail("locale", tag.String())
		}
		m.logger.Trace("compiled message pattern", log.Fields{"key": key, "locale": tag.String()})
		return p, nil
	})
}

// Compile compiles a caller supplied pattern for tag, sharing the cache with
// bundle messages
func (m *Manager) Compile(pattern string, tag language.Tag) (*format.Pattern, error) {
	return m.patterns.GetOrCompute(patternKey{key: rawPatternPrefix + pattern, tag: tag}, func() (*format.Pattern, error) {
		return format.Compile(pattern, tag)
	})
}

// Message renders key for tag with args
func (m *Manager) Message(tag language.Tag, key string, args ...any) (string, error) {
	p, err := m.Pattern(key, tag)
	if err != nil {
		return "", err
	}
	return p.Format(m.registry, args...), nil
}

// T translates a key for the current locale. Missing keys render as [key].
func (m *Manager) T(key string, args ...any) string {
	translation, err := m.TryT(key, args...)
	if err != nil {
		return "[" + key + "]"
	}
	return translation
}

// TryT translates a key for the current locale and returns an error if the
// translation fails
func (m *Manager) TryT(key string, args ...any) (string, error) {
	return m.Message(m.CurrentLocale(), key, args...)
}

// TWithFallback translates a key, rendering fallbackMsg when it is missing
func (m *Manager) TWithFallback(key, fallbackMsg string, args ...any) string {
	if translation, err := m.TryT(key, args...); err == nil {
		return translation
	}
	p, err := m.Compile(fallbackMsg, m.CurrentLocale())
	if err != nil {
		return fallbackMsg
	}
	return p.Format(m.registry, args...)
}

// Registry returns the argument formatter registry
func (m *Manager) Registry() *format.Registry {
	return m.registry
}

// SetLocale changes the current locale
func (m *Manager) SetLocale(tag language.Tag) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.localeIndex(tag); !ok {
		return mdwerror.New("locale not available").
			WithCode(mdwerror.CodeInvalidLocale).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", tag.String())
	}

	m.currentLocale = tag
	return nil
}

// CurrentLocale returns the current active locale
func (m *Manager) CurrentLocale() language.Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// DefaultLocale returns the default locale
func (m *Manager) DefaultLocale() language.Tag {
	return m.defaultLocale
}

// AvailableLocales returns all locales with at least one bundle, default
// locale first
func (m *Manager) AvailableLocales() []language.Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]language.Tag(nil), m.available...)
}

// HasLocale checks if a locale has a bundle of its own
func (m *Manager) HasLocale(tag language.Tag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.localeIndex(tag)
	return ok
}

// HasTranslation checks if key resolves for tag, fallbacks included
func (m *Manager) HasTranslation(key string, tag language.Tag) bool {
	_, _, ok := m.Lookup(key, tag)
	return ok
}

// Keys returns the keys defined directly for tag across all layers
func (m *Manager) Keys(tag language.Tag) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	set := make(map[string]struct{})
	for _, l := range m.layers {
		for k := range l.bundles[tag] {
			set[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Messages returns the effective messages defined for tag, higher layers
// overriding lower ones
func (m *Manager) Messages(tag language.Tag) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.messages(tag)
}

func (m *Manager) messages(tag language.Tag) map[string]string {
	var out map[string]string
	for i := len(m.layers) - 1; i >= 0; i-- {
		b, ok := m.layers[i].bundles[tag]
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(b))
		}
		for k, v := range b {
			out[k] = v
		}
	}
	return out
}

// Files returns the bundle files loaded for tag, per source
func (m *Manager) Files(tag language.Tag) map[string][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]string)
	for _, l := range m.layers {
		if files := l.files[tag]; len(files) > 0 {
			out[l.name] = append([]string(nil), files...)
		}
	}
	return out
}

// LoadErrors returns the problems found during the last load
func (m *Manager) LoadErrors() []error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]error(nil), m.loadErrors...)
}

// OnLocaleChange registers a handler for locale changes
func (m *Manager) OnLocaleChange(handler LocaleChangeHandler) {
	if handler == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, handler)
}

// Reload re-reads every source, purges the pattern cache and notifies
// handlers for each locale
func (m *Manager) Reload() error {
	m.mu.Lock()
	before := append([]language.Tag(nil), m.available...)
	m.loadAllLocales()
	_, hasDefault := m.localeIndex(m.defaultLocale)
	m.mu.Unlock()

	m.patterns.Purge()

	changed := make(map[language.Tag]bool)
	for _, t := range before {
		changed[t] = true
	}
	for _, t := range m.AvailableLocales() {
		changed[t] = true
	}
	for t := range changed {
		m.notify(t)
	}

	if !hasDefault {
		return mdwerror.New("default locale not found").
			WithCode(mdwerror.CodeBundleLoad).
			WithOperation("i18n.Reload").
			WithDetail("locale", m.defaultLocale.String())
	}
	return nil
}

// notify calls the change handlers for tag
func (m *Manager) notify(tag language.Tag) {
	m.mu.RLock()
	messages := m.messages(tag)
	handlers := append([]LocaleChangeHandler(nil), m.handlers...)
	m.mu.RUnlock()

	for _, handler := range handlers {
		handler(tag, messages)
	}
}

// CacheStats returns statistics of the compiled pattern cache
func (m *Manager) CacheStats() cache.Stats {
	return m.patterns.Stats()
}

// Close stops watching and releases the cache
func (m *Manager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.done)
		if m.watcher != nil {
			err = m.watcher.Close()
		}
		m.wg.Wait()
		m.patterns.Close()
	})
	return err
}
