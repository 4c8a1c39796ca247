// File: source.go
// Title: Message Sources
// Description: MessageSource resolves the messages of failed checks. The
//              default BundleSource renders them from i18n bundles. Bundles
//              shipped with the package are embedded and always available as
//              the lowest priority layer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"embed"
	"io/fs"

	"golang.org/x/text/language"

	"github.com/msto63/verifier/core/format"
	"github.com/msto63/verifier/core/i18n"
)

//go:embed messages
var embedded embed.FS

// Messages returns the embedded message bundles
func Messages() fs.FS {
	sub, err := fs.Sub(embedded, "messages")
	if err != nil {
		panic(err)
	}
	return sub
}

// MessageSource renders the messages of failed checks
type MessageSource interface {
	// Message renders the message stored under key
	Message(ctx Context, key MessageKey, args ...any) string
	// Format renders a caller supplied pattern
	Format(ctx Context, pattern string, args ...any) string
}

// LocaleSource is implemented by sources that know which locales they serve
type LocaleSource interface {
	HasLocale(tag language.Tag) bool
}

// BundleSource renders messages from an i18n manager
type BundleSource struct {
	manager  *i18n.Manager
	registry *format.Registry
}

// NewBundleSource creates a source on m. A nil registry uses the registry of
// the manager.
func NewBundleSource(m *i18n.Manager, registry *format.Registry) *BundleSource {
	if registry == nil {
		registry = m.Registry()
	}
	return &BundleSource{manager: m, registry: registry}
}

// Message renders key for the locale of ctx. An unknown key renders the
// fallback message naming the key, and the bare key if even that is missing.
func (s *BundleSource) Message(ctx Context, key MessageKey, args ...any) string {
	tag := ctx.Locale()
	if p, err := s.manager.Pattern(string(key), tag); err == nil {
		return p.Format(s.registry, args...)
	}
	if key != KeyFallback {
		if p, err := s.manager.Pattern(string(KeyFallback), tag); err == nil {
			return p.Format(s.registry, format.Text(key))
		}
	}
	return string(key)
}

// Format renders pattern for the locale of ctx. An invalid pattern is
// returned unchanged.
func (s *BundleSource) Format(ctx Context, pattern string, args ...any) string {
	p, err := s.manager.Compile(pattern, ctx.Locale())
	if err != nil {
		return pattern
	}
	return p.Format(s.registry, args...)
}

// HasLocale reports whether the bundles contain tag
func (s *BundleSource) HasLocale(tag language.Tag) bool {
	return s.manager.HasLocale(tag)
}

// Manager returns the underlying i18n manager
func (s *BundleSource) Manager() *i18n.Manager {
	return s.manager
}
