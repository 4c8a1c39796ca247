// File: locale.go
// Title: Locale Parsing and Matching
// Description: Locale helpers on top of golang.org/x/text/language: parsing
//              and normalising locale strings, file name conventions, display
//              names and Accept-Language matching against loaded bundles.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation of locale detection
// - 2026-10-14 v0.2.0: BCP 47 tags, language.Matcher, display names

package i18n

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/utils/stringx"
)

// ParseLocale parses a locale such as "de", "de-CH" or "de_CH"
func ParseLocale(locale string) (language.Tag, error) {
	if stringx.IsBlank(locale) {
		return language.Und, mdwerror.New("locale cannot be empty").
			WithCode(mdwerror.CodeInvalidLocale).
			WithOperation("i18n.ParseLocale")
	}

	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return language.Und, mdwerror.Wrap(err, "invalid locale format").
			WithCode(mdwerror.CodeInvalidLocale).
			WithOperation("i18n.ParseLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'en', 'en-US'")
	}
	return tag, nil
}

// NormalizeLocale normalizes a locale string to its canonical BCP 47 form.
// Invalid input yields an empty string.
func NormalizeLocale(locale string) string {
	tag, err := ParseLocale(locale)
	if err != nil {
		return ""
	}
	return tag.String()
}

// ValidateLocale validates if a locale string is in valid format
func ValidateLocale(locale string) error {
	_, err := ParseLocale(locale)
	return err
}

// SplitLocale splits a locale into language and explicit region parts
func SplitLocale(locale string) (lang, region string) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return "", ""
	}

	base, _ := tag.Base()
	lang = base.String()
	if r, conf := tag.Region(); conf == language.Exact {
		region = r.String()
	}
	return lang, region
}

// FormatLocaleForFilename formats a locale for use in filenames
func FormatLocaleForFilename(tag language.Tag) string {
	return strings.ReplaceAll(tag.String(), "-", "_")
}

// ParseLocaleFromFilename extracts the normalized locale from a filename
func ParseLocaleFromFilename(filename string) string {
	name := filepath.Base(filename)
	return NormalizeLocale(strings.TrimSuffix(name, filepath.Ext(name)))
}

// DisplayName returns the name of a locale in its own language
func DisplayName(tag language.Tag) string {
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}

// Match returns the loaded locale that best fits an Accept-Language header
// value. The default locale is returned when nothing matches.
func (m *Manager) Match(acceptLanguage string) language.Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if stringx.IsBlank(acceptLanguage) || len(m.available) == 0 {
		return m.defaultLocale
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return m.defaultLocale
	}

	_, index, conf := m.matcher.Match(prefs...)
	if conf == language.No {
		return m.defaultLocale
	}
	return m.available[index]
}
