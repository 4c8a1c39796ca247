// File: locale.go
// Title: Locale Verifier
// Description: Verifier for language tags.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"golang.org/x/text/language"

	"github.com/msto63/verifier/core/format"
)

// LocaleVerifier verifies language tags
type LocaleVerifier struct {
	Base[language.Tag, *LocaleVerifier]
}

func newLocale(vn *Verification[language.Tag]) *LocaleVerifier {
	v := &LocaleVerifier{}
	v.Init(vn, v)
	v.SetEqual(func(a, b language.Tag) bool { return a == b })
	return v
}

// Available checks that the message source has bundles for the value
func (v *LocaleVerifier) Available() *LocaleVerifier {
	ls, ok := v.vn.verifier.source.(LocaleSource)
	return v.report(ok && ls.HasLocale(v.vn.value), KeyLocaleAvailable)
}

// Default checks that the value is the locale of the verifier
func (v *LocaleVerifier) Default() *LocaleVerifier {
	return v.report(v.vn.value == v.vn.verifier.locale, KeyLocaleDefault)
}

// Language checks that the base language of the value is lang, for
// example "de"
func (v *LocaleVerifier) Language(lang string) *LocaleVerifier {
	base, _ := v.vn.value.Base()
	want, err := language.ParseBase(lang)
	return v.report(err == nil && base == want, KeyLocaleLanguage, format.Text(lang))
}

// Region checks that the value names region explicitly, for example "CH"
func (v *LocaleVerifier) Region(region string) *LocaleVerifier {
	r, conf := v.vn.value.Region()
	want, err := language.ParseRegion(region)
	return v.report(err == nil && conf == language.Exact && r == want, KeyLocaleRegion, format.Text(region))
}

// Script checks that the value is written in script, either explicitly or
// with high confidence, for example "Latn"
func (v *LocaleVerifier) Script(script string) *LocaleVerifier {
	s, conf := v.vn.value.Script()
	want, err := language.ParseScript(script)
	return v.report(err == nil && conf >= language.High && s == want, KeyLocaleScript, format.Text(script))
}

// Root checks that the value is the undetermined root locale
func (v *LocaleVerifier) Root() *LocaleVerifier {
	return v.report(v.vn.value == language.Und, KeyLocaleRoot)
}
