// File: source_test.go
// Title: Message Source Tests
// Description: Tests for the embedded bundles and the bundle source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/msto63/verifier/core/format"
)

func TestEmbeddedBundlesAreComplete(t *testing.T) {
	vf := newVerifier(t)
	m := vf.Manager()
	require.NotNil(t, m)
	require.Empty(t, m.LoadErrors())

	assert.ElementsMatch(t, []language.Tag{language.English, language.German, language.French}, m.AvailableLocales())

	english := m.Keys(language.English)
	for _, tag := range m.AvailableLocales() {
		t.Run(tag.String(), func(t *testing.T) {
			assert.Equal(t, english, m.Keys(tag))
			for _, key := range m.Keys(tag) {
				msg, _, _ := m.Lookup(key, tag)
				_, err := format.Compile(msg, tag)
				assert.NoError(t, err, "key %s", key)
			}
		})
	}
}

func TestBundleSource(t *testing.T) {
	vf := newVerifier(t)
	src, ok := vf.Source().(*BundleSource)
	require.True(t, ok)
	assert.Same(t, vf.Manager(), src.Manager())
	assert.True(t, src.HasLocale(language.French))

	vn := NewVerification(vf.In(language.German), "x")
	assert.Equal(t, "gleich 3 sein", src.Message(vn, KeyEqualTo, 3))
	assert.Equal(t, "die Prüfung x.y bestehen", src.Message(vn, "x.y"))
	assert.Equal(t, "{0} ist 1.500", src.Format(vn, "'{0}' ist {0}", 1500))
	assert.Equal(t, "broken {0", src.Format(vn, "broken {0"))
}
