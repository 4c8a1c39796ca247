// File: doc.go
// Title: Internationalization (i18n) Package Documentation
// Description: Package i18n loads message bundles and resolves locale aware,
//              compiled message patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Layered sources, pattern cache, fsnotify reload

/*
Package i18n provides message bundles for verifier messages.

Bundles are files named after their locale (en.toml, de.yaml, de_CH.json).
Nested tables are addressed with dot separated keys:

	[string]
	blank = "be blank"

	[report]
	must = "{0} must {1}"

A Manager reads bundles from an optional locales directory followed by any
number of fs.FS sources. Earlier sources override later ones key by key, so
a directory can override single messages of the embedded defaults.

Lookup order for a key requested in de-CH with default locale en:

	de-CH, de, und, en

Every layer is consulted for a locale before moving on to the next locale.
With NoFallback the default locale is not consulted.

Compiled patterns are cached per key and requested locale. Reload and file
changes in a watched locales directory purge the cache.

Example:

	m, err := i18n.New(i18n.Options{
		DefaultLocale: "en",
		LocalesDir:    "./locales",
		Sources:       []fs.FS{embedded},
	})
	if err != nil {
		return err
	}
	defer m.Close()

	msg, err := m.Message(language.German, "string.blank")
*/
package i18n
