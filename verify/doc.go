// File: doc.go
// Title: Verify Package Documentation
// Description: Package documentation for the fluent verification API.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

/*
Package verify provides fluent, localized value verification.

A verification chain starts with an entry point for the type of the value and
continues with checks:

	err := verify.String(user.Name, "name").Not().Blank().SizeOf(8).Err()
	if err != nil {
		return err // name must have 8 characters
	}

# Negation

Not negates the next check only. Not().Not() cancels out. A check passes when
its outcome differs from the pending negation, and the negation is cleared by
every check, passed or not.

# Failures

The first failing check ends the chain: later checks are not reported and Err
returns that failure. Failures are *error.Error values with code
VERIFICATION_FAILED. Their details hold the name, the value, the negation and
the locale, and the message key and arguments are kept so the message can be
rendered again in another locale. A Verifier created with
WithPanicOnFailure panics with the failure instead.

Must returns the value and panics if the chain failed:

	port := verify.Int(cfg.Port, "port").Between(1, 65535).Must()

# Messages

Messages are MessageFormat patterns stored in bundles per locale (see package
core/i18n). A failure reads "<name> must <detail>" or "<name> must not
<detail>" with detail rendered from the message key of the check. The
embedded bundles cover English, German and French; WithLocalesDir and
WithSources add or override messages. Arguments are formatted by the
registry of core/format, so strings appear quoted and numbers localized:

	de := verify.MustNew(verify.WithLocale(language.German))
	de.String("abc", "Code").SizeOf(2) // Code muss 2 Zeichen lang sein

Custom checks use That, ThatWith with a pattern or ThatKey with a message key
of a custom bundle.

# Soft verification

ValidatorFor and Result turn failed chains into validation results, so that
several values can be verified and all failures reported together.
*/
package verify
