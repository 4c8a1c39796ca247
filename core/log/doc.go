// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the structured logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

/*
Package log provides structured logging for the verifier packages.

The logger is field oriented: every call takes a message followed by optional Fields.
Persistent fields are attached with WithField/WithFields, which return a copy. Encoding is
done by zerolog in JSON or console layout.

	logger := log.NewWithConfig(log.Config{
		Level:  log.LevelDebug,
		Format: log.FormatConsole,
		Name:   "i18n",
	})
	logger.Debug("bundle loaded", log.Fields{"locale": "de", "keys": 112})

The package default is a no-op logger; applications opt in with SetDefault or by passing a
logger to the components they build.
*/
package log
