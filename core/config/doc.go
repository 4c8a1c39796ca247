// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads verifier settings from files, the
//              environment and command-line flags.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

/*
Package config loads the settings of a verifier.

Values are resolved in this order, later sources winning:

 1. built-in defaults (see Default)
 2. a configuration file (TOML, YAML or JSON)
 3. environment variables with the VERIFIER_ prefix, dots replaced by
    underscores (VERIFIER_LOG_LEVEL)
 4. command-line flags registered with RegisterFlags (--log-level)

A configuration file looks like this:

	locale = "de"
	locales_dir = "./locales"
	watch = true
	default_name = "Eingabe"

	[log]
	level = "debug"
	format = "json"

Unknown keys are rejected. A loaded configuration is turned into a verifier
with NewVerifier, which validates the settings first:

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	vf, err := cfg.NewVerifier(cfg.Logger(os.Stderr))
*/
package config
