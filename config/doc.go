// SPDX-License-Identifier: MIT

// Package config loads segimage run settings.
//
// Precedence, lowest first: built-in defaults, a YAML file, SEGIMAGE_*
// environment variables (optionally seeded from a .env file), then whatever
// the caller sets afterwards (command-line flags). Validate runs struct-tag
// checks and must pass before a Config is used.
package config
