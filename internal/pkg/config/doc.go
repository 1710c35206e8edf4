// Package config loads and validates the toolbox settings.
//
// Settings come from built-in defaults, an optional YAML file and
// CRYPTO_TOOLBOX_* environment variables, in that order of precedence.
package config
