// Package config loads the launcher configuration.
//
// The only value read from disk is the extension id (`id=` in `config.ini`,
// flat key/value). `;`/`#` comments and section headers are ignored. It can be
// overridden via DOUFEN_* environment variables (see `internal/config/config.go`
// for keys). Every miss falls back to the compiled-in default; loading never
// fails.
package config
