// Package policy writes the Chromium policy values that force-install the
// Doufen extension and allow its self-hosted update source.
//
// The registry is reached through the small `Registry` interface so the
// writer can run against HKEY_CURRENT_USER on Windows or an in-memory store in
// tests.
package policy
