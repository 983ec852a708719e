// Package notify shows user-facing messages.
//
// The launcher only depends on the Reporter capability. Windows builds show a
// blocking message box; other builds write to stderr. Message text lives in
// embedded templates (templates/messages.zh-CN.tmpl).
package notify
