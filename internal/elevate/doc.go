// Package elevate asks the OS shell to relaunch the launcher with
// administrator rights. No UAC handling of its own; the prompt belongs to
// Windows.
package elevate
