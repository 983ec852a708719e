// Package launcher runs the first-run policy provisioning and browser start
// sequence.
//
// Run is synchronous and single-shot: detect first run, make sure the policy
// is written (or hand off to an elevated instance), then start the browser.
// Failures are reported through notify.Reporter and never change the process
// exit status.
package launcher
