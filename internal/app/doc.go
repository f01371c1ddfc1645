// Package app wires configuration, the API gateway, the session, the
// dashboard poller and the terminal UI into a running program.
package app
