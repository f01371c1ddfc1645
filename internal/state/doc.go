// Package state provides the shared snapshot store the dashboard reads
// from and the background poller writes to.
package state
