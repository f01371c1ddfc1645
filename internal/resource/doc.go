// Package resource holds the list-controller pattern every management
// screen is built on: a paginated, filterable view of one remote
// collection plus a mutation coordinator that reloads the list after
// every successful write.
//
// The controller is event-driven and framework-free. It hands out
// FetchSpec/DebounceSpec values describing work to schedule and
// consumes FetchResult values when that work resolves; the UI layer
// maps these onto its own command/message loop. Sequence numbers make
// late responses for superseded queries inert, and debounce tokens
// coalesce rapid search edits into a single fetch.
package resource
