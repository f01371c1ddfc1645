// Package ui implements the terminal interface: the login form, the
// role-scoped tab bar, and one list screen per school resource. All
// screens share the same controller-driven list behavior; per-resource
// files only declare columns, forms and API calls.
package ui
