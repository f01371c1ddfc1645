// Package session holds the authenticated principal for the lifetime
// of the process. The role always comes from the server's /me response;
// an unrecognized role denies access rather than defaulting to a
// dashboard.
package session
