// Package api is the HTTP gateway to the school-management backend.
//
// It maps each CRUD intent to one request and normalizes the server's
// inconsistent response envelopes so callers always receive plain rows
// plus a Meta pagination block. Failures surface as typed errors: a
// *ValidationError for client-side rejections and a *APIError carrying
// the HTTP status and the server's own message for non-2xx responses.
// An empty list is a successful result, never an error.
package api
