// Package client talks to the RecipeKeeper server.
//
// APIClient calls the JSON API over HTTP and keeps the access token returned
// by Login in memory for the authenticated call. Server liveness is checked
// through the standard gRPC health service.
//
// # Error Handling
//
// Transport failures are reported as ErrUnavailable and 401 responses as
// ErrUnauthorized; both can be matched with errors.Is. Other non-2xx responses
// are returned as *APIError carrying the server's message.
package client
