// Package client is the authenticated HTTP client for the PlanAndGo REST API.
//
// # Overview
//
// Client issues JSON requests against a fixed base URL and attaches the
// current access token, read fresh from a session.Store, as a bearer token on
// every call. When the backend answers 401 the client runs one recovery
// cycle for that call:
//
//	send -> 401 -> read refresh token -> POST /api/auth/token/refresh/
//	     -> store new access token -> re-send the same request once
//
// The outcome of the re-sent request is returned as-is. A second 401 is
// terminal. If there is no refresh token, or redeeming it fails, the call
// fails with ErrUnauthenticated; in the latter case both tokens are removed
// from the store and the OnUnauthenticated hook is invoked so the
// application can send the user back to login.
//
// Concurrent calls that hit 401 with the same refresh token share a single
// refresh request. Each call is still retried at most once.
//
// # Error Handling
//
// Failures are reported as:
//   - ErrNetwork: no response was received.
//   - *ServerError: a non-2xx response other than the handled 401.
//   - ErrUnauthenticated: authentication could not be (re-)established.
//   - ErrDecode: the response body did not match the expected shape.
//
// Match them with errors.Is / errors.As.
package client
