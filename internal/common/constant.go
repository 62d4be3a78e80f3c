// Package common contains constants and small helpers shared by the client
// packages.
package common

// HTTP header names and values used on outbound API calls.
const (
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
	RequestIDHeaderName     = "X-Request-ID"
	ContentTypeHeaderName   = "Content-Type"
	ContentTypeJSON         = "application/json"
)

// Credential store keys. They match the keys the mobile app persisted, so a
// state file can be inspected with the same names.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
	UserKey         = "user"
)
