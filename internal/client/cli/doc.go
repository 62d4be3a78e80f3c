// Package cli provides the interactive PlanAndGo command-line client.
//
// It wires configuration, the local session store, the authenticated API
// client and the application services into a REPL. A session saved by a
// previous run is restored on start-up; when the API client reports that the
// session can no longer be refreshed, the App marks itself logged out and
// asks the user to log in again.
//
// Key features:
//   - Login / Register / Logout and the two-step password reset
//   - Routes: list, create, rename or reschedule
//   - Profile, badges, notifications and feedback
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
