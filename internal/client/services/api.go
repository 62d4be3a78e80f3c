// Package services contains the application services of the PlanAndGo
// client. Each service is a thin layer over the authenticated API client
// that knows one group of backend endpoints; AuthService additionally owns
// the session lifecycle (login stores it, logout destroys it).
package services

import (
	"context"
	"errors"
)

// API is the subset of *client.Client the services depend on.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

var (
	ErrLoginRejected         = errors.New("login rejected")
	ErrRegistrationRejected  = errors.New("registration rejected")
	ErrPasswordResetRejected = errors.New("password reset rejected")
	ErrNotLoggedIn           = errors.New("not logged in")
)
