// Package session owns the persisted credentials of the signed-in user:
// the access/refresh token pair and the cached profile.
//
// The store is shared by every in-flight API call. No locking is held across
// calls; concurrent writers simply overwrite each other (last write wins).
package session

import (
	"context"

	"github.com/dmitrijs2005/planandgo/internal/client/models"
)

// Store is the credential store capability injected into the API client
// and the services. Missing values are returned as empty, not as errors.
type Store interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	User(ctx context.Context) (models.UserProfile, error)

	SetTokens(ctx context.Context, access, refresh string) error
	SetAccessToken(ctx context.Context, access string) error
	SetUser(ctx context.Context, u models.UserProfile) error

	// ClearTokens drops the token pair but keeps the cached profile.
	ClearTokens(ctx context.Context) error
	// Clear destroys the whole session.
	Clear(ctx context.Context) error
}
