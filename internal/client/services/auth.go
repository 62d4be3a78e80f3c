package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/planandgo/internal/client/client"
	"github.com/dmitrijs2005/planandgo/internal/client/models"
	"github.com/dmitrijs2005/planandgo/internal/client/session"
	"github.com/dmitrijs2005/planandgo/internal/tokens"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate and persist access/refresh tokens and the user.
//   - Register: create an account; the user still has to log in.
//   - ResetPassword / ConfirmResetPassword: two-step password reset.
//   - Logout: destroy the local session.
//   - Restore: report the session persisted by a previous run.
//   - SessionInfo: describe the stored access token.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (models.UserProfile, error)
	Register(ctx context.Context, fields map[string]any) (models.UserProfile, error)
	ResetPassword(ctx context.Context, username, email string) (string, error)
	ConfirmResetPassword(ctx context.Context, token string, newPassword, confirm []byte) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (models.UserProfile, bool, error)
	SessionInfo(ctx context.Context) (SessionInfo, error)
}

type authService struct {
	api   API
	store session.Store
}

func NewAuthService(api API, store session.Store) AuthService {
	return &authService{api: api, store: store}
}

// rejected folds backend refusals into sentinel, keeping the cause. Network
// and decode failures are returned unchanged.
func rejected(sentinel, err error) error {
	var se *client.ServerError
	if errors.As(err, &se) {
		if d := se.Detail(); d != "" {
			return fmt.Errorf("%w: %s", sentinel, d)
		}
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	if errors.Is(err, client.ErrUnauthenticated) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (models.UserProfile, error) {
	req := models.LoginRequest{Username: username, Password: string(password)}

	var resp models.LoginResponse
	if err := a.api.Post(ctx, client.PathLogin, req, &resp); err != nil {
		return nil, rejected(ErrLoginRejected, err)
	}

	if resp.Status != models.StatusSuccess || resp.Access == "" {
		if resp.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrLoginRejected, resp.Message)
		}
		return nil, ErrLoginRejected
	}

	if err := a.store.SetTokens(ctx, resp.Access, resp.Refresh); err != nil {
		return nil, fmt.Errorf("store tokens: %w", err)
	}
	if !resp.User.IsZero() {
		if err := a.store.SetUser(ctx, resp.User); err != nil {
			return nil, fmt.Errorf("store user: %w", err)
		}
	}

	return resp.User, nil
}

func (a *authService) Register(ctx context.Context, fields map[string]any) (models.UserProfile, error) {
	var resp models.RegisterResponse
	if err := a.api.Post(ctx, client.PathRegister, fields, &resp); err != nil {
		return nil, rejected(ErrRegistrationRejected, err)
	}
	if resp.Status != models.StatusSuccess {
		return nil, ErrRegistrationRejected
	}
	return resp.User, nil
}

// ResetPassword requests a reset token for the account identified by
// username and email.
func (a *authService) ResetPassword(ctx context.Context, username, email string) (string, error) {
	req := models.PasswordResetRequest{Username: username, Email: email}

	var resp models.PasswordResetResponse
	if err := a.api.Post(ctx, client.PathPasswordReset, req, &resp); err != nil {
		return "", rejected(ErrPasswordResetRejected, err)
	}
	if resp.Status != models.StatusSuccess || resp.Token == "" {
		return "", ErrPasswordResetRejected
	}
	return resp.Token, nil
}

func (a *authService) ConfirmResetPassword(ctx context.Context, token string, newPassword, confirm []byte) error {
	req := models.PasswordConfirmRequest{
		Token:           token,
		NewPassword:     string(newPassword),
		ConfirmPassword: string(confirm),
	}

	var resp models.StatusResponse
	if err := a.api.Post(ctx, client.PathPasswordConfirm, req, &resp); err != nil {
		return rejected(ErrPasswordResetRejected, err)
	}
	if resp.Status != models.StatusSuccess {
		if resp.Message != "" {
			return fmt.Errorf("%w: %s", ErrPasswordResetRejected, resp.Message)
		}
		return ErrPasswordResetRejected
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Restore reports the user is logged in iff both an access token and a
// cached user are present.
func (a *authService) Restore(ctx context.Context) (models.UserProfile, bool, error) {
	access, err := a.store.AccessToken(ctx)
	if err != nil {
		return nil, false, err
	}
	user, err := a.store.User(ctx)
	if err != nil {
		return nil, false, err
	}
	if access == "" || user.IsZero() {
		return nil, false, nil
	}
	return user, true, nil
}

// SessionInfo is what the stored access token says about itself. The
// signature is not verified; only the backend can do that.
type SessionInfo struct {
	Subject   string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the token had expired at now. Tokens without an
// exp claim never expire.
func (s SessionInfo) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (a *authService) SessionInfo(ctx context.Context) (SessionInfo, error) {
	access, err := a.store.AccessToken(ctx)
	if err != nil {
		return SessionInfo{}, err
	}
	if access == "" {
		return SessionInfo{}, ErrNotLoggedIn
	}

	claims, err := tokens.Inspect(access)
	if err != nil {
		return SessionInfo{}, fmt.Errorf("parse access token: %w", err)
	}

	info := SessionInfo{Subject: claims.Subject, UserID: string(claims.UserID)}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
