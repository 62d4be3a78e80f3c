package models

// StatusSuccess is the "status" value the backend uses for accepted requests.
const StatusSuccess = "success"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status  string      `json:"status"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    UserProfile `json:"user,omitempty"`
	Message string      `json:"message,omitempty"`
}

// StatusResponse covers endpoints that answer with {status, ...}.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type PasswordResetRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PasswordResetResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

type PasswordConfirmRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries a new refresh token only when the backend rotates
// refresh tokens.
type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// RegisterResponse is returned by POST /api/auth/register/ with status 201.
type RegisterResponse struct {
	Status string      `json:"status"`
	User   UserProfile `json:"user,omitempty"`
}

type ProfileUpdateResponse struct {
	Status  string      `json:"status"`
	Profile UserProfile `json:"profile"`
}
