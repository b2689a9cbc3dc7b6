package domain

import (
	"errors"
)

var (
	MessageSuccessSignUp        = "account created successfully"
	MessageSuccessSignIn        = "signed in successfully"
	MessageSuccessSignOut       = "signed out successfully"
	MessageSuccessResetPassword = "password reset email sent"
	MessageSuccessGetMe         = "current user retrieved successfully"
	MessageSuccessClearAllData  = "all data reset to sample data"
	MessageSuccessNewPassword   = "password updated successfully"

	MessageFailedSignUp        = "failed to create account"
	MessageFailedSignIn        = "failed to sign in"
	MessageFailedResetPassword = "failed to send password reset email"
	MessageFailedNewPassword   = "failed to update password"
	MessageFailedGetMe         = "failed to get current user"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrNotSignedIn            = errors.New("no user signed in")
)

// AuthEventType names a change reported to OnAuthStateChange listeners.
type AuthEventType string

const (
	AuthEventSignedIn      AuthEventType = "SIGNED_IN"
	AuthEventSignedOut     AuthEventType = "SIGNED_OUT"
	AuthEventPasswordReset AuthEventType = "PASSWORD_RECOVERY"
)

type (
	SignUpRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	SignInRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	ResetPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	NewPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	AuthUser struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	Session struct {
		Token string   `json:"token"`
		User  AuthUser `json:"user"`
	}

	AuthEvent struct {
		Type AuthEventType
		User AuthUser
	}
)
