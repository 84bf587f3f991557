// Package services contains the application services of the client. Each
// service is a typed wrapper over one REST resource; they carry no state of
// their own beyond the API client and, for auth, the session store. Errors
// from the transport propagate untouched so callers can inspect them with
// api.StatusOf or errors.Is.
package services

import (
	"context"
	"fmt"

	"github.com/bloodstream/bloodstream-go/internal/api"
	"github.com/bloodstream/bloodstream-go/internal/models"
	"github.com/bloodstream/bloodstream-go/internal/session"
)

// AuthService drives the registration and login flows.
//
// Contract:
//   - Login/VerifyOTP: authenticate and commit credentials to the session store.
//   - Register: create the account; the server replies with an OTP challenge.
//   - Logout: clear the session locally; server-side revocation is best effort.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, creds models.LoginCredentials) (models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (models.MessageResponse, error)
	VerifyOTP(ctx context.Context, v models.OTPVerification) (models.AuthResponse, error)
	ResendOTP(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	Me(ctx context.Context) (models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	api     *api.Client
	session *session.Store
}

// NewAuthService binds the auth flows to the given API client and session store.
func NewAuthService(client *api.Client, store *session.Store) AuthService {
	return &authService{api: client, session: store}
}

func (a *authService) Login(ctx context.Context, creds models.LoginCredentials) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.api.Post(ctx, "/auth/login", creds, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	if err := a.session.SetAuth(ctx, resp); err != nil {
		return models.AuthResponse{}, fmt.Errorf("storing session: %w", err)
	}
	return resp, nil
}

func (a *authService) Register(ctx context.Context, data models.RegisterData) (models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := a.api.Post(ctx, "/auth/register", data, &resp); err != nil {
		return models.MessageResponse{}, err
	}
	return resp, nil
}

func (a *authService) VerifyOTP(ctx context.Context, v models.OTPVerification) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.api.Post(ctx, "/auth/verify-otp", v, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	if err := a.session.SetAuth(ctx, resp); err != nil {
		return models.AuthResponse{}, fmt.Errorf("storing session: %w", err)
	}
	return resp, nil
}

func (a *authService) ResendOTP(ctx context.Context, email string) error {
	return a.api.Post(ctx, "/auth/resend-otp", map[string]string{"email": email}, nil)
}

func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	return a.api.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (a *authService) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return a.api.Post(ctx, "/auth/reset-password", body, nil)
}

// Me fetches the current profile and refreshes the stored user.
func (a *authService) Me(ctx context.Context) (models.User, error) {
	var u models.User
	if err := a.api.Get(ctx, "/auth/me", &u); err != nil {
		return models.User{}, err
	}
	if err := a.session.SetUser(ctx, u); err != nil {
		return models.User{}, fmt.Errorf("storing user: %w", err)
	}
	return u, nil
}

// Logout clears the local session even when the server cannot be reached.
func (a *authService) Logout(ctx context.Context) error {
	_ = a.api.Post(ctx, "/auth/logout", nil, nil)
	return a.session.Logout(ctx)
}
