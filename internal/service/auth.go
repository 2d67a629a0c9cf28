package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/transport"
	"github.com/bazarly/bazarly-go/internal/utils"
	"github.com/bazarly/bazarly-go/models"
)

// AuthService is the façade over the /auth endpoints. It is the only domain
// service that inspects response headers, because the backend returns the
// issued bearer token in a header rather than the body.
type AuthService struct {
	client *transport.Client
	logger *logger.Logger
}

func NewAuthService(client *transport.Client, log *logger.Logger) *AuthService {
	return &AuthService{client: client, logger: log}
}

// Login posts the credentials and returns the decoded payload plus the token
// extracted from the response headers. Whether the response actually
// represents a successful login is the session manager's call.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error) {
	return s.post(ctx, "/auth/login", req)
}

// Register creates a pending account. Some deployments return the OTP in the
// response for development convenience.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	return s.post(ctx, "/auth/register", req)
}

// VerifyOTP submits a one-time verification code for a pending account.
func (s *AuthService) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*models.AuthResult, error) {
	return s.post(ctx, "/auth/verify-otp", req)
}

// ResendOTP asks the server to issue a fresh verification code.
func (s *AuthService) ResendOTP(ctx context.Context, req models.ResendOTPRequest) (*models.AuthResult, error) {
	return s.post(ctx, "/auth/resend-otp", req)
}

// ForgotPassword starts the password reset flow.
func (s *AuthService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (*models.AuthResult, error) {
	return s.post(ctx, "/auth/forgot-password", req)
}

// ResetPassword completes the password reset flow with the emailed code.
func (s *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.AuthResult, error) {
	return s.post(ctx, "/auth/reset-password", req)
}

// Logout invalidates the session server-side. Note that /auth/logout is not
// on the credential-exemption list: the request carries the bearer token,
// since the server needs to know which session to end.
func (s *AuthService) Logout(ctx context.Context) error {
	_, err := s.client.Post(ctx, "/auth/logout", nil)
	return err
}

// post runs one auth POST and assembles the AuthResult from body and headers.
func (s *AuthService) post(ctx context.Context, path string, body any) (*models.AuthResult, error) {
	d := transport.NewDescriptor(http.MethodPost, path)
	d.Body = body

	resp, err := s.client.Do(ctx, d)
	if err != nil {
		return nil, err
	}

	var payload models.AuthPayload
	if len(resp.Body) > 0 {
		if err = json.Unmarshal(resp.Body, &payload); err != nil {
			return nil, fmt.Errorf("decode auth response: %w", err)
		}
	}

	return &models.AuthResult{
		Message: payload.Message,
		User:    payload.User,
		OTP:     payload.OTP,
		Token:   utils.ExtractToken(resp.Header),
	}, nil
}
