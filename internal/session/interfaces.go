package session

import (
	"context"
	"time"

	"github.com/bazarly/bazarly-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// AuthGateway is the slice of the auth domain service the session manager
// depends on. All methods return a decoded payload or a classified error;
// the raw transport never crosses this boundary.
type AuthGateway interface {
	// Login posts the credentials and returns the decoded payload together
	// with the bearer token extracted from the response headers.
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error)

	// Register creates a pending account. The result never carries a token;
	// the account must be verified and logged in explicitly.
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error)

	// VerifyOTP submits a one-time verification code for a pending account.
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*models.AuthResult, error)

	// ResendOTP asks the server to send a fresh verification code.
	ResendOTP(ctx context.Context, req models.ResendOTPRequest) (*models.AuthResult, error)

	// Logout invalidates the session server-side. Callers tolerate failure.
	Logout(ctx context.Context) error
}

// ProfileGateway is the slice of the profile domain service used by the
// background refresh job.
type ProfileGateway interface {
	// Me returns the authenticated user's current profile.
	Me(ctx context.Context) (*models.UserProfile, error)
}

// RefreshJob is a background worker that periodically refreshes the
// authenticated user's profile.
type RefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
