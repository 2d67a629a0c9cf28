package models

// LoginRequest carries the credentials for POST /auth/login. The server
// accepts either an e-mail address or a phone number in EmailOrPhone.
type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

// RegisterRequest carries the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// AuthPayload is the body shape shared by the auth endpoints. Message carries
// the human-readable outcome ("User logged in", "User registered", ...); the
// optional fields are present depending on the endpoint.
type AuthPayload struct {
	Message string       `json:"message"`
	User    *UserProfile `json:"user,omitempty"`

	// OTP is the one-time verification code. Some deployments return it in
	// the register response for development convenience; production servers
	// deliver it out of band and leave this empty.
	OTP string `json:"otp,omitempty"`
}

// AuthResult is what the auth domain service hands to the session manager
// after a login or register call: the decoded payload plus the bearer token
// extracted from the response headers (empty when the server sent none).
type AuthResult struct {
	Message string
	User    *UserProfile
	OTP     string
	Token   string
}

// VerifyOTPRequest carries the payload for POST /auth/verify-otp.
type VerifyOTPRequest struct {
	UserID string `json:"userId"`
	Code   string `json:"code"`
}

// ResendOTPRequest carries the payload for POST /auth/resend-otp.
type ResendOTPRequest struct {
	UserID string `json:"userId"`
}

// ForgotPasswordRequest carries the payload for POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
}

// ResetPasswordRequest carries the payload for POST /auth/reset-password.
type ResetPasswordRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Code         string `json:"code"`
	NewPassword  string `json:"newPassword"`
}
