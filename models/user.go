package models

import "time"

// UserProfile is the account record owned by the session manager. It is
// replaced wholesale on every successful login or explicit profile refresh;
// no other network response mutates it partially.
type UserProfile struct {
	// ID is the server-assigned account identifier.
	ID string `json:"id"`

	// Name is the display name shown on listings and chat messages.
	Name string `json:"name"`

	// Email is the account e-mail address, if one was provided at
	// registration. Either Email or Phone is always present.
	Email string `json:"email,omitempty"`

	// Phone is the account phone number in E.164 form, if provided.
	Phone string `json:"phone,omitempty"`

	// Verified reports whether the account has passed OTP verification.
	// Unverified accounts cannot log in.
	Verified bool `json:"verified"`

	// AvatarURL points at the profile picture, when one is set.
	AvatarURL string `json:"avatar_url,omitempty"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updated_at"`
}
