package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_isAuthEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/auth/login", true},
		{"/auth/register", true},
		{"/auth/verify-otp", true},
		{"/auth/resend-otp", true},
		{"/auth/forgot-password", true},
		{"/auth/reset-password", true},
		{"/api/v2/auth/login", true}, // substring match
		{"/auth/logout", false},      // logout is an authenticated call
		{"/items", false},
		{"/categories", false},
		{"/users/me", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, isAuthEndpoint(tc.path))
		})
	}
}

func Test_NewDescriptor_DerivesIsAuth(t *testing.T) {
	d := NewDescriptor(http.MethodPost, "/auth/login")
	assert.True(t, d.IsAuth)
	assert.Equal(t, http.MethodPost, d.Method)
	assert.False(t, d.retried)

	d = NewDescriptor(http.MethodGet, "/items")
	assert.False(t, d.IsAuth)
}
