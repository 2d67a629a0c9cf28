package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bazarly/bazarly-go/models"
)

// devOTP is the fixed verification code issued to every pending account.
const devOTP = "123456"

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if req.Name == "" || req.Password == "" || (req.Email == "" && req.Phone == "") {
		s.writeMessage(w, http.StatusUnprocessableEntity, "Name, password and email or phone are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findAccountLocked(req.Email) != nil || s.findAccountLocked(req.Phone) != nil {
		s.writeMessage(w, http.StatusConflict, "Account already exists")
		return
	}

	now := time.Now().UTC()
	acc := &account{
		profile: models.UserProfile{
			ID:        s.ids.Generate(),
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			CreatedAt: now,
			UpdatedAt: now,
		},
		password: req.Password,
		otp:      devOTP,
	}
	s.accounts[acc.profile.ID] = acc

	s.writeJSON(w, models.AuthPayload{
		Message: "User registered",
		User:    &acc.profile,
		OTP:     acc.otp,
	}, http.StatusCreated)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.findAccountLocked(req.EmailOrPhone)
	if acc == nil || acc.password != req.Password {
		s.writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !acc.profile.Verified {
		s.writeMessage(w, http.StatusForbidden, "Account is not verified")
		return
	}

	token := s.ids.Generate()
	s.tokens[token] = acc.profile.ID

	w.Header().Set("Authorization", token)
	s.writeJSON(w, models.AuthPayload{Message: "User logged in", User: &acc.profile}, http.StatusOK)
}

func (s *Server) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[req.UserID]
	if !ok {
		s.writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	if acc.otp == "" || acc.otp != req.Code {
		s.writeMessage(w, http.StatusBadRequest, "Invalid verification code")
		return
	}

	acc.otp = ""
	acc.profile.Verified = true
	acc.profile.UpdatedAt = time.Now().UTC()

	s.writeJSON(w, models.AuthPayload{Message: "Account verified", User: &acc.profile}, http.StatusOK)
}

func (s *Server) resendOTP(w http.ResponseWriter, r *http.Request) {
	var req models.ResendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[req.UserID]
	if !ok {
		s.writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	if acc.profile.Verified {
		s.writeMessage(w, http.StatusConflict, "Account is already verified")
		return
	}

	acc.otp = devOTP
	s.writeJSON(w, models.AuthPayload{Message: "OTP sent", OTP: acc.otp}, http.StatusOK)
}

func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// the real backend answers identically for unknown accounts
	if acc := s.findAccountLocked(req.EmailOrPhone); acc != nil {
		acc.otp = devOTP
	}

	s.writeMessage(w, http.StatusOK, "If the account exists, a reset code was sent")
}

func (s *Server) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.findAccountLocked(req.EmailOrPhone)
	if acc == nil || acc.otp == "" || acc.otp != req.Code {
		s.writeMessage(w, http.StatusBadRequest, "Invalid reset code")
		return
	}

	acc.otp = ""
	acc.password = req.NewPassword
	s.writeMessage(w, http.StatusOK, "Password updated")
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)

	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()

	s.writeMessage(w, http.StatusOK, "Logged out")
}

// findAccountLocked matches an account by e-mail or phone. Caller holds s.mu.
func (s *Server) findAccountLocked(emailOrPhone string) *account {
	if emailOrPhone == "" {
		return nil
	}
	for _, acc := range s.accounts {
		if acc.profile.Email == emailOrPhone || acc.profile.Phone == emailOrPhone {
			return acc
		}
	}
	return nil
}
