package models

import (
	"time"
)

// AuthStage is the state of one login attempt
type AuthStage string

const (
	StageUsername      AuthStage = "USERNAME"
	StageConnecting    AuthStage = "CONNECTING"
	StageOtp           AuthStage = "OTP"
	StageAuthenticated AuthStage = "AUTHENTICATED"
)

// OtpChallenge is the one-time code generated for a login attempt.
// It lives only in the flow controller's memory and is never persisted.
type OtpChallenge struct {
	Handle      string
	Code        string
	ChatID      int64
	GeneratedAt time.Time
}

// Expired reports whether the challenge is older than ttl
func (c *OtpChallenge) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(c.GeneratedAt) > ttl
}

// BotIdentity describes the verification bot account
type BotIdentity struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Handle      string `json:"handle"`
}

// LoginRequest starts a login attempt for a chat handle
type LoginRequest struct {
	Handle string `json:"handle"`
}

// VerifyRequest submits the received one-time code
type VerifyRequest struct {
	Handle string `json:"handle"`
	Code   string `json:"code"`
}

// AuthStatus reports the observable state of a login attempt
type AuthStatus struct {
	Handle    string    `json:"handle"`
	Stage     AuthStage `json:"stage"`
	BotHandle string    `json:"bot_handle,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// AuthResponse is returned after successful verification
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Handle    string `json:"handle"`
	ExpiresAt int64  `json:"expires_at"`
}
