package domain

import "time"

// SessionMeta is the session-level configuration snapshot. It is stamped at
// the start of a run and never mutated afterwards.
type SessionMeta struct {
	UserConsent bool      `json:"user_consent"`
	SafetyLevel string    `json:"safety_level"`
	MaxDepth    int       `json:"max_depth"`
	MaxMinutes  int       `json:"max_minutes"`
	StartedAt   time.Time `json:"started_at"`
}
