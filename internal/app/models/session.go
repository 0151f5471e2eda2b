package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	Access    string    `json:"access"`
	Refresh   string    `json:"refresh"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
