package domain

import "time"

// Claims is the identity resolved from a verified bearer token. Subject is
// the opaque owner id every record is partitioned by.
type Claims struct {
	Subject    string
	Email      string
	GivenName  string
	FamilyName string
}

// UserProfile caches the identity claims seen on authenticated requests.
// It is refreshed as a side effect of every call, never read on the hot path.
type UserProfile struct {
	UserID     string    `json:"user_id" gorm:"primaryKey"`
	Email      string    `json:"email"`
	GivenName  string    `json:"given_name"`
	FamilyName string    `json:"family_name"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
