package domain

import "time"

// Status values as stored. Analytics keys byStatus off these literals, so
// they are never normalized.
const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
)

// Application is one tracked job application, owned by exactly one user.
// (user_id, application_id) is the composite key; user_id alone serves the
// list-all-for-owner query.
type Application struct {
	UserID        string `json:"user_id" gorm:"primaryKey;index"`
	ApplicationID string `json:"application_id" gorm:"primaryKey"`

	Position        string `json:"position"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	Salary          string `json:"salary"`
	Status          string `json:"status"`
	InterviewRound  string `json:"interview_round"`
	Notes           string `json:"notes" gorm:"type:text"`
	ApplicationDate string `json:"application_date"`

	// Written only by the priority scoring job.
	Priority        string `json:"priority"`
	PriorityReason  string `json:"priority_reason"`
	SuggestedAction string `json:"suggested_action"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Application) TableName() string {
	return "applications"
}
