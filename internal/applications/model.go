package applications

import "time"

// Application records that a user applied to a posting.
type Application struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	JobID     string    `json:"jobId"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	AppliedAt time.Time `json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusOffer        = "offer"
	StatusRejected     = "rejected"
	StatusWithdrawn    = "withdrawn"
)

var validStatuses = map[string]bool{
	StatusApplied:      true,
	StatusInterviewing: true,
	StatusOffer:        true,
	StatusRejected:     true,
	StatusWithdrawn:    true,
}
