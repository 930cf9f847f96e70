package models

import "time"

const (
	MinRatingValue = 60
	MaxRatingValue = 99
)

// Rating is a directed edge: outgoing rater -> incoming ratee. At most one
// live rating exists per ordered pair; a resubmission overwrites the value.
type Rating struct {
	ID         string    `json:"id"`
	OutgoingID string    `json:"outgoing_id"`
	IncomingID string    `json:"incoming_id"`
	Value      int       `json:"value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
