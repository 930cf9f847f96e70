package models

import "time"

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// Friendship is the single record for an unordered user pair. The direction
// (outgoing requester -> incoming recipient) is preserved for the record's
// whole lifetime, even after acceptance.
type Friendship struct {
	ID         string    `json:"id"`
	OutgoingID string    `json:"outgoing_id"`
	IncomingID string    `json:"incoming_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OtherParty returns the friend of userID on this record.
func (f *Friendship) OtherParty(userID string) string {
	if f.OutgoingID == userID {
		return f.IncomingID
	}
	return f.OutgoingID
}

// PairKey is the canonical unordered-pair key used for the storage-level
// uniqueness guard: smaller id first, regardless of request direction.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}

type FriendshipWithUser struct {
	Friendship
	Friend UserPreview `json:"friend"`
}
