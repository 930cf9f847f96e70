package store

import (
	"context"
	"errors"

	"github.com/ZachMcM/purdue-hoops/models"
)

var (
	// ErrNotFound is returned by point lookups when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicatePair is returned when an insert violates an unordered-pair
	// uniqueness constraint.
	ErrDuplicatePair = errors.New("duplicate pair")
)

// Store is the persistence surface the core services run on. RunInTx hands
// the callback a Store whose operations share one transaction; the rating
// recompute and the account-deletion cascade depend on that.
type Store interface {
	RunInTx(ctx context.Context, fn func(tx Store) error) error

	UserExists(ctx context.Context, userID string) (bool, error)
	// UserExistsForUpdate is UserExists with a row lock. Inside RunInTx it
	// serializes read-modify-write sequences against the same user, so an
	// aggregate recompute never reads a snapshot missing a concurrent
	// writer's contribution.
	UserExistsForUpdate(ctx context.Context, userID string) (bool, error)
	GetUserName(ctx context.Context, userID string) (string, error)

	GetHoopingStatus(ctx context.Context, userID string) (string, error)
	SetHoopingStatus(ctx context.Context, userID, status string) error
	AddHoopSession(ctx context.Context, session *models.HoopSession) error

	UpsertRating(ctx context.Context, outgoingID, incomingID string, value int) error
	IncomingRatingValues(ctx context.Context, userID string) ([]int, error)
	RatedUserIDs(ctx context.Context, outgoingID string) ([]string, error)
	SetOverallRating(ctx context.Context, userID string, rating *float64) error

	CreateFriendship(ctx context.Context, f *models.Friendship) error
	GetFriendship(ctx context.Context, id string) (*models.Friendship, error)
	FindFriendshipBetween(ctx context.Context, userA, userB string) (*models.Friendship, error)
	UpdateFriendshipStatus(ctx context.Context, id, status string) error
	DeleteFriendship(ctx context.Context, id string) error
	ListFriends(ctx context.Context, userID string) ([]models.FriendshipWithUser, error)
	ListIncomingRequests(ctx context.Context, userID string) ([]models.FriendshipWithUser, error)

	// DeleteUserData removes the user row plus their ratings (both
	// directions), friendships, hoop sessions and search history.
	DeleteUserData(ctx context.Context, userID string) error
}
