package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/ZachMcM/purdue-hoops/store"
	"github.com/ZachMcM/purdue-hoops/utils"
)

// FriendService enforces the friendship state machine: none -> pending ->
// accepted, with removal from either live state. At most one record exists
// per unordered user pair, and the request direction is preserved for the
// record's whole lifetime.
type FriendService struct {
	store store.Store
}

func NewFriendService(s store.Store) *FriendService {
	return &FriendService{store: s}
}

// Request creates a pending friendship from outgoingID to incomingID. The
// both-direction lookup catches an existing record early; the storage-level
// pair constraint catches the check-then-create race between two
// near-simultaneous mutual requests.
func (s *FriendService) Request(ctx context.Context, outgoingID, incomingID string) (*models.Friendship, error) {
	if incomingID == "" {
		return nil, fmt.Errorf("%w: no user id provided", ErrValidation)
	}
	if incomingID == outgoingID {
		return nil, fmt.Errorf("%w: cannot add yourself as a friend", ErrValidation)
	}

	exists, err := s.store.UserExists(ctx, incomingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: no user found", ErrNotFound)
	}

	existing, err := s.store.FindFriendshipBetween(ctx, outgoingID, incomingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == models.FriendshipAccepted {
			return nil, fmt.Errorf("%w: already friends", ErrConflict)
		}
		return nil, fmt.Errorf("%w: a friend request already exists", ErrConflict)
	}

	now := time.Now()
	f := &models.Friendship{
		ID:         utils.GenerateUUID(),
		OutgoingID: outgoingID,
		IncomingID: incomingID,
		Status:     models.FriendshipPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.CreateFriendship(ctx, f); err != nil {
		if errors.Is(err, store.ErrDuplicatePair) {
			return nil, fmt.Errorf("%w: a friend request already exists", ErrConflict)
		}
		return nil, err
	}
	return f, nil
}

// Accept transitions a pending request to accepted. Only the recipient may
// accept. Accepting an already-accepted record returns it unchanged.
func (s *FriendService) Accept(ctx context.Context, actingUserID, friendshipID string) (*models.Friendship, error) {
	f, err := s.store.GetFriendship(ctx, friendshipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: no friend request found", ErrNotFound)
		}
		return nil, err
	}
	if f.IncomingID != actingUserID {
		return nil, fmt.Errorf("%w: only the recipient can accept a friend request", ErrUnauthorized)
	}
	if f.Status == models.FriendshipAccepted {
		return f, nil
	}

	if err := s.store.UpdateFriendshipStatus(ctx, friendshipID, models.FriendshipAccepted); err != nil {
		return nil, err
	}
	f.Status = models.FriendshipAccepted
	return f, nil
}

// Remove deletes the record in any status, covering cancel, reject and
// unfriend. Either party may remove; afterwards a fresh request between the
// same pair succeeds.
func (s *FriendService) Remove(ctx context.Context, actingUserID, friendshipID string) (*models.Friendship, error) {
	f, err := s.store.GetFriendship(ctx, friendshipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: no friendship found", ErrNotFound)
		}
		return nil, err
	}
	if f.OutgoingID != actingUserID && f.IncomingID != actingUserID {
		return nil, fmt.Errorf("%w: not a party to this friendship", ErrUnauthorized)
	}

	if err := s.store.DeleteFriendship(ctx, friendshipID); err != nil {
		return nil, err
	}
	return f, nil
}

// Status returns the single record between the unordered pair, or nil when
// none exists.
func (s *FriendService) Status(ctx context.Context, userA, userB string) (*models.Friendship, error) {
	return s.store.FindFriendshipBetween(ctx, userA, userB)
}

func (s *FriendService) Friends(ctx context.Context, userID string) ([]models.FriendshipWithUser, error) {
	return s.store.ListFriends(ctx, userID)
}

func (s *FriendService) IncomingRequests(ctx context.Context, userID string) ([]models.FriendshipWithUser, error) {
	return s.store.ListIncomingRequests(ctx, userID)
}
