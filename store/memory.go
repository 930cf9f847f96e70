package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ZachMcM/purdue-hoops/models"
)

// MemoryStore is an in-memory Store used by tests. A single mutex serializes
// all operations, so RunInTx callbacks see and mutate a consistent snapshot.
type MemoryStore struct {
	mu          sync.Mutex
	users       map[string]*models.User
	ratings     map[string]*models.Rating     // keyed by outgoing:incoming
	friendships map[string]*models.Friendship // keyed by id
	sessions    []models.HoopSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]*models.User),
		ratings:     make(map[string]*models.Rating),
		friendships: make(map[string]*models.Friendship),
	}
}

// AddUser seeds a user; not part of the Store interface.
func (s *MemoryStore) AddUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *u
	s.users[u.ID] = &copied
}

// GetUser returns a seeded user's current state; not part of the Store
// interface.
func (s *MemoryStore) GetUser(id string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	copied := *u
	return &copied
}

// HoopSessions returns the recorded sessions for a user; not part of the
// Store interface.
func (s *MemoryStore) HoopSessions(userID string) []models.HoopSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessions := []models.HoopSession{}
	for _, session := range s.sessions {
		if session.UserID == userID {
			sessions = append(sessions, session)
		}
	}
	return sessions
}

func (s *MemoryStore) RunInTx(_ context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&memoryTx{s})
}

func (s *MemoryStore) UserExists(ctx context.Context, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userExists(userID), nil
}

// UserExistsForUpdate needs no extra locking here: the store mutex already
// serializes every transaction.
func (s *MemoryStore) UserExistsForUpdate(ctx context.Context, userID string) (bool, error) {
	return s.UserExists(ctx, userID)
}

func (s *MemoryStore) GetUserName(ctx context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getUserName(userID)
}

func (s *MemoryStore) GetHoopingStatus(ctx context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getHoopingStatus(userID)
}

func (s *MemoryStore) SetHoopingStatus(ctx context.Context, userID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setHoopingStatus(userID, status)
}

func (s *MemoryStore) AddHoopSession(ctx context.Context, session *models.HoopSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addHoopSession(session)
	return nil
}

func (s *MemoryStore) UpsertRating(ctx context.Context, outgoingID, incomingID string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertRating(outgoingID, incomingID, value)
	return nil
}

func (s *MemoryStore) IncomingRatingValues(ctx context.Context, userID string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.incomingRatingValues(userID), nil
}

func (s *MemoryStore) RatedUserIDs(ctx context.Context, outgoingID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratedUserIDs(outgoingID), nil
}

func (s *MemoryStore) SetOverallRating(ctx context.Context, userID string, rating *float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setOverallRating(userID, rating)
}

func (s *MemoryStore) CreateFriendship(ctx context.Context, f *models.Friendship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createFriendship(f)
}

func (s *MemoryStore) GetFriendship(ctx context.Context, id string) (*models.Friendship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getFriendship(id)
}

func (s *MemoryStore) FindFriendshipBetween(ctx context.Context, userA, userB string) (*models.Friendship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findFriendshipBetween(userA, userB), nil
}

func (s *MemoryStore) UpdateFriendshipStatus(ctx context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateFriendshipStatus(id, status)
}

func (s *MemoryStore) DeleteFriendship(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteFriendship(id)
}

func (s *MemoryStore) ListFriends(ctx context.Context, userID string) ([]models.FriendshipWithUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listFriends(userID), nil
}

func (s *MemoryStore) ListIncomingRequests(ctx context.Context, userID string) ([]models.FriendshipWithUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listIncomingRequests(userID), nil
}

func (s *MemoryStore) DeleteUserData(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteUserData(userID)
	return nil
}

// memoryTx exposes the unlocked operations while the RunInTx caller holds
// the store mutex.
type memoryTx struct {
	s *MemoryStore
}

func (t *memoryTx) RunInTx(_ context.Context, fn func(tx Store) error) error {
	return fn(t)
}

func (t *memoryTx) UserExists(_ context.Context, userID string) (bool, error) {
	return t.s.userExists(userID), nil
}

func (t *memoryTx) UserExistsForUpdate(_ context.Context, userID string) (bool, error) {
	return t.s.userExists(userID), nil
}

func (t *memoryTx) GetUserName(_ context.Context, userID string) (string, error) {
	return t.s.getUserName(userID)
}

func (t *memoryTx) GetHoopingStatus(_ context.Context, userID string) (string, error) {
	return t.s.getHoopingStatus(userID)
}

func (t *memoryTx) SetHoopingStatus(_ context.Context, userID, status string) error {
	return t.s.setHoopingStatus(userID, status)
}

func (t *memoryTx) AddHoopSession(_ context.Context, session *models.HoopSession) error {
	t.s.addHoopSession(session)
	return nil
}

func (t *memoryTx) UpsertRating(_ context.Context, outgoingID, incomingID string, value int) error {
	t.s.upsertRating(outgoingID, incomingID, value)
	return nil
}

func (t *memoryTx) IncomingRatingValues(_ context.Context, userID string) ([]int, error) {
	return t.s.incomingRatingValues(userID), nil
}

func (t *memoryTx) RatedUserIDs(_ context.Context, outgoingID string) ([]string, error) {
	return t.s.ratedUserIDs(outgoingID), nil
}

func (t *memoryTx) SetOverallRating(_ context.Context, userID string, rating *float64) error {
	return t.s.setOverallRating(userID, rating)
}

func (t *memoryTx) CreateFriendship(_ context.Context, f *models.Friendship) error {
	return t.s.createFriendship(f)
}

func (t *memoryTx) GetFriendship(_ context.Context, id string) (*models.Friendship, error) {
	return t.s.getFriendship(id)
}

func (t *memoryTx) FindFriendshipBetween(_ context.Context, userA, userB string) (*models.Friendship, error) {
	return t.s.findFriendshipBetween(userA, userB), nil
}

func (t *memoryTx) UpdateFriendshipStatus(_ context.Context, id, status string) error {
	return t.s.updateFriendshipStatus(id, status)
}

func (t *memoryTx) DeleteFriendship(_ context.Context, id string) error {
	return t.s.deleteFriendship(id)
}

func (t *memoryTx) ListFriends(_ context.Context, userID string) ([]models.FriendshipWithUser, error) {
	return t.s.listFriends(userID), nil
}

func (t *memoryTx) ListIncomingRequests(_ context.Context, userID string) ([]models.FriendshipWithUser, error) {
	return t.s.listIncomingRequests(userID), nil
}

func (t *memoryTx) DeleteUserData(_ context.Context, userID string) error {
	t.s.deleteUserData(userID)
	return nil
}

func (s *MemoryStore) userExists(userID string) bool {
	_, ok := s.users[userID]
	return ok
}

func (s *MemoryStore) getUserName(userID string) (string, error) {
	u, ok := s.users[userID]
	if !ok {
		return "", ErrNotFound
	}
	return u.Name, nil
}

func (s *MemoryStore) getHoopingStatus(userID string) (string, error) {
	u, ok := s.users[userID]
	if !ok {
		return "", ErrNotFound
	}
	return u.HoopingStatus, nil
}

func (s *MemoryStore) setHoopingStatus(userID, status string) error {
	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.HoopingStatus = status
	u.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) addHoopSession(session *models.HoopSession) {
	s.sessions = append(s.sessions, *session)
}

func (s *MemoryStore) upsertRating(outgoingID, incomingID string, value int) {
	key := outgoingID + ":" + incomingID
	now := time.Now()
	if r, ok := s.ratings[key]; ok {
		r.Value = value
		r.UpdatedAt = now
		return
	}
	s.ratings[key] = &models.Rating{
		ID:         key,
		OutgoingID: outgoingID,
		IncomingID: incomingID,
		Value:      value,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *MemoryStore) incomingRatingValues(userID string) []int {
	var values []int
	for _, r := range s.ratings {
		if r.IncomingID == userID {
			values = append(values, r.Value)
		}
	}
	return values
}

func (s *MemoryStore) ratedUserIDs(outgoingID string) []string {
	var ids []string
	for _, r := range s.ratings {
		if r.OutgoingID == outgoingID {
			ids = append(ids, r.IncomingID)
		}
	}
	return ids
}

func (s *MemoryStore) setOverallRating(userID string, rating *float64) error {
	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	if rating == nil {
		u.OverallRating = nil
		return nil
	}
	value := *rating
	u.OverallRating = &value
	return nil
}

func (s *MemoryStore) createFriendship(f *models.Friendship) error {
	pairKey := models.PairKey(f.OutgoingID, f.IncomingID)
	for _, existing := range s.friendships {
		if models.PairKey(existing.OutgoingID, existing.IncomingID) == pairKey {
			return ErrDuplicatePair
		}
	}
	copied := *f
	s.friendships[f.ID] = &copied
	return nil
}

func (s *MemoryStore) getFriendship(id string) (*models.Friendship, error) {
	f, ok := s.friendships[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *f
	return &copied, nil
}

func (s *MemoryStore) findFriendshipBetween(userA, userB string) *models.Friendship {
	pairKey := models.PairKey(userA, userB)
	for _, f := range s.friendships {
		if models.PairKey(f.OutgoingID, f.IncomingID) == pairKey {
			copied := *f
			return &copied
		}
	}
	return nil
}

func (s *MemoryStore) updateFriendshipStatus(id, status string) error {
	f, ok := s.friendships[id]
	if !ok {
		return ErrNotFound
	}
	f.Status = status
	f.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) deleteFriendship(id string) error {
	if _, ok := s.friendships[id]; !ok {
		return ErrNotFound
	}
	delete(s.friendships, id)
	return nil
}

func (s *MemoryStore) preview(userID string) models.UserPreview {
	u, ok := s.users[userID]
	if !ok {
		return models.UserPreview{ID: userID}
	}
	preview := *u.ToPreview()
	preview.RatingCount = len(s.incomingRatingValues(userID))
	return preview
}

func (s *MemoryStore) listFriends(userID string) []models.FriendshipWithUser {
	friendships := []models.FriendshipWithUser{}
	for _, f := range s.friendships {
		if f.Status != models.FriendshipAccepted {
			continue
		}
		if f.OutgoingID != userID && f.IncomingID != userID {
			continue
		}
		friendships = append(friendships, models.FriendshipWithUser{
			Friendship: *f,
			Friend:     s.preview(f.OtherParty(userID)),
		})
	}
	sort.Slice(friendships, func(i, j int) bool {
		return friendships[i].Friend.Name < friendships[j].Friend.Name
	})
	return friendships
}

func (s *MemoryStore) listIncomingRequests(userID string) []models.FriendshipWithUser {
	requests := []models.FriendshipWithUser{}
	for _, f := range s.friendships {
		if f.Status == models.FriendshipPending && f.IncomingID == userID {
			requests = append(requests, models.FriendshipWithUser{
				Friendship: *f,
				Friend:     s.preview(f.OutgoingID),
			})
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests
}

func (s *MemoryStore) deleteUserData(userID string) {
	delete(s.users, userID)
	for key, r := range s.ratings {
		if r.OutgoingID == userID || r.IncomingID == userID {
			delete(s.ratings, key)
		}
	}
	for id, f := range s.friendships {
		if f.OutgoingID == userID || f.IncomingID == userID {
			delete(s.friendships, id)
		}
	}
	kept := s.sessions[:0]
	for _, session := range s.sessions {
		if session.UserID != userID {
			kept = append(kept, session)
		}
	}
	s.sessions = kept
}
