package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/go-sql-driver/mysql"
)

const mysqlErrDupEntry = 1062

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// MySQLStore implements Store on a *sql.DB. Inside RunInTx all operations
// run on the same *sql.Tx.
type MySQLStore struct {
	db *sql.DB
	q  querier
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db, q: db}
}

func (s *MySQLStore) RunInTx(ctx context.Context, fn func(tx Store) error) error {
	if _, ok := s.q.(*sql.Tx); ok {
		// Already transactional, nested calls join the outer transaction.
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(&MySQLStore{db: s.db, q: tx}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *MySQLStore) UserExists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := s.q.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", userID,
	).Scan(&exists)
	return exists, err
}

// UserExistsForUpdate takes an exclusive lock on the user row for the rest
// of the enclosing transaction. Concurrent transactions recomputing the same
// user's aggregate queue up behind it instead of reading a stale snapshot.
func (s *MySQLStore) UserExistsForUpdate(ctx context.Context, userID string) (bool, error) {
	var id string
	err := s.q.QueryRowContext(ctx,
		"SELECT id FROM users WHERE id = ? FOR UPDATE", userID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MySQLStore) GetUserName(ctx context.Context, userID string) (string, error) {
	var name string
	err := s.q.QueryRowContext(ctx,
		"SELECT name FROM users WHERE id = ?", userID,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return name, err
}

func (s *MySQLStore) GetHoopingStatus(ctx context.Context, userID string) (string, error) {
	var status string
	err := s.q.QueryRowContext(ctx,
		"SELECT hooping_status FROM users WHERE id = ?", userID,
	).Scan(&status)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return status, err
}

func (s *MySQLStore) SetHoopingStatus(ctx context.Context, userID, status string) error {
	_, err := s.q.ExecContext(ctx,
		"UPDATE users SET hooping_status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), userID,
	)
	return err
}

func (s *MySQLStore) AddHoopSession(ctx context.Context, session *models.HoopSession) error {
	_, err := s.q.ExecContext(ctx,
		"INSERT INTO hoop_sessions (id, user_id, gym, created_at) VALUES (?, ?, ?, ?)",
		session.ID, session.UserID, session.Gym, session.CreatedAt,
	)
	return err
}

func (s *MySQLStore) UpsertRating(ctx context.Context, outgoingID, incomingID string, value int) error {
	now := time.Now()
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO ratings (id, outgoing_id, incoming_id, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE value = ?, updated_at = ?
	`, utils.GenerateUUID(), outgoingID, incomingID, value, now, now, value, now)
	return err
}

func (s *MySQLStore) IncomingRatingValues(ctx context.Context, userID string) ([]int, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT value FROM ratings WHERE incoming_id = ?", userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (s *MySQLStore) RatedUserIDs(ctx context.Context, outgoingID string) ([]string, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT incoming_id FROM ratings WHERE outgoing_id = ?", outgoingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *MySQLStore) SetOverallRating(ctx context.Context, userID string, rating *float64) error {
	var value sql.NullFloat64
	if rating != nil {
		value = sql.NullFloat64{Float64: *rating, Valid: true}
	}
	_, err := s.q.ExecContext(ctx,
		"UPDATE users SET overall_rating = ?, updated_at = ? WHERE id = ?",
		value, time.Now(), userID,
	)
	return err
}

func (s *MySQLStore) CreateFriendship(ctx context.Context, f *models.Friendship) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO friendships (id, outgoing_id, incoming_id, status, pair_key, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, f.ID, f.OutgoingID, f.IncomingID, f.Status, models.PairKey(f.OutgoingID, f.IncomingID), f.CreatedAt, f.UpdatedAt)

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDupEntry {
		return ErrDuplicatePair
	}
	return err
}

func (s *MySQLStore) GetFriendship(ctx context.Context, id string) (*models.Friendship, error) {
	var f models.Friendship
	err := s.q.QueryRowContext(ctx, `
		SELECT id, outgoing_id, incoming_id, status, created_at, updated_at
		FROM friendships WHERE id = ?
	`, id).Scan(&f.ID, &f.OutgoingID, &f.IncomingID, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *MySQLStore) FindFriendshipBetween(ctx context.Context, userA, userB string) (*models.Friendship, error) {
	var f models.Friendship
	err := s.q.QueryRowContext(ctx, `
		SELECT id, outgoing_id, incoming_id, status, created_at, updated_at
		FROM friendships WHERE pair_key = ?
	`, models.PairKey(userA, userB)).Scan(&f.ID, &f.OutgoingID, &f.IncomingID, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *MySQLStore) UpdateFriendshipStatus(ctx context.Context, id, status string) error {
	result, err := s.q.ExecContext(ctx,
		"UPDATE friendships SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), id,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MySQLStore) DeleteFriendship(ctx context.Context, id string) error {
	result, err := s.q.ExecContext(ctx, "DELETE FROM friendships WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// friendshipJoinColumns selects the friendship row plus the joined user's
// preview columns, in the order scanFriendshipWithUser expects.
const friendshipJoinColumns = `
	f.id, f.outgoing_id, f.incoming_id, f.status, f.created_at, f.updated_at,
	u.id, u.name, u.image, u.position, u.primary_skill, u.secondary_skill,
	u.overall_rating, u.hooping_status,
	(SELECT COUNT(*) FROM ratings r WHERE r.incoming_id = u.id)`

func scanFriendshipWithUser(rows *sql.Rows) (*models.FriendshipWithUser, error) {
	var f models.FriendshipWithUser
	var overall sql.NullFloat64
	if err := rows.Scan(
		&f.ID, &f.OutgoingID, &f.IncomingID, &f.Status, &f.CreatedAt, &f.UpdatedAt,
		&f.Friend.ID, &f.Friend.Name, &f.Friend.Image, &f.Friend.Position,
		&f.Friend.PrimarySkill, &f.Friend.SecondarySkill,
		&overall, &f.Friend.HoopingStatus, &f.Friend.RatingCount,
	); err != nil {
		return nil, err
	}
	if overall.Valid {
		f.Friend.OverallRating = &overall.Float64
	}
	return &f, nil
}

func (s *MySQLStore) ListFriends(ctx context.Context, userID string) ([]models.FriendshipWithUser, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT `+friendshipJoinColumns+`
		FROM friendships f
		JOIN users u ON u.id = IF(f.outgoing_id = ?, f.incoming_id, f.outgoing_id)
		WHERE (f.outgoing_id = ? OR f.incoming_id = ?) AND f.status = 'accepted'
		ORDER BY u.name
	`, userID, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFriendships(rows)
}

func (s *MySQLStore) ListIncomingRequests(ctx context.Context, userID string) ([]models.FriendshipWithUser, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT `+friendshipJoinColumns+`
		FROM friendships f
		JOIN users u ON u.id = f.outgoing_id
		WHERE f.incoming_id = ? AND f.status = 'pending'
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFriendships(rows)
}

func collectFriendships(rows *sql.Rows) ([]models.FriendshipWithUser, error) {
	friendships := []models.FriendshipWithUser{}
	for rows.Next() {
		f, err := scanFriendshipWithUser(rows)
		if err != nil {
			return nil, err
		}
		friendships = append(friendships, *f)
	}
	return friendships, rows.Err()
}

func (s *MySQLStore) DeleteUserData(ctx context.Context, userID string) error {
	statements := []struct {
		query string
		args  []any
	}{
		{"DELETE FROM ratings WHERE outgoing_id = ? OR incoming_id = ?", []any{userID, userID}},
		{"DELETE FROM friendships WHERE outgoing_id = ? OR incoming_id = ?", []any{userID, userID}},
		{"DELETE FROM hoop_sessions WHERE user_id = ?", []any{userID}},
		{"DELETE FROM searches WHERE outgoing_id = ? OR incoming_id = ?", []any{userID, userID}},
		{"DELETE FROM users WHERE id = ?", []any{userID}},
	}

	for _, stmt := range statements {
		if _, err := s.q.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			return err
		}
	}
	return nil
}
