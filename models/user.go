package models

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	Feet           int       `json:"feet"`
	Inches         int       `json:"inches"`
	Weight         int       `json:"weight"`
	Position       string    `json:"position"`
	PrimarySkill   string    `json:"primary_skill"`
	SecondarySkill string    `json:"secondary_skill"`
	Image          string    `json:"image"`
	HoopingStatus  string    `json:"hooping_status"`
	OverallRating  *float64  `json:"overall_rating"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserPreview is the trimmed profile attached to friend lists, search
// results, the leaderboard, and gym rosters.
type UserPreview struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Image          string   `json:"image"`
	Position       string   `json:"position"`
	PrimarySkill   string   `json:"primary_skill"`
	SecondarySkill string   `json:"secondary_skill"`
	OverallRating  *float64 `json:"overall_rating"`
	HoopingStatus  string   `json:"hooping_status"`
	RatingCount    int      `json:"rating_count"`
}

func (u *User) ToPreview() *UserPreview {
	return &UserPreview{
		ID:             u.ID,
		Name:           u.Name,
		Image:          u.Image,
		Position:       u.Position,
		PrimarySkill:   u.PrimarySkill,
		SecondarySkill: u.SecondarySkill,
		OverallRating:  u.OverallRating,
		HoopingStatus:  u.HoopingStatus,
	}
}
