package models

import "time"

const (
	StatusNotHooping = "not-hooping"

	GymGoldAndBlack = "gold-and-black"
	GymFeature      = "feature"
	GymUpper        = "upper"
)

func ValidGym(gym string) bool {
	switch gym {
	case GymGoldAndBlack, GymFeature, GymUpper:
		return true
	}
	return false
}

func ValidHoopingStatus(status string) bool {
	return status == StatusNotHooping || ValidGym(status)
}

// HoopSession is appended every time a user marks themselves as hooping at a
// gym. Setting the status back to not-hooping does not create a session.
type HoopSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Gym       string    `json:"gym"`
	CreatedAt time.Time `json:"created_at"`
}
