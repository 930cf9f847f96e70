package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKeyIsDirectionless(t *testing.T) {
	assert.Equal(t, PairKey("user-a", "user-b"), PairKey("user-b", "user-a"))
	assert.Equal(t, "user-a:user-b", PairKey("user-b", "user-a"))
	assert.NotEqual(t, PairKey("user-a", "user-b"), PairKey("user-a", "user-c"))
}

func TestOtherParty(t *testing.T) {
	f := Friendship{OutgoingID: "user-a", IncomingID: "user-b"}
	assert.Equal(t, "user-b", f.OtherParty("user-a"))
	assert.Equal(t, "user-a", f.OtherParty("user-b"))
}

func TestValidHoopingStatus(t *testing.T) {
	for _, status := range []string{StatusNotHooping, GymGoldAndBlack, GymFeature, GymUpper} {
		assert.True(t, ValidHoopingStatus(status), status)
	}
	assert.False(t, ValidHoopingStatus("corec"))
	assert.False(t, ValidHoopingStatus(""))
	assert.False(t, ValidGym(StatusNotHooping))
}
