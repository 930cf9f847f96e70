package utils

import (
	"testing"

	"github.com/ZachMcM/purdue-hoops/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.Load()

	token, err := GenerateToken("user-a")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-a", claims.UserID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	config.Load()

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
