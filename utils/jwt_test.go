package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, "adam@example.com", "client")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "adam@example.com", claims.Email)
	assert.Equal(t, "client", claims.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
