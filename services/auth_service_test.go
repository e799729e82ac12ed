package services

import (
	"testing"

	"github.com/Alsaadah1/Hotel-Mate-sub000/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("matkhau123")
	require.NoError(t, err)
	assert.NotEqual(t, "matkhau123", hashed)

	assert.NoError(t, CheckPassword(hashed, "matkhau123"))
	assert.Error(t, CheckPassword(hashed, "sai mật khẩu"))
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	token, err := GenerateToken(UserInfo{UserId: 42, Role: 1}, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, 1, role)
}

func TestGetUserIDFromTokenInvalid(t *testing.T) {
	_, _, err := GetUserIDFromToken("không phải token")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidToken))

	_, _, err = GetUserIDFromToken("a.b.c")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidToken))
}
