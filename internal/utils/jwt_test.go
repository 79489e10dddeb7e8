package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/utils"
)

func TestSignParseJWT(t *testing.T) {
	tok, err := utils.SignJWT("secret", 42, models.RoleStaff, "Safety", time.Hour)
	require.NoError(t, err)

	claims, err := utils.ParseJWT("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID())
	assert.Equal(t, models.RoleStaff, claims.Role)
	assert.Equal(t, "Safety", claims.Department)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	tok, err := utils.SignJWT("secret", 42, models.RoleStudent, "", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseJWT("other-secret", tok)
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	tok, err := utils.SignJWT("secret", 42, models.RoleStudent, "", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseJWT("secret", tok)
	assert.Error(t, err)
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(hash, "admin123"))
	assert.False(t, utils.CheckPassword(hash, "admin1234"))
}
