package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Submitted", "In Progress", "Resolved"} {
		s, err := models.ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, models.Status(valid), s)
	}
	for _, invalid := range []string{"", "submitted", "Closed", "resolved "} {
		_, err := models.ParseStatus(invalid)
		assert.Error(t, err, "status %q should be rejected", invalid)
	}
}

func TestParsePriority(t *testing.T) {
	for _, valid := range []string{"Low", "Medium", "High"} {
		p, err := models.ParsePriority(valid)
		assert.NoError(t, err)
		assert.Equal(t, models.Priority(valid), p)
	}
	_, err := models.ParsePriority("Critical")
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	r, err := models.ParseRole("staff")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleStaff, r)

	_, err = models.ParseRole("superadmin")
	assert.Error(t, err)
}

func TestRolePrivileged(t *testing.T) {
	assert.False(t, models.RoleStudent.Privileged())
	assert.True(t, models.RoleStaff.Privileged())
	assert.True(t, models.RoleAdmin.Privileged())
}
