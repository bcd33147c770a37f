package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
	}{
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{"Instructor", RoleInstructor},
		{"Teacher", RoleInstructor},
		{"teacher", RoleInstructor},
		{"Student", RoleStudent},
		{"", RoleStudent},
		{"  student  ", RoleStudent},
	}

	for _, tt := range tests {
		role, err := ParseRole(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, role, "input %q", tt.input)
	}
}

func TestParseRoleUnknown(t *testing.T) {
	_, err := ParseRole("superuser")
	assert.Error(t, err)
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, RoleAdmin.CanManageRecords())
	assert.True(t, RoleInstructor.CanManageRecords())
	assert.False(t, RoleStudent.CanManageRecords())

	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleInstructor.IsAdmin())
}

func TestEnrollmentIsActive(t *testing.T) {
	assert.True(t, (&Enrollment{Status: EnrollmentActive}).IsActive())
	assert.False(t, (&Enrollment{Status: EnrollmentDropped}).IsActive())
	assert.False(t, (&Enrollment{Status: EnrollmentCompleted}).IsActive())
}

func TestUserAccountSanitized(t *testing.T) {
	account := &UserAccount{ID: 1, Username: "jdoe", Password: "hash"}
	clean := account.Sanitized()

	assert.Empty(t, clean.Password)
	assert.Equal(t, "hash", account.Password)
	assert.Equal(t, account.Username, clean.Username)
}
