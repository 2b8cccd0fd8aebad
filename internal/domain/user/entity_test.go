package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want Role
	}{
		{"owner", "owner", RoleOwner},
		{"hr", "hr", RoleHR},
		{"manager", "manager", RoleManager},
		{"employee", "employee", RoleEmployee},
		{"unknown value", "superadmin", ""},
		{"wrong case", "Owner", ""},
		{"empty claim", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestHasPermission_UnknownRoleDenied(t *testing.T) {
	t.Parallel()

	role := ParseRole("superadmin")

	assert.False(t, HasPermission(role, PermissionPayrollRun))
	assert.False(t, HasPermission(role, PermissionDashboardView))
	assert.False(t, HasPermission(role, PermissionViewOwnProfile))
}
