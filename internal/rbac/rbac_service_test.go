package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnforce_RolePolicies(t *testing.T) {
	svc, err := NewService()
	assert.NoError(t, err)

	cases := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{RoleAdmin, "qr_code", "create", true},
		{RoleAdmin, "attendance_report", "read", true},
		{RoleAdmin, "attendance", "create", false},
		{RoleEmployee, "attendance", "create", true},
		{RoleEmployee, "attendance", "read", true},
		{RoleEmployee, "qr_code", "create", false},
		{RoleEmployee, "attendance_report", "read", false},
		{"", "attendance", "create", false},
	}

	for _, tc := range cases {
		allowed, err := svc.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equalf(t, tc.allowed, allowed, "%s %s:%s", tc.role, tc.resource, tc.action)
	}
}
