package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autosalon/internal/models"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		op      Operation
		admin   bool
		manager bool
		viewer  bool
	}{
		{OpCarWrite, true, true, false},
		{OpCarDelete, true, false, false},
		{OpClientWrite, true, true, true},
		{OpDealWrite, true, true, true},
		{OpDealDelete, true, false, false},
		{OpBrandWrite, true, true, false},
		{OpBrandDelete, true, false, false},
		{OpAuditRead, true, false, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.admin, Allowed(models.RoleAdmin, tc.op), "admin / %s", tc.op)
		assert.Equal(t, tc.manager, Allowed(models.RoleManager, tc.op), "manager / %s", tc.op)
		assert.Equal(t, tc.viewer, Allowed(models.RoleViewer, tc.op), "viewer / %s", tc.op)
	}
}

func TestAllowedUnknown(t *testing.T) {
	assert.False(t, Allowed(models.RoleAdmin, Operation("unknown:op")))
	assert.False(t, Allowed(models.UserRole("superuser"), OpCarWrite))
}
