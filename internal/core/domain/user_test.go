package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleUnmarshal_CanonicalizesStoredSpellings(t *testing.T) {
	// The user store predates the enum and holds several spellings.
	raw := `[
		{"userID": "u1", "username": "alice", "role": "Admin"},
		{"userID": "u2", "username": "bob", "role": "superAdmin"},
		{"userID": "u3", "username": "carol", "role": "member"}
	]`

	var users []domain.User
	require.NoError(t, json.Unmarshal([]byte(raw), &users))

	assert.Equal(t, domain.RoleAdmin, users[0].Role)
	assert.True(t, users[0].Role.IsPrivileged())
	assert.True(t, domain.DefaultPermissions(users[0].Role).Has(domain.PermUsersManagePermissions))

	assert.Equal(t, domain.RoleSuperAdmin, users[1].Role)
	assert.True(t, users[1].Role.IsPrivileged())

	assert.Equal(t, domain.RoleUser, users[2].Role)
	assert.False(t, users[2].Role.IsPrivileged())
}

func TestRoleUnmarshal_UnknownSpellingFailsLoudly(t *testing.T) {
	var u domain.User
	err := json.Unmarshal([]byte(`{"userID": "u1", "role": "root"}`), &u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown role "root"`)
}

func TestRoleMarshal_RoundTripsCanonicalForm(t *testing.T) {
	u := domain.User{UserID: "u1", Role: domain.RoleSuperAdmin}
	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"superadmin"`)
}

func TestUserIsOnline(t *testing.T) {
	now := time.Now()

	recent := now.Add(-2 * time.Minute)
	stale := now.Add(-10 * time.Minute)

	assert.True(t, domain.User{LastLoginAt: &recent}.IsOnline(now))
	assert.False(t, domain.User{LastLoginAt: &stale}.IsOnline(now))
	assert.False(t, domain.User{}.IsOnline(now))
}
