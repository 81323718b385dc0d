package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of application roles. The persistence gateway has
// historically stored several spellings ("admin", "Admin", "superAdmin");
// ParseRole is the single canonicalization point and everything downstream
// compares against these constants only.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole canonicalizes a role string coming from the gateway or a login
// payload. Unknown values are an error rather than a silent default so that
// a typo in the user store cannot grant or revoke privileges unnoticed.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user", "member":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	case "superadmin", "super_admin", "super-admin":
		return RoleSuperAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// UnmarshalJSON canonicalizes the stored spelling on decode, so a user
// record persisted as "Admin" or "superAdmin" compares equal to the role
// constants everywhere downstream.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*r = ""
		return nil
	}
	role, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// IsPrivileged reports whether the role may see other users' projects
// without an explicit permission override.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an application user within an organization.
type User struct {
	UserID         string `json:"userID"`
	Username       string `json:"username"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	OrganizationID string `json:"organizationID"`
	IsActive       bool   `json:"isActive"`

	PasswordHash string       `json:"-"`
	AuthProvider AuthProvider `json:"authProvider,omitempty"`
	// ProviderUserID is the subject claim from the external provider.
	ProviderUserID string `json:"providerUserID,omitempty"`
	EmailVerified  bool   `json:"emailVerified,omitempty"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// onlineWindow is how recently a user must have logged in to count as
// online on the dashboard.
const onlineWindow = 5 * time.Minute

// IsOnline reports whether the user's last login falls within the online
// window relative to now.
func (u User) IsOnline(now time.Time) bool {
	return u.LastLoginAt != nil && now.Sub(*u.LastLoginAt) <= onlineWindow
}

// GoogleUserInfo holds the profile fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}
