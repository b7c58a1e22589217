//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

// Role represents a CollabHub account role.
// Keep string form for easy persistence and JSON round-trips.
type Role string

const (
	RoleStudent  Role = "student"
	RoleFounder  Role = "founder"
	RoleTalent   Role = "talent"
	RoleInvestor Role = "investor"
)

// Valid reports whether the role is one the backend accepts.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFounder, RoleTalent, RoleInvestor:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if role.Valid() {
		return role, true
	}
	return "", false
}

// Profile carries the extended profile record nested under a user.
type Profile struct {
	Avatar       *string `json:"avatar,omitempty"`
	Bio          string  `json:"bio,omitempty"`
	Headline     string  `json:"headline,omitempty"`
	Location     string  `json:"location,omitempty"`
	GithubURL    *string `json:"github_url,omitempty"`
	LinkedinURL  *string `json:"linkedin_url,omitempty"`
	PortfolioURL *string `json:"portfolio_url,omitempty"`
	FirmName     string  `json:"firm_name,omitempty"`
}

// User is the identity record returned by GET /api/v1/users/me/.
// The shape is owned by the backend; only fields the client reads are typed.
type User struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	FirstName  string     `json:"first_name,omitempty"`
	LastName   string     `json:"last_name,omitempty"`
	Role       Role       `json:"role,omitempty"`
	IsVerified bool       `json:"is_verified"`
	Profile    *Profile   `json:"profile,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// DisplayName returns the best human-readable name for the user.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// TokenPair is the credential pair issued by the auth endpoints.
// Access is the bearer token presented on every request; Refresh is
// exchanged at /api/v1/auth/refresh/ when the access token expires.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// Empty reports whether no usable access token is present.
func (t TokenPair) Empty() bool {
	return strings.TrimSpace(t.Access) == ""
}
