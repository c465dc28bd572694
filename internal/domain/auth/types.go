package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role is an opaque authorization tag checked by exact membership.
// There is no hierarchy: Admin passes an Admin check only because the
// role set literally contains Admin, never by seniority over Manager.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// LoginMethod tags how an identity was established.
type LoginMethod string

const (
	// LoginWindowsAuto is OS-identity (auto) login derived from the local
	// Windows account, with no external network call.
	LoginWindowsAuto LoginMethod = "windows-auto"
	// LoginAzureAD is the interactive authorization-code flow.
	LoginAzureAD LoginMethod = "azure-ad"
	// LoginDevStub is the development fallback used only when Azure AD is
	// not configured. Must be clearly distinguishable in logs.
	LoginDevStub LoginMethod = "dev-stub"
)

// Identity is the authenticated-user record held by a session.
// ID encodes the login method's namespace (e.g. "win-" prefix for
// OS-identity logins) so identities from different methods never collide.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	// Roles is never empty once an Identity exists; every identity carries
	// at least the Employee baseline.
	Roles []Role `json:"roles"`

	// Provenance, populated by the OS-identity path.
	WindowsUser  string      `json:"windowsUser,omitempty"`
	ComputerName string      `json:"computerName,omitempty"`
	LoginMethod  LoginMethod `json:"loginMethod,omitempty"`
}

// HasRole reports whether the identity's role set contains role (exact match).
func (i Identity) HasRole(role Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the server-side record keyed by the opaque cookie value.
// It holds at most one Identity and expires at a fixed absolute time
// from creation; there is no sliding refresh.
type Session struct {
	ID        string    `json:"id"`
	Identity  Identity  `json:"identity"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its absolute lifetime at now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
