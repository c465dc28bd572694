// Package authroles maps resolved account names to portal role sets.
package authroles

import (
	"strings"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
)

// StaticPolicy grants roles from a fixed admin allow-list. Accounts on the
// list receive the full Admin/Manager/Employee set; everyone else gets
// Employee only. Role membership is exact, there is no hierarchy between
// roles.
type StaticPolicy struct {
	admins map[string]struct{}
}

// NewStaticPolicy builds a policy from admin account names. Names are
// compared case-insensitively.
func NewStaticPolicy(adminAccounts []string) *StaticPolicy {
	admins := make(map[string]struct{}, len(adminAccounts))
	for _, a := range adminAccounts {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			admins[a] = struct{}{}
		}
	}
	return &StaticPolicy{admins: admins}
}

// RolesFor returns the role set for an account name.
func (p *StaticPolicy) RolesFor(accountName string) []domainauth.Role {
	if _, ok := p.admins[strings.ToLower(accountName)]; ok {
		return []domainauth.Role{
			domainauth.RoleAdmin,
			domainauth.RoleManager,
			domainauth.RoleEmployee,
		}
	}
	return []domainauth.Role{domainauth.RoleEmployee}
}
