// Package winident resolves an identity from the OS user context.
//
// On a domain-joined workstation the portal backend runs as the logged-in
// employee, so the process owner is the employee account. The resolver
// turns that account name into a portal identity without any interactive
// prompt. It never talks to a directory service; display names are guessed
// from the account name and roles come from a static policy.
package winident

import (
	"context"
	"os"
	"os/user"
	"strings"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
	"github.com/moses-automall/intranet-api/internal/ports"
)

// knownUsers maps account names to curated display names. Checked before
// any splitting heuristic.
var knownUsers = map[string]string{
	"drewadkins":  "Drew Adkins",
	"johnsmith":   "John Smith",
	"maryjohnson": "Mary Johnson",
}

// commonFirstNames is scanned in order when splitting longer account
// names into first/last. First match wins.
var commonFirstNames = []string{
	"john", "mary", "mike", "lisa", "dave",
	"jane", "paul", "anna", "mark", "sara",
}

// AccountSource supplies the raw OS account context.
type AccountSource interface {
	// CurrentAccount returns the bare account name of the process owner,
	// without any domain qualifier.
	CurrentAccount() (string, error)
	// Hostname returns the workstation name. A failure here is not fatal.
	Hostname() (string, error)
}

// OSAccountSource reads the account from the real operating system.
type OSAccountSource struct{}

// CurrentAccount returns the process owner's account name with any
// DOMAIN\ or host\ qualifier stripped.
func (OSAccountSource) CurrentAccount() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	name := u.Username
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	return name, nil
}

// Hostname returns the OS hostname.
func (OSAccountSource) Hostname() (string, error) {
	return os.Hostname()
}

// Resolver builds portal identities from the OS account context.
type Resolver struct {
	source      AccountSource
	policy      ports.RolePolicy
	emailDomain string
}

// ResolverOptions contains dependencies for creating a Resolver.
type ResolverOptions struct {
	Source      AccountSource
	Policy      ports.RolePolicy
	EmailDomain string
}

// NewResolver creates a Resolver. A nil Source defaults to the real OS.
func NewResolver(opts ResolverOptions) *Resolver {
	if opts.Source == nil {
		opts.Source = OSAccountSource{}
	}
	return &Resolver{
		source:      opts.Source,
		policy:      opts.Policy,
		emailDomain: opts.EmailDomain,
	}
}

// Resolve determines the current employee identity from the OS account.
// It returns a ResolutionFailure error when no usable account exists;
// callers treat that as "fall back to interactive login", not as a fault.
func (r *Resolver) Resolve(_ context.Context) (domainauth.Identity, error) {
	account, err := r.source.CurrentAccount()
	if err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeResolutionFailure, "resolve OS account")
	}
	account = strings.TrimSpace(account)
	if account == "" {
		return domainauth.Identity{}, apperrors.ResolutionFailure("empty OS account name")
	}

	// Hostname is informational only.
	host, err := r.source.Hostname()
	if err != nil {
		host = "unknown"
	}

	lower := strings.ToLower(account)
	return domainauth.Identity{
		ID:           "win-" + lower,
		Email:        account + "@" + r.emailDomain,
		Name:         DisplayName(account),
		Roles:        r.policy.RolesFor(account),
		WindowsUser:  account,
		ComputerName: host,
		LoginMethod:  domainauth.LoginWindowsAuto,
	}, nil
}

// DisplayName guesses a human display name from an account name.
//
// Known accounts map directly. Longer names are split at a recognized
// first-name prefix, or failing that at the midpoint, with each word's
// first letter capitalized. Short names are returned as typed with only
// the first letter upper-cased.
func DisplayName(account string) string {
	lower := strings.ToLower(account)
	if name, ok := knownUsers[lower]; ok {
		return name
	}

	if len(lower) > 6 {
		for _, first := range commonFirstNames {
			if strings.HasPrefix(lower, first) && len(lower) > len(first) {
				return capitalize(first) + " " + capitalize(lower[len(first):])
			}
		}
		mid := len(lower) / 2
		return capitalize(lower[:mid]) + " " + capitalize(lower[mid:])
	}

	return capitalize(account)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
