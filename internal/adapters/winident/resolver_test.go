package winident

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moses-automall/intranet-api/internal/adapters/authroles"
	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
)

type stubSource struct {
	account    string
	accountErr error
	host       string
	hostErr    error
}

func (s stubSource) CurrentAccount() (string, error) { return s.account, s.accountErr }
func (s stubSource) Hostname() (string, error)       { return s.host, s.hostErr }

func newTestResolver(src AccountSource) *Resolver {
	return NewResolver(ResolverOptions{
		Source:      src,
		Policy:      authroles.NewStaticPolicy([]string{"drewadkins", "administrator", "admin"}),
		EmailDomain: "mosesautonet.com",
	})
}

func TestResolve_KnownAdminAccount(t *testing.T) {
	r := newTestResolver(stubSource{account: "drewadkins", host: "DESKTOP-42"})

	id, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "win-drewadkins", id.ID)
	assert.Equal(t, "drewadkins@mosesautonet.com", id.Email)
	assert.Equal(t, "Drew Adkins", id.Name)
	assert.ElementsMatch(t, []domainauth.Role{
		domainauth.RoleAdmin,
		domainauth.RoleManager,
		domainauth.RoleEmployee,
	}, id.Roles)
	assert.Equal(t, "drewadkins", id.WindowsUser)
	assert.Equal(t, "DESKTOP-42", id.ComputerName)
	assert.Equal(t, domainauth.LoginWindowsAuto, id.LoginMethod)
}

func TestResolve_RegularEmployee(t *testing.T) {
	r := newTestResolver(stubSource{account: "johnsmith", host: "SALES-07"})

	id, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "John Smith", id.Name)
	assert.Equal(t, []domainauth.Role{domainauth.RoleEmployee}, id.Roles)
}

func TestResolve_StripsDomainCaseAndWhitespace(t *testing.T) {
	r := newTestResolver(stubSource{account: " MaryJohnson ", host: "HR-01"})

	id, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "win-maryjohnson", id.ID)
	// The email keeps the account name as typed; only the ID is lowercased.
	assert.Equal(t, "MaryJohnson@mosesautonet.com", id.Email)
	assert.Equal(t, "Mary Johnson", id.Name)
	assert.Equal(t, "MaryJohnson", id.WindowsUser)
}

func TestResolve_AccountError(t *testing.T) {
	r := newTestResolver(stubSource{accountErr: errors.New("user: lookup failed")})

	_, err := r.Resolve(context.Background())
	assert.True(t, apperrors.IsResolutionFailure(err))
}

func TestResolve_EmptyAccount(t *testing.T) {
	r := newTestResolver(stubSource{account: "   "})

	_, err := r.Resolve(context.Background())
	assert.True(t, apperrors.IsResolutionFailure(err))
}

func TestResolve_HostnameFailureNotFatal(t *testing.T) {
	r := newTestResolver(stubSource{account: "johnsmith", hostErr: errors.New("no hostname")})

	id, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "unknown", id.ComputerName)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		account string
		want    string
	}{
		// Curated accounts.
		{"drewadkins", "Drew Adkins"},
		{"DrewAdkins", "Drew Adkins"},
		{"johnsmith", "John Smith"},
		{"maryjohnson", "Mary Johnson"},
		// First-name prefix split.
		{"johnwilliams", "John Williams"},
		{"saraconnor", "Sara Connor"},
		{"markpeters", "Mark Peters"},
		// Midpoint split when no prefix matches.
		{"qwertyuiop", "Qwert Yuiop"},
		{"bcdfghjkl", "Bcdf Ghjkl"},
		// Short names stay whole, preserving the remainder's case.
		{"bob", "Bob"},
		{"claire", "Claire"},
		{"admin", "Admin"},
		{"BobXy", "BobXy"},
		{"dJones", "DJones"},
		// A name exactly matching a first name is not split.
		{"johnny", "Johnny"},
	}
	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.account))
		})
	}
}

func TestOSAccountSource_StripsQualifier(t *testing.T) {
	// The real source should never return DOMAIN\user form.
	src := OSAccountSource{}
	name, err := src.CurrentAccount()
	if err != nil {
		t.Skipf("no OS user available: %v", err)
	}
	assert.NotContains(t, name, `\`)
}
