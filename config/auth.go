package config

// AzureADConfig contains the Azure AD / Entra ID OIDC configuration.
// Interactive login is enabled only when ClientID, ClientSecret and
// TenantID are all set and ClientID is not the "not-configured" placeholder.
type AzureADConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"not-configured"`
	ClientSecret string `env:"CLIENT_SECRET"`
	TenantID     string `env:"TENANT_ID"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:3001/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
}

// Configured reports whether interactive Azure AD login can be used.
// The placeholder ClientID shipped in .env templates counts as absent.
func (a AzureADConfig) Configured() bool {
	return a.ClientID != "" &&
		a.ClientID != "not-configured" &&
		a.ClientSecret != "" &&
		a.TenantID != ""
}

// IssuerURL returns the tenant-specific OIDC issuer.
func (a AzureADConfig) IssuerURL() string {
	return "https://login.microsoftonline.com/" + a.TenantID + "/v2.0"
}

// WindowsAuthConfig controls the OS-identity auto-login path.
type WindowsAuthConfig struct {
	// EmailDomain is appended to the resolved account name to build the
	// synthetic corporate email address.
	EmailDomain string `env:"EMAIL_DOMAIN" envDefault:"mosesautonet.com"`

	// AdminAccounts are account names (lowercase) granted the full
	// Admin/Manager/Employee role set on auto-login.
	AdminAccounts []string `env:"ADMIN_ACCOUNTS" envDefault:"drewadkins;administrator;admin" envSeparator:";"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// AzureAD holds interactive login settings. When incomplete, the
	// login endpoint falls back to the dev-stub identity.
	AzureAD AzureADConfig `envPrefix:"AZURE_AD_"`

	// Windows holds OS-identity auto-login settings.
	Windows WindowsAuthConfig `envPrefix:"WINDOWS_AUTH_"`
}
