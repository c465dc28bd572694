package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
)

func TestNewProvider_ValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProviderConfig
	}{
		{"missing client id", ProviderConfig{ClientSecret: "s", RedirectURL: "r", IssuerURL: "i"}},
		{"missing client secret", ProviderConfig{ClientID: "c", RedirectURL: "r", IssuerURL: "i"}},
		{"missing redirect url", ProviderConfig{ClientID: "c", ClientSecret: "s", IssuerURL: "i"}},
		{"missing issuer url", ProviderConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "r"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestMapIDTokenClaims(t *testing.T) {
	id := mapIDTokenClaims(idTokenClaims{
		ObjectID:          "oid-123",
		Sub:               "sub-456",
		Email:             "jane.doe@mosesautonet.com",
		PreferredUsername: "jane.doe@mosesautonet.com",
		Name:              "Jane Doe",
	})

	assert.Equal(t, "oid-123", id.ID)
	assert.Equal(t, "jane.doe@mosesautonet.com", id.Email)
	assert.Equal(t, "Jane Doe", id.Name)
	assert.Equal(t, []domainauth.Role{domainauth.RoleEmployee}, id.Roles)
	assert.Equal(t, domainauth.LoginAzureAD, id.LoginMethod)
}

func TestMapIDTokenClaims_Fallbacks(t *testing.T) {
	id := mapIDTokenClaims(idTokenClaims{
		Sub:               "sub-456",
		PreferredUsername: "jane.doe@mosesautonet.com",
	})

	assert.Equal(t, "sub-456", id.ID)
	assert.Equal(t, "jane.doe@mosesautonet.com", id.Email)
	assert.Equal(t, "jane.doe@mosesautonet.com", id.Name)
}

func TestGenerateRandomString(t *testing.T) {
	a, err := generateRandomString(32)
	assert.NoError(t, err)
	assert.Len(t, a, 32)

	b, err := generateRandomString(32)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)

	empty, err := generateRandomString(0)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetIDTokenFromToken_Nil(t *testing.T) {
	_, err := getIDTokenFromToken(nil)
	assert.Error(t, err)
}
