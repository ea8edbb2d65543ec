package auth

import (
	"context"
	"testing"

	"github.com/atlasdoors/backoffice/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider() Provider {
	cfg := config.GetDefaultConfig()
	cfg.Auth.Secret = "test-secret"
	return NewProvider(cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	p := newTestProvider()

	token, err := p.GenerateToken("user_1", "tenant_1", []string{"admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := p.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.UserID)
	assert.Equal(t, "tenant_1", claims.TenantID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	p := newTestProvider()

	_, err := p.ValidateToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	p := newTestProvider()

	otherCfg := config.GetDefaultConfig()
	otherCfg.Auth.Secret = "other-secret"
	other := NewProvider(otherCfg)

	token, err := other.GenerateToken("user_1", "tenant_1", nil)
	require.NoError(t, err)

	_, err = p.ValidateToken(context.Background(), token)
	assert.Error(t, err)
}
