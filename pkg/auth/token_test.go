package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stridewell/storefront-backend/pkg/config"
)

func jwtConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "storefront",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	userID := uuid.New()
	token, err := MintAccessToken(jwtConfig(), time.Now(), AccessTokenPayload{
		UserID:  userID,
		IsAdmin: true,
	})
	require.NoError(t, err)

	claims, err := ParseAccessToken(jwtConfig(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "storefront", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestMintRequiresConfig(t *testing.T) {
	payload := AccessTokenPayload{UserID: uuid.New()}

	_, err := MintAccessToken(config.JWTConfig{Issuer: "storefront", ExpirationMinutes: 60}, time.Now(), payload)
	require.Error(t, err)

	_, err = MintAccessToken(config.JWTConfig{Secret: "s", ExpirationMinutes: 60}, time.Now(), payload)
	require.Error(t, err)

	_, err = MintAccessToken(jwtConfig(), time.Now(), AccessTokenPayload{})
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := MintAccessToken(jwtConfig(), time.Now().Add(-2*time.Hour), AccessTokenPayload{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = ParseAccessToken(jwtConfig(), token)
	require.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := MintAccessToken(jwtConfig(), time.Now(), AccessTokenPayload{UserID: uuid.New()})
	require.NoError(t, err)

	bad := jwtConfig()
	bad.Secret = "other-secret"
	_, err = ParseAccessToken(bad, token)
	require.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	cfg := jwtConfig()
	cfg.Issuer = "someone-else"
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = ParseAccessToken(jwtConfig(), token)
	require.Error(t, err)
}
