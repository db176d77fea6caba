package utils

import (
	"testing"
	"time"

	"BridgerServer/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTestConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:    "unit-test-secret",
		ExpiresIn: time.Hour,
		Issuer:    "bridger",
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := tokenTestConfig()

	token, err := GenerateToken(cfg, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "bridger", claims.Issuer)
}

func TestParseToken_Invalid(t *testing.T) {
	cfg := tokenTestConfig()

	t.Run("expired", func(t *testing.T) {
		expiredCfg := cfg
		expiredCfg.ExpiresIn = -time.Hour
		token, err := GenerateToken(expiredCfg, 42)
		require.NoError(t, err)

		_, err = ParseToken(cfg, token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		otherCfg := cfg
		otherCfg.Secret = "another-secret"
		token, err := GenerateToken(otherCfg, 42)
		require.NoError(t, err)

		_, err = ParseToken(cfg, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none_algorithm_rejected", func(t *testing.T) {
		// 防算法替换：非 HMAC 签名一律拒绝
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 42})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseToken(cfg, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing_user_id", func(t *testing.T) {
		signed := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		token, err := signed.SignedString([]byte(cfg.Secret))
		require.NoError(t, err)

		_, err = ParseToken(cfg, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage_string", func(t *testing.T) {
		_, err := ParseToken(cfg, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "normal", email: "example@gmail.com", want: "e*****e@gmail.com"},
		{name: "short_username_kept", email: "ab@gmail.com", want: "ab@gmail.com"},
		{name: "not_an_email", email: "nodomain", want: "nodomain"},
		{name: "empty", email: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.email))
		})
	}
}

func TestMaskPassword(t *testing.T) {
	assert.Equal(t, "", MaskPassword(""))

	masked := MaskPassword("password123")
	assert.NotContains(t, masked, "password123")
	assert.Contains(t, masked, "*")
}
