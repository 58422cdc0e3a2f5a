package jwt_test

import (
	"flightbook/config"
	"flightbook/infras/jwt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(accessMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "flightbook"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = accessMin
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService(15)

	pair, err := svc.GenerateTokenPair("u-1", "asha@example.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "flightbook", claims.Issuer)
}

func TestValidateToken_WrongType(t *testing.T) {
	svc := newService(15)

	pair, err := svc.GenerateTokenPair("u-1", "asha@example.com", "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("garbage", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newService(-1)

	pair, err := svc.GenerateTokenPair("u-1", "asha@example.com", "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestRefreshTokens(t *testing.T) {
	svc := newService(15)

	pair, err := svc.GenerateTokenPair("u-1", "asha@example.com", "user")
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)

	_, err = svc.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		err      error
	}{
		{name: "bearer", header: "Bearer abc.def", expected: "abc.def"},
		{name: "lower case scheme", header: "bearer abc.def", expected: "abc.def"},
		{name: "missing", header: "", err: jwt.ErrMissingHeader},
		{name: "basic scheme", header: "Basic dXNlcg==", err: jwt.ErrMalformed},
		{name: "scheme only", header: "Bearer ", err: jwt.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}
