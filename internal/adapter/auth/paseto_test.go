package auth_test

import (
	"testing"

	"github.com/rgladkov/shopcheckout/internal/adapter/auth"
	"github.com/rgladkov/shopcheckout/internal/adapter/config"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"github.com/rgladkov/shopcheckout/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenKey = "3f8a1c9e5b27d4061a8e0c3b7f5d2e94c6a1b8d07e3f5a2c4b6d8e0f1a3c5b7d"
const otherKey = "0000000000000000000000000000000000000000000000000000000000000001"

// A token issued by one process must verify in another configured with the
// same key, since issuing and verification live in separate services.
func TestTokenSharedKey(t *testing.T) {
	issuer, err := auth.New(&config.Auth{TokenKey: tokenKey})
	require.NoError(t, err)
	verifier, err := auth.New(&config.Auth{TokenKey: tokenKey})
	require.NoError(t, err)

	payload := &port.TokenPayload{UserID: 1, Name: "Roman", Email: "roman@example.com"}

	token, err := issuer.CreateToken(payload)
	require.NoError(t, err)

	got, err := verifier.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestTokenWrongKey(t *testing.T) {
	issuer, err := auth.New(&config.Auth{TokenKey: tokenKey})
	require.NoError(t, err)
	verifier, err := auth.New(&config.Auth{TokenKey: otherKey})
	require.NoError(t, err)

	token, err := issuer.CreateToken(&port.TokenPayload{UserID: 1})
	require.NoError(t, err)

	got, err := verifier.VerifyToken(token)
	assert.Nil(t, got)
	assert.Equal(t, domain.ErrInvalidToken, err)
}

func TestTokenBadKeyConfig(t *testing.T) {
	_, err := auth.New(&config.Auth{TokenKey: "not-a-key"})
	assert.Error(t, err)

	_, err = auth.New(&config.Auth{TokenKey: ""})
	assert.Error(t, err)
}
