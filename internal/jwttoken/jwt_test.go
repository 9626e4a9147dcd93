package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cotejo/pkg/domain-errors"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-signing-key", "cotejo", "cotejo-api")

	token, err := svc.GenerateAccessToken("client-42", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client-42", claims.ClientID)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-signing-key", "cotejo", "cotejo-api")

	token, err := svc.GenerateAccessToken("client-42", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestJWTService_RejectsWrongKey(t *testing.T) {
	issuer := NewJWTService("key-one", "cotejo", "cotejo-api")
	verifier := NewJWTService("key-two", "cotejo", "cotejo-api")

	token, err := issuer.GenerateAccessToken("client-42", time.Minute)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-signing-key", "cotejo", "cotejo-api")

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(input)
		require.Error(t, err, "input %q", input)
	}
}
