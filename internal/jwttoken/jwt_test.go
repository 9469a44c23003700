package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "medicinna/pkg/domain-errors"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("test-signing-key", "medicinna")

	token, err := svc.GenerateAccessToken("lakeside@medicinna.app", "hospital", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "lakeside@medicinna.app", claims.Subject)
	assert.Equal(t, "hospital", claims.Role)
	assert.Equal(t, "medicinna", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	svc := NewService("test-signing-key", "medicinna")

	token, err := svc.GenerateAccessToken("lakeside@medicinna.app", "hospital", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	assert.Equal(t, "token has expired", dErrors.MessageOf(err))
}

func TestWrongKeyIsRejected(t *testing.T) {
	token, err := NewService("key-one", "medicinna").
		GenerateAccessToken("lakeside@medicinna.app", "hospital", time.Hour)
	require.NoError(t, err)

	_, err = NewService("key-two", "medicinna").ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestGarbageTokenIsRejected(t *testing.T) {
	svc := NewService("test-signing-key", "medicinna")

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
