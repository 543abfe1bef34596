package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	codec, err := NewCodec("test-secret", "societyd", time.Hour)
	require.NoError(t, err)

	raw, err := codec.Sign("user-123", "owner")
	require.NoError(t, err)

	claims, err := codec.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, "owner", claims.Role)
	require.Equal(t, "societyd", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	a, err := NewCodec("secret-a", "societyd", time.Hour)
	require.NoError(t, err)
	b, err := NewCodec("secret-b", "societyd", time.Hour)
	require.NoError(t, err)

	raw, err := a.Sign("user-123", "resident")
	require.NoError(t, err)

	_, err = b.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	codec, err := NewCodec("test-secret", "societyd", -time.Minute)
	require.NoError(t, err)
	codec.ttl = -time.Minute // force already-expired tokens

	raw, err := codec.Sign("user-123", "staff")
	require.NoError(t, err)

	_, err = codec.Verify(raw)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	other, err := NewCodec("test-secret", "someone-else", time.Hour)
	require.NoError(t, err)
	codec, err := NewCodec("test-secret", "societyd", time.Hour)
	require.NoError(t, err)

	raw, err := other.Sign("user-123", "resident")
	require.NoError(t, err)

	_, err = codec.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewCodecRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewCodec("", "societyd", time.Hour)
	require.Error(t, err)
}
