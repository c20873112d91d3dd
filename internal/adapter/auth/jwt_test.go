package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", "mesa-billing", time.Hour)

	tok, err := m.Issue("user-1", "demo@mesa.dev")
	require.NoError(t, err)

	uid, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestVerifyRejects(t *testing.T) {
	m := NewTokenManager("secret", "mesa-billing", time.Hour)
	good, err := m.Issue("user-1", "")
	require.NoError(t, err)

	expired := NewTokenManager("secret", "mesa-billing", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue("user-1", "")
	require.NoError(t, err)

	otherIssuer, err := NewTokenManager("secret", "someone-else", time.Hour).Issue("user-1", "")
	require.NoError(t, err)

	wrongKey, err := NewTokenManager("other-secret", "mesa-billing", time.Hour).Issue("user-1", "")
	require.NoError(t, err)

	noSubject, err := NewTokenManager("secret", "mesa-billing", time.Hour).Issue("", "")
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "user-1",
		Issuer:  "mesa-billing",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"expired":      old,
		"issuer":       otherIssuer,
		"signature":    wrongKey,
		"no subject":   noSubject,
		"no expiry":    noExp,
		"tampered sig": good[:len(good)-2] + "xx",
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
