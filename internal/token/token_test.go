package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigoquadros/barber-agenda/internal/models"
)

var testUser = &models.User{
	ID:    7,
	Name:  "Admin Barbeiro",
	Email: "admin@barbershop.com",
	Role:  "barber",
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("segredo-de-teste", 8*time.Hour)

	signed, err := m.Issue(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Admin Barbeiro", claims.Name)
	assert.Equal(t, "admin@barbershop.com", claims.Email)
	assert.Equal(t, "barber", claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("segredo-de-teste", -time.Minute)

	signed, err := m.Issue(testUser)
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewManager("segredo-a", time.Hour)
	verifier := NewManager("segredo-b", time.Hour)

	signed, err := issuer.Issue(testUser)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	m := NewManager("segredo-de-teste", time.Hour)

	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
