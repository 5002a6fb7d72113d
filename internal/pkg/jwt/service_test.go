package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(now time.Time) *HMACService {
	s := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	s.now = func() time.Time { return now }
	return s
}

func TestHMACService_AccessRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := newTestService(now)
	id := uuid.New()

	tok, err := s.GenerateAccessToken(id, "seeker@example.com", "job_seeker")
	require.NoError(t, err)

	c, err := s.ValidateAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, id, c.UserID)
	assert.Equal(t, "job_seeker", c.Role)
	assert.Equal(t, TokenTypeAccess, c.TokenType)
	assert.Equal(t, id.String(), c.Subject)
}

func TestHMACService_TokenTypesAreNotInterchangeable(t *testing.T) {
	s := newTestService(time.Now())
	id := uuid.New()

	access, err := s.GenerateAccessToken(id, "a@example.com", "admin")
	require.NoError(t, err)
	refresh, err := s.GenerateRefreshToken(id)
	require.NoError(t, err)

	_, err = s.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = s.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	c, err := s.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, id, c.UserID)
}

func TestHMACService_Expired(t *testing.T) {
	issued := time.Now().Add(-time.Hour)
	s := newTestService(issued)

	tok, err := s.GenerateAccessToken(uuid.New(), "a@example.com", "recruiter")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateAccessToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_Garbage(t *testing.T) {
	s := newTestService(time.Now())
	_, err := s.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	other := NewHMACService("other", "other-refresh", time.Minute, time.Minute)
	tok, err := other.GenerateAccessToken(uuid.New(), "", "admin")
	require.NoError(t, err)
	_, err = s.ValidateAccessToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
