package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/mocks"
)

func newTestCodec() (*TokenCodec, *mocks.MockClock) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	return NewTokenCodec([]byte("test-secret"), 24*time.Hour, clk), clk
}

func TestTokenRoundTrip(t *testing.T) {
	codec, clk := newTestCodec()

	token, err := codec.Issue("u1", "alice")
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.EqualValues(t, "u1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, clk.Now().Add(24*time.Hour), claims.ExpiresAt)
}

func TestTokenExpiry(t *testing.T) {
	codec, clk := newTestCodec()

	token, err := codec.Issue("u1", "alice")
	require.NoError(t, err)

	// Just before the boundary the token still decodes
	clk.Advance(24*time.Hour - time.Second)
	_, err = codec.Decode(token)
	require.NoError(t, err)

	clk.Advance(2 * time.Second)
	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuedAlreadyExpired(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	codec := NewTokenCodec([]byte("test-secret"), -time.Hour, clk)

	token, err := codec.Issue("u1", "alice")
	require.NoError(t, err)

	// An expiry in the past always decodes to expired, never to claims
	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	codec, clk := newTestCodec()
	other := NewTokenCodec([]byte("different-secret"), 24*time.Hour, clk)

	token, err := codec.Issue("u1", "alice")
	require.NoError(t, err)

	_, err = other.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbageInput(t *testing.T) {
	codec, _ := newTestCodec()

	for _, input := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		_, err := codec.Decode(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}
