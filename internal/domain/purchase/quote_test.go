//go:build unit

package purchase_test

import (
	"testing"
	"time"

	"keyvend/internal/domain/purchase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingQuote(t *testing.T, now time.Time) *purchase.Quote {
	t.Helper()
	pricing, err := purchase.NewPricing(dec("5.00"), 0, 2)
	require.NoError(t, err)
	q, err := purchase.NewQuote("user-1", "ValorantPro", "1Day", pricing, now, 2*time.Minute)
	require.NoError(t, err)
	return q
}

func TestNewQuote(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	q := newPendingQuote(t, now)

	assert.Equal(t, purchase.StatusPending, q.Status())
	assert.Equal(t, "user-1", q.UserID())
	assert.Equal(t, now.Add(2*time.Minute), q.ExpiresAt())
	assert.False(t, q.HasExpired(now.Add(time.Minute)))
	assert.True(t, q.HasExpired(now.Add(3*time.Minute)))

	pricing := q.Pricing()
	_, err := purchase.NewQuote("", "p", "d", pricing, now, time.Minute)
	assert.ErrorIs(t, err, purchase.ErrEmptyUser)
}

func TestClaim(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("requester within ttl", func(t *testing.T) {
		q := newPendingQuote(t, now)
		require.NoError(t, q.Claim("user-1", now.Add(time.Minute)))
		assert.Equal(t, purchase.StatusPending, q.Status())
	})

	t.Run("foreign requester rejected before expiry check", func(t *testing.T) {
		q := newPendingQuote(t, now)
		err := q.Claim("user-2", now.Add(time.Hour))
		assert.ErrorIs(t, err, purchase.ErrNotRequester)
		// Quote stays pending: a foreign confirm must have no side effects.
		assert.Equal(t, purchase.StatusPending, q.Status())
	})

	t.Run("expired quote", func(t *testing.T) {
		q := newPendingQuote(t, now)
		err := q.Claim("user-1", now.Add(time.Hour))
		assert.ErrorIs(t, err, purchase.ErrQuoteExpired)
		assert.Equal(t, purchase.StatusExpired, q.Status())
	})

	t.Run("settled quote cannot be claimed again", func(t *testing.T) {
		q := newPendingQuote(t, now)
		q.MarkFulfilled()
		err := q.Claim("user-1", now)
		assert.ErrorIs(t, err, purchase.ErrQuoteSettled)
	})
}
