//go:build unit

package shared_test

import (
	"testing"
	"time"

	"keyvend/internal/domain/purchase"
	"keyvend/internal/pkg/clock"
	"keyvend/internal/pkg/errs"
	"keyvend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuote(t *testing.T, userID string, now time.Time, ttl time.Duration) *purchase.Quote {
	t.Helper()
	pricing, err := purchase.NewPricing(decimal.NewFromInt(5), 0, 1)
	require.NoError(t, err)
	q, err := purchase.NewQuote(userID, "p", "1Day", pricing, now, ttl)
	require.NoError(t, err)
	return q
}

func TestClaimLifecycle(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	store := shared.NewPendingQuotes(clk)

	q := newQuote(t, "user-1", now, 2*time.Minute)
	store.Put(q)

	claimed, err := store.Claim(q.ID(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, q.ID(), claimed.ID())

	// Claimed quotes are gone; a second claim cannot run the purchase twice.
	_, err = store.Claim(q.ID(), "user-1")
	assert.ErrorIs(t, err, errs.ErrQuoteNotFound)
}

func TestClaimForeignRequesterLeavesQuote(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	store := shared.NewPendingQuotes(clk)

	q := newQuote(t, "user-1", now, 2*time.Minute)
	store.Put(q)

	_, err := store.Claim(q.ID(), "user-2")
	assert.ErrorIs(t, err, errs.ErrQuoteForbidden)

	// The rightful requester can still confirm.
	_, err = store.Claim(q.ID(), "user-1")
	require.NoError(t, err)
}

func TestClaimExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	store := shared.NewPendingQuotes(clk)

	q := newQuote(t, "user-1", now, time.Minute)
	store.Put(q)

	clk.Add(2 * time.Minute)
	_, err := store.Claim(q.ID(), "user-1")
	assert.ErrorIs(t, err, errs.ErrQuoteExpired)
	assert.Equal(t, 0, store.Len())
}

func TestClaimUnknown(t *testing.T) {
	store := shared.NewPendingQuotes(clock.NewMockClock(time.Now()))

	_, err := store.Claim(uuid.New(), "user-1")
	assert.ErrorIs(t, err, errs.ErrQuoteNotFound)
}

func TestRestore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	store := shared.NewPendingQuotes(clk)

	q := newQuote(t, "user-1", now, 2*time.Minute)
	store.Put(q)

	claimed, err := store.Claim(q.ID(), "user-1")
	require.NoError(t, err)

	store.Restore(claimed)
	_, err = store.Claim(q.ID(), "user-1")
	require.NoError(t, err, "restored quote can be claimed again")
}

func TestPutSweepsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	store := shared.NewPendingQuotes(clk)

	store.Put(newQuote(t, "user-1", now, time.Minute))
	store.Put(newQuote(t, "user-2", now, time.Hour))
	require.Equal(t, 2, store.Len())

	clk.Add(30 * time.Minute)
	store.Put(newQuote(t, "user-3", clk.Now(), time.Hour))

	assert.Equal(t, 2, store.Len(), "expired quote swept on insert")
}
