//go:build unit

package commands_test

import (
	"context"
	"testing"

	"keyvend/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProductValidation(t *testing.T) {
	tests := []struct {
		name      string
		product   string
		durations []string
		wantErr   bool
	}{
		{"valid", "ValorantPro", []string{"1Day", "1Week"}, false},
		{"trims and dedupes", "  ValorantPro  ", []string{"1Day", "1Day", " "}, false},
		{"empty name", "   ", []string{"1Day"}, true},
		{"path traversal in name", "../etc", []string{"1Day"}, true},
		{"slash in duration", "ValorantPro", []string{"1/Day"}, true},
		{"underscore in name", "a_b", []string{"1Day"}, true},
		{"no durations", "ValorantPro", []string{"", "  "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.admin.AddProduct(context.Background(), "admin", tt.product, tt.durations)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBalanceLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	balance, err := f.admin.AddBalance(ctx, "admin", "42", decimal.RequireFromString("25.50"))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("25.50")))

	balance, err = f.admin.RemoveBalance(ctx, "admin", "42", decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("15.50")))

	// Corrections clamp at zero instead of overdrawing.
	balance, err = f.admin.RemoveBalance(ctx, "admin", "42", decimal.RequireFromString("100.00"))
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	lines, err := f.history.Read(ctx, "42")
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

func TestAddNegativeBalanceRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.admin.AddBalance(context.Background(), "admin", "42", decimal.RequireFromString("-5.00"))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestSetDiscountBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.admin.SetDiscount(ctx, "admin", "42", 0))
	require.NoError(t, f.admin.SetDiscount(ctx, "admin", "42", 100))
	assert.ErrorIs(t, f.admin.SetDiscount(ctx, "admin", "42", -1), errs.ErrInvalidInput)
	assert.ErrorIs(t, f.admin.SetDiscount(ctx, "admin", "42", 101), errs.ErrInvalidInput)
}

func TestSetPriceRejectsNegative(t *testing.T) {
	f := newFixture(t)

	err := f.admin.SetPrice(context.Background(), "admin", "ValorantPro", "1Day", decimal.RequireFromString("-1.00"))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestAddStockWithoutCatalogEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	added, err := f.admin.AddStock(ctx, "admin", "Unlisted", "1Day", []string{"KEY-A", "", "KEY-B"})
	require.NoError(t, err)
	assert.Equal(t, 2, added, "blank lines dropped")

	count, err := f.stock.Count(ctx, "Unlisted", "1Day")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAddStockRejectsUnderscoreNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Bucket files are named <product>_<duration>.txt, so a name containing
	// an underscore would collide with a different pair's bucket.
	_, err := f.admin.AddStock(ctx, "admin", "a_b", "c", []string{"KEY-A"})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = f.admin.AddStock(ctx, "admin", "a", "b_c", []string{"KEY-A"})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestClearStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.AddStock(ctx, "admin", "ValorantPro", "1Day", []string{"KEY-A"})
	require.NoError(t, err)

	existed, err := f.admin.ClearStock(ctx, "admin", "ValorantPro", "1Day")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = f.admin.ClearStock(ctx, "admin", "ValorantPro", "1Day")
	require.NoError(t, err)
	assert.False(t, existed, "clearing an empty bucket is a no-op")
}

func TestAdminOpsEmitNotifications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.admin.AddProduct(ctx, "admin", "ValorantPro", []string{"1Day"}))
	require.NoError(t, f.admin.SetPrice(ctx, "admin", "ValorantPro", "1Day", decimal.NewFromInt(5)))
	_, err := f.admin.AddBalance(ctx, "admin", "42", decimal.NewFromInt(10))
	require.NoError(t, err)

	kinds := f.notifier.kinds()
	assert.Contains(t, kinds, "product_added")
	assert.Contains(t, kinds, "price_set")
	assert.Contains(t, kinds, "balance_added")
}
