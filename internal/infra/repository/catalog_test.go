//go:build unit

package repository_test

import (
	"context"
	"testing"

	"keyvend/internal/infra"
	"keyvend/internal/infra/repository"
	"keyvend/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRepo(t *testing.T) *repository.CatalogRepository {
	t.Helper()
	return repository.NewCatalogRepository(config.StorageConfig{DataDir: t.TempDir()})
}

func TestSetDurationsReplacesWholesale(t *testing.T) {
	repo := newCatalogRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetDurations(ctx, "ValorantPro", []string{"1Day", "1Week"}))
	require.NoError(t, repo.SetDurations(ctx, "ValorantPro", []string{"1Month"}))

	catalog, err := repo.Catalog(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(map[string][]string{"ValorantPro": {"1Month"}}, catalog); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}

	ok, err := repo.HasDuration(ctx, "ValorantPro", "1Month")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasDuration(ctx, "ValorantPro", "1Day")
	require.NoError(t, err)
	assert.False(t, ok, "old durations are not merged")
}

func TestPriceTableIndependentOfCatalog(t *testing.T) {
	repo := newCatalogRepo(t)
	ctx := context.Background()

	// A price may exist for a pair absent from the catalog.
	require.NoError(t, repo.SetPrice(ctx, "GhostProduct", "1Day", decimal.NewFromFloat(4.99)))

	price, err := repo.PriceFor(ctx, "GhostProduct", "1Day")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromFloat(4.99)))

	ok, err := repo.HasDuration(ctx, "GhostProduct", "1Day")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPriceForNotSet(t *testing.T) {
	repo := newCatalogRepo(t)

	_, err := repo.PriceFor(context.Background(), "p", "d")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestSetPriceUpserts(t *testing.T) {
	repo := newCatalogRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetPrice(ctx, "p", "1Day", decimal.NewFromInt(5)))
	require.NoError(t, repo.SetPrice(ctx, "p", "1Day", decimal.NewFromInt(7)))
	require.NoError(t, repo.SetPrice(ctx, "p", "1Week", decimal.NewFromInt(20)))

	prices, err := repo.Prices(ctx)
	require.NoError(t, err)
	assert.True(t, prices["p"]["1Day"].Equal(decimal.NewFromInt(7)))
	assert.True(t, prices["p"]["1Week"].Equal(decimal.NewFromInt(20)))
}
