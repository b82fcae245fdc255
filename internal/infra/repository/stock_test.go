//go:build unit

package repository_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"keyvend/internal/infra"
	"keyvend/internal/infra/repository"
	"keyvend/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStockRepo(t *testing.T) *repository.StockRepository {
	t.Helper()
	return repository.NewStockRepository(config.StorageConfig{StockDir: t.TempDir()})
}

func TestAddAndCount(t *testing.T) {
	repo := newStockRepo(t)
	ctx := context.Background()

	n, err := repo.Add(ctx, "ValorantPro", "1Day", []string{" KEY-1 ", "", "KEY-2", "   "})
	require.NoError(t, err)
	assert.Equal(t, 2, n, "blank lines are never stored")

	count, err := repo.Count(ctx, "ValorantPro", "1Day")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.Count(ctx, "ValorantPro", "1Week")
	require.NoError(t, err)
	assert.Equal(t, 0, count, "missing bucket counts as empty")
}

func TestPullFIFO(t *testing.T) {
	repo := newStockRepo(t)
	ctx := context.Background()

	_, err := repo.Add(ctx, "p", "d", []string{"k1", "k2"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, "p", "d", []string{"k3"})
	require.NoError(t, err)

	keys, err := repo.Pull(ctx, "p", "d", 2)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"k1", "k2"}, keys); diff != "" {
		t.Errorf("pulled keys mismatch (-want +got):\n%s", diff)
	}

	keys, err = repo.Pull(ctx, "p", "d", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"k3"}, keys)
}

func TestPullInsufficiencyRemovesNothing(t *testing.T) {
	repo := newStockRepo(t)
	ctx := context.Background()

	_, err := repo.Add(ctx, "p", "d", []string{"k1", "k2"})
	require.NoError(t, err)

	_, err = repo.Pull(ctx, "p", "d", 5)
	var insufficient *infra.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 5, insufficient.Requested)
	assert.Equal(t, 2, insufficient.Available)

	count, err := repo.Count(ctx, "p", "d")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "no partial removal on insufficiency")
}

func TestPullFromMissingBucket(t *testing.T) {
	repo := newStockRepo(t)

	_, err := repo.Pull(context.Background(), "ghost", "1Day", 1)
	var insufficient *infra.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 0, insufficient.Available)
}

func TestRestorePutsKeysBackInFront(t *testing.T) {
	repo := newStockRepo(t)
	ctx := context.Background()

	_, err := repo.Add(ctx, "p", "d", []string{"k1", "k2", "k3"})
	require.NoError(t, err)

	pulled, err := repo.Pull(ctx, "p", "d", 2)
	require.NoError(t, err)

	require.NoError(t, repo.Restore(ctx, "p", "d", pulled))

	keys, err := repo.Pull(ctx, "p", "d", 3)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"k1", "k2", "k3"}, keys); diff != "" {
		t.Errorf("restored order mismatch (-want +got):\n%s", diff)
	}
}

func TestClearIdempotent(t *testing.T) {
	repo := newStockRepo(t)
	ctx := context.Background()

	_, err := repo.Add(ctx, "p", "d", []string{"k1"})
	require.NoError(t, err)

	removed, err := repo.Clear(ctx, "p", "d")
	require.NoError(t, err)
	assert.True(t, removed)

	count, err := repo.Count(ctx, "p", "d")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	removed, err = repo.Clear(ctx, "p", "d")
	require.NoError(t, err)
	assert.False(t, removed, "second clear reports nothing to clear")
}

func TestConcurrentPullsNeverDoubleIssue(t *testing.T) {
	repo := newStockRepo(t)
	ctx := context.Background()

	const pullers = 8
	_, err := repo.Add(ctx, "p", "d", []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7"})
	require.NoError(t, err)

	var mu sync.Mutex
	issued := make([]string, 0, pullers)
	insufficiencies := 0

	var wg sync.WaitGroup
	for i := 0; i < pullers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			keys, err := repo.Pull(ctx, "p", "d", 1)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				var insufficient *infra.InsufficientStockError
				if errors.As(err, &insufficient) {
					insufficiencies++
				}
				return
			}
			issued = append(issued, keys...)
		}()
	}
	wg.Wait()

	// N pullers, N-1 keys: exactly N-1 successes, 1 insufficiency.
	assert.Len(t, issued, pullers-1)
	assert.Equal(t, 1, insufficiencies)

	seen := make(map[string]bool)
	for _, k := range issued {
		assert.False(t, seen[k], "key %s issued twice", k)
		seen[k] = true
	}

	count, err := repo.Count(ctx, "p", "d")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAliasedNamesShareOneSerializedBucket(t *testing.T) {
	repo := newStockRepo(t)
	ctx := context.Background()

	// ("a_b", "c") and ("a", "b_c") both flatten to a_b_c.txt. Writers
	// through either spelling must contend for the same lock, or an append
	// racing a pull's rewrite can drop keys.
	const rounds = 25
	var mu sync.Mutex
	pulled := 0

	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		key := "k" + strconv.Itoa(i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := repo.Add(ctx, "a_b", "c", []string{key})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := repo.Pull(ctx, "a", "b_c", 1)
			if err != nil {
				var insufficient *infra.InsufficientStockError
				assert.True(t, errors.As(err, &insufficient))
				return
			}
			mu.Lock()
			pulled++
			mu.Unlock()
		}()
	}
	wg.Wait()

	count, err := repo.Count(ctx, "a", "b_c")
	require.NoError(t, err)
	assert.Equal(t, rounds-pulled, count, "every added key is either pulled or still on file")
}
