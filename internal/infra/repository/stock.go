package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"keyvend/internal/infra"
	"keyvend/internal/pkg/config"
	"keyvend/internal/pkg/errs"
)

// StockRepository keeps one plain-text file per (product, duration) bucket,
// one license key per line, issued FIFO from the front. Pull, Add, Restore
// and Clear on the same bucket are mutually exclusive, so two concurrent
// pulls can never both remove the same key.
type StockRepository struct {
	dir     string
	mu      sync.Mutex
	buckets map[string]*sync.Mutex
}

func NewStockRepository(cfg config.StorageConfig) *StockRepository {
	return &StockRepository{
		dir:     cfg.StockDir,
		buckets: make(map[string]*sync.Mutex),
	}
}

// bucketLock keys the mutex by the resolved file path, not the raw pair, so
// any (product, duration) combinations that map to the same file are
// serialized together.
func (r *StockRepository) bucketLock(path string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.buckets[path]
	if !ok {
		m = &sync.Mutex{}
		r.buckets[path] = m
	}
	return m
}

func (r *StockRepository) bucketPath(product, duration string) string {
	return filepath.Join(r.dir, product+"_"+duration+".txt")
}

// Count reports the number of keys in the bucket; 0 when the bucket does not
// exist. Display reads take no lock and may be stale.
func (r *StockRepository) Count(_ context.Context, product, duration string) (int, error) {
	keys, err := readBucket(r.bucketPath(product, duration))
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Pull removes exactly quantity keys from the front of the bucket. When
// fewer keys are available it removes nothing and returns
// *infra.InsufficientStockError carrying requested vs available.
func (r *StockRepository) Pull(ctx context.Context, product, duration string, quantity int) ([]string, error) {
	if quantity <= 0 {
		return nil, errs.New("pull quantity must be positive")
	}

	path := r.bucketPath(product, duration)
	lock := r.bucketLock(path)
	lock.Lock()
	defer lock.Unlock()

	keys, err := readBucket(path)
	if err != nil {
		return nil, err
	}
	if len(keys) < quantity {
		return nil, &infra.InsufficientStockError{Requested: quantity, Available: len(keys)}
	}

	pulled := keys[:quantity]
	if err := writeBucket(path, keys[quantity:]); err != nil {
		return nil, err
	}
	return pulled, nil
}

// Add appends keys to the end of the bucket, creating it if absent. Keys are
// trimmed and blank lines dropped; the number actually added is returned.
func (r *StockRepository) Add(_ context.Context, product, duration string, keys []string) (int, error) {
	cleaned := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) == 0 {
		return 0, nil
	}

	path := r.bucketPath(product, duration)
	lock := r.bucketLock(path)
	lock.Lock()
	defer lock.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, infra.WrapRepoErr("failed to create stock directory", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to open bucket "+path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(cleaned, "\n") + "\n"); err != nil {
		return 0, infra.WrapRepoErr("failed to append to bucket "+path, err)
	}
	return len(cleaned), nil
}

// Restore pushes keys back onto the front of the bucket, preserving their
// order. It undoes a pull when a later step of a purchase fails.
func (r *StockRepository) Restore(_ context.Context, product, duration string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	path := r.bucketPath(product, duration)
	lock := r.bucketLock(path)
	lock.Lock()
	defer lock.Unlock()

	existing, err := readBucket(path)
	if err != nil {
		return err
	}
	return writeBucket(path, append(append([]string{}, keys...), existing...))
}

// Clear deletes the bucket file entirely. It reports false when there was
// nothing to clear; calling it twice is safe.
func (r *StockRepository) Clear(_ context.Context, product, duration string) (bool, error) {
	path := r.bucketPath(product, duration)
	lock := r.bucketLock(path)
	lock.Lock()
	defer lock.Unlock()

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to remove bucket "+path, err)
	}
	return true, nil
}

func readBucket(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read bucket "+path, err)
	}

	var keys []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			keys = append(keys, line)
		}
	}
	return keys, nil
}

func writeBucket(path string, keys []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return infra.WrapRepoErr("failed to create stock directory", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return infra.WrapRepoErr("failed to create temp file for "+path, err)
	}
	tmpName := tmp.Name()

	content := ""
	if len(keys) > 0 {
		content = strings.Join(keys, "\n") + "\n"
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to write temp file for "+path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to close temp file for "+path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to replace bucket "+path, err)
	}
	return nil
}
