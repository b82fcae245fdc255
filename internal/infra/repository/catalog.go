package repository

import (
	"context"
	"path/filepath"
	"sync"

	"keyvend/internal/infra"
	"keyvend/internal/infra/filestore"
	"keyvend/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// CatalogRepository persists the product catalog and the price table as two
// independent JSON documents. They are allowed to diverge; the purchase
// usecase checks both.
type CatalogRepository struct {
	productsPath string
	pricesPath   string
	mu           sync.Mutex
}

func NewCatalogRepository(cfg config.StorageConfig) *CatalogRepository {
	return &CatalogRepository{
		productsPath: filepath.Join(cfg.DataDir, "products.json"),
		pricesPath:   filepath.Join(cfg.DataDir, "prices.json"),
	}
}

// SetDurations replaces the product's whole duration list (no merging).
func (r *CatalogRepository) SetDurations(_ context.Context, product string, durations []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make(map[string][]string)
	if _, err := filestore.LoadJSON(r.productsPath, &products); err != nil {
		return err
	}
	products[product] = durations
	return filestore.SaveJSON(r.productsPath, products)
}

func (r *CatalogRepository) Catalog(_ context.Context) (map[string][]string, error) {
	products := make(map[string][]string)
	if _, err := filestore.LoadJSON(r.productsPath, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) HasDuration(ctx context.Context, product, duration string) (bool, error) {
	products, err := r.Catalog(ctx)
	if err != nil {
		return false, err
	}
	for _, d := range products[product] {
		if d == duration {
			return true, nil
		}
	}
	return false, nil
}

func (r *CatalogRepository) SetPrice(_ context.Context, product, duration string, price decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prices := make(map[string]map[string]float64)
	if _, err := filestore.LoadJSON(r.pricesPath, &prices); err != nil {
		return err
	}
	if prices[product] == nil {
		prices[product] = make(map[string]float64)
	}
	prices[product][duration] = price.InexactFloat64()
	return filestore.SaveJSON(r.pricesPath, prices)
}

func (r *CatalogRepository) Prices(_ context.Context) (map[string]map[string]decimal.Decimal, error) {
	prices := make(map[string]map[string]float64)
	if _, err := filestore.LoadJSON(r.pricesPath, &prices); err != nil {
		return nil, err
	}

	out := make(map[string]map[string]decimal.Decimal, len(prices))
	for product, durations := range prices {
		out[product] = make(map[string]decimal.Decimal, len(durations))
		for duration, price := range durations {
			out[product][duration] = decimal.NewFromFloat(price)
		}
	}
	return out, nil
}

// PriceFor returns the unit price for (product, duration); KindNotFound when
// no price is set.
func (r *CatalogRepository) PriceFor(ctx context.Context, product, duration string) (decimal.Decimal, error) {
	prices, err := r.Prices(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	price, ok := prices[product][duration]
	if !ok {
		return decimal.Zero, infra.WrapRepoErr("no price for "+product+" "+duration, nil, infra.KindNotFound)
	}
	return price, nil
}
