package queries

import (
	"context"
	"time"

	"keyvend/internal/domain/account"

	"github.com/shopspring/decimal"
)

// Read-side ports. These mirror a subset of the repository surface; queries
// never mutate.

type LedgerReader interface {
	Get(ctx context.Context, userID string) (account.Account, error)
}

type CatalogReader interface {
	Catalog(ctx context.Context) (map[string][]string, error)
	Prices(ctx context.Context) (map[string]map[string]decimal.Decimal, error)
	HasDuration(ctx context.Context, product, duration string) (bool, error)
	PriceFor(ctx context.Context, product, duration string) (decimal.Decimal, error)
}

type StockReader interface {
	Count(ctx context.Context, product, duration string) (int, error)
}

type HistoryReader interface {
	Read(ctx context.Context, userID string) ([]string, error)
}

type AccountView struct {
	UserID    string
	Balance   decimal.Decimal
	Discount  int
	TotalKeys int
}

type HistoryEntry struct {
	Raw string
}

// PriceRow is one sellable (product, duration) pair. DiscountedPrice equals
// ListPrice for a caller with no discount.
type PriceRow struct {
	Product         string
	Duration        string
	ListPrice       decimal.Decimal
	DiscountedPrice decimal.Decimal
	InStock         int
}

type PriceListView struct {
	Rows            []PriceRow
	DiscountPercent int
	GeneratedAt     time.Time
}

type StockRow struct {
	Product  string
	Duration string
	Count    int
}

type StockStatusView struct {
	Rows        []StockRow
	TotalKeys   int
	GeneratedAt time.Time
}

type EstimateView struct {
	Product         string
	Duration        string
	Quantity        int
	ListUnit        decimal.Decimal
	DiscountedUnit  decimal.Decimal
	Total           decimal.Decimal
	DiscountPercent int
	Affordable      bool
	InStock         int
}
