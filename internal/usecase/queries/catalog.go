package queries

import (
	"context"
	"sort"

	"keyvend/internal/domain/purchase"
	"keyvend/internal/infra"
	"keyvend/internal/pkg/clock"
	"keyvend/internal/pkg/errs"
)

type CatalogQueries interface {
	// ListPrices renders the full price table personalized with the caller's
	// discount and live stock counts.
	ListPrices(ctx context.Context, userID string) (*PriceListView, error)
	StockStatus(ctx context.Context) (*StockStatusView, error)
	// Estimate prices a prospective purchase without touching any state.
	Estimate(ctx context.Context, userID, product, duration string, quantity int) (*EstimateView, error)
}

type catalogQueriesImpl struct {
	ledger  LedgerReader
	catalog CatalogReader
	stock   StockReader
	clock   clock.Clock
}

func NewCatalogQueries(ledger LedgerReader, catalog CatalogReader, stock StockReader, clk clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{ledger: ledger, catalog: catalog, stock: stock, clock: clk}
}

func (q *catalogQueriesImpl) ListPrices(ctx context.Context, userID string) (*PriceListView, error) {
	acct, err := q.ledger.Get(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	products, err := q.catalog.Catalog(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	prices, err := q.catalog.Prices(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	names := make([]string, 0, len(products))
	for name := range products {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows []PriceRow
	for _, name := range names {
		// Durations keep catalog order; unpriced durations are skipped, the
		// same pairs the purchase path would reject.
		for _, duration := range products[name] {
			listPrice, ok := prices[name][duration]
			if !ok {
				continue
			}
			discounted, err := purchase.DiscountedUnit(listPrice, acct.Discount())
			if err != nil {
				return nil, errs.Mark(err, errs.ErrStorageFailure)
			}
			count, err := q.stock.Count(ctx, name, duration)
			if err != nil {
				return nil, errs.Mark(err, errs.ErrStorageFailure)
			}
			rows = append(rows, PriceRow{
				Product:         name,
				Duration:        duration,
				ListPrice:       listPrice,
				DiscountedPrice: discounted,
				InStock:         count,
			})
		}
	}

	return &PriceListView{
		Rows:            rows,
		DiscountPercent: acct.Discount(),
		GeneratedAt:     q.clock.Now(),
	}, nil
}

func (q *catalogQueriesImpl) StockStatus(ctx context.Context) (*StockStatusView, error) {
	products, err := q.catalog.Catalog(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	names := make([]string, 0, len(products))
	for name := range products {
		names = append(names, name)
	}
	sort.Strings(names)

	view := &StockStatusView{GeneratedAt: q.clock.Now()}
	for _, name := range names {
		for _, duration := range products[name] {
			count, err := q.stock.Count(ctx, name, duration)
			if err != nil {
				return nil, errs.Mark(err, errs.ErrStorageFailure)
			}
			view.Rows = append(view.Rows, StockRow{Product: name, Duration: duration, Count: count})
			view.TotalKeys += count
		}
	}
	return view, nil
}

func (q *catalogQueriesImpl) Estimate(ctx context.Context, userID, product, duration string, quantity int) (*EstimateView, error) {
	if quantity < 1 {
		return nil, errs.Mark(errs.New("quantity must be positive"), errs.ErrInvalidInput)
	}

	known, err := q.catalog.HasDuration(ctx, product, duration)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !known {
		return nil, errs.ErrProductNotFound
	}

	listPrice, err := q.catalog.PriceFor(ctx, product, duration)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPriceNotSet
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	acct, err := q.ledger.Get(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	pricing, err := purchase.NewPricing(listPrice, acct.Discount(), quantity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	count, err := q.stock.Count(ctx, product, duration)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	return &EstimateView{
		Product:         product,
		Duration:        duration,
		Quantity:        quantity,
		ListUnit:        pricing.ListUnit,
		DiscountedUnit:  pricing.DiscountedUnit,
		Total:           pricing.Total(),
		DiscountPercent: pricing.DiscountPercent,
		Affordable:      acct.CanAfford(pricing.Total()),
		InStock:         count,
	}, nil
}
