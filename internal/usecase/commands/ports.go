package commands

import (
	"context"
	"fmt"

	"keyvend/internal/domain/account"

	"github.com/shopspring/decimal"
)

// Write-side ports. The concrete implementations live in infra/repository;
// queries use their own narrower read interfaces.

type LedgerRepository interface {
	Get(ctx context.Context, userID string) (account.Account, error)
	Update(ctx context.Context, userID string, fn func(*account.Account) error) (account.Account, error)
}

type CatalogRepository interface {
	SetDurations(ctx context.Context, product string, durations []string) error
	HasDuration(ctx context.Context, product, duration string) (bool, error)
	SetPrice(ctx context.Context, product, duration string, price decimal.Decimal) error
	PriceFor(ctx context.Context, product, duration string) (decimal.Decimal, error)
}

type StockRepository interface {
	Count(ctx context.Context, product, duration string) (int, error)
	Pull(ctx context.Context, product, duration string, quantity int) ([]string, error)
	Add(ctx context.Context, product, duration string, keys []string) (int, error)
	Restore(ctx context.Context, product, duration string, keys []string) error
	Clear(ctx context.Context, product, duration string) (bool, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, userID, message string) error
}

// NotifyEvent is the administrator-facing audit record emitted after every
// state-changing operation. Delivery is best-effort and never fails the
// operation that produced it.
type NotifyEvent struct {
	Kind   string         `json:"kind"`
	UserID string         `json:"user_id,omitempty"`
	Actor  string         `json:"actor,omitempty"`
	Detail map[string]any `json:"detail,omitempty"`
}

type AdminNotifier interface {
	Notify(ctx context.Context, event NotifyEvent)
}

// Detail-carrying rejection types. Each is also marked with the matching
// errs sentinel so callers can branch with errors.Is and format with
// errors.As.

type QuantityError struct {
	Requested int
	Min       int
	Max       int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("quantity must be between %d and %d, got %d", e.Min, e.Max, e.Requested)
}

type InsufficientBalanceError struct {
	Need decimal.Decimal
	Have decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: need $%s, have $%s", e.Need.StringFixed(2), e.Have.StringFixed(2))
}

type InsufficientStockError struct {
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}
