package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"keyvend/internal/domain/account"
	"keyvend/internal/domain/purchase"
	"keyvend/internal/infra"
	"keyvend/internal/pkg/clock"
	"keyvend/internal/pkg/config"
	"keyvend/internal/pkg/errs"
	"keyvend/internal/pkg/keylock"
	"keyvend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseResult struct {
	Product    string
	Duration   string
	Quantity   int
	Keys       []string
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal
	Discount   int
	NewBalance decimal.Decimal
}

type QuoteResult struct {
	QuoteID   uuid.UUID
	Product   string
	Duration  string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	Discount  int
	ExpiresAt time.Time
}

type PurchaseCommands interface {
	// Purchase runs the whole transaction in one step.
	Purchase(ctx context.Context, userID, product, duration string, quantity int) (*PurchaseResult, error)
	// Quote prices a purchase and defers execution behind Confirm.
	Quote(ctx context.Context, userID, product, duration string, quantity int) (*QuoteResult, error)
	Confirm(ctx context.Context, userID string, quoteID uuid.UUID) (*PurchaseResult, error)
	Cancel(ctx context.Context, userID string, quoteID uuid.UUID) error
}

type purchaseUseCaseImpl struct {
	ledger   LedgerRepository
	catalog  CatalogRepository
	stock    StockRepository
	history  HistoryRepository
	notifier AdminNotifier
	quotes   *shared.PendingQuotes
	locks    *keylock.KeyedMutex
	cfg      config.PurchaseConfig
	clock    clock.Clock
	logger   *slog.Logger
}

func NewPurchaseCommands(
	ledger LedgerRepository,
	catalog CatalogRepository,
	stock StockRepository,
	history HistoryRepository,
	notifier AdminNotifier,
	quotes *shared.PendingQuotes,
	locks *keylock.KeyedMutex,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) PurchaseCommands {
	return &purchaseUseCaseImpl{
		ledger:   ledger,
		catalog:  catalog,
		stock:    stock,
		history:  history,
		notifier: notifier,
		quotes:   quotes,
		locks:    locks,
		cfg:      cfg.Purchase,
		clock:    clk,
		logger:   logger,
	}
}

func (u *purchaseUseCaseImpl) Purchase(ctx context.Context, userID, product, duration string, quantity int) (*PurchaseResult, error) {
	pricing, err := u.price(ctx, userID, product, duration, quantity)
	if err != nil {
		return nil, err
	}
	return u.execute(ctx, userID, product, duration, pricing)
}

func (u *purchaseUseCaseImpl) Quote(ctx context.Context, userID, product, duration string, quantity int) (*QuoteResult, error) {
	pricing, err := u.price(ctx, userID, product, duration, quantity)
	if err != nil {
		return nil, err
	}

	// Pre-checks make a quote honest at issue time; they are repeated under
	// lock at confirm time because stock and balance may move in between.
	acct, err := u.ledger.Get(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !acct.CanAfford(pricing.Total()) {
		return nil, errs.Mark(&InsufficientBalanceError{Need: pricing.Total(), Have: acct.Balance()}, errs.ErrInsufficientBalance)
	}

	available, err := u.stock.Count(ctx, product, duration)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if available < quantity {
		return nil, errs.Mark(&InsufficientStockError{Requested: quantity, Available: available}, errs.ErrInsufficientStock)
	}

	q, err := purchase.NewQuote(userID, product, duration, pricing, u.clock.Now(), u.cfg.QuoteTTL)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	u.quotes.Put(q)

	return &QuoteResult{
		QuoteID:   q.ID(),
		Product:   product,
		Duration:  duration,
		Quantity:  quantity,
		UnitPrice: pricing.DiscountedUnit,
		Total:     pricing.Total(),
		Discount:  pricing.DiscountPercent,
		ExpiresAt: q.ExpiresAt(),
	}, nil
}

func (u *purchaseUseCaseImpl) Confirm(ctx context.Context, userID string, quoteID uuid.UUID) (*PurchaseResult, error) {
	q, err := u.quotes.Claim(quoteID, userID)
	if err != nil {
		return nil, err
	}

	result, err := u.execute(ctx, userID, q.Product(), q.Duration(), q.Pricing())
	if err != nil {
		if errors.Is(err, errs.ErrPurchaseBusy) {
			// The locks were contended; the quote itself is still good.
			u.quotes.Restore(q)
			return nil, err
		}
		q.MarkRejected()
		return nil, err
	}

	q.MarkFulfilled()
	return result, nil
}

func (u *purchaseUseCaseImpl) Cancel(ctx context.Context, userID string, quoteID uuid.UUID) error {
	q, err := u.quotes.Claim(quoteID, userID)
	if err != nil {
		return err
	}
	q.MarkCanceled()
	return nil
}

// price validates the request shape and computes the discounted charge
// (steps 1-4 of the transaction). No locks are taken; nothing is mutated.
func (u *purchaseUseCaseImpl) price(ctx context.Context, userID, product, duration string, quantity int) (purchase.Pricing, error) {
	if quantity < 1 || quantity > u.cfg.MaxQuantity {
		return purchase.Pricing{}, errs.Mark(
			&QuantityError{Requested: quantity, Min: 1, Max: u.cfg.MaxQuantity},
			errs.ErrQuantityOutOfRange,
		)
	}

	known, err := u.catalog.HasDuration(ctx, product, duration)
	if err != nil {
		return purchase.Pricing{}, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !known {
		return purchase.Pricing{}, errs.ErrProductNotFound
	}

	listPrice, err := u.catalog.PriceFor(ctx, product, duration)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return purchase.Pricing{}, errs.ErrPriceNotSet
		}
		return purchase.Pricing{}, errs.Mark(err, errs.ErrStorageFailure)
	}

	acct, err := u.ledger.Get(ctx, userID)
	if err != nil {
		return purchase.Pricing{}, errs.Mark(err, errs.ErrStorageFailure)
	}

	pricing, err := purchase.NewPricing(listPrice, acct.Discount(), quantity)
	if err != nil {
		return purchase.Pricing{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	return pricing, nil
}

// execute performs the mutating tail of the transaction (steps 5-9) under
// the account and bucket locks: re-check balance, pull stock, debit, log,
// notify. The pull is undone if the debit cannot be persisted, so either all
// of the purchase happens or none of it.
func (u *purchaseUseCaseImpl) execute(ctx context.Context, userID, product, duration string, pricing purchase.Pricing) (*PurchaseResult, error) {
	releaseAccount, ok := u.locks.Acquire("account:"+userID, u.cfg.LockWait)
	if !ok {
		return nil, errs.ErrPurchaseBusy
	}
	defer releaseAccount()

	releaseBucket, ok := u.locks.Acquire("bucket:"+product+"_"+duration, u.cfg.LockWait)
	if !ok {
		return nil, errs.ErrPurchaseBusy
	}
	defer releaseBucket()

	total := pricing.Total()

	acct, err := u.ledger.Get(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !acct.CanAfford(total) {
		return nil, errs.Mark(&InsufficientBalanceError{Need: total, Have: acct.Balance()}, errs.ErrInsufficientBalance)
	}

	keys, err := u.stock.Pull(ctx, product, duration, pricing.Quantity)
	if err != nil {
		var insufficient *infra.InsufficientStockError
		if errors.As(err, &insufficient) {
			return nil, errs.Mark(
				&InsufficientStockError{Requested: insufficient.Requested, Available: insufficient.Available},
				errs.ErrInsufficientStock,
			)
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	updated, err := u.ledger.Update(ctx, userID, func(a *account.Account) error {
		if err := a.Debit(total); err != nil {
			return err
		}
		return a.RecordIssued(pricing.Quantity)
	})
	if err != nil {
		// Undo the pull: the keys were not consumed.
		if restoreErr := u.stock.Restore(ctx, product, duration, keys); restoreErr != nil {
			u.logger.Error("failed to restore pulled keys after debit failure",
				"user_id", userID, "product", product, "duration", duration,
				"keys", len(keys), "error", restoreErr)
		}
		if errors.Is(err, account.ErrInsufficientBalance) {
			return nil, errs.Mark(&InsufficientBalanceError{Need: total, Have: acct.Balance()}, errs.ErrInsufficientBalance)
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	message := fmt.Sprintf("Purchased %dx %s %s - Total: $%s (%d%% discount applied)",
		pricing.Quantity, product, duration, total.StringFixed(2), pricing.DiscountPercent)
	if histErr := u.history.Append(ctx, userID, message); histErr != nil {
		// The debit and pull are committed; the audit line is best-effort.
		u.logger.Error("failed to append purchase history", "user_id", userID, "error", histErr)
	}

	u.notifier.Notify(ctx, NotifyEvent{
		Kind:   "keys_purchased",
		UserID: userID,
		Detail: map[string]any{
			"product":           product,
			"duration":          duration,
			"quantity":          pricing.Quantity,
			"total":             total.StringFixed(2),
			"discount_percent":  pricing.DiscountPercent,
			"remaining_balance": updated.Balance().StringFixed(2),
			"keys":              keys,
		},
	})

	return &PurchaseResult{
		Product:    product,
		Duration:   duration,
		Quantity:   pricing.Quantity,
		Keys:       keys,
		UnitPrice:  pricing.DiscountedUnit,
		Total:      total,
		Discount:   pricing.DiscountPercent,
		NewBalance: updated.Balance(),
	}, nil
}
