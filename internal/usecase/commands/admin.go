package commands

import (
	"context"
	"errors"
	"log/slog"

	"keyvend/internal/domain/account"
	"keyvend/internal/domain/catalog"
	"keyvend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type AdminCommands interface {
	AddProduct(ctx context.Context, actorID, product string, durations []string) error
	SetPrice(ctx context.Context, actorID, product, duration string, price decimal.Decimal) error
	AddBalance(ctx context.Context, actorID, userID string, amount decimal.Decimal) (decimal.Decimal, error)
	RemoveBalance(ctx context.Context, actorID, userID string, amount decimal.Decimal) (decimal.Decimal, error)
	SetDiscount(ctx context.Context, actorID, userID string, percent int) error
	AddStock(ctx context.Context, actorID, product, duration string, keys []string) (int, error)
	ClearStock(ctx context.Context, actorID, product, duration string) (bool, error)
}

type adminUseCaseImpl struct {
	ledger   LedgerRepository
	catalog  CatalogRepository
	stock    StockRepository
	history  HistoryRepository
	notifier AdminNotifier
	logger   *slog.Logger
}

func NewAdminCommands(
	ledger LedgerRepository,
	catalog CatalogRepository,
	stock StockRepository,
	history HistoryRepository,
	notifier AdminNotifier,
	logger *slog.Logger,
) AdminCommands {
	return &adminUseCaseImpl{
		ledger:   ledger,
		catalog:  catalog,
		stock:    stock,
		history:  history,
		notifier: notifier,
		logger:   logger,
	}
}

// AddProduct registers a product with its full duration list, replacing any
// existing list. Prices and stock for durations no longer listed are kept on
// disk but become unreachable through the purchase path.
func (u *adminUseCaseImpl) AddProduct(ctx context.Context, actorID, product string, durations []string) error {
	name, err := catalog.NewProductName(product)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidInput)
	}
	labels, err := catalog.NewDurationList(durations)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidInput)
	}

	raw := make([]string, len(labels))
	for i, l := range labels {
		raw[i] = l.String()
	}
	if err := u.catalog.SetDurations(ctx, name.String(), raw); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}

	u.notifier.Notify(ctx, NotifyEvent{
		Kind:  "product_added",
		Actor: actorID,
		Detail: map[string]any{
			"product":   name.String(),
			"durations": raw,
		},
	})
	return nil
}

func (u *adminUseCaseImpl) SetPrice(ctx context.Context, actorID, product, duration string, price decimal.Decimal) error {
	name, err := catalog.NewProductName(product)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidInput)
	}
	label, err := catalog.NewDurationLabel(duration)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidInput)
	}
	p, err := catalog.NewPrice(price)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidInput)
	}

	if err := u.catalog.SetPrice(ctx, name.String(), label.String(), p.Decimal()); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}

	u.notifier.Notify(ctx, NotifyEvent{
		Kind:  "price_set",
		Actor: actorID,
		Detail: map[string]any{
			"product":  name.String(),
			"duration": label.String(),
			"price":    p.Decimal().StringFixed(2),
		},
	})
	return nil
}

func (u *adminUseCaseImpl) AddBalance(ctx context.Context, actorID, userID string, amount decimal.Decimal) (decimal.Decimal, error) {
	updated, err := u.ledger.Update(ctx, userID, func(a *account.Account) error {
		return a.Credit(amount)
	})
	if err != nil {
		if isDomainErr(err) {
			return decimal.Zero, errs.Mark(err, errs.ErrInvalidInput)
		}
		return decimal.Zero, errs.Mark(err, errs.ErrStorageFailure)
	}

	u.appendHistory(ctx, userID, "Balance added: $"+amount.StringFixed(2))
	u.notifier.Notify(ctx, NotifyEvent{
		Kind:   "balance_added",
		UserID: userID,
		Actor:  actorID,
		Detail: map[string]any{
			"amount":      amount.StringFixed(2),
			"new_balance": updated.Balance().StringFixed(2),
		},
	})
	return updated.Balance(), nil
}

// RemoveBalance is a correction, not a charge: it clamps at zero rather than
// rejecting an amount larger than the balance.
func (u *adminUseCaseImpl) RemoveBalance(ctx context.Context, actorID, userID string, amount decimal.Decimal) (decimal.Decimal, error) {
	updated, err := u.ledger.Update(ctx, userID, func(a *account.Account) error {
		return a.Deduct(amount)
	})
	if err != nil {
		if isDomainErr(err) {
			return decimal.Zero, errs.Mark(err, errs.ErrInvalidInput)
		}
		return decimal.Zero, errs.Mark(err, errs.ErrStorageFailure)
	}

	u.appendHistory(ctx, userID, "Balance removed: $"+amount.StringFixed(2))
	u.notifier.Notify(ctx, NotifyEvent{
		Kind:   "balance_removed",
		UserID: userID,
		Actor:  actorID,
		Detail: map[string]any{
			"amount":      amount.StringFixed(2),
			"new_balance": updated.Balance().StringFixed(2),
		},
	})
	return updated.Balance(), nil
}

func (u *adminUseCaseImpl) SetDiscount(ctx context.Context, actorID, userID string, percent int) error {
	_, err := u.ledger.Update(ctx, userID, func(a *account.Account) error {
		return a.SetDiscount(percent)
	})
	if err != nil {
		if isDomainErr(err) {
			return errs.Mark(err, errs.ErrInvalidInput)
		}
		return errs.Mark(err, errs.ErrStorageFailure)
	}

	u.notifier.Notify(ctx, NotifyEvent{
		Kind:   "discount_set",
		UserID: userID,
		Actor:  actorID,
		Detail: map[string]any{"percent": percent},
	})
	return nil
}

// AddStock appends keys to a bucket's tail. The bucket does not need a
// catalog entry or price; stock loaded ahead of a product launch is valid.
func (u *adminUseCaseImpl) AddStock(ctx context.Context, actorID, product, duration string, keys []string) (int, error) {
	name, err := catalog.NewProductName(product)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrInvalidInput)
	}
	label, err := catalog.NewDurationLabel(duration)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrInvalidInput)
	}

	added, err := u.stock.Add(ctx, name.String(), label.String(), keys)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStorageFailure)
	}

	u.notifier.Notify(ctx, NotifyEvent{
		Kind:  "stock_added",
		Actor: actorID,
		Detail: map[string]any{
			"product":  name.String(),
			"duration": label.String(),
			"added":    added,
		},
	})
	return added, nil
}

func (u *adminUseCaseImpl) ClearStock(ctx context.Context, actorID, product, duration string) (bool, error) {
	name, err := catalog.NewProductName(product)
	if err != nil {
		return false, errs.Mark(err, errs.ErrInvalidInput)
	}
	label, err := catalog.NewDurationLabel(duration)
	if err != nil {
		return false, errs.Mark(err, errs.ErrInvalidInput)
	}

	existed, err := u.stock.Clear(ctx, name.String(), label.String())
	if err != nil {
		return false, errs.Mark(err, errs.ErrStorageFailure)
	}

	u.notifier.Notify(ctx, NotifyEvent{
		Kind:  "stock_cleared",
		Actor: actorID,
		Detail: map[string]any{
			"product":  name.String(),
			"duration": label.String(),
			"existed":  existed,
		},
	})
	return existed, nil
}

func (u *adminUseCaseImpl) appendHistory(ctx context.Context, userID, message string) {
	if err := u.history.Append(ctx, userID, message); err != nil {
		u.logger.Error("failed to append history", "user_id", userID, "error", err)
	}
}

func isDomainErr(err error) bool {
	return errors.Is(err, account.ErrNegativeAmount) ||
		errors.Is(err, account.ErrInvalidDiscount) ||
		errors.Is(err, account.ErrInvalidKeyCount)
}
