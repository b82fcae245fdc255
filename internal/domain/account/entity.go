package account

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidDiscount     = errors.New("discount must be between 0 and 100")
	ErrInvalidKeyCount     = errors.New("key count cannot be negative")
)

// Account is a reseller's ledger entry: a stored balance, a percentage
// discount applied to every purchase, and a lifetime count of keys issued.
// Accounts are created on first read and never deleted.
type Account struct {
	balance   decimal.Decimal
	discount  int
	totalKeys int
}

func New() Account {
	return Account{balance: decimal.Zero}
}

func Reconstruct(balance decimal.Decimal, discount, totalKeys int) (Account, error) {
	if balance.IsNegative() {
		return Account{}, ErrNegativeAmount
	}
	if discount < 0 || discount > 100 {
		return Account{}, ErrInvalidDiscount
	}
	if totalKeys < 0 {
		return Account{}, ErrInvalidKeyCount
	}
	return Account{balance: balance, discount: discount, totalKeys: totalKeys}, nil
}

func (a Account) Balance() decimal.Decimal { return a.balance }
func (a Account) Discount() int            { return a.discount }
func (a Account) TotalKeys() int           { return a.totalKeys }

func (a Account) CanAfford(total decimal.Decimal) bool {
	return a.balance.GreaterThanOrEqual(total)
}

func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Debit removes a purchase charge. It rejects a debit that would drive the
// balance negative: purchases are always preceded by a sufficiency check and
// must never overdraw.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if a.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Deduct is the admin-correction variant of Debit: it clamps at zero instead
// of rejecting. The asymmetry with Debit is intentional (admin corrections vs
// customer-facing guarantees).
func (a *Account) Deduct(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	a.balance = a.balance.Sub(amount)
	if a.balance.IsNegative() {
		a.balance = decimal.Zero
	}
	return nil
}

func (a *Account) SetDiscount(percent int) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidDiscount
	}
	a.discount = percent
	return nil
}

// RecordIssued bumps the lifetime key counter; it only ever grows.
func (a *Account) RecordIssued(quantity int) error {
	if quantity < 0 {
		return ErrInvalidKeyCount
	}
	a.totalKeys += quantity
	return nil
}
