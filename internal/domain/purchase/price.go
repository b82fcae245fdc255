package purchase

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidDiscount = errors.New("discount must be between 0 and 100")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

var hundred = decimal.NewFromInt(100)

// DiscountedUnit applies a reseller's percentage discount to a list price.
// The result keeps full precision; rounding to 2 decimals happens only at
// the display edge.
func DiscountedUnit(listPrice decimal.Decimal, discountPercent int) (decimal.Decimal, error) {
	if listPrice.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	if discountPercent < 0 || discountPercent > 100 {
		return decimal.Zero, ErrInvalidDiscount
	}
	factor := hundred.Sub(decimal.NewFromInt(int64(discountPercent)))
	return listPrice.Mul(factor).Div(hundred), nil
}

// Pricing is a fully computed charge for one purchase request.
type Pricing struct {
	ListUnit        decimal.Decimal
	DiscountedUnit  decimal.Decimal
	Quantity        int
	DiscountPercent int
}

func NewPricing(listPrice decimal.Decimal, discountPercent, quantity int) (Pricing, error) {
	if quantity <= 0 {
		return Pricing{}, ErrInvalidQuantity
	}
	unit, err := DiscountedUnit(listPrice, discountPercent)
	if err != nil {
		return Pricing{}, err
	}
	return Pricing{
		ListUnit:        listPrice,
		DiscountedUnit:  unit,
		Quantity:        quantity,
		DiscountPercent: discountPercent,
	}, nil
}

func (p Pricing) Total() decimal.Decimal {
	return p.DiscountedUnit.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

func (p Pricing) ListTotal() decimal.Decimal {
	return p.ListUnit.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

func (p Pricing) Savings() decimal.Decimal {
	return p.ListTotal().Sub(p.Total())
}
