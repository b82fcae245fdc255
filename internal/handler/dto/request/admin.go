package request

import (
	"github.com/shopspring/decimal"
)

type AddProductRequest struct {
	Product   string   `json:"product" binding:"required"`
	Durations []string `json:"durations" binding:"required"`
}

type SetPriceRequest struct {
	Product  string  `json:"product" binding:"required"`
	Duration string  `json:"duration" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
}

func (r SetPriceRequest) PriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(r.Price)
}

type BalanceRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

func (r BalanceRequest) AmountDecimal() decimal.Decimal {
	return decimal.NewFromFloat(r.Amount)
}

type SetDiscountRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Percent *int   `json:"percent" binding:"required"`
}

type AddStockRequest struct {
	Product  string   `json:"product" binding:"required"`
	Duration string   `json:"duration" binding:"required"`
	Keys     []string `json:"keys" binding:"required"`
}

type ClearStockRequest struct {
	Product  string `json:"product" binding:"required"`
	Duration string `json:"duration" binding:"required"`
}
