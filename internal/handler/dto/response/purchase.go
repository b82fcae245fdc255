package response

import (
	"time"

	"keyvend/internal/usecase/commands"

	"github.com/google/uuid"
)

type PurchaseResponse struct {
	Product         string   `json:"product"`
	Duration        string   `json:"duration"`
	Quantity        int      `json:"quantity"`
	Keys            []string `json:"keys"`
	UnitPrice       string   `json:"unitPrice"`
	Total           string   `json:"total"`
	DiscountPercent int      `json:"discountPercent"`
	NewBalance      string   `json:"newBalance"`
}

type QuoteResponse struct {
	QuoteID         uuid.UUID `json:"quoteId"`
	Product         string    `json:"product"`
	Duration        string    `json:"duration"`
	Quantity        int       `json:"quantity"`
	UnitPrice       string    `json:"unitPrice"`
	Total           string    `json:"total"`
	DiscountPercent int       `json:"discountPercent"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

func FromPurchaseResult(r *commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		Product:         r.Product,
		Duration:        r.Duration,
		Quantity:        r.Quantity,
		Keys:            r.Keys,
		UnitPrice:       r.UnitPrice.StringFixed(2),
		Total:           r.Total.StringFixed(2),
		DiscountPercent: r.Discount,
		NewBalance:      r.NewBalance.StringFixed(2),
	}
}

func FromQuoteResult(r *commands.QuoteResult) *QuoteResponse {
	return &QuoteResponse{
		QuoteID:         r.QuoteID,
		Product:         r.Product,
		Duration:        r.Duration,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice.StringFixed(2),
		Total:           r.Total.StringFixed(2),
		DiscountPercent: r.Discount,
		ExpiresAt:       r.ExpiresAt,
	}
}
