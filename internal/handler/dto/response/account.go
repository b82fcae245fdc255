package response

import (
	"keyvend/internal/usecase/queries"
)

type AccountResponse struct {
	UserID          string `json:"userId"`
	Balance         string `json:"balance"`
	DiscountPercent int    `json:"discountPercent"`
	TotalKeys       int    `json:"totalKeys"`
}

type HistoryResponse struct {
	Entries []string `json:"entries"`
}

func FromAccountView(v *queries.AccountView) *AccountResponse {
	return &AccountResponse{
		UserID:          v.UserID,
		Balance:         v.Balance.StringFixed(2),
		DiscountPercent: v.Discount,
		TotalKeys:       v.TotalKeys,
	}
}

func FromHistoryEntries(entries []queries.HistoryEntry) *HistoryResponse {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Raw
	}
	return &HistoryResponse{Entries: lines}
}

type BalanceResponse struct {
	UserID     string `json:"userId"`
	NewBalance string `json:"newBalance"`
}
