package response

import (
	"time"

	"keyvend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PriceRowResponse struct {
	Product         string `json:"product"`
	Duration        string `json:"duration"`
	ListPrice       string `json:"listPrice"`
	DiscountedPrice string `json:"discountedPrice"`
	InStock         int    `json:"inStock"`
}

type PriceListResponse struct {
	Rows            []PriceRowResponse `json:"rows"`
	DiscountPercent int                `json:"discountPercent"`
	GeneratedAt     time.Time          `json:"generatedAt"`
}

type StockRowResponse struct {
	Product  string `json:"product"`
	Duration string `json:"duration"`
	Count    int    `json:"count"`
}

type StockStatusResponse struct {
	Rows        []StockRowResponse `json:"rows"`
	TotalKeys   int                `json:"totalKeys"`
	GeneratedAt time.Time          `json:"generatedAt"`
}

type EstimateResponse struct {
	Product         string `json:"product"`
	Duration        string `json:"duration"`
	Quantity        int    `json:"quantity"`
	ListUnit        string `json:"listUnit"`
	DiscountedUnit  string `json:"discountedUnit"`
	Total           string `json:"total"`
	DiscountPercent int    `json:"discountPercent"`
	Affordable      bool   `json:"affordable"`
	InStock         int    `json:"inStock"`
}

func FromPriceListView(v *queries.PriceListView) *PriceListResponse {
	rows := make([]PriceRowResponse, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = PriceRowResponse{
			Product:         r.Product,
			Duration:        r.Duration,
			ListPrice:       r.ListPrice.StringFixed(2),
			DiscountedPrice: r.DiscountedPrice.StringFixed(2),
			InStock:         r.InStock,
		}
	}
	return &PriceListResponse{
		Rows:            rows,
		DiscountPercent: v.DiscountPercent,
		GeneratedAt:     v.GeneratedAt,
	}
}

func FromStockStatusView(v *queries.StockStatusView) (*StockStatusResponse, error) {
	resp := &StockStatusResponse{
		TotalKeys:   v.TotalKeys,
		GeneratedAt: v.GeneratedAt,
	}
	if err := copier.Copy(&resp.Rows, v.Rows); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromEstimateView(v *queries.EstimateView) *EstimateResponse {
	return &EstimateResponse{
		Product:         v.Product,
		Duration:        v.Duration,
		Quantity:        v.Quantity,
		ListUnit:        v.ListUnit.StringFixed(2),
		DiscountedUnit:  v.DiscountedUnit.StringFixed(2),
		Total:           v.Total.StringFixed(2),
		DiscountPercent: v.DiscountPercent,
		Affordable:      v.Affordable,
		InStock:         v.InStock,
	}
}
