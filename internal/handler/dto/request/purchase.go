package request

type PurchaseRequest struct {
	Product  string `json:"product" binding:"required"`
	Duration string `json:"duration" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

type QuoteRequest struct {
	Product  string `json:"product" binding:"required"`
	Duration string `json:"duration" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}
