package api

import (
	"errors"
	"net/http"

	reqdto "keyvend/internal/handler/dto/request"
	resdto "keyvend/internal/handler/dto/response"
	"keyvend/internal/handler/middleware"
	"keyvend/internal/pkg/errs"
	"keyvend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	purchaseUseCase commands.PurchaseCommands
}

func NewPurchaseHandler(purchaseUseCase commands.PurchaseCommands) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
	}
}

func (h *PurchaseHandler) Purchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PurchaseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.purchaseUseCase.Purchase(c.Request.Context(), userID, req.Product, req.Duration, req.Quantity)
	if err != nil {
		writePurchaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchaseResult(result))
}

func (h *PurchaseHandler) CreateQuote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.purchaseUseCase.Quote(c.Request.Context(), userID, req.Product, req.Duration, req.Quantity)
	if err != nil {
		writePurchaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromQuoteResult(result))
}

func (h *PurchaseHandler) ConfirmQuote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quote ID format",
		})
		return
	}

	result, err := h.purchaseUseCase.Confirm(c.Request.Context(), userID, quoteID)
	if err != nil {
		writePurchaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchaseResult(result))
}

func (h *PurchaseHandler) CancelQuote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quote ID format",
		})
		return
	}

	if err := h.purchaseUseCase.Cancel(c.Request.Context(), userID, quoteID); err != nil {
		writePurchaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "canceled",
	})
}

// writePurchaseError maps usecase failures to HTTP. Detail-carrying errors
// surface their own messages so a rejected buyer sees the exact numbers.
func writePurchaseError(c *gin.Context, err error) {
	var quantityErr *commands.QuantityError
	var balanceErr *commands.InsufficientBalanceError
	var stockErr *commands.InsufficientStockError

	switch {
	case errors.As(err, &quantityErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": quantityErr.Error(),
		})
	case errors.Is(err, errs.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product or duration not found",
		})
	case errors.Is(err, errs.ErrPriceNotSet):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No price set for this product",
		})
	case errors.As(err, &balanceErr):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": balanceErr.Error(),
		})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error": stockErr.Error(),
		})
	case errors.Is(err, errs.ErrPurchaseBusy):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Purchase in progress, try again",
		})
	case errors.Is(err, errs.ErrQuoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Quote not found",
		})
	case errors.Is(err, errs.ErrQuoteExpired):
		c.JSON(http.StatusGone, gin.H{
			"error": "Quote expired",
		})
	case errors.Is(err, errs.ErrQuoteForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Quote belongs to another user",
		})
	case errors.Is(err, errs.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
