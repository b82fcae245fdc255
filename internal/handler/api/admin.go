package api

import (
	"errors"
	"net/http"

	reqdto "keyvend/internal/handler/dto/request"
	resdto "keyvend/internal/handler/dto/response"
	"keyvend/internal/handler/middleware"
	"keyvend/internal/pkg/errs"
	"keyvend/internal/usecase/commands"
	"keyvend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase   commands.AdminCommands
	catalogQueries queries.CatalogQueries
}

func NewAdminHandler(adminUseCase commands.AdminCommands, catalogQueries queries.CatalogQueries) *AdminHandler {
	return &AdminHandler{
		adminUseCase:   adminUseCase,
		catalogQueries: catalogQueries,
	}
}

func (h *AdminHandler) AddProduct(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.AddProduct(c.Request.Context(), actorID, req.Product, req.Durations); err != nil {
		writeAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "ok",
	})
}

func (h *AdminHandler) SetPrice(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SetPriceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.SetPrice(c.Request.Context(), actorID, req.Product, req.Duration, req.PriceDecimal()); err != nil {
		writeAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *AdminHandler) AddBalance(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BalanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	balance, err := h.adminUseCase.AddBalance(c.Request.Context(), actorID, req.UserID, req.AmountDecimal())
	if err != nil {
		writeAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BalanceResponse{
		UserID:     req.UserID,
		NewBalance: balance.StringFixed(2),
	})
}

func (h *AdminHandler) RemoveBalance(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BalanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	balance, err := h.adminUseCase.RemoveBalance(c.Request.Context(), actorID, req.UserID, req.AmountDecimal())
	if err != nil {
		writeAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BalanceResponse{
		UserID:     req.UserID,
		NewBalance: balance.StringFixed(2),
	})
}

func (h *AdminHandler) SetDiscount(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SetDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.SetDiscount(c.Request.Context(), actorID, req.UserID, *req.Percent); err != nil {
		writeAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *AdminHandler) AddStock(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddStockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	added, err := h.adminUseCase.AddStock(c.Request.Context(), actorID, req.Product, req.Duration, req.Keys)
	if err != nil {
		writeAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"added": added,
	})
}

func (h *AdminHandler) ClearStock(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ClearStockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	existed, err := h.adminUseCase.ClearStock(c.Request.Context(), actorID, req.Product, req.Duration)
	if err != nil {
		writeAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"existed": existed,
	})
}

func (h *AdminHandler) StockStatus(c *gin.Context) {
	view, err := h.catalogQueries.StockStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromStockStatusView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func writeAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
