package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "keyvend/internal/handler/dto/response"
	"keyvend/internal/handler/middleware"
	"keyvend/internal/pkg/errs"
	"keyvend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountQueries queries.AccountQueries
	catalogQueries queries.CatalogQueries
}

func NewAccountHandler(accountQueries queries.AccountQueries, catalogQueries queries.CatalogQueries) *AccountHandler {
	return &AccountHandler{
		accountQueries: accountQueries,
		catalogQueries: catalogQueries,
	}
}

func (h *AccountHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.accountQueries.Profile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}

func (h *AccountHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	entries, err := h.accountQueries.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryEntries(entries))
}

func (h *AccountHandler) ListPrices(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.catalogQueries.ListPrices(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceListView(view))
}

func (h *AccountHandler) Estimate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	product := c.Query("product")
	duration := c.Query("duration")
	if product == "" || duration == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "product and duration are required",
		})
		return
	}

	quantity := 1
	if raw := c.Query("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid quantity",
			})
			return
		}
		quantity = parsed
	}

	view, err := h.catalogQueries.Estimate(c.Request.Context(), userID, product, duration, quantity)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product or duration not found",
			})
		case errors.Is(err, errs.ErrPriceNotSet):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No price set for this product",
			})
		case errors.Is(err, errs.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid quantity",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEstimateView(view))
}
