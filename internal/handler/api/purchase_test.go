//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"keyvend/internal/handler/api"
	"keyvend/internal/pkg/errs"
	"keyvend/internal/usecase/commands"
	commandsmock "keyvend/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	handler      *api.PurchaseHandler
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", "42")
		c.Set("user_role", "member")
		c.Next()
	}

	s.router.POST("/purchases", authMiddleware, s.handler.Purchase)
	s.router.POST("/quotes", authMiddleware, s.handler.CreateQuote)
	s.router.POST("/quotes/:id/confirm", authMiddleware, s.handler.ConfirmQuote)
	s.router.POST("/quotes/:id/cancel", authMiddleware, s.handler.CancelQuote)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func purchaseResult() *commands.PurchaseResult {
	return &commands.PurchaseResult{
		Product:    "ValorantPro",
		Duration:   "1Day",
		Quantity:   2,
		Keys:       []string{"KEY-A", "KEY-B"},
		UnitPrice:  decimal.RequireFromString("5.00"),
		Total:      decimal.RequireFromString("10.00"),
		Discount:   0,
		NewBalance: decimal.RequireFromString("0.00"),
	}
}

func (s *PurchaseHandlerTestSuite) TestPurchase() {
	body := gin.H{"product": "ValorantPro", "duration": "1Day", "quantity": 2}

	s.Run("success: returns 200 with keys and totals", func() {
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), "42", "ValorantPro", "1Day", 2).
			Return(purchaseResult(), nil).Times(1)

		rec := s.perform(http.MethodPost, "/purchases", body)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"KEY-A"`)
		s.Contains(rec.Body.String(), `"10.00"`)
	})

	s.Run("missing body: returns 400", func() {
		rec := s.perform(http.MethodPost, "/purchases", gin.H{"product": "ValorantPro"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("no token: returns 401", func() {
		var buf bytes.Buffer
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
		req := httptest.NewRequest(http.MethodPost, "/purchases", &buf)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("insufficient balance: returns 402 with amounts", func() {
		err := errs.Mark(
			&commands.InsufficientBalanceError{
				Need: decimal.RequireFromString("10.00"),
				Have: decimal.RequireFromString("9.99"),
			},
			errs.ErrInsufficientBalance,
		)
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), "42", "ValorantPro", "1Day", 2).
			Return(nil, err).Times(1)

		rec := s.perform(http.MethodPost, "/purchases", body)

		s.Equal(http.StatusPaymentRequired, rec.Code)
		s.Contains(rec.Body.String(), "need $10.00, have $9.99")
	})

	s.Run("insufficient stock: returns 409 with counts", func() {
		err := errs.Mark(
			&commands.InsufficientStockError{Requested: 2, Available: 1},
			errs.ErrInsufficientStock,
		)
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), "42", "ValorantPro", "1Day", 2).
			Return(nil, err).Times(1)

		rec := s.perform(http.MethodPost, "/purchases", body)

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "requested 2, available 1")
	})

	s.Run("unknown product: returns 404", func() {
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), "42", "ValorantPro", "1Day", 2).
			Return(nil, errs.ErrProductNotFound).Times(1)

		rec := s.perform(http.MethodPost, "/purchases", body)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("busy: returns 409", func() {
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), "42", "ValorantPro", "1Day", 2).
			Return(nil, errs.ErrPurchaseBusy).Times(1)

		rec := s.perform(http.MethodPost, "/purchases", body)
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "try again")
	})
}

func (s *PurchaseHandlerTestSuite) TestCreateQuote() {
	body := gin.H{"product": "ValorantPro", "duration": "1Day", "quantity": 2}

	s.Run("success: returns 201 with quote id", func() {
		quoteID := uuid.New()
		s.mockCommands.EXPECT().
			Quote(gomock.Any(), "42", "ValorantPro", "1Day", 2).
			Return(&commands.QuoteResult{
				QuoteID:   quoteID,
				Product:   "ValorantPro",
				Duration:  "1Day",
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("5.00"),
				Total:     decimal.RequireFromString("10.00"),
				ExpiresAt: time.Date(2025, 6, 1, 12, 2, 0, 0, time.UTC),
			}, nil).Times(1)

		rec := s.perform(http.MethodPost, "/quotes", body)

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), quoteID.String())
	})

	s.Run("quantity error: returns 400 with bounds", func() {
		err := errs.Mark(
			&commands.QuantityError{Requested: 99, Min: 1, Max: 10},
			errs.ErrQuantityOutOfRange,
		)
		s.mockCommands.EXPECT().
			Quote(gomock.Any(), "42", "ValorantPro", "1Day", 2).
			Return(nil, err).Times(1)

		rec := s.perform(http.MethodPost, "/quotes", body)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "between 1 and 10")
	})
}

func (s *PurchaseHandlerTestSuite) TestConfirmQuote() {
	quoteID := uuid.New()

	s.Run("success: returns 200 with keys", func() {
		s.mockCommands.EXPECT().
			Confirm(gomock.Any(), "42", quoteID).
			Return(purchaseResult(), nil).Times(1)

		rec := s.perform(http.MethodPost, "/quotes/"+quoteID.String()+"/confirm", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"KEY-B"`)
	})

	s.Run("invalid id format: returns 400", func() {
		rec := s.perform(http.MethodPost, "/quotes/not-a-uuid/confirm", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("expired: returns 410", func() {
		s.mockCommands.EXPECT().
			Confirm(gomock.Any(), "42", quoteID).
			Return(nil, errs.ErrQuoteExpired).Times(1)

		rec := s.perform(http.MethodPost, "/quotes/"+quoteID.String()+"/confirm", nil)
		s.Equal(http.StatusGone, rec.Code)
	})

	s.Run("foreign requester: returns 403", func() {
		s.mockCommands.EXPECT().
			Confirm(gomock.Any(), "42", quoteID).
			Return(nil, errs.ErrQuoteForbidden).Times(1)

		rec := s.perform(http.MethodPost, "/quotes/"+quoteID.String()+"/confirm", nil)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("unknown quote: returns 404", func() {
		s.mockCommands.EXPECT().
			Confirm(gomock.Any(), "42", quoteID).
			Return(nil, errs.ErrQuoteNotFound).Times(1)

		rec := s.perform(http.MethodPost, "/quotes/"+quoteID.String()+"/confirm", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *PurchaseHandlerTestSuite) TestCancelQuote() {
	quoteID := uuid.New()

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), "42", quoteID).
			Return(nil).Times(1)

		rec := s.perform(http.MethodPost, "/quotes/"+quoteID.String()+"/cancel", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "canceled")
	})

	s.Run("unknown quote: returns 404", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), "42", quoteID).
			Return(errs.ErrQuoteNotFound).Times(1)

		rec := s.perform(http.MethodPost, "/quotes/"+quoteID.String()+"/cancel", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
