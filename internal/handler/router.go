package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"keyvend/internal/handler/api"
	"keyvend/internal/handler/middleware"
	"keyvend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	purchaseHandler *api.PurchaseHandler,
	accountHandler *api.AccountHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, purchaseHandler, accountHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	purchaseHandler *api.PurchaseHandler,
	accountHandler *api.AccountHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/account", Handler: accountHandler.Me},
			{Method: http.MethodGet, Path: "/account/history", Handler: accountHandler.History},
			{Method: http.MethodGet, Path: "/prices", Handler: accountHandler.ListPrices},
			{Method: http.MethodGet, Path: "/estimate", Handler: accountHandler.Estimate},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/purchases", Handler: purchaseHandler.Purchase},
			{Method: http.MethodPost, Path: "/quotes", Handler: purchaseHandler.CreateQuote},
			{Method: http.MethodPost, Path: "/quotes/:id/confirm", Handler: purchaseHandler.ConfirmQuote},
			{Method: http.MethodPost, Path: "/quotes/:id/cancel", Handler: purchaseHandler.CancelQuote},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/products", Handler: adminHandler.AddProduct},
				{Method: http.MethodPost, Path: "/prices", Handler: adminHandler.SetPrice},
				{Method: http.MethodPost, Path: "/balance/add", Handler: adminHandler.AddBalance},
				{Method: http.MethodPost, Path: "/balance/remove", Handler: adminHandler.RemoveBalance},
				{Method: http.MethodPost, Path: "/discount", Handler: adminHandler.SetDiscount},
				{Method: http.MethodPost, Path: "/stock/add", Handler: adminHandler.AddStock},
				{Method: http.MethodPost, Path: "/stock/clear", Handler: adminHandler.ClearStock},
				{Method: http.MethodGet, Path: "/stock/status", Handler: adminHandler.StockStatus},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
