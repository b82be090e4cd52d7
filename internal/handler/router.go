package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minibook/internal/handler/api"
	"minibook/internal/handler/middleware"
	"minibook/internal/pkg/config"
	"minibook/internal/usecase"
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
	bookHandler *api.BookHandler,
	saleHandler *api.SaleHandler,
	imageHandler *api.ImageHandler,
	authMiddleware *middleware.AuthMiddleware,
	saleUseCase usecase.SaleUseCase,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookHandler, saleHandler, imageHandler, authMiddleware, saleUseCase)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookHandler *api.BookHandler,
	saleHandler *api.SaleHandler,
	imageHandler *api.ImageHandler,
	authMiddleware *middleware.AuthMiddleware,
	saleUseCase usecase.SaleUseCase,
) {
	engine.GET("/health", healthCheck)

	addRoutes(engine.Group(""), []route{
		{Method: http.MethodGet, Path: "/book/ls", Handler: bookHandler.ListBooks},
		{Method: http.MethodGet, Path: "/img/:res", Handler: imageHandler.GetImage},
	})

	// The sweep runs before authorization so stale pending sales vanish no
	// matter which gated operation comes in, matching the lazy-expiry model.
	sweep := middleware.ExpirySweep(saleUseCase)

	books := engine.Group("/book")
	books.Use(sweep, authMiddleware.RequireAdmin())
	{
		addRoutes(books, []route{
			{Method: http.MethodPost, Path: "/new", Handler: bookHandler.NewBook},
			{Method: http.MethodPut, Path: "/:id", Handler: bookHandler.UpdateBook},
			{Method: http.MethodDelete, Path: "/:id", Handler: bookHandler.DeleteBook},
		})
	}

	sales := engine.Group("/sale")
	sales.Use(sweep, authMiddleware.RequireUser())
	{
		addRoutes(sales, []route{
			{Method: http.MethodGet, Path: "/ls", Handler: saleHandler.ListSales},
			{Method: http.MethodPost, Path: "/new", Handler: saleHandler.NewSale},
			{Method: http.MethodPut, Path: "/confirm", Handler: saleHandler.ConfirmSale},
			{Method: http.MethodDelete, Path: "/cancel", Handler: saleHandler.CancelSale},
		})
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
