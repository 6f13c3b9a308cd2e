package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"cinema-checkout/internal/handler/api"
	"cinema-checkout/internal/handler/middleware"
	"cinema-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine                *gin.Engine
	Config                config.Config
	Logger                *slog.Logger
	Redis                 *redis.Client
	ReservationHandler    *api.ReservationHandler
	CheckoutHandler       *api.CheckoutHandler
	ReservationMiddleware *middleware.ReservationMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.Redis)
	setupRoutes(p.Engine, p.ReservationHandler, p.CheckoutHandler, p.ReservationMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, rdb *redis.Client) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, cfg.RateLimit))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.NewRateLimiter(cfg.RateLimit, rdb, logger))
}

// Checkout endpoints live at the root because clients address them by
// bare name relative to the authority base URL.
func setupRoutes(engine *gin.Engine, reservationHandler *api.ReservationHandler, checkoutHandler *api.CheckoutHandler, reservationMiddleware *middleware.ReservationMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/reservations", Handler: reservationHandler.Open},
	})

	checkout := engine.Group("")
	checkout.Use(reservationMiddleware.RequireReservation())
	{
		addRoutes(checkout, []route{
			{Method: http.MethodPost, Path: "/update-seat-status", Handler: checkoutHandler.UpdateSeatStatus},
			{Method: http.MethodPost, Path: "/update-age-discount", Handler: checkoutHandler.UpdateAgeDiscount},
			{Method: http.MethodPost, Path: "/apply-coupon", Handler: checkoutHandler.ApplyCoupon},
			{Method: http.MethodPost, Path: "/buy", Handler: checkoutHandler.Buy},
			{Method: http.MethodPost, Path: "/get-checkout-info", Handler: checkoutHandler.GetCheckoutInfo},
			{Method: http.MethodPost, Path: "/get-reservation", Handler: reservationHandler.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
