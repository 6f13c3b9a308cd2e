package middleware

import (
	"log/slog"
	"slices"

	"cinema-checkout/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Browser clients read these to back off when throttled.
var rateLimitHeaders = []string{HeaderRateLimitLimit, HeaderRateLimitRemaining, HeaderRetryAfter}

// NewCORSMiddleware returns a no-op handler when no origin is allowed, since
// cors.New panics on that configuration.
func NewCORSMiddleware(cfg config.CORSConfig, rl config.RateLimitConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		slog.Warn("CORS disabled: no allowed origins configured")
		return func(c *gin.Context) { c.Next() }
	}

	exposed := slices.Clone(cfg.ExposeHeaders)
	if rl.Enabled() {
		for _, h := range rateLimitHeaders {
			if !slices.Contains(exposed, h) {
				exposed = append(exposed, h)
			}
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "ExposeHeaders", exposed)
	return cors.New(corsCfg)
}
