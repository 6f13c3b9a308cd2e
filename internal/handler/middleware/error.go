package middleware

import (
	"log/slog"
	"net/http"

	"cinema-checkout/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Form posts come from the checkout client, which reads plain text bodies
// only.
const plainInternalError = "internal server error"

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		writeInternalError(c)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				attrs := []any{"error", err, "path", c.Request.URL.Path}
				if id, ok := GetReservationID(c); ok {
					attrs = append(attrs, "reservation_id", id.String())
				}
				slog.Error("recovered from panic", attrs...)

				writeInternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func writeInternalError(c *gin.Context) {
	if c.ContentType() == binding.MIMEPOSTForm {
		c.String(http.StatusInternalServerError, plainInternalError)
		return
	}
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	c.JSON(http.StatusInternalServerError, resp)
}
