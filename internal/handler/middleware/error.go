package middleware

import (
	"log/slog"

	"minibook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the last-resort envelope writer. Handlers normally write
// their own failure envelope; anything that slips through with an attached
// error and no body becomes a generic internal failure.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) > 0 {
			slog.Error("unhandled request error", "errors", c.Errors.String(), "path", c.Request.URL.Path)
			c.JSON(httperr.Internal.Status, httperr.Response{
				ErrMsg:  httperr.Internal.Message,
				ErrCode: httperr.Internal.Code,
			})
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(httperr.Internal.Status, httperr.Response{
					ErrMsg:  httperr.Internal.Message,
					ErrCode: httperr.Internal.Code,
				})
			}
		}()
		c.Next()
	}
}
