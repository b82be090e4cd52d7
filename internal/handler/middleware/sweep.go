package middleware

import (
	"log/slog"

	"minibook/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ExpirySweep lazily removes stale pending sales before each authorized
// operation, so the ledger never serves a sale that outlived its TTL. A
// sweep failure is logged and the request proceeds; the sweep will run
// again on the next request.
func ExpirySweep(sales usecase.SaleUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := sales.ExpirePendingSales(c.Request.Context())
		if err != nil {
			slog.Warn("expiry sweep failed", "error", err)
		} else if count > 0 {
			slog.Info("expired pending sales removed", "count", count)
		}
		c.Next()
	}
}
