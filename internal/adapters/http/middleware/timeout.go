package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// SimpleTimeout puts a deadline on the request context and otherwise stays
// out of the way. Handlers and the sink adapters behind them are all
// context-aware, so cancellation propagates naturally; there is no second
// goroutine racing to write a timeout response.
func SimpleTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
