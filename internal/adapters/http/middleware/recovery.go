package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/mhlegal/intake-service/internal/adapters/http/dto"
	"github.com/mhlegal/intake-service/internal/platform/logging"
)

// Recovery converts handler panics into the standard failure envelope.
// The panic value and stack trace go to the log; the caller only sees
// SERVER_ERROR. Must sit first in the chain so it covers everything
// registered after it.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				ctxLogger := logging.FromContext(c.Request.Context())

				var traceID string
				if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
					traceID = span.SpanContext().TraceID().String()
				}

				ctxLogger.Error("panic recovered",
					slog.Any("error", r),
					slog.String("stack", string(stack)),
					slog.String("path", c.Request.URL.Path),
					slog.String("method", c.Request.Method),
					slog.String("trace_id", traceID),
				)

				// If the handler already wrote a partial response there is
				// nothing sensible left to send.
				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeServerError))
				} else {
					c.Abort()
				}
			}
		}()

		c.Next()
	}
}
