package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhlegal/intake-service/internal/domain"
	"github.com/mhlegal/intake-service/internal/platform/logging"
)

// MapDomainError maps a domain error to an HTTP status code and error code.
// Validation failures are the caller's fault; everything else is reported as
// a generic server error so internals never leak.
func MapDomainError(err error) (int, string) {
	code := ErrorCodeServerError
	if domain.IsValidation(err) {
		code = ErrorCodeInvalidInput
	}

	return HTTPStatusFromCode(code), code
}

// HandleError writes the failure envelope for a domain error.
// Server errors are logged with full detail before the sanitized response
// goes out.
func HandleError(c *gin.Context, err error) {
	status, code := MapDomainError(err)

	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("request failed",
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(status, NewErrorResponse(code))
}
