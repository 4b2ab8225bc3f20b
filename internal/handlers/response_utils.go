package handlers

import (
	"github.com/gin-gonic/gin"

	"orders-etl-service/internal/models"
)

// RespondWithError sends a standardized JSON error response.
func RespondWithError(c *gin.Context, httpStatus int, appErrorCode string, message string, details interface{}) {
	errResp := models.APIError{
		Code:    appErrorCode,
		Message: message,
		Details: details,
	}
	c.JSON(httpStatus, errResp)
}

// preview returns at most the first five records, for the response body.
// Responses carry counts for the full result; the body is a sample.
func preview[T any](records []T) []T {
	if records == nil {
		return []T{}
	}
	if len(records) > 5 {
		return records[:5]
	}
	return records
}
