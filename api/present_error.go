package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/utils"
)

// presentError maps the error taxonomy to status codes and a stable
// JSON error body. Anything outside the taxonomy is logged with full
// detail server-side and surfaced as a generic 500.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var conflictOnField models.ConflictOnFieldError

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &conflictOnField):
		c.JSON(http.StatusConflict, gin.H{
			"error": conflictOnField.Error(),
			"field": conflictOnField.Field,
		})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error",
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	return true
}
