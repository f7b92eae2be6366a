package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/usecases"
	"github.com/coursedesk/coursedesk-backend/utils"
)

// handleRefreshSchemaCache drops the cached table descriptors so the
// next lookup re-reads information_schema. Call it after a migration
// changes a table shape.
func handleRefreshSchemaCache(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		uc.TableDirectory().Invalidate()
		utils.LoggerFromContext(ctx).InfoContext(ctx, "schema cache invalidated")

		c.Status(http.StatusNoContent)
	}
}
