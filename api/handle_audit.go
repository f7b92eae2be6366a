package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/dto"
	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/pure_utils"
	"github.com/coursedesk/coursedesk-backend/usecases"
)

func handleListAuditEntries(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var filters dto.AuditEntryFilters
		if err := c.ShouldBindQuery(&filters); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(c, uc).NewAuditUseCase()
		entries, err := usecase.ListAuditEntries(ctx, models.AuditEntryFilters{
			Table:    filters.Table,
			RecordId: filters.RecordId,
			ActorId:  filters.ActorId,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"audit_entries": pure_utils.Map(entries, dto.AdaptAuditEntryDto),
		})
	}
}
