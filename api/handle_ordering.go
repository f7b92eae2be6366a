package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/usecases"
)

func handleAppendRecord(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var fields map[string]any
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(c, uc).NewOrderingUseCase()
		record, err := usecase.AppendRecord(ctx, c.Param("table"), fields)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"record": record})
	}
}

func handleReorder(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var assignments []models.PositionAssignment
		if err := c.ShouldBindJSON(&assignments); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(c, uc).NewOrderingUseCase()
		if err := usecase.Reorder(ctx, c.Param("table"), assignments); presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
