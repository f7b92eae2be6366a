package api

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/usecases"
)

func recordIdParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("record_id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(models.BadParameterError, "record id must be an integer")
	}
	return id, nil
}

func handleListRecords(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(c, uc).NewRecordUseCase()
		records, err := usecase.ListRecords(ctx, c.Param("table"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"records": records})
	}
}

func handleGetRecord(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := recordIdParam(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(c, uc).NewRecordUseCase()
		record, err := usecase.GetRecord(ctx, c.Param("table"), id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"record": record})
	}
}

func handleCreateRecord(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var fields map[string]any
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(c, uc).NewRecordUseCase()
		record, err := usecase.CreateRecord(ctx, c.Param("table"), fields)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"record": record})
	}
}

func handlePatchRecord(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := recordIdParam(c)
		if presentError(ctx, c, err) {
			return
		}

		var fields map[string]any
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(c, uc).NewRecordUseCase()
		record, err := usecase.UpdateRecord(ctx, c.Param("table"), id, fields)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"record": record})
	}
}

func handleDeleteRecord(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := recordIdParam(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(c, uc).NewRecordUseCase()
		record, err := usecase.DeleteRecord(ctx, c.Param("table"), id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"record": record})
	}
}
