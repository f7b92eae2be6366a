package api

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/dto"
	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/pure_utils"
	"github.com/coursedesk/coursedesk-backend/usecases"
)

func classLinkParams(c *gin.Context) (models.ClassInstructor, error) {
	classId, err := strconv.ParseInt(c.Param("class_id"), 10, 64)
	if err != nil {
		return models.ClassInstructor{}, errors.Wrap(models.BadParameterError,
			"class id must be an integer")
	}
	instructorId, err := strconv.ParseInt(c.Param("instructor_id"), 10, 64)
	if err != nil {
		return models.ClassInstructor{}, errors.Wrap(models.BadParameterError,
			"instructor id must be an integer")
	}
	return models.ClassInstructor{ClassId: classId, InstructorId: instructorId}, nil
}

func handlePostClass(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateClassBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(c, uc).NewClassUseCase()
		class, links, err := usecase.CreateClassWithInstructors(ctx, models.CreateClassInput{
			Fields:        body.Fields,
			InstructorIds: body.InstructorIds,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"class":       class,
			"instructors": pure_utils.Map(links, dto.AdaptClassInstructorDto),
		})
	}
}

func handleListClassInstructors(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		classId, err := strconv.ParseInt(c.Param("class_id"), 10, 64)
		if err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, "class id must be an integer"))
			return
		}

		usecase := usecasesWithCreds(c, uc).NewClassUseCase()
		links, err := usecase.ListInstructorsOfClass(ctx, classId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"instructors": pure_utils.Map(links, dto.AdaptClassInstructorDto),
		})
	}
}

func handleLinkInstructor(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		link, err := classLinkParams(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(c, uc).NewClassUseCase()
		created, err := usecase.LinkInstructor(ctx, link)
		if presentError(ctx, c, err) {
			return
		}

		// nil means the pair already existed
		if created == nil {
			c.JSON(http.StatusOK, gin.H{"link": dto.AdaptClassInstructorDto(link)})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"link": dto.AdaptClassInstructorDto(*created)})
	}
}

func handleUnlinkInstructor(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		link, err := classLinkParams(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(c, uc).NewClassUseCase()
		removed, err := usecase.UnlinkInstructor(ctx, link)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"link": dto.AdaptClassInstructorDto(removed)})
	}
}
