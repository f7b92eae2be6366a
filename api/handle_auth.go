package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/dto"
	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/usecases"
	"github.com/coursedesk/coursedesk-backend/utils"
)

func handleRegister(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateUserBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewAuthUseCase()
		user, err := usecase.Register(ctx, models.CreateUser{
			Name:     body.Name,
			Email:    body.Email,
			Password: body.Password,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handleLogin(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.LoginBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewAuthUseCase()
		token, err := usecase.Login(ctx, body.Email, body.Password)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": token})
	}
}

func handleProfile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, _ := utils.CredentialsFromCtx(ctx)

		usecase := uc.NewAuthUseCase()
		user, err := usecase.Profile(ctx, creds)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}
