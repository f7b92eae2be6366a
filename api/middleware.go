package api

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/usecases"
	"github.com/coursedesk/coursedesk-backend/utils"
)

func parseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "missing Authorization header")
	}
	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed Authorization header")
	}
	return token, nil
}

// credentialsMiddleware validates the session token and stores the
// resulting credentials in the request context. Everything behind it
// can assume an authenticated actor.
func credentialsMiddleware(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := parseAuthorizationBearerHeader(c.Request.Header)
		if presentError(ctx, c, err) {
			c.Abort()
			return
		}

		creds, err := uc.Repositories.SessionTokens.ValidateSessionToken(token)
		if presentError(ctx, c, err) {
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(utils.StoreCredentialsInContext(ctx, creds))
		c.Next()
	}
}

func adminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found || !creds.IsAdmin() {
			presentError(ctx, c, errors.Wrap(models.ForbiddenError, "admin role required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func usecasesWithCreds(c *gin.Context, uc usecases.Usecases) *usecases.UsecasesWithCreds {
	creds, _ := utils.CredentialsFromCtx(c.Request.Context())
	return &usecases.UsecasesWithCreds{
		Usecases:    uc,
		Credentials: creds,
	}
}
