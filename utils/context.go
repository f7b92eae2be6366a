package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/models"
)

type contextKey int

const (
	contextKeyLogger contextKey = iota
	contextKeyCredentials
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(contextKeyLogger).(*slog.Logger)
	if !found {
		// fall back to a default logger rather than panic in a log call
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctxWithLogger := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctxWithLogger)
	}
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, contextKeyCredentials, creds)
}

func CredentialsFromCtx(ctx context.Context) (models.Credentials, bool) {
	creds, found := ctx.Value(contextKeyCredentials).(models.Credentials)
	return creds, found
}
