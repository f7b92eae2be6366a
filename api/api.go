package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/usecases"
	"github.com/coursedesk/coursedesk-backend/utils"
)

type Configuration struct {
	Env           string
	AppName       string
	Port          string
	TokenLifetime time.Duration
}

func corsOption(env string) cors.Config {
	allowedOrigins := []string{"*"}
	if env == "development" {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodOptions, http.MethodHead, http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func InitRouter(ctx context.Context, conf Configuration, uc usecases.Usecases) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsOption(conf.Env)))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))
	r.Use(loggingMiddleware())

	addRoutes(r, conf, uc)

	return r
}

func NewServer(router *gin.Engine, port string) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
		Handler:      router,
	}
}

func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "/liveness" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		utils.LoggerFromContext(ctx).InfoContext(ctx, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
