package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/coursedesk/coursedesk-backend/api"
	"github.com/coursedesk/coursedesk-backend/infra"
	"github.com/coursedesk/coursedesk-backend/repositories"
	"github.com/coursedesk/coursedesk-backend/usecases"
	"github.com/coursedesk/coursedesk-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:           utils.GetEnv("ENV", "development"),
		AppName:       "coursedesk-backend",
		Port:          utils.GetRequiredEnv[string]("PORT"),
		TokenLifetime: time.Duration(utils.GetEnv("TOKEN_LIFETIME_MINUTE", 60*24)) * time.Minute,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           "coursedesk",
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	jwtSigningKey := utils.GetRequiredEnv[string]("AUTHENTICATION_JWT_SIGNING_KEY")

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		return errors.Wrap(err, "failed to create connection pool")
	}

	repos := repositories.NewRepositories(
		repositories.NewExecutorGetter(pool),
		[]byte(jwtSigningKey),
	)
	uc := usecases.NewUsecases(repos, apiConfig.TokenLifetime)

	router := api.InitRouter(ctx, apiConfig, uc)
	server := api.NewServer(router, apiConfig.Port)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app", "error", err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while shutting down the server")
	}

	return nil
}
