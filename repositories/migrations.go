package repositories

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/coursedesk/coursedesk-backend/infra"
	"github.com/coursedesk/coursedesk-backend/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Migrater struct {
	pgConfig infra.PgConfig
}

func NewMigrater(pgConfig infra.PgConfig) Migrater {
	return Migrater{pgConfig: pgConfig}
}

func (m Migrater) Run(ctx context.Context) error {
	db, err := sql.Open("pgx", m.pgConfig.GetConnectionString())
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("unable to ping database: %w", err)
	}

	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "running migrations")

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
