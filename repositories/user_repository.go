package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/repositories/dbmodels"
)

func (repo CourseDbRepository) CreateUser(ctx context.Context, exec Executor,
	createUser models.CreateUser, passwordHash string,
) (models.User, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_USERS).
		Columns(
			"name",
			"email",
			"password",
			"role",
		).
		Values(
			createUser.Name,
			createUser.Email,
			passwordHash,
			string(models.RoleUser),
		).
		Suffix("RETURNING " + sqlColumnList(dbmodels.SelectUserColumns))

	return SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo CourseDbRepository) UserById(ctx context.Context, exec Executor, id int64) (models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumns...).
		From(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"id": id})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo CourseDbRepository) UserByEmail(ctx context.Context, exec Executor, email string) (models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumns...).
		From(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"email": email})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
}
