package dbmodels

import (
	"time"

	"github.com/coursedesk/coursedesk-backend/models"
)

type DbUser struct {
	Id           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumns = []string{
	"id",
	"name",
	"email",
	"password",
	"role",
	"created_at",
}

func AdaptUser(db DbUser) (models.User, error) {
	return models.User{
		Id:           db.Id,
		Name:         db.Name,
		Email:        db.Email,
		Role:         models.UserRole(db.Role),
		CreatedAt:    db.CreatedAt,
		PasswordHash: db.PasswordHash,
	}, nil
}
