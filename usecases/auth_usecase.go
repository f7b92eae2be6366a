package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/repositories"
	"github.com/coursedesk/coursedesk-backend/usecases/executor_factory"
)

const bcryptCost = 10

type AuthUseCaseRepository interface {
	CreateUser(ctx context.Context, exec repositories.Executor,
		createUser models.CreateUser, passwordHash string) (models.User, error)
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (models.User, error)
	UserById(ctx context.Context, exec repositories.Executor, id int64) (models.User, error)
}

type sessionTokenEncoder interface {
	EncodeSessionToken(expirationTime time.Time, creds models.Credentials) (string, error)
}

type AuthUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      AuthUseCaseRepository
	sessionTokens   sessionTokenEncoder
	tokenLifetime   time.Duration
}

func (usecase *AuthUseCase) Register(ctx context.Context, createUser models.CreateUser) (models.User, error) {
	if createUser.Email == "" || createUser.Password == "" {
		return models.User{}, errors.Wrap(models.BadParameterError, "email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(createUser.Password), bcryptCost)
	if err != nil {
		return models.User{}, errors.Wrap(err, "error hashing password")
	}

	user, err := usecase.repository.CreateUser(ctx, usecase.executorFactory.NewExecutor(),
		createUser, string(hash))
	if err != nil {
		if repositories.IsUniqueViolationError(err) {
			return models.User{}, models.ConflictOnFieldError{Field: "email"}
		}
		return models.User{}, err
	}
	return user, nil
}

// Login deliberately answers the same error for an unknown email and a
// wrong password.
func (usecase *AuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := usecase.repository.UserByEmail(ctx, usecase.executorFactory.NewExecutor(), email)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return usecase.sessionTokens.EncodeSessionToken(
		time.Now().Add(usecase.tokenLifetime),
		models.Credentials{
			ActorId: user.Id,
			Role:    user.Role,
			Name:    user.Name,
		})
}

func (usecase *AuthUseCase) Profile(ctx context.Context, creds models.Credentials) (models.User, error) {
	user, err := usecase.repository.UserById(ctx, usecase.executorFactory.NewExecutor(), creds.ActorId)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}
