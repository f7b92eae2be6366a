package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursedesk/coursedesk-backend/mocks"
	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/utils"
)

type AuthUsecaseTestSuite struct {
	suite.Suite
	executorFactory *mocks.ExecutorFactory
	repository      *mocks.CourseDbRepository
	executor        *mocks.Executor
	sessionTokens   *mocks.SessionTokenEncoder

	user models.User
	ctx  context.Context
}

func (suite *AuthUsecaseTestSuite) SetupTest() {
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.repository = new(mocks.CourseDbRepository)
	suite.executor = new(mocks.Executor)
	suite.sessionTokens = new(mocks.SessionTokenEncoder)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.user = models.User{
		Id:           42,
		Name:         "alice",
		Email:        "alice@example.com",
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	}
	suite.ctx = utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text"))
}

func (suite *AuthUsecaseTestSuite) makeUsecase() *AuthUseCase {
	return &AuthUseCase{
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		sessionTokens:   suite.sessionTokens,
		tokenLifetime:   time.Hour,
	}
}

func (suite *AuthUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.executorFactory.AssertExpectations(t)
	suite.repository.AssertExpectations(t)
	suite.sessionTokens.AssertExpectations(t)
}

func (suite *AuthUsecaseTestSuite) TestRegister_nominal() {
	usecase := suite.makeUsecase()

	createUser := models.CreateUser{Name: "alice", Email: "alice@example.com", Password: "correct horse"}
	suite.executorFactory.On("NewExecutor").Return(suite.executor).Once()
	suite.repository.On("CreateUser", suite.ctx, suite.executor, createUser,
		mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct horse")) == nil
		})).
		Return(suite.user, nil)

	user, err := usecase.Register(suite.ctx, createUser)
	suite.Require().NoError(err)
	suite.Require().Equal(int64(42), user.Id)

	suite.AssertExpectations()
}

func (suite *AuthUsecaseTestSuite) TestRegister_missing_password() {
	usecase := suite.makeUsecase()

	_, err := usecase.Register(suite.ctx, models.CreateUser{Email: "alice@example.com"})
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, models.BadParameterError)

	suite.AssertExpectations()
}

func (suite *AuthUsecaseTestSuite) TestRegister_duplicate_email() {
	usecase := suite.makeUsecase()

	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "users_email_key",
	}
	suite.executorFactory.On("NewExecutor").Return(suite.executor).Once()
	suite.repository.On("CreateUser", suite.ctx, suite.executor, mock.Anything, mock.Anything).
		Return(models.User{}, pgErr)

	_, err := usecase.Register(suite.ctx, models.CreateUser{
		Name: "alice", Email: "alice@example.com", Password: "correct horse",
	})
	suite.Require().Error(err)

	var conflict models.ConflictOnFieldError
	suite.Require().ErrorAs(err, &conflict)
	suite.Require().Equal("email", conflict.Field)

	suite.AssertExpectations()
}

func (suite *AuthUsecaseTestSuite) TestLogin_nominal() {
	usecase := suite.makeUsecase()

	suite.executorFactory.On("NewExecutor").Return(suite.executor).Once()
	suite.repository.On("UserByEmail", suite.ctx, suite.executor, "alice@example.com").
		Return(suite.user, nil)
	suite.sessionTokens.On("EncodeSessionToken", mock.Anything,
		models.Credentials{ActorId: 42, Role: models.RoleUser, Name: "alice"}).
		Return("a.jwt.token", nil)

	token, err := usecase.Login(suite.ctx, "alice@example.com", "correct horse")
	suite.Require().NoError(err)
	suite.Require().Equal("a.jwt.token", token)

	suite.AssertExpectations()
}

func (suite *AuthUsecaseTestSuite) TestLogin_wrong_password() {
	usecase := suite.makeUsecase()

	suite.executorFactory.On("NewExecutor").Return(suite.executor).Once()
	suite.repository.On("UserByEmail", suite.ctx, suite.executor, "alice@example.com").
		Return(suite.user, nil)

	_, err := usecase.Login(suite.ctx, "alice@example.com", "wrong")
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, models.ErrInvalidCredentials)

	suite.AssertExpectations()
}

func (suite *AuthUsecaseTestSuite) TestLogin_unknown_email_same_error() {
	usecase := suite.makeUsecase()

	suite.executorFactory.On("NewExecutor").Return(suite.executor).Once()
	suite.repository.On("UserByEmail", suite.ctx, suite.executor, "nobody@example.com").
		Return(models.User{}, models.ErrUnknownUser)

	_, err := usecase.Login(suite.ctx, "nobody@example.com", "whatever")
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, models.ErrInvalidCredentials,
		"unknown email and wrong password must be indistinguishable")

	suite.AssertExpectations()
}

func (suite *AuthUsecaseTestSuite) TestProfile_strips_password_hash() {
	usecase := suite.makeUsecase()

	suite.executorFactory.On("NewExecutor").Return(suite.executor).Once()
	suite.repository.On("UserById", suite.ctx, suite.executor, int64(42)).
		Return(suite.user, nil)

	user, err := usecase.Profile(suite.ctx, models.Credentials{ActorId: 42})
	suite.Require().NoError(err)
	suite.Require().Empty(user.PasswordHash)
	suite.Require().Equal("alice@example.com", user.Email)

	suite.AssertExpectations()
}

func TestAuthUsecase(t *testing.T) {
	suite.Run(t, new(AuthUsecaseTestSuite))
}
