package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/coursedesk/coursedesk-backend/mocks"
	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/utils"
)

type OrderingUsecaseTestSuite struct {
	suite.Suite
	executorFactory    *mocks.ExecutorFactory
	repository         *mocks.CourseDbRepository
	executor           *mocks.Executor
	transaction        *mocks.Transaction
	transactionFactory *mocks.TransactionFactory

	credentials models.Credentials
	descriptor  models.TableDescriptor

	ctx context.Context
}

func (suite *OrderingUsecaseTestSuite) SetupTest() {
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.repository = new(mocks.CourseDbRepository)
	suite.executor = new(mocks.Executor)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}

	suite.credentials = models.Credentials{ActorId: 42, Role: models.RoleAdmin, Name: "alice"}
	suite.descriptor = models.TableDescriptor{
		Name: "types",
		Columns: map[string]struct{}{
			"id":       {},
			"name":     {},
			"position": {},
		},
	}

	suite.ctx = utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text"))
}

func (suite *OrderingUsecaseTestSuite) makeUsecase() *OrderingUseCase {
	return &OrderingUseCase{
		credentials:        suite.credentials,
		transactionFactory: suite.transactionFactory,
		tableDirectory:     NewTableDirectory(suite.executorFactory, suite.repository),
		protectedTables:    ProtectedTables,
		repository:         suite.repository,
	}
}

func (suite *OrderingUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.executorFactory.AssertExpectations(t)
	suite.repository.AssertExpectations(t)
	suite.executor.AssertExpectations(t)
	suite.transaction.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
}

func (suite *OrderingUsecaseTestSuite) expectDescriptorLookup(table string, descriptor models.TableDescriptor) {
	suite.executorFactory.On("NewExecutor").Return(suite.executor).Once()
	suite.repository.On("TableColumns", suite.ctx, suite.executor, table).
		Return(descriptor, nil).Once()
}

func (suite *OrderingUsecaseTestSuite) TestAppendRecord_nominal() {
	usecase := suite.makeUsecase()
	suite.expectDescriptorLookup("types", suite.descriptor)

	created := models.Record{"id": int64(4), "name": "Milonga", "position": 4}
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	// client-supplied position must not reach the insert
	suite.repository.On("InsertRecordAppended", suite.ctx, suite.transaction,
		"types", map[string]any{"name": "Milonga"}, "position").
		Return(created, nil)
	suite.repository.On("CreateAuditEntry", suite.ctx, suite.transaction,
		matchAuditEntry(models.AuditOperationInsert, "types", 4)).Return(nil)

	record, err := usecase.AppendRecord(suite.ctx, "types", map[string]any{
		"name":     "Milonga",
		"position": 1,
	})
	suite.Require().NoError(err)
	suite.Require().Equal(created, record)

	suite.AssertExpectations()
}

func (suite *OrderingUsecaseTestSuite) TestAppendRecord_not_orderable() {
	usecase := suite.makeUsecase()
	suite.expectDescriptorLookup("reviews", models.TableDescriptor{
		Name:    "reviews",
		Columns: map[string]struct{}{"id": {}, "comment": {}},
	})

	_, err := usecase.AppendRecord(suite.ctx, "reviews", map[string]any{"comment": "great"})
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, models.BadParameterError)

	suite.AssertExpectations()
}

func (suite *OrderingUsecaseTestSuite) TestAppendRecord_protected_table() {
	usecase := suite.makeUsecase()

	_, err := usecase.AppendRecord(suite.ctx, "users", map[string]any{"email": "x@example.com"})
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, models.ErrTableNotWritable)

	suite.AssertExpectations()
}

func (suite *OrderingUsecaseTestSuite) TestReorder_nominal() {
	usecase := suite.makeUsecase()
	suite.expectDescriptorLookup("types", suite.descriptor)

	assignments := []models.PositionAssignment{
		{Id: 1, Position: 3},
		{Id: 2, Position: 1},
		{Id: 3, Position: 2},
	}

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	for _, assignment := range assignments {
		suite.repository.On("GetRecordById", suite.ctx, suite.transaction,
			"types", []string{"id", "position"}, assignment.Id).
			Return(models.Record{"id": assignment.Id, "position": int(assignment.Id)}, nil)
		suite.repository.On("UpdatePosition", suite.ctx, suite.transaction,
			"types", assignment).Return(nil)
		suite.repository.On("CreateAuditEntry", suite.ctx, suite.transaction,
			matchAuditEntry(models.AuditOperationUpdate, "types", assignment.Id)).Return(nil)
	}

	err := usecase.Reorder(suite.ctx, "types", assignments)
	suite.Require().NoError(err)

	suite.AssertExpectations()
}

func (suite *OrderingUsecaseTestSuite) TestReorder_empty() {
	usecase := suite.makeUsecase()
	suite.expectDescriptorLookup("types", suite.descriptor)

	err := usecase.Reorder(suite.ctx, "types", nil)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, models.BadParameterError)

	suite.AssertExpectations()
}

func (suite *OrderingUsecaseTestSuite) TestReorder_missing_row_aborts_batch() {
	usecase := suite.makeUsecase()
	suite.expectDescriptorLookup("types", suite.descriptor)

	notFound := errors.Wrap(models.NotFoundError, "no row with id 9 in types")
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetRecordById", suite.ctx, suite.transaction,
		"types", []string{"id", "position"}, int64(9)).
		Return(nil, notFound)

	err := usecase.Reorder(suite.ctx, "types", []models.PositionAssignment{
		{Id: 9, Position: 1},
		{Id: 1, Position: 2},
	})
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, models.NotFoundError)

	// the batch stops at the first failure
	suite.repository.AssertNotCalled(suite.T(), "UpdatePosition",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	suite.AssertExpectations()
}

func TestOrderingUsecase(t *testing.T) {
	suite.Run(t, new(OrderingUsecaseTestSuite))
}
