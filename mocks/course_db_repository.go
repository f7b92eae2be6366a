package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/repositories"
)

type CourseDbRepository struct {
	mock.Mock
}

func (m *CourseDbRepository) TableColumns(ctx context.Context, exec repositories.Executor,
	table string,
) (models.TableDescriptor, error) {
	args := m.Called(ctx, exec, table)
	return args.Get(0).(models.TableDescriptor), args.Error(1)
}

func (m *CourseDbRepository) InsertRecord(ctx context.Context, exec repositories.Executor,
	table string, fields map[string]any,
) (models.Record, error) {
	args := m.Called(ctx, exec, table, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Record), args.Error(1)
}

func (m *CourseDbRepository) InsertRecordAppended(ctx context.Context, exec repositories.Executor,
	table string, fields map[string]any, positionColumn string,
) (models.Record, error) {
	args := m.Called(ctx, exec, table, fields, positionColumn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Record), args.Error(1)
}

func (m *CourseDbRepository) UpdateRecordById(ctx context.Context, exec repositories.Executor,
	table string, id int64, fields map[string]any,
) (models.Record, error) {
	args := m.Called(ctx, exec, table, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Record), args.Error(1)
}

func (m *CourseDbRepository) DeleteRecordById(ctx context.Context, exec repositories.Executor,
	table string, id int64,
) (models.Record, error) {
	args := m.Called(ctx, exec, table, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Record), args.Error(1)
}

func (m *CourseDbRepository) GetRecordById(ctx context.Context, exec repositories.Executor,
	table string, columns []string, id int64,
) (models.Record, error) {
	args := m.Called(ctx, exec, table, columns, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Record), args.Error(1)
}

func (m *CourseDbRepository) ListRecords(ctx context.Context, exec repositories.Executor,
	table string, columns []string,
) ([]models.Record, error) {
	args := m.Called(ctx, exec, table, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *CourseDbRepository) UpdatePosition(ctx context.Context, exec repositories.Executor,
	table string, assignment models.PositionAssignment,
) error {
	args := m.Called(ctx, exec, table, assignment)
	return args.Error(0)
}

func (m *CourseDbRepository) InsertClassInstructor(ctx context.Context, exec repositories.Executor,
	link models.ClassInstructor,
) (*models.ClassInstructor, error) {
	args := m.Called(ctx, exec, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClassInstructor), args.Error(1)
}

func (m *CourseDbRepository) DeleteClassInstructor(ctx context.Context, exec repositories.Executor,
	link models.ClassInstructor,
) (models.ClassInstructor, error) {
	args := m.Called(ctx, exec, link)
	return args.Get(0).(models.ClassInstructor), args.Error(1)
}

func (m *CourseDbRepository) ListClassInstructors(ctx context.Context, exec repositories.Executor,
	classId int64,
) ([]models.ClassInstructor, error) {
	args := m.Called(ctx, exec, classId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClassInstructor), args.Error(1)
}

func (m *CourseDbRepository) CreateAuditEntry(ctx context.Context, exec repositories.Executor,
	entry models.AuditEntry,
) error {
	args := m.Called(ctx, exec, entry)
	return args.Error(0)
}

func (m *CourseDbRepository) ListAuditEntries(ctx context.Context, exec repositories.Executor,
	filters models.AuditEntryFilters,
) ([]models.AuditEntry, error) {
	args := m.Called(ctx, exec, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AuditEntry), args.Error(1)
}

func (m *CourseDbRepository) CreateUser(ctx context.Context, exec repositories.Executor,
	createUser models.CreateUser, passwordHash string,
) (models.User, error) {
	args := m.Called(ctx, exec, createUser, passwordHash)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *CourseDbRepository) UserByEmail(ctx context.Context, exec repositories.Executor,
	email string,
) (models.User, error) {
	args := m.Called(ctx, exec, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *CourseDbRepository) UserById(ctx context.Context, exec repositories.Executor,
	id int64,
) (models.User, error) {
	args := m.Called(ctx, exec, id)
	return args.Get(0).(models.User), args.Error(1)
}
