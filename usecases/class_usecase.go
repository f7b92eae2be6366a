package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/repositories"
	"github.com/coursedesk/coursedesk-backend/usecases/executor_factory"
)

const (
	tableClasses          = "classes"
	tableInstructors      = "instructors"
	tableClassInstructors = "class_instructors"
)

type ClassUseCaseRepository interface {
	InsertRecord(ctx context.Context, exec repositories.Executor,
		table string, fields map[string]any) (models.Record, error)
	GetRecordById(ctx context.Context, exec repositories.Executor,
		table string, columns []string, id int64) (models.Record, error)
	InsertClassInstructor(ctx context.Context, exec repositories.Executor,
		link models.ClassInstructor) (*models.ClassInstructor, error)
	DeleteClassInstructor(ctx context.Context, exec repositories.Executor,
		link models.ClassInstructor) (models.ClassInstructor, error)
	ListClassInstructors(ctx context.Context, exec repositories.Executor,
		classId int64) ([]models.ClassInstructor, error)
	CreateAuditEntry(ctx context.Context, exec repositories.Executor,
		entry models.AuditEntry) error
}

// ClassUseCase owns the composite class writes: a class row plus its
// instructor links commit together or not at all.
type ClassUseCase struct {
	credentials        models.Credentials
	transactionFactory executor_factory.TransactionFactory
	executorFactory    executor_factory.ExecutorFactory
	tableDirectory     *TableDirectory
	repository         ClassUseCaseRepository
}

func (usecase *ClassUseCase) CreateClassWithInstructors(ctx context.Context,
	input models.CreateClassInput,
) (models.Record, []models.ClassInstructor, error) {
	filtered, _, err := usecase.tableDirectory.Whitelist(ctx, tableClasses, input.Fields)
	if err != nil {
		return nil, nil, err
	}
	instructorColumns, err := usecase.instructorColumns(ctx)
	if err != nil {
		return nil, nil, err
	}

	type result struct {
		class models.Record
		links []models.ClassInstructor
	}

	res, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (result, error) {
			class, err := usecase.repository.InsertRecord(ctx, tx, tableClasses, filtered)
			if err != nil {
				return result{}, adaptMutationError(err, tableClasses)
			}
			if err := auditMutation(ctx, tx, usecase.repository, usecase.credentials,
				models.AuditOperationInsert, tableClasses, class, nil, class); err != nil {
				return result{}, err
			}

			classId, _ := class.Id()
			links := make([]models.ClassInstructor, 0, len(input.InstructorIds))
			for _, instructorId := range input.InstructorIds {
				link, err := usecase.linkInTransaction(ctx, tx, instructorColumns,
					models.ClassInstructor{ClassId: classId, InstructorId: instructorId})
				if err != nil {
					return result{}, err
				}
				if link != nil {
					links = append(links, *link)
				}
			}
			return result{class: class, links: links}, nil
		})
	if err != nil {
		return nil, nil, err
	}
	return res.class, res.links, nil
}

// LinkInstructor adds an instructor to a class. Linking an existing
// pair returns nil without error, so retries are harmless.
func (usecase *ClassUseCase) LinkInstructor(ctx context.Context,
	link models.ClassInstructor,
) (*models.ClassInstructor, error) {
	instructorColumns, err := usecase.instructorColumns(ctx)
	if err != nil {
		return nil, err
	}
	classColumns, err := usecase.classColumns(ctx)
	if err != nil {
		return nil, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (*models.ClassInstructor, error) {
			if _, err := usecase.repository.GetRecordById(ctx, tx,
				tableClasses, classColumns, link.ClassId); err != nil {
				return nil, errors.Wrap(err, "class to link does not exist")
			}
			return usecase.linkInTransaction(ctx, tx, instructorColumns, link)
		})
}

func (usecase *ClassUseCase) UnlinkInstructor(ctx context.Context,
	link models.ClassInstructor,
) (models.ClassInstructor, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ClassInstructor, error) {
			deleted, err := usecase.repository.DeleteClassInstructor(ctx, tx, link)
			if err != nil {
				return models.ClassInstructor{}, err
			}

			// Link rows have no id of their own: the snapshot carries
			// the pair and the entry's record id stays zero, so it never
			// collides with the classes id space.
			linkRecord := models.Record{
				"class_id":      deleted.ClassId,
				"instructor_id": deleted.InstructorId,
			}
			if err := auditMutation(ctx, tx, usecase.repository, usecase.credentials,
				models.AuditOperationDelete, tableClassInstructors,
				linkRecord, linkRecord, nil); err != nil {
				return models.ClassInstructor{}, err
			}
			return deleted, nil
		})
}

func (usecase *ClassUseCase) ListInstructorsOfClass(ctx context.Context, classId int64) ([]models.ClassInstructor, error) {
	return usecase.repository.ListClassInstructors(ctx, usecase.executorFactory.NewExecutor(), classId)
}

// linkInTransaction checks that the instructor exists, then inserts
// the link. The existence check surfaces a NotFoundError instead of a
// foreign key violation, keeping the error taxonomy stable.
func (usecase *ClassUseCase) linkInTransaction(ctx context.Context, tx repositories.Transaction,
	instructorColumns []string, link models.ClassInstructor,
) (*models.ClassInstructor, error) {
	if _, err := usecase.repository.GetRecordById(ctx, tx,
		tableInstructors, instructorColumns, link.InstructorId); err != nil {
		return nil, errors.Wrapf(err, "instructor %d to link does not exist", link.InstructorId)
	}

	created, err := usecase.repository.InsertClassInstructor(ctx, tx, link)
	if err != nil {
		return nil, err
	}
	if created == nil {
		// pair already linked, nothing mutated, nothing to audit
		return nil, nil
	}

	linkRecord := models.Record{
		"class_id":      created.ClassId,
		"instructor_id": created.InstructorId,
	}
	if err := auditMutation(ctx, tx, usecase.repository, usecase.credentials,
		models.AuditOperationInsert, tableClassInstructors,
		linkRecord, nil, linkRecord); err != nil {
		return nil, err
	}
	return created, nil
}

func (usecase *ClassUseCase) instructorColumns(ctx context.Context) ([]string, error) {
	descriptor, err := usecase.tableDirectory.ColumnsOf(ctx, tableInstructors)
	if err != nil {
		return nil, err
	}
	return descriptor.ColumnList(), nil
}

func (usecase *ClassUseCase) classColumns(ctx context.Context) ([]string, error) {
	descriptor, err := usecase.tableDirectory.ColumnsOf(ctx, tableClasses)
	if err != nil {
		return nil, err
	}
	return descriptor.ColumnList(), nil
}
