package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/repositories/dbmodels"
)

// InsertClassInstructor links an instructor to a class. Linking an
// already-linked pair is a no-op: it returns nil instead of a row, so
// "add instructor to class" stays safe to retry.
func (repo CourseDbRepository) InsertClassInstructor(ctx context.Context, exec Executor,
	link models.ClassInstructor,
) (*models.ClassInstructor, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_CLASS_INSTRUCTORS).
		Columns("class_id", "instructor_id").
		Values(link.ClassId, link.InstructorId).
		Suffix("ON CONFLICT (class_id, instructor_id) DO NOTHING").
		Suffix("RETURNING class_id, instructor_id")

	created, err := SqlToOptionalModel(ctx, exec, query, dbmodels.AdaptClassInstructor)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (repo CourseDbRepository) DeleteClassInstructor(ctx context.Context, exec Executor,
	link models.ClassInstructor,
) (models.ClassInstructor, error) {
	query := NewQueryBuilder().
		Delete(dbmodels.TABLE_CLASS_INSTRUCTORS).
		Where(squirrel.Eq{"class_id": link.ClassId}).
		Where(squirrel.Eq{"instructor_id": link.InstructorId}).
		Suffix("RETURNING class_id, instructor_id")

	deleted, err := SqlToOptionalModel(ctx, exec, query, dbmodels.AdaptClassInstructor)
	if err != nil {
		return models.ClassInstructor{}, err
	}
	if deleted == nil {
		return models.ClassInstructor{}, models.ErrLinkNotFound
	}
	return *deleted, nil
}

func (repo CourseDbRepository) ListClassInstructors(ctx context.Context, exec Executor,
	classId int64,
) ([]models.ClassInstructor, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectClassInstructorColumns...).
		From(dbmodels.TABLE_CLASS_INSTRUCTORS).
		Where(squirrel.Eq{"class_id": classId}).
		OrderBy("instructor_id")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptClassInstructor)
}
