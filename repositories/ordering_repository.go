package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/coursedesk/coursedesk-backend/models"
)

// UpdatePosition sets the position of one row. The renumberer issues
// one of these per assignment, all inside a single transaction.
func (repo CourseDbRepository) UpdatePosition(ctx context.Context, exec Executor,
	table string, assignment models.PositionAssignment,
) error {
	query := NewQueryBuilder().
		Update(table).
		Set("position", assignment.Position).
		Where(squirrel.Eq{"id": assignment.Id})

	rowsAffected, err := ExecBuilderRowsAffected(ctx, exec, query)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrap(models.NotFoundError,
			fmt.Sprintf("no row with id %d in %s", assignment.Id, table))
	}
	return nil
}
