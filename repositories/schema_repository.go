package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/coursedesk/coursedesk-backend/models"
)

// TableColumns looks up the live column set of a table from the schema
// catalog. An unknown table is not an error here: it yields an empty
// descriptor, which callers must treat as "invalid table" rather than
// "valid but fieldless".
func (repo CourseDbRepository) TableColumns(ctx context.Context, exec Executor, table string) (models.TableDescriptor, error) {
	query := NewQueryBuilder().
		Select("column_name").
		From("information_schema.columns").
		Where(squirrel.Eq{"table_schema": "public"}).
		Where(squirrel.Eq{"table_name": table}).
		OrderBy("ordinal_position")

	descriptor := models.TableDescriptor{
		Name:    table,
		Columns: make(map[string]struct{}),
	}
	err := ForEachRow(ctx, exec, query, func(row pgx.CollectableRow) error {
		var column string
		if err := row.Scan(&column); err != nil {
			return err
		}
		descriptor.Columns[column] = struct{}{}
		return nil
	})
	if err != nil {
		return models.TableDescriptor{}, err
	}
	return descriptor, nil
}
