package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/coursedesk/coursedesk-backend/models"
)

// Generic single-row mutations against a table only known at runtime.
//
// Table and column names are interpolated into the statement because
// placeholders cannot bind identifiers. Callers guarantee that both
// are drawn from the introspected column set of an existing table,
// never from raw request text. Values are always bound positionally.

func sortedFieldColumns(fields map[string]any) []string {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

func (repo CourseDbRepository) InsertRecord(ctx context.Context, exec Executor,
	table string, fields map[string]any,
) (models.Record, error) {
	columns := sortedFieldColumns(fields)
	values := make([]any, len(columns))
	for i, column := range columns {
		values[i] = fields[column]
	}

	query := NewQueryBuilder().
		Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING *")

	return SqlToRecord(ctx, exec, query)
}

// InsertRecordAppended inserts with positionColumn set to the current
// max + 1, computed inside the statement. Concurrent appenders are
// serialized by the unique constraint on the position column: the
// loser surfaces as a unique violation instead of a duplicate
// position.
func (repo CourseDbRepository) InsertRecordAppended(ctx context.Context, exec Executor,
	table string, fields map[string]any, positionColumn string,
) (models.Record, error) {
	columns := sortedFieldColumns(fields)
	values := make([]any, len(columns))
	for i, column := range columns {
		values[i] = fields[column]
	}

	columns = append(columns, positionColumn)
	values = append(values, squirrel.Expr(fmt.Sprintf(
		"(SELECT COALESCE(MAX(%s), 0) + 1 FROM %s)", positionColumn, table)))

	query := NewQueryBuilder().
		Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING *")

	return SqlToRecord(ctx, exec, query)
}

func (repo CourseDbRepository) UpdateRecordById(ctx context.Context, exec Executor,
	table string, id int64, fields map[string]any,
) (models.Record, error) {
	query := NewQueryBuilder().Update(table)
	for _, column := range sortedFieldColumns(fields) {
		query = query.Set(column, fields[column])
	}
	query = query.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *")

	record, err := SqlToOptionalRecord(ctx, exec, query)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.Wrap(models.NotFoundError,
			fmt.Sprintf("no row with id %d in %s", id, table))
	}
	return record, nil
}

func (repo CourseDbRepository) DeleteRecordById(ctx context.Context, exec Executor,
	table string, id int64,
) (models.Record, error) {
	query := NewQueryBuilder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *")

	record, err := SqlToOptionalRecord(ctx, exec, query)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.Wrap(models.NotFoundError,
			fmt.Sprintf("no row with id %d in %s", id, table))
	}
	return record, nil
}

func (repo CourseDbRepository) GetRecordById(ctx context.Context, exec Executor,
	table string, columns []string, id int64,
) (models.Record, error) {
	query := NewQueryBuilder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	return SqlToRecord(ctx, exec, query)
}

func (repo CourseDbRepository) ListRecords(ctx context.Context, exec Executor,
	table string, columns []string,
) ([]models.Record, error) {
	query := NewQueryBuilder().
		Select(columns...).
		From(table).
		OrderBy("id")

	return SqlToRecords(ctx, exec, query)
}
