package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/coursedesk/coursedesk-backend/models"
)

// ExecBuilder builds and executes a statement that returns no rows.
func ExecBuilder(ctx context.Context, exec Executor, builder squirrel.Sqlizer) error {
	_, err := ExecBuilderRowsAffected(ctx, exec, builder)
	return err
}

func ExecBuilderRowsAffected(ctx context.Context, exec Executor, builder squirrel.Sqlizer) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	tag, err := exec.Exec(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "error executing sql query")
	}
	return tag.RowsAffected(), nil
}

func ForEachRow(ctx context.Context, exec Executor, query squirrel.Sqlizer, fn func(row pgx.CollectableRow) error) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return errors.Wrap(err, "error executing sql query")
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}

	return errors.Wrap(rows.Err(), "error iterating over rows")
}

// SqlToListOfModels executes the query and maps every row to a model
// through the DBModel adapter.
func SqlToListOfModels[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Model, error) {
		dbModel, err := pgx.RowToStructByName[DBModel](row)
		if err != nil {
			var zeroModel Model
			return zeroModel, errors.Wrap(err, fmt.Sprintf("error scanning row to struct %T", dbModel))
		}
		return adapter(dbModel)
	})
}

// SqlToOptionalModel returns nil if the query matches no row.
func SqlToOptionalModel[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	modelsList, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}

	if len(modelsList) == 0 {
		return nil, nil
	}
	if len(modelsList) > 1 {
		return nil, errors.New(fmt.Sprintf("expected 1 or 0 results, got %d rows", len(modelsList)))
	}
	model := modelsList[0]
	return &model, nil
}

// SqlToModel returns a NotFoundError if the query matches no row.
func SqlToModel[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	model, err := SqlToOptionalModel(ctx, exec, query, adapter)
	var zeroModel Model
	if err != nil {
		return zeroModel, err
	}
	if model == nil {
		return zeroModel, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zeroModel))
	}
	return *model, nil
}

// SqlToRecords maps rows of a table only known at runtime: every row
// becomes a column-name keyed map, whatever its column set is.
func SqlToRecords(ctx context.Context, exec Executor, query squirrel.Sqlizer) ([]models.Record, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Record, error) {
		record, err := pgx.RowToMap(row)
		return models.Record(record), errors.Wrap(err, "error scanning row to record")
	})
}

// SqlToOptionalRecord returns nil if the query matches no row.
func SqlToOptionalRecord(ctx context.Context, exec Executor, query squirrel.Sqlizer) (models.Record, error) {
	records, err := SqlToRecords(ctx, exec, query)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}
	if len(records) > 1 {
		return nil, errors.New(fmt.Sprintf("expected 1 or 0 results, got %d rows", len(records)))
	}
	return records[0], nil
}

// SqlToRecord returns a NotFoundError if the query matches no row.
func SqlToRecord(ctx context.Context, exec Executor, query squirrel.Sqlizer) (models.Record, error) {
	record, err := SqlToOptionalRecord(ctx, exec, query)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.Wrap(models.NotFoundError, "found no matching record")
	}
	return record, nil
}
