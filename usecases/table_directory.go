package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/repositories"
	"github.com/coursedesk/coursedesk-backend/usecases/executor_factory"
)

const tableDirectoryCacheSize = 128

type tableDirectoryRepository interface {
	TableColumns(ctx context.Context, exec repositories.Executor, table string) (models.TableDescriptor, error)
}

// TableDirectory is the process-scoped registry of table descriptors.
// Descriptors are looked up lazily from the schema catalog and cached
// until Invalidate is called: a migration applied to a live process is
// not observed before that.
type TableDirectory struct {
	executorFactory executor_factory.ExecutorFactory
	repository      tableDirectoryRepository
	cache           *lru.Cache[string, models.TableDescriptor]
}

func NewTableDirectory(
	executorFactory executor_factory.ExecutorFactory,
	repository tableDirectoryRepository,
) *TableDirectory {
	cache, _ := lru.New[string, models.TableDescriptor](tableDirectoryCacheSize)
	return &TableDirectory{
		executorFactory: executorFactory,
		repository:      repository,
		cache:           cache,
	}
}

// ColumnsOf returns the descriptor for table. A table unknown to the
// schema catalog yields ErrUnknownTable; nothing is cached for it, so
// the table becomes visible as soon as it exists.
func (d *TableDirectory) ColumnsOf(ctx context.Context, table string) (models.TableDescriptor, error) {
	if descriptor, ok := d.cache.Get(table); ok {
		return descriptor, nil
	}

	descriptor, err := d.repository.TableColumns(ctx, d.executorFactory.NewExecutor(), table)
	if err != nil {
		return models.TableDescriptor{}, errors.Wrap(err, "schema lookup failed")
	}
	if len(descriptor.Columns) == 0 {
		return models.TableDescriptor{}, errors.Wrapf(models.ErrUnknownTable, "table %s", table)
	}

	d.cache.Add(table, descriptor)
	return descriptor, nil
}

// Whitelist reduces fields to the keys the table actually defines.
// Unknown keys are dropped silently so that clients may send
// denormalized payloads; an input reduced to nothing is an error.
func (d *TableDirectory) Whitelist(ctx context.Context, table string, fields map[string]any,
) (map[string]any, models.TableDescriptor, error) {
	descriptor, err := d.ColumnsOf(ctx, table)
	if err != nil {
		return nil, models.TableDescriptor{}, err
	}

	filtered := make(map[string]any, len(fields))
	for key, value := range fields {
		if descriptor.HasColumn(key) {
			filtered[key] = value
		}
	}
	if len(filtered) == 0 {
		return nil, models.TableDescriptor{}, errors.Wrapf(models.ErrNoValidFields, "table %s", table)
	}
	return filtered, descriptor, nil
}

// Invalidate drops every cached descriptor. Exposed on an
// administrative endpoint for use after a schema migration.
func (d *TableDirectory) Invalidate() {
	d.cache.Purge()
}
