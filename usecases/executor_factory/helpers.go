package executor_factory

import (
	"context"

	"github.com/coursedesk/coursedesk-backend/repositories"
)

// TransactionReturnValue wraps a transaction callback that produces a
// value. On error the transaction is rolled back and the zero value is
// returned alongside the error.
func TransactionReturnValue[ReturnType any](
	ctx context.Context,
	factory TransactionFactory,
	fn func(tx repositories.Transaction) (ReturnType, error),
) (ReturnType, error) {
	var value ReturnType
	transactionErr := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, transactionErr
}
