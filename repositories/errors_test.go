package repositories

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolationError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	assert.True(t, IsUniqueViolationError(pgErr))
	assert.True(t, IsUniqueViolationError(errors.Wrap(pgErr, "wrapped")))
	assert.False(t, IsUniqueViolationError(errors.New("not a pg error")))
	assert.False(t, IsUniqueViolationError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
}

func TestUniqueViolationField(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		table      string
		expected   string
	}{
		{"default constraint name", "instructors_name_key", "instructors", "name"},
		{"users email", "users_email_key", "users", "email"},
		{"multi word column", "types_position_key", "types", "position"},
		{"wrong table prefix", "instructors_name_key", "classes", ""},
		{"custom constraint name", "my_custom_constraint", "instructors", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: tt.constraint,
			}
			assert.Equal(t, tt.expected, UniqueViolationField(err, tt.table))
		})
	}

	t.Run("not a unique violation", func(t *testing.T) {
		assert.Equal(t, "", UniqueViolationField(errors.New("boom"), "instructors"))
	})
}
