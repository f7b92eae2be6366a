package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/coursedesk/coursedesk-backend/models"
)

func TestInsertRecord(t *testing.T) {
	repo := CourseDbRepository{}

	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		// field columns are emitted in sorted order
		mock.ExpectQuery(regexp.QuoteMeta(
			"INSERT INTO instructors (bio,name) VALUES ($1,$2) RETURNING *")).
			WithArgs("tango", "Bob").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "bio"}).
				AddRow(int64(7), "Bob", "tango"))

		record, err := repo.InsertRecord(context.Background(), mock, "instructors",
			map[string]any{"name": "Bob", "bio": "tango"})
		assert.NoError(t, err)
		assert.Equal(t, models.Record{"id": int64(7), "name": "Bob", "bio": "tango"}, record)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO instructors").
			WithArgs("Bob").
			WillReturnError(assert.AnError)

		_, err = repo.InsertRecord(context.Background(), mock, "instructors",
			map[string]any{"name": "Bob"})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInsertRecordAppended(t *testing.T) {
	repo := CourseDbRepository{}

	t.Run("position computed in the statement", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(
			"INSERT INTO types (name,position) VALUES ($1,(SELECT COALESCE(MAX(position), 0) + 1 FROM types)) RETURNING *")).
			WithArgs("Milonga").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "position"}).
				AddRow(int64(4), "Milonga", 4))

		record, err := repo.InsertRecordAppended(context.Background(), mock, "types",
			map[string]any{"name": "Milonga"}, "position")
		assert.NoError(t, err)
		assert.Equal(t, models.Record{"id": int64(4), "name": "Milonga", "position": 4}, record)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateRecordById(t *testing.T) {
	repo := CourseDbRepository{}

	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(
			"UPDATE instructors SET bio = $1 WHERE id = $2 RETURNING *")).
			WithArgs("salsa", int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "bio"}).
				AddRow(int64(7), "Bob", "salsa"))

		record, err := repo.UpdateRecordById(context.Background(), mock, "instructors",
			7, map[string]any{"bio": "salsa"})
		assert.NoError(t, err)
		assert.Equal(t, "salsa", record["bio"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(
			"UPDATE instructors SET bio = $1 WHERE id = $2 RETURNING *")).
			WithArgs("salsa", int64(99)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "bio"}))

		_, err = repo.UpdateRecordById(context.Background(), mock, "instructors",
			99, map[string]any{"bio": "salsa"})
		assert.ErrorIs(t, err, models.NotFoundError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteRecordById(t *testing.T) {
	repo := CourseDbRepository{}

	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(
			"DELETE FROM instructors WHERE id = $1 RETURNING *")).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
				AddRow(int64(7), "Bob"))

		record, err := repo.DeleteRecordById(context.Background(), mock, "instructors", 7)
		assert.NoError(t, err)
		assert.Equal(t, models.Record{"id": int64(7), "name": "Bob"}, record)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(
			"DELETE FROM instructors WHERE id = $1 RETURNING *")).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

		_, err = repo.DeleteRecordById(context.Background(), mock, "instructors", 99)
		assert.ErrorIs(t, err, models.NotFoundError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListRecords(t *testing.T) {
	repo := CourseDbRepository{}

	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, name FROM instructors ORDER BY id")).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
				AddRow(int64(1), "Ann").
				AddRow(int64(2), "Bob"))

		records, err := repo.ListRecords(context.Background(), mock, "instructors",
			[]string{"id", "name"})
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "Ann", records[0]["name"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
