package dbmodels

import (
	"github.com/coursedesk/coursedesk-backend/models"
)

type DbClassInstructor struct {
	ClassId      int64 `db:"class_id"`
	InstructorId int64 `db:"instructor_id"`
}

const TABLE_CLASS_INSTRUCTORS = "class_instructors"

var SelectClassInstructorColumns = []string{
	"class_id",
	"instructor_id",
}

func AdaptClassInstructor(db DbClassInstructor) (models.ClassInstructor, error) {
	return models.ClassInstructor{
		ClassId:      db.ClassId,
		InstructorId: db.InstructorId,
	}, nil
}
