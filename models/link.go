package models

// ClassInstructor is a many-to-many association row between a class
// and an instructor. A given pair exists at most once; inserting an
// existing pair is a no-op, not a conflict.
type ClassInstructor struct {
	ClassId      int64
	InstructorId int64
}

type CreateClassInput struct {
	Fields        map[string]any
	InstructorIds []int64
}
