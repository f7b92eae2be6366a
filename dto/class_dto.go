package dto

import (
	"github.com/coursedesk/coursedesk-backend/models"
)

type CreateClassBody struct {
	Fields        map[string]any `json:"fields" binding:"required"`
	InstructorIds []int64        `json:"instructor_ids"`
}

type ClassInstructor struct {
	ClassId      int64 `json:"class_id"`
	InstructorId int64 `json:"instructor_id"`
}

func AdaptClassInstructorDto(link models.ClassInstructor) ClassInstructor {
	return ClassInstructor{
		ClassId:      link.ClassId,
		InstructorId: link.InstructorId,
	}
}
