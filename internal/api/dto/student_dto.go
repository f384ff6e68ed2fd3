package dto

import "github.com/wsei-dev/university-records/internal/domain"

// StudentCreateRequest payload for new students.
type StudentCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// StudentUpdateRequest payload for partial updates; blank fields are left
// unchanged.
type StudentUpdateRequest struct {
	Name  string `json:"name" validate:"omitempty"`
	Email string `json:"email" validate:"omitempty,email"`
}

// StudentResponse is the wire shape of a student.
type StudentResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewStudentResponse maps the domain model.
func NewStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{ID: s.ID, Name: s.Name, Email: s.Email}
}
