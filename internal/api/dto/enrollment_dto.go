package dto

import (
	"time"

	"github.com/wsei-dev/university-records/internal/domain"
)

// EnrollmentCreateRequest payload for new enrollments.
type EnrollmentCreateRequest struct {
	StudentID int64 `json:"studentId" validate:"required,gt=0"`
	CourseID  int64 `json:"courseId" validate:"required,gt=0"`
}

// EnrollmentUpdateRequest payload for partial updates; absent ids are left
// unchanged.
type EnrollmentUpdateRequest struct {
	StudentID *int64 `json:"studentId" validate:"omitempty,gt=0"`
	CourseID  *int64 `json:"courseId" validate:"omitempty,gt=0"`
}

// EnrollmentResponse is the denormalized wire shape of an enrollment.
type EnrollmentResponse struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"studentId"`
	StudentName string    `json:"studentName,omitempty"`
	CourseID    int64     `json:"courseId"`
	CourseTitle string    `json:"courseTitle,omitempty"`
	EnrolledAt  time.Time `json:"enrolledAt"`
}

// NewEnrollmentResponse maps the domain model.
func NewEnrollmentResponse(e *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:          e.ID,
		StudentID:   e.StudentID,
		StudentName: e.StudentName,
		CourseID:    e.CourseID,
		CourseTitle: e.CourseTitle,
		EnrolledAt:  e.EnrolledAt,
	}
}
