package dto

import "github.com/wsei-dev/university-records/internal/domain"

// CourseCreateRequest payload for new courses.
type CourseCreateRequest struct {
	Title   string `json:"title" validate:"required"`
	Credits int    `json:"credits" validate:"gte=0"`
}

// CourseUpdateRequest payload for partial updates; a blank title or absent
// credits are left unchanged.
type CourseUpdateRequest struct {
	Title   string `json:"title" validate:"omitempty"`
	Credits *int   `json:"credits" validate:"omitempty,gte=0"`
}

// CourseResponse is the wire shape of a course.
type CourseResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Credits int    `json:"credits"`
}

// NewCourseResponse maps the domain model.
func NewCourseResponse(c *domain.Course) CourseResponse {
	return CourseResponse{ID: c.ID, Title: c.Title, Credits: c.Credits}
}
