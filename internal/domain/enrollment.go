package domain

import "time"

// Enrollment links a student to a course. The (StudentID, CourseID) pair is
// unique across all enrollments.
type Enrollment struct {
	ID         int64
	StudentID  int64
	CourseID   int64
	EnrolledAt time.Time

	// Denormalized read-side fields, populated by list/get queries.
	StudentName string
	CourseTitle string
}
