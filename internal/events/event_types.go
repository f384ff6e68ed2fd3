package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStudentCreated    EventType = "student_created"
	EventStudentUpdated    EventType = "student_updated"
	EventStudentDeleted    EventType = "student_deleted"
	EventCourseCreated     EventType = "course_created"
	EventCourseUpdated     EventType = "course_updated"
	EventCourseDeleted     EventType = "course_deleted"
	EventEnrollmentCreated EventType = "enrollment_created"
	EventEnrollmentUpdated EventType = "enrollment_updated"
	EventEnrollmentDeleted EventType = "enrollment_deleted"
)

// Event represents a record mutation emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RecordID  int64       `json:"record_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// EnrollmentPayload carries the pair for enrollment events.
type EnrollmentPayload struct {
	StudentID int64 `json:"student_id"`
	CourseID  int64 `json:"course_id"`
}
