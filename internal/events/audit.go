package events

import (
	"context"

	"go.uber.org/zap"
)

// RegisterAuditLog subscribes a zap-backed audit handler to every record
// event type.
func RegisterAuditLog(dispatcher Dispatcher, logger *zap.Logger) {
	all := []EventType{
		EventStudentCreated, EventStudentUpdated, EventStudentDeleted,
		EventCourseCreated, EventCourseUpdated, EventCourseDeleted,
		EventEnrollmentCreated, EventEnrollmentUpdated, EventEnrollmentDeleted,
	}
	handler := func(_ context.Context, event Event) error {
		logger.Info("audit",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Int64("record_id", event.RecordID),
			zap.String("actor", event.Actor),
			zap.Time("at", event.Timestamp),
			zap.Any("payload", event.Payload),
		)
		return nil
	}
	for _, t := range all {
		dispatcher.Subscribe(t, handler)
	}
}
