package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wsei-dev/university-records/internal/domain"
	"github.com/wsei-dev/university-records/internal/events"
	"github.com/wsei-dev/university-records/internal/repository"
	apperrors "github.com/wsei-dev/university-records/pkg/util"
)

// EnrollmentUpdateInput carries partial update fields; nil ids leave the
// stored pair unchanged.
type EnrollmentUpdateInput struct {
	StudentID *int64
	CourseID  *int64
}

// EnrollmentService guards every enrollment write with the ordered check
// protocol: unknown student, unknown course, duplicate pair. The checks and
// the write share one transaction; the unique index on
// (student_id, course_id) backstops races between check and write.
type EnrollmentService struct {
	db          *sql.DB
	enrollments repository.EnrollmentRepository
	dispatcher  events.Dispatcher
}

// NewEnrollmentService builds the service.
func NewEnrollmentService(db *sql.DB, enrollments repository.EnrollmentRepository, dispatcher events.Dispatcher) *EnrollmentService {
	return &EnrollmentService{db: db, enrollments: enrollments, dispatcher: dispatcher}
}

// List returns all enrollments, denormalized.
func (s *EnrollmentService) List(ctx context.Context) ([]domain.Enrollment, error) {
	return s.enrollments.List(ctx)
}

// Get returns one enrollment or NotFound.
func (s *EnrollmentService) Get(ctx context.Context, id int64) (*domain.Enrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("enrollment", map[string]any{"id": id})
		}
		return nil, err
	}
	return enrollment, nil
}

// Create enrolls a student in a course. EnrolledAt is set here, once. The
// created row is re-read inside the transaction so the result carries the
// denormalized student name and course title.
func (s *EnrollmentService) Create(ctx context.Context, actor string, studentID, courseID int64) (*domain.Enrollment, error) {
	var created *domain.Enrollment
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := s.checkPair(ctx, tx, studentID, courseID, 0); err != nil {
			return err
		}

		enrollments := repository.NewEnrollmentRepository(tx)
		enrollment := &domain.Enrollment{
			StudentID:  studentID,
			CourseID:   courseID,
			EnrolledAt: time.Now().UTC(),
		}
		if err := enrollments.Create(ctx, enrollment); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.NewDuplicateEnrollment(studentID, courseID)
			}
			return err
		}

		row, err := enrollments.GetByID(ctx, enrollment.ID)
		if err != nil {
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateEnrollment(studentID, courseID)
		}
		return nil, err
	}

	s.publish(ctx, events.EventEnrollmentCreated, created.ID, actor, studentID, courseID)
	return created, nil
}

// Update changes the pair; only supplied ids are applied and each one is
// re-checked against its referenced table. Like Create, the row is re-read
// so the denormalized fields match the new pair.
func (s *EnrollmentService) Update(ctx context.Context, actor string, id int64, input EnrollmentUpdateInput) (*domain.Enrollment, error) {
	var updated *domain.Enrollment
	var studentID, courseID int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		enrollments := repository.NewEnrollmentRepository(tx)

		current, err := enrollments.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NewNotFound("enrollment", map[string]any{"id": id})
			}
			return err
		}

		studentID = current.StudentID
		if input.StudentID != nil {
			studentID = *input.StudentID
		}
		courseID = current.CourseID
		if input.CourseID != nil {
			courseID = *input.CourseID
		}

		if err := s.checkPair(ctx, tx, studentID, courseID, id); err != nil {
			return err
		}

		current.StudentID = studentID
		current.CourseID = courseID
		if err := enrollments.Update(ctx, current); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.NewDuplicateEnrollment(studentID, courseID)
			}
			return err
		}

		row, err := enrollments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		updated = row
		return nil
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateEnrollment(studentID, courseID)
		}
		return nil, err
	}

	s.publish(ctx, events.EventEnrollmentUpdated, updated.ID, actor, updated.StudentID, updated.CourseID)
	return updated, nil
}

// Delete removes the enrollment.
func (s *EnrollmentService) Delete(ctx context.Context, actor string, id int64) error {
	enrollment, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.enrollments.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NewNotFound("enrollment", map[string]any{"id": id})
		}
		return err
	}
	s.publish(ctx, events.EventEnrollmentDeleted, id, actor, enrollment.StudentID, enrollment.CourseID)
	return nil
}

// checkPair runs the ordered protocol: student exists, course exists, pair
// not already enrolled (ignoring the record under update).
func (s *EnrollmentService) checkPair(ctx context.Context, tx *sql.Tx, studentID, courseID, excludeID int64) error {
	exists, err := repository.NewStudentRepository(tx).Exists(ctx, studentID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewUnknownStudent(studentID)
	}

	exists, err = repository.NewCourseRepository(tx).Exists(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewUnknownCourse(courseID)
	}

	duplicate, err := repository.NewEnrollmentRepository(tx).ExistsPair(ctx, studentID, courseID, excludeID)
	if err != nil {
		return err
	}
	if duplicate {
		return apperrors.NewDuplicateEnrollment(studentID, courseID)
	}
	return nil
}

func (s *EnrollmentService) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	// A unique violation can still fire here; callers translate it.
	return tx.Commit()
}

func (s *EnrollmentService) publish(ctx context.Context, eventType events.EventType, recordID int64, actor string, studentID, courseID int64) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		RecordID:  recordID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   events.EnrollmentPayload{StudentID: studentID, CourseID: courseID},
	})
}
