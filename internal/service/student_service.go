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

// StudentUpdateInput carries partial update fields; blank values leave the
// stored field unchanged.
type StudentUpdateInput struct {
	Name  string
	Email string
}

// StudentService implements student CRUD with partial-update semantics.
type StudentService struct {
	students   repository.StudentRepository
	dispatcher events.Dispatcher
}

// NewStudentService builds the service.
func NewStudentService(students repository.StudentRepository, dispatcher events.Dispatcher) *StudentService {
	return &StudentService{students: students, dispatcher: dispatcher}
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

// Get returns one student or NotFound.
func (s *StudentService) Get(ctx context.Context, id int64) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("student", map[string]any{"id": id})
		}
		return nil, err
	}
	return student, nil
}

// Create inserts a new student.
func (s *StudentService) Create(ctx context.Context, actor, name, email string) (*domain.Student, error) {
	student := &domain.Student{Name: name, Email: email}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventStudentCreated, student.ID, actor)
	return student, nil
}

// Update applies only the supplied fields.
func (s *StudentService) Update(ctx context.Context, actor string, id int64, input StudentUpdateInput) (*domain.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		student.Name = input.Name
	}
	if input.Email != "" {
		student.Email = input.Email
	}

	if err := s.students.Update(ctx, student); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("student", map[string]any{"id": id})
		}
		return nil, err
	}
	s.publish(ctx, events.EventStudentUpdated, student.ID, actor)
	return student, nil
}

// Delete removes the student; enrollments cascade at the storage level.
func (s *StudentService) Delete(ctx context.Context, actor string, id int64) error {
	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NewNotFound("student", map[string]any{"id": id})
		}
		return err
	}
	s.publish(ctx, events.EventStudentDeleted, id, actor)
	return nil
}

func (s *StudentService) publish(ctx context.Context, eventType events.EventType, recordID int64, actor string) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		RecordID:  recordID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}
