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

// CourseUpdateInput carries partial update fields; a blank title or nil
// credits leaves the stored field unchanged.
type CourseUpdateInput struct {
	Title   string
	Credits *int
}

// CourseService implements course CRUD with partial-update semantics.
type CourseService struct {
	courses    repository.CourseRepository
	dispatcher events.Dispatcher
}

// NewCourseService builds the service.
func NewCourseService(courses repository.CourseRepository, dispatcher events.Dispatcher) *CourseService {
	return &CourseService{courses: courses, dispatcher: dispatcher}
}

// List returns all courses.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

// Get returns one course or NotFound.
func (s *CourseService) Get(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("course", map[string]any{"id": id})
		}
		return nil, err
	}
	return course, nil
}

// Create inserts a new course.
func (s *CourseService) Create(ctx context.Context, actor, title string, credits int) (*domain.Course, error) {
	course := &domain.Course{Title: title, Credits: credits}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventCourseCreated, course.ID, actor)
	return course, nil
}

// Update applies only the supplied fields.
func (s *CourseService) Update(ctx context.Context, actor string, id int64, input CourseUpdateInput) (*domain.Course, error) {
	course, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		course.Title = input.Title
	}
	if input.Credits != nil {
		course.Credits = *input.Credits
	}

	if err := s.courses.Update(ctx, course); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("course", map[string]any{"id": id})
		}
		return nil, err
	}
	s.publish(ctx, events.EventCourseUpdated, course.ID, actor)
	return course, nil
}

// Delete removes the course; enrollments cascade at the storage level.
func (s *CourseService) Delete(ctx context.Context, actor string, id int64) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NewNotFound("course", map[string]any{"id": id})
		}
		return err
	}
	s.publish(ctx, events.EventCourseDeleted, id, actor)
	return nil
}

func (s *CourseService) publish(ctx context.Context, eventType events.EventType, recordID int64, actor string) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		RecordID:  recordID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}
