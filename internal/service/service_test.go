package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wsei-dev/university-records/internal/domain"
	"github.com/wsei-dev/university-records/internal/events"
	"github.com/wsei-dev/university-records/internal/persistence"
	"github.com/wsei-dev/university-records/internal/repository"
)

// newTestDB opens a fresh named in-memory database per test and applies the
// schema.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_txlock=immediate&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		name,
	)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, persistence.RunMigrations(context.Background(), db, zap.NewNop()))
	return db
}

type testServices struct {
	db          *sql.DB
	students    *StudentService
	courses     *CourseService
	enrollments *EnrollmentService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := newTestDB(t)
	dispatcher := events.NewInMemoryDispatcher()
	return &testServices{
		db:          db,
		students:    NewStudentService(repository.NewStudentRepository(db), dispatcher),
		courses:     NewCourseService(repository.NewCourseRepository(db), dispatcher),
		enrollments: NewEnrollmentService(db, repository.NewEnrollmentRepository(db), dispatcher),
	}
}

func (ts *testServices) mustStudent(t *testing.T, name, email string) *domain.Student {
	t.Helper()
	student, err := ts.students.Create(context.Background(), "test", name, email)
	require.NoError(t, err)
	return student
}

func (ts *testServices) mustCourse(t *testing.T, title string, credits int) *domain.Course {
	t.Helper()
	course, err := ts.courses.Create(context.Background(), "test", title, credits)
	require.NoError(t, err)
	return course
}
