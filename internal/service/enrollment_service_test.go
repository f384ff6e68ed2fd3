package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/wsei-dev/university-records/pkg/util"
)

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	require.Equal(t, code, de.Code)
}

func TestEnrollmentCreate(t *testing.T) {
	ts := newTestServices(t)
	student := ts.mustStudent(t, "Ada", "ada@example.edu")
	course := ts.mustCourse(t, "Databases", 5)

	enrollment, err := ts.enrollments.Create(context.Background(), "test", student.ID, course.ID)
	require.NoError(t, err)
	require.NotZero(t, enrollment.ID)
	require.False(t, enrollment.EnrolledAt.IsZero())

	// The returned record already carries the denormalized read fields.
	require.Equal(t, "Ada", enrollment.StudentName)
	require.Equal(t, "Databases", enrollment.CourseTitle)

	got, err := ts.enrollments.Get(context.Background(), enrollment.ID)
	require.NoError(t, err)
	require.Equal(t, student.ID, got.StudentID)
	require.Equal(t, "Ada", got.StudentName)
	require.Equal(t, "Databases", got.CourseTitle)
}

func TestEnrollmentCreateDuplicate(t *testing.T) {
	ts := newTestServices(t)
	student := ts.mustStudent(t, "Ada", "ada@example.edu")
	course := ts.mustCourse(t, "Databases", 5)

	_, err := ts.enrollments.Create(context.Background(), "test", student.ID, course.ID)
	require.NoError(t, err)

	_, err = ts.enrollments.Create(context.Background(), "test", student.ID, course.ID)
	requireCode(t, err, "DUPLICATE_ENROLLMENT")
}

func TestEnrollmentCreateUnknownStudent(t *testing.T) {
	ts := newTestServices(t)
	course := ts.mustCourse(t, "Databases", 5)

	_, err := ts.enrollments.Create(context.Background(), "test", 999, course.ID)
	requireCode(t, err, "UNKNOWN_STUDENT")

	// Nothing must have been written.
	list, err := ts.enrollments.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestEnrollmentCreateUnknownCourse(t *testing.T) {
	ts := newTestServices(t)
	student := ts.mustStudent(t, "Ada", "ada@example.edu")

	_, err := ts.enrollments.Create(context.Background(), "test", student.ID, 999)
	requireCode(t, err, "UNKNOWN_COURSE")
}

func TestEnrollmentConcurrentCreate(t *testing.T) {
	ts := newTestServices(t)
	student := ts.mustStudent(t, "Ada", "ada@example.edu")
	course := ts.mustCourse(t, "Databases", 5)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ts.enrollments.Create(context.Background(), "test", student.ID, course.ID)
		}(i)
	}
	wg.Wait()

	var successes, duplicates int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var de *apperrors.DomainError
		require.ErrorAs(t, err, &de)
		require.Equal(t, "DUPLICATE_ENROLLMENT", de.Code)
		duplicates++
	}
	require.Equal(t, 1, successes)
	require.Equal(t, 1, duplicates)

	list, err := ts.enrollments.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestEnrollmentUpdatePartial(t *testing.T) {
	ts := newTestServices(t)
	student := ts.mustStudent(t, "Ada", "ada@example.edu")
	other := ts.mustStudent(t, "Alan", "alan@example.edu")
	course := ts.mustCourse(t, "Databases", 5)

	enrollment, err := ts.enrollments.Create(context.Background(), "test", student.ID, course.ID)
	require.NoError(t, err)

	// Only the student changes; the course and enrolledAt stay put.
	updated, err := ts.enrollments.Update(context.Background(), "test", enrollment.ID, EnrollmentUpdateInput{
		StudentID: &other.ID,
	})
	require.NoError(t, err)
	require.Equal(t, other.ID, updated.StudentID)
	require.Equal(t, course.ID, updated.CourseID)
	require.Equal(t, "Alan", updated.StudentName)
	require.Equal(t, "Databases", updated.CourseTitle)

	got, err := ts.enrollments.Get(context.Background(), enrollment.ID)
	require.NoError(t, err)
	require.Equal(t, enrollment.EnrolledAt.Unix(), got.EnrolledAt.Unix())
}

func TestEnrollmentUpdateIntoDuplicate(t *testing.T) {
	ts := newTestServices(t)
	ada := ts.mustStudent(t, "Ada", "ada@example.edu")
	alan := ts.mustStudent(t, "Alan", "alan@example.edu")
	course := ts.mustCourse(t, "Databases", 5)

	_, err := ts.enrollments.Create(context.Background(), "test", ada.ID, course.ID)
	require.NoError(t, err)
	second, err := ts.enrollments.Create(context.Background(), "test", alan.ID, course.ID)
	require.NoError(t, err)

	_, err = ts.enrollments.Update(context.Background(), "test", second.ID, EnrollmentUpdateInput{
		StudentID: &ada.ID,
	})
	requireCode(t, err, "DUPLICATE_ENROLLMENT")
}

func TestEnrollmentUpdateKeepingOwnPair(t *testing.T) {
	ts := newTestServices(t)
	ada := ts.mustStudent(t, "Ada", "ada@example.edu")
	course := ts.mustCourse(t, "Databases", 5)

	enrollment, err := ts.enrollments.Create(context.Background(), "test", ada.ID, course.ID)
	require.NoError(t, err)

	// Re-submitting the same pair for the same record is not a duplicate.
	_, err = ts.enrollments.Update(context.Background(), "test", enrollment.ID, EnrollmentUpdateInput{
		StudentID: &ada.ID,
		CourseID:  &course.ID,
	})
	require.NoError(t, err)
}

func TestEnrollmentUpdateUnknownReferences(t *testing.T) {
	ts := newTestServices(t)
	ada := ts.mustStudent(t, "Ada", "ada@example.edu")
	course := ts.mustCourse(t, "Databases", 5)

	enrollment, err := ts.enrollments.Create(context.Background(), "test", ada.ID, course.ID)
	require.NoError(t, err)

	missing := int64(999)
	_, err = ts.enrollments.Update(context.Background(), "test", enrollment.ID, EnrollmentUpdateInput{StudentID: &missing})
	requireCode(t, err, "UNKNOWN_STUDENT")

	_, err = ts.enrollments.Update(context.Background(), "test", enrollment.ID, EnrollmentUpdateInput{CourseID: &missing})
	requireCode(t, err, "UNKNOWN_COURSE")
}

func TestEnrollmentDeleteNotFound(t *testing.T) {
	ts := newTestServices(t)

	err := ts.enrollments.Delete(context.Background(), "test", 123)
	requireCode(t, err, "NOT_FOUND")
}

func TestDeletingStudentCascadesEnrollments(t *testing.T) {
	ts := newTestServices(t)
	ada := ts.mustStudent(t, "Ada", "ada@example.edu")
	course := ts.mustCourse(t, "Databases", 5)

	_, err := ts.enrollments.Create(context.Background(), "test", ada.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, ts.students.Delete(context.Background(), "test", ada.ID))

	list, err := ts.enrollments.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDeletingCourseCascadesEnrollments(t *testing.T) {
	ts := newTestServices(t)
	ada := ts.mustStudent(t, "Ada", "ada@example.edu")
	course := ts.mustCourse(t, "Databases", 5)

	_, err := ts.enrollments.Create(context.Background(), "test", ada.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, ts.courses.Delete(context.Background(), "test", course.ID))

	list, err := ts.enrollments.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)

	// The student survives the cascade.
	_, err = ts.students.Get(context.Background(), ada.ID)
	require.NoError(t, err)
}

func TestEnrollmentGetNotFound(t *testing.T) {
	ts := newTestServices(t)

	_, err := ts.enrollments.Get(context.Background(), 42)
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "NOT_FOUND", de.Code)
}
