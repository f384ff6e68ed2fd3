package repository

import (
	"context"
	"database/sql"

	"github.com/wsei-dev/university-records/internal/domain"
)

// EnrollmentRepository encapsulates enrollment persistence. Reads are
// denormalized with the student name and course title.
type EnrollmentRepository interface {
	List(ctx context.Context) ([]domain.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*domain.Enrollment, error)
	ExistsPair(ctx context.Context, studentID, courseID, excludeID int64) (bool, error)
	Create(ctx context.Context, enrollment *domain.Enrollment) error
	Update(ctx context.Context, enrollment *domain.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

type enrollmentRepository struct {
	db DBTX
}

// NewEnrollmentRepository instantiates the repository.
func NewEnrollmentRepository(db DBTX) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) List(ctx context.Context) ([]domain.Enrollment, error) {
	const query = `
        SELECT e.id, e.student_id, s.name, e.course_id, c.title, e.enrolled_at
        FROM enrollments e
        JOIN students s ON s.id = e.student_id
        JOIN courses c ON c.id = e.course_id
        ORDER BY e.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := make([]domain.Enrollment, 0)
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.StudentName, &e.CourseID, &e.CourseTitle, &e.EnrolledAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	const query = `
        SELECT e.id, e.student_id, s.name, e.course_id, c.title, e.enrolled_at
        FROM enrollments e
        JOIN students s ON s.id = e.student_id
        JOIN courses c ON c.id = e.course_id
        WHERE e.id = ?`
	var e domain.Enrollment
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.StudentID, &e.StudentName, &e.CourseID, &e.CourseTitle, &e.EnrolledAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepository) ExistsPair(ctx context.Context, studentID, courseID, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = ? AND course_id = ? AND id != ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, studentID, courseID, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	const query = `INSERT INTO enrollments (student_id, course_id, enrolled_at) VALUES (?, ?, ?) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.EnrolledAt,
	).Scan(&enrollment.ID)
}

// Update rewrites the pair only; enrolled_at is set once at creation and
// never modified.
func (r *enrollmentRepository) Update(ctx context.Context, enrollment *domain.Enrollment) error {
	const query = `UPDATE enrollments SET student_id = ?, course_id = ? WHERE id = ?`
	cmd, err := r.db.ExecContext(ctx, query, enrollment.StudentID, enrollment.CourseID, enrollment.ID)
	if err != nil {
		return err
	}
	affected, err := cmd.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *enrollmentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM enrollments WHERE id = ?`
	cmd, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := cmd.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
