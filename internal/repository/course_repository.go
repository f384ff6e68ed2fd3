package repository

import (
	"context"
	"database/sql"

	"github.com/wsei-dev/university-records/internal/domain"
)

// CourseRepository encapsulates course persistence.
type CourseRepository interface {
	List(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, course *domain.Course) error
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id int64) error
}

type courseRepository struct {
	db DBTX
}

// NewCourseRepository instantiates the repository.
func NewCourseRepository(db DBTX) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) List(ctx context.Context) ([]domain.Course, error) {
	const query = `SELECT id, title, credits FROM courses ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]domain.Course, 0)
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	const query = `SELECT id, title, credits FROM courses WHERE id = ?`
	var c domain.Course
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Title, &c.Credits); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM courses WHERE id = ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	const query = `INSERT INTO courses (title, credits) VALUES (?, ?) RETURNING id`
	return r.db.QueryRowContext(ctx, query, course.Title, course.Credits).Scan(&course.ID)
}

func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	const query = `UPDATE courses SET title = ?, credits = ? WHERE id = ?`
	cmd, err := r.db.ExecContext(ctx, query, course.Title, course.Credits, course.ID)
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

func (r *courseRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM courses WHERE id = ?`
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
