package repository

import (
	"context"
	"database/sql"

	"github.com/wsei-dev/university-records/internal/domain"
)

// StudentRepository encapsulates student persistence.
type StudentRepository interface {
	List(ctx context.Context) ([]domain.Student, error)
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, student *domain.Student) error
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id int64) error
}

type studentRepository struct {
	db DBTX
}

// NewStudentRepository instantiates the repository.
func NewStudentRepository(db DBTX) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context) ([]domain.Student, error) {
	const query = `SELECT id, name, email FROM students ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]domain.Student, 0)
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	const query = `SELECT id, name, email FROM students WHERE id = ?`
	var s domain.Student
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Email); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM students WHERE id = ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	const query = `INSERT INTO students (name, email) VALUES (?, ?) RETURNING id`
	return r.db.QueryRowContext(ctx, query, student.Name, student.Email).Scan(&student.ID)
}

func (r *studentRepository) Update(ctx context.Context, student *domain.Student) error {
	const query = `UPDATE students SET name = ?, email = ? WHERE id = ?`
	cmd, err := r.db.ExecContext(ctx, query, student.Name, student.Email, student.ID)
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

func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM students WHERE id = ?`
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
