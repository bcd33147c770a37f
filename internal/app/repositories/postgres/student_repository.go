package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/registra/internal/app/models"
)

const studentSelect = `
	SELECT s.id, s.student_code, s.full_name, s.email, s.major, s.gpa,
	       s.total_credits, s.enrollment_date, s.department_id,
	       d.id, d.name, d.faculty, d.office_location
	FROM students s
	LEFT JOIN departments d ON d.id = s.department_id`

// StudentRepository persists student records.
type StudentRepository struct {
	db DBTX
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var deptID *int64
	var deptName, deptFaculty, deptOffice *string

	err := row.Scan(
		&student.ID, &student.StudentCode, &student.FullName, &student.Email,
		&student.Major, &student.GPA, &student.TotalCredits, &student.EnrollmentDate,
		&student.DepartmentID,
		&deptID, &deptName, &deptFaculty, &deptOffice,
	)
	if err != nil {
		return nil, err
	}

	if deptID != nil {
		student.Department = &models.Department{
			ID:   *deptID,
			Name: derefString(deptName),
		}
		student.Department.Faculty = derefString(deptFaculty)
		student.Department.OfficeLocation = derefString(deptOffice)
	}

	return &student, nil
}

// GetAll returns all students ordered by their code.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, studentSelect+` ORDER BY s.student_code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// GetByID returns the student with the given ID, or nil when absent.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx, studentSelect+` WHERE s.id = $1`, id)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return student, nil
}

// GetByCode returns the student with the given code, matched
// case-insensitively, or nil when absent.
func (r *StudentRepository) GetByCode(ctx context.Context, code string) (*models.Student, error) {
	row := r.db.QueryRow(ctx, studentSelect+` WHERE LOWER(s.student_code) = LOWER($1)`, code)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student by code: %w", err)
	}

	return student, nil
}

// GetByEmail returns the student with the given email, matched
// case-insensitively, or nil when absent.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	row := r.db.QueryRow(ctx, studentSelect+` WHERE LOWER(s.email) = LOWER($1)`, email)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student by email: %w", err)
	}

	return student, nil
}

// Add inserts a student and returns it with its generated ID.
func (r *StudentRepository) Add(ctx context.Context, student *models.Student) (*models.Student, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (student_code, full_name, email, major, gpa, total_credits, enrollment_date, department_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		student.StudentCode, student.FullName, student.Email, student.Major,
		student.GPA, student.TotalCredits, student.EnrollmentDate, student.DepartmentID,
	).Scan(&student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert student: %w", err)
	}

	return student, nil
}

// Update rewrites a student's mutable fields.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET full_name = $1, email = $2, major = $3, gpa = $4, total_credits = $5, department_id = $6
		WHERE id = $7`,
		student.FullName, student.Email, student.Major, student.GPA,
		student.TotalCredits, student.DepartmentID, student.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("student %d not found", student.ID)
	}

	return nil
}

// Delete removes a student. Missing rows are ignored.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
