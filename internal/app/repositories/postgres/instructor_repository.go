package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/registra/internal/app/models"
)

const instructorSelect = `
	SELECT i.id, i.full_name, i.email, i.phone_number, i.department_id,
	       d.id, d.name, d.faculty, d.office_location
	FROM instructors i
	LEFT JOIN departments d ON d.id = i.department_id`

// InstructorRepository persists instructors.
type InstructorRepository struct {
	db DBTX
}

// NewInstructorRepository creates a new instructor repository.
func NewInstructorRepository(db DBTX) *InstructorRepository {
	return &InstructorRepository{db: db}
}

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	var instructor models.Instructor
	var deptID *int64
	var deptName, deptFaculty, deptOffice *string

	err := row.Scan(
		&instructor.ID, &instructor.FullName, &instructor.Email,
		&instructor.PhoneNumber, &instructor.DepartmentID,
		&deptID, &deptName, &deptFaculty, &deptOffice,
	)
	if err != nil {
		return nil, err
	}

	if deptID != nil {
		instructor.Department = &models.Department{
			ID:             *deptID,
			Name:           derefString(deptName),
			Faculty:        derefString(deptFaculty),
			OfficeLocation: derefString(deptOffice),
		}
	}

	return &instructor, nil
}

// GetAll returns all instructors ordered by name.
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	rows, err := r.db.Query(ctx, instructorSelect+` ORDER BY i.full_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query instructors: %w", err)
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan instructor: %w", err)
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instructors: %w", err)
	}

	return instructors, nil
}

// GetByID returns the instructor with the given ID, or nil when absent.
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	row := r.db.QueryRow(ctx, instructorSelect+` WHERE i.id = $1`, id)

	instructor, err := scanInstructor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get instructor: %w", err)
	}

	return instructor, nil
}

// Add inserts an instructor and returns it with its generated ID.
func (r *InstructorRepository) Add(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO instructors (full_name, email, phone_number, department_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		instructor.FullName, instructor.Email, instructor.PhoneNumber, instructor.DepartmentID,
	).Scan(&instructor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert instructor: %w", err)
	}

	return instructor, nil
}

// Update rewrites an instructor's fields.
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE instructors
		SET full_name = $1, email = $2, phone_number = $3, department_id = $4
		WHERE id = $5`,
		instructor.FullName, instructor.Email, instructor.PhoneNumber,
		instructor.DepartmentID, instructor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update instructor: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("instructor %d not found", instructor.ID)
	}

	return nil
}

// Delete removes an instructor. Missing rows are ignored.
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete instructor: %w", err)
	}
	return nil
}
