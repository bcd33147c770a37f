package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/registra/internal/app/models"
)

// DepartmentRepository persists departments.
type DepartmentRepository struct {
	db DBTX
}

// NewDepartmentRepository creates a new department repository.
func NewDepartmentRepository(db DBTX) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// GetAll returns all departments ordered by name.
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, faculty, office_location
		FROM departments
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.Faculty, &department.OfficeLocation); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	return departments, nil
}

// GetByID returns the department with the given ID, or nil when absent.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	var department models.Department
	err := r.db.QueryRow(ctx, `
		SELECT id, name, faculty, office_location
		FROM departments
		WHERE id = $1`, id,
	).Scan(&department.ID, &department.Name, &department.Faculty, &department.OfficeLocation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return &department, nil
}

// Add inserts a department and returns it with its generated ID.
func (r *DepartmentRepository) Add(ctx context.Context, department *models.Department) (*models.Department, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO departments (name, faculty, office_location)
		VALUES ($1, $2, $3)
		RETURNING id`,
		department.Name, department.Faculty, department.OfficeLocation,
	).Scan(&department.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert department: %w", err)
	}

	return department, nil
}

// Update rewrites a department's fields.
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE departments
		SET name = $1, faculty = $2, office_location = $3
		WHERE id = $4`,
		department.Name, department.Faculty, department.OfficeLocation, department.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("department %d not found", department.ID)
	}

	return nil
}

// Delete removes a department. Missing rows are ignored.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}
