package services

import (
	"context"
	"fmt"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/repositories"
	"github.com/campushub/registra/internal/pkg/apperrors"
)

// DepartmentService manages departments.
type DepartmentService struct {
	store repositories.Store
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(store repositories.Store) *DepartmentService {
	return &DepartmentService{store: store}
}

// GetAll returns all departments.
func (s *DepartmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.store.Departments().GetAll(ctx)
}

// GetByID returns one department.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.store.Departments().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

// Create adds a department.
func (s *DepartmentService) Create(ctx context.Context, department *models.Department) (*models.Department, error) {
	created, err := s.store.Departments().Add(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

// Update rewrites a department.
func (s *DepartmentService) Update(ctx context.Context, id int64, update *models.Department) (*models.Department, error) {
	department, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department.Name = update.Name
	department.Faculty = update.Faculty
	department.OfficeLocation = update.OfficeLocation

	if err := s.store.Departments().Update(ctx, department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return department, nil
}

// Delete removes a department. Records referencing it keep existing with
// the link cleared.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.store.Departments().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}
