package services

import (
	"context"
	"fmt"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/repositories"
	"github.com/campushub/registra/internal/pkg/apperrors"
)

// InstructorService manages instructors.
type InstructorService struct {
	store repositories.Store
}

// NewInstructorService creates a new instructor service.
func NewInstructorService(store repositories.Store) *InstructorService {
	return &InstructorService{store: store}
}

// GetAll returns all instructors.
func (s *InstructorService) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	return s.store.Instructors().GetAll(ctx)
}

// GetByID returns one instructor.
func (s *InstructorService) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	instructor, err := s.store.Instructors().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, apperrors.ErrInstructorNotFound
	}
	return instructor, nil
}

// Create adds an instructor. A referenced department must exist.
func (s *InstructorService) Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	if err := s.checkDepartment(ctx, instructor.DepartmentID); err != nil {
		return nil, err
	}

	created, err := s.store.Instructors().Add(ctx, instructor)
	if err != nil {
		return nil, fmt.Errorf("failed to create instructor: %w", err)
	}
	return created, nil
}

// Update rewrites an instructor.
func (s *InstructorService) Update(ctx context.Context, id int64, update *models.Instructor) (*models.Instructor, error) {
	instructor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkDepartment(ctx, update.DepartmentID); err != nil {
		return nil, err
	}

	instructor.FullName = update.FullName
	instructor.Email = update.Email
	instructor.PhoneNumber = update.PhoneNumber
	instructor.DepartmentID = update.DepartmentID

	if err := s.store.Instructors().Update(ctx, instructor); err != nil {
		return nil, fmt.Errorf("failed to update instructor: %w", err)
	}
	return instructor, nil
}

// Delete removes an instructor along with their sections.
func (s *InstructorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.store.Instructors().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete instructor: %w", err)
	}
	return nil
}

func (s *InstructorService) checkDepartment(ctx context.Context, departmentID *int64) error {
	if departmentID == nil {
		return nil
	}
	department, err := s.store.Departments().GetByID(ctx, *departmentID)
	if err != nil {
		return fmt.Errorf("failed to check department: %w", err)
	}
	if department == nil {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}
