package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/repositories"
	"github.com/campushub/registra/internal/pkg/apperrors"
	"github.com/campushub/registra/internal/pkg/logger"
)

// StudentService manages student records.
type StudentService struct {
	store repositories.Store
}

// NewStudentService creates a new student service.
func NewStudentService(store repositories.Store) *StudentService {
	return &StudentService{store: store}
}

// GetAll returns all students ordered by GPA, highest first.
func (s *StudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	students, err := s.store.Students().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(students, func(i, j int) bool { return students[i].GPA > students[j].GPA })
	return students, nil
}

// GetByID returns one student.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.store.Students().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// GetEnrollments returns a student's enrollments with their courses attached.
func (s *StudentService) GetEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	enrollments, err := s.store.Enrollments().GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	for _, enrollment := range enrollments {
		course, err := s.store.Courses().GetByID(ctx, enrollment.CourseID)
		if err != nil {
			return nil, err
		}
		enrollment.Course = course
	}

	return enrollments, nil
}

// Create adds a student record. Student codes and emails are unique
// case-insensitively. A zero enrollment date defaults to now.
func (s *StudentService) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	student.StudentCode = strings.TrimSpace(student.StudentCode)
	if student.StudentCode == "" {
		return nil, fmt.Errorf("%w: student code is required", apperrors.ErrValidationFailed)
	}

	existing, err := s.store.Students().GetByCode(ctx, student.StudentCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check student code: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrStudentCodeExists
	}

	existing, err = s.store.Students().GetByEmail(ctx, student.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check student email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrStudentEmailExists
	}

	if err := s.checkDepartment(ctx, student.DepartmentID); err != nil {
		return nil, err
	}

	if student.EnrollmentDate.IsZero() {
		student.EnrollmentDate = time.Now()
	}

	created, err := s.store.Students().Add(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	logger.Info().Str("studentCode", created.StudentCode).Int64("id", created.ID).Msg("Student created")
	return created, nil
}

// Update rewrites a student's mutable fields. The student code is immutable.
func (s *StudentService) Update(ctx context.Context, id int64, update *models.Student) (*models.Student, error) {
	student, err := s.store.Students().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	if !strings.EqualFold(student.Email, update.Email) {
		existing, err := s.store.Students().GetByEmail(ctx, update.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check student email: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrStudentEmailExists
		}
	}

	if err := s.checkDepartment(ctx, update.DepartmentID); err != nil {
		return nil, err
	}

	student.FullName = update.FullName
	student.Email = update.Email
	student.Major = update.Major
	student.GPA = update.GPA
	student.TotalCredits = update.TotalCredits
	student.DepartmentID = update.DepartmentID

	if err := s.store.Students().Update(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	return student, nil
}

// Delete removes a student along with their enrollments.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	student, err := s.store.Students().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return apperrors.ErrStudentNotFound
	}

	if err := s.store.Students().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	logger.Info().Int64("id", id).Str("studentCode", student.StudentCode).Msg("Student deleted")
	return nil
}

func (s *StudentService) checkDepartment(ctx context.Context, departmentID *int64) error {
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
