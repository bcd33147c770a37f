package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/repositories"
	"github.com/campushub/registra/internal/pkg/apperrors"
	"github.com/campushub/registra/internal/pkg/logger"
)

// CourseDetails bundles a course with its roster for the details view.
type CourseDetails struct {
	Course            *models.Course
	ActiveCount       int
	EnrolledStudents  []*models.Student
	AvailableStudents []*models.Student
	CallerEnrolled    bool
}

// CourseService manages courses.
type CourseService struct {
	store repositories.Store
}

// NewCourseService creates a new course service.
func NewCourseService(store repositories.Store) *CourseService {
	return &CourseService{store: store}
}

// GetAll returns all courses plus the active enrollment count per course id.
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, map[int64]int, error) {
	courses, err := s.store.Courses().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	enrollments, err := s.store.Enrollments().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	counts := make(map[int64]int, len(courses))
	for _, enrollment := range enrollments {
		if enrollment.IsActive() {
			counts[enrollment.CourseID]++
		}
	}

	return courses, counts, nil
}

// GetByID returns one course.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.store.Courses().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// GetDetails returns a course with its enrolled students, the students not
// yet on it, and whether the caller's linked student is enrolled.
func (s *CourseService) GetDetails(ctx context.Context, id int64, callerStudentID *int64) (*CourseDetails, error) {
	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.store.Enrollments().GetByCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	enrolledIDs := make(map[int64]bool, len(enrollments))
	activeCount := 0
	for _, enrollment := range enrollments {
		enrolledIDs[enrollment.StudentID] = true
		if enrollment.IsActive() {
			activeCount++
		}
	}

	students, err := s.store.Students().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	details := &CourseDetails{
		Course:      course,
		ActiveCount: activeCount,
	}
	for _, student := range students {
		if enrolledIDs[student.ID] {
			details.EnrolledStudents = append(details.EnrolledStudents, student)
		} else {
			details.AvailableStudents = append(details.AvailableStudents, student)
		}
	}

	if callerStudentID != nil {
		details.CallerEnrolled = enrolledIDs[*callerStudentID]
	}

	return details, nil
}

// Create adds a course. Course codes are unique case-insensitively and the
// end date must not precede the start date.
func (s *CourseService) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	course.CourseCode = strings.TrimSpace(course.CourseCode)
	if course.CourseCode == "" {
		return nil, fmt.Errorf("%w: course code is required", apperrors.ErrValidationFailed)
	}
	if course.EndDate.Before(course.StartDate) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidationFailed)
	}

	existing, err := s.store.Courses().GetByCode(ctx, course.CourseCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check course code: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCourseCodeExists
	}

	if err := s.checkDepartment(ctx, course.DepartmentID); err != nil {
		return nil, err
	}

	created, err := s.store.Courses().Add(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	logger.Info().Str("courseCode", created.CourseCode).Int64("id", created.ID).Msg("Course created")
	return created, nil
}

// Update rewrites a course's mutable fields. The course code is immutable.
func (s *CourseService) Update(ctx context.Context, id int64, update *models.Course) (*models.Course, error) {
	course, err := s.store.Courses().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if update.EndDate.Before(update.StartDate) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidationFailed)
	}

	if err := s.checkDepartment(ctx, update.DepartmentID); err != nil {
		return nil, err
	}

	course.Title = update.Title
	course.Description = update.Description
	course.Credits = update.Credits
	course.Instructor = update.Instructor
	course.Semester = update.Semester
	course.StartDate = update.StartDate
	course.EndDate = update.EndDate
	course.MaxStudents = update.MaxStudents
	course.DepartmentID = update.DepartmentID

	if err := s.store.Courses().Update(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return course, nil
}

// Delete removes a course along with its enrollments and sections.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	course, err := s.store.Courses().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if course == nil {
		return apperrors.ErrCourseNotFound
	}

	if err := s.store.Courses().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	logger.Info().Int64("id", id).Str("courseCode", course.CourseCode).Msg("Course deleted")
	return nil
}

func (s *CourseService) checkDepartment(ctx context.Context, departmentID *int64) error {
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
