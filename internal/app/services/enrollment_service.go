package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushub/registra/internal/app/auth"
	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/repositories"
	"github.com/campushub/registra/internal/pkg/apperrors"
	"github.com/campushub/registra/internal/pkg/dberrors"
	"github.com/campushub/registra/internal/pkg/logger"
)

// Outcome names the result of an enrollment operation. Rejections that
// stem from business rules are outcomes, not transport errors.
type Outcome string

// Enrollment outcomes.
const (
	OutcomeEnrolled        Outcome = "ENROLLED"
	OutcomeRemoved         Outcome = "REMOVED"
	OutcomeSelfOnly        Outcome = "SELF_ONLY"
	OutcomeNoStudent       Outcome = "NO_STUDENT"
	OutcomeAlreadyEnrolled Outcome = "ALREADY_ENROLLED"
	OutcomeCourseFull      Outcome = "COURSE_FULL"
	OutcomeOnlyStudents    Outcome = "ONLY_STUDENTS"
	OutcomeAccountUnlinked Outcome = "ACCOUNT_UNLINKED"
)

// EnrollmentResult is what every workflow operation returns on the happy
// path and on business-rule rejections alike.
type EnrollmentResult struct {
	Success     bool
	Outcome     Outcome
	Message     string
	ActiveCount int
}

func failure(outcome Outcome, message string, activeCount int) *EnrollmentResult {
	return &EnrollmentResult{Success: false, Outcome: outcome, Message: message, ActiveCount: activeCount}
}

// EnrollmentService implements the enrollment workflow.
type EnrollmentService struct {
	store       repositories.Store
	authService *AuthService
}

// NewEnrollmentService creates a new enrollment service.
func NewEnrollmentService(store repositories.Store, authService *AuthService) *EnrollmentService {
	return &EnrollmentService{
		store:       store,
		authService: authService,
	}
}

// AssignStudent enrolls a student into a course on behalf of staff. A
// student-role caller may only target their own linked record.
func (s *EnrollmentService) AssignStudent(ctx context.Context, identity auth.Identity, courseID, studentID int64) (*EnrollmentResult, error) {
	course, err := s.store.Courses().GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if identity.IsStudent() {
		linked, err := s.linkedStudentID(ctx, identity)
		if err != nil {
			return nil, err
		}
		if linked == nil || *linked != studentID {
			return failure(OutcomeSelfOnly, "students may only enroll themselves", 0), nil
		}
	}

	return s.enroll(ctx, course, studentID)
}

// EnrollSelf enrolls the calling student into a course.
func (s *EnrollmentService) EnrollSelf(ctx context.Context, identity auth.Identity, courseID int64) (*EnrollmentResult, error) {
	course, err := s.store.Courses().GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if !identity.IsStudent() {
		return failure(OutcomeOnlyStudents, "only students can self-enroll", 0), nil
	}

	linked, err := s.linkedStudentID(ctx, identity)
	if err != nil {
		return nil, err
	}
	if linked == nil {
		return failure(OutcomeAccountUnlinked, "your account is not linked to a student record", 0), nil
	}

	return s.enroll(ctx, course, *linked)
}

// RemoveStudent drops a student from a course. Staff may remove anyone;
// a student-role caller may only remove themselves. Removing a student
// who is not enrolled succeeds without changing anything.
func (s *EnrollmentService) RemoveStudent(ctx context.Context, identity auth.Identity, courseID, studentID int64) (*EnrollmentResult, error) {
	course, err := s.store.Courses().GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if identity.IsStudent() {
		linked, err := s.linkedStudentID(ctx, identity)
		if err != nil {
			return nil, err
		}
		if linked == nil || *linked != studentID {
			return failure(OutcomeSelfOnly, "students may only remove themselves", 0), nil
		}
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	enrollment, err := uow.Enrollments().GetByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up enrollment: %w", err)
	}

	if enrollment != nil {
		if err := uow.Enrollments().Delete(ctx, enrollment.ID); err != nil {
			return nil, fmt.Errorf("failed to delete enrollment: %w", err)
		}
	}

	activeCount, err := uow.Enrollments().CountActiveByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("student removed from %s", course.CourseCode)
	if enrollment == nil {
		message = fmt.Sprintf("student was not enrolled in %s", course.CourseCode)
	} else {
		logger.Info().Int64("studentId", studentID).Int64("courseId", courseID).Msg("Enrollment removed")
	}

	return &EnrollmentResult{
		Success:     true,
		Outcome:     OutcomeRemoved,
		Message:     message,
		ActiveCount: activeCount,
	}, nil
}

// enroll runs the duplicate and capacity checks and the insert inside one
// unit of work, so two concurrent enrollments cannot both take the last
// seat on the postgres backend.
func (s *EnrollmentService) enroll(ctx context.Context, course *models.Course, studentID int64) (*EnrollmentResult, error) {
	student, err := s.store.Students().GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if student == nil {
		return failure(OutcomeNoStudent, "student record not found", 0), nil
	}

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	existing, err := uow.Enrollments().GetByStudentAndCourse(ctx, studentID, course.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up enrollment: %w", err)
	}
	if existing != nil {
		return failure(OutcomeAlreadyEnrolled,
			fmt.Sprintf("%s is already enrolled in %s", student.FullName, course.CourseCode), 0), nil
	}

	activeCount, err := uow.Enrollments().CountActiveByCourse(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}
	if activeCount >= course.MaxStudents {
		return failure(OutcomeCourseFull,
			fmt.Sprintf("%s is full (%d/%d)", course.CourseCode, activeCount, course.MaxStudents), activeCount), nil
	}

	enrollment := &models.Enrollment{
		StudentID: studentID,
		CourseID:  course.ID,
		Status:    models.EnrollmentActive,
	}
	if _, err := uow.Enrollments().Add(ctx, enrollment); err != nil {
		if dberrors.IsUniqueViolation(err) || errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return failure(OutcomeAlreadyEnrolled,
				fmt.Sprintf("%s is already enrolled in %s", student.FullName, course.CourseCode), activeCount), nil
		}
		return nil, fmt.Errorf("failed to insert enrollment: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentId", studentID).Int64("courseId", course.ID).Msg("Student enrolled")

	return &EnrollmentResult{
		Success:     true,
		Outcome:     OutcomeEnrolled,
		Message:     fmt.Sprintf("%s enrolled in %s", student.FullName, course.CourseCode),
		ActiveCount: activeCount + 1,
	}, nil
}

// linkedStudentID resolves the caller's student record, preferring the
// token claims and falling back to an account lookup.
func (s *EnrollmentService) linkedStudentID(ctx context.Context, identity auth.Identity) (*int64, error) {
	if identity.StudentID != nil {
		return identity.StudentID, nil
	}

	linked, err := s.authService.LinkedStudentID(ctx, identity.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return linked, nil
}
