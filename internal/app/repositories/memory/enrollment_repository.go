package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/pkg/apperrors"
)

type enrollmentRepository struct {
	store *Store
}

func copyEnrollment(enrollment *models.Enrollment) *models.Enrollment {
	out := *enrollment
	out.Student = nil
	out.Course = nil
	return &out
}

func sortEnrollments(enrollments []*models.Enrollment) {
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].ID < enrollments[j].ID })
}

func (r *enrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	enrollments := make([]*models.Enrollment, 0, len(r.store.enrollments))
	for _, enrollment := range r.store.enrollments {
		enrollments = append(enrollments, copyEnrollment(enrollment))
	}
	sortEnrollments(enrollments)
	return enrollments, nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	enrollment, ok := r.store.enrollments[id]
	if !ok {
		return nil, nil
	}
	return copyEnrollment(enrollment), nil
}

func (r *enrollmentRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var enrollments []*models.Enrollment
	for _, enrollment := range r.store.enrollments {
		if enrollment.CourseID == courseID {
			enrollments = append(enrollments, copyEnrollment(enrollment))
		}
	}
	sortEnrollments(enrollments)
	return enrollments, nil
}

func (r *enrollmentRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var enrollments []*models.Enrollment
	for _, enrollment := range r.store.enrollments {
		if enrollment.StudentID == studentID {
			enrollments = append(enrollments, copyEnrollment(enrollment))
		}
	}
	sortEnrollments(enrollments)
	return enrollments, nil
}

func (r *enrollmentRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, enrollment := range r.store.enrollments {
		if enrollment.StudentID == studentID && enrollment.CourseID == courseID {
			return copyEnrollment(enrollment), nil
		}
	}
	return nil, nil
}

func (r *enrollmentRepository) CountActiveByCourse(ctx context.Context, courseID int64) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, enrollment := range r.store.enrollments {
		if enrollment.CourseID == courseID && enrollment.Status == models.EnrollmentActive {
			count++
		}
	}
	return count, nil
}

// Add enforces the one-enrollment-per-student-per-course rule the SQL
// schema expresses as a unique constraint.
func (r *enrollmentRepository) Add(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.enrollments {
		if existing.StudentID == enrollment.StudentID && existing.CourseID == enrollment.CourseID {
			return nil, fmt.Errorf("enrollment for student %d in course %d: %w",
				enrollment.StudentID, enrollment.CourseID, apperrors.ErrResourceAlreadyExists)
		}
	}

	enrollment.ID = r.store.nextIDFor("enrollments")
	stored := *copyEnrollment(enrollment)
	r.store.enrollments[enrollment.ID] = &stored
	return enrollment, nil
}

func (r *enrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.enrollments[enrollment.ID]; !ok {
		return fmt.Errorf("enrollment %d not found", enrollment.ID)
	}
	stored := *copyEnrollment(enrollment)
	r.store.enrollments[enrollment.ID] = &stored
	return nil
}

func (r *enrollmentRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for gradeID, grade := range r.store.grades {
		if grade.EnrollmentID == id {
			delete(r.store.grades, gradeID)
		}
	}
	delete(r.store.enrollments, id)
	return nil
}
