package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/pkg/apperrors"
)

type courseRepository struct {
	store *Store
}

func (r *courseRepository) copyCourse(course *models.Course) *models.Course {
	out := *course
	if course.DepartmentID != nil {
		if dept, ok := r.store.departments[*course.DepartmentID]; ok {
			deptCopy := *dept
			out.Department = &deptCopy
		}
	}
	return &out
}

func (r *courseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	courses := make([]*models.Course, 0, len(r.store.courses))
	for _, course := range r.store.courses {
		courses = append(courses, r.copyCourse(course))
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].CourseCode < courses[j].CourseCode })
	return courses, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	course, ok := r.store.courses[id]
	if !ok {
		return nil, nil
	}
	return r.copyCourse(course), nil
}

func (r *courseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, course := range r.store.courses {
		if strings.EqualFold(course.CourseCode, code) {
			return r.copyCourse(course), nil
		}
	}
	return nil, nil
}

func (r *courseRepository) Add(ctx context.Context, course *models.Course) (*models.Course, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.courses {
		if strings.EqualFold(existing.CourseCode, course.CourseCode) {
			return nil, fmt.Errorf("course code %s: %w", course.CourseCode, apperrors.ErrResourceAlreadyExists)
		}
	}

	course.ID = r.store.nextIDFor("courses")
	stored := *course
	r.store.courses[course.ID] = &stored
	return course, nil
}

func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.courses[course.ID]; !ok {
		return fmt.Errorf("course %d not found", course.ID)
	}
	stored := *course
	stored.Department = nil
	r.store.courses[course.ID] = &stored
	return nil
}

// Delete removes the course and cascades to its enrollments, grades and
// sections, mirroring the foreign keys of the SQL schema.
func (r *courseRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.courses, id)

	for enrollmentID, enrollment := range r.store.enrollments {
		if enrollment.CourseID != id {
			continue
		}
		for gradeID, grade := range r.store.grades {
			if grade.EnrollmentID == enrollmentID {
				delete(r.store.grades, gradeID)
			}
		}
		delete(r.store.enrollments, enrollmentID)
	}

	for sectionID, section := range r.store.sections {
		if section.CourseID == id {
			delete(r.store.sections, sectionID)
		}
	}

	return nil
}
