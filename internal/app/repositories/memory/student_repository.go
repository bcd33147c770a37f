package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/pkg/apperrors"
)

type studentRepository struct {
	store *Store
}

// copyStudent returns a detached copy with its department attached.
func (r *studentRepository) copyStudent(student *models.Student) *models.Student {
	out := *student
	if student.DepartmentID != nil {
		if dept, ok := r.store.departments[*student.DepartmentID]; ok {
			deptCopy := *dept
			out.Department = &deptCopy
		}
	}
	return &out
}

func (r *studentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	students := make([]*models.Student, 0, len(r.store.students))
	for _, student := range r.store.students {
		students = append(students, r.copyStudent(student))
	}
	sort.Slice(students, func(i, j int) bool { return students[i].StudentCode < students[j].StudentCode })
	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	student, ok := r.store.students[id]
	if !ok {
		return nil, nil
	}
	return r.copyStudent(student), nil
}

func (r *studentRepository) GetByCode(ctx context.Context, code string) (*models.Student, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, student := range r.store.students {
		if strings.EqualFold(student.StudentCode, code) {
			return r.copyStudent(student), nil
		}
	}
	return nil, nil
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, student := range r.store.students {
		if strings.EqualFold(student.Email, email) {
			return r.copyStudent(student), nil
		}
	}
	return nil, nil
}

func (r *studentRepository) Add(ctx context.Context, student *models.Student) (*models.Student, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.students {
		if strings.EqualFold(existing.StudentCode, student.StudentCode) {
			return nil, fmt.Errorf("student code %s: %w", student.StudentCode, apperrors.ErrResourceAlreadyExists)
		}
	}

	student.ID = r.store.nextIDFor("students")
	stored := *student
	r.store.students[student.ID] = &stored
	return student, nil
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.students[student.ID]; !ok {
		return fmt.Errorf("student %d not found", student.ID)
	}
	stored := *student
	stored.Department = nil
	r.store.students[student.ID] = &stored
	return nil
}

// Delete removes the student and cascades to enrollments, their grades
// and the linked account, mirroring the foreign keys of the SQL schema.
func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.students, id)

	for enrollmentID, enrollment := range r.store.enrollments {
		if enrollment.StudentID != id {
			continue
		}
		for gradeID, grade := range r.store.grades {
			if grade.EnrollmentID == enrollmentID {
				delete(r.store.grades, gradeID)
			}
		}
		delete(r.store.enrollments, enrollmentID)
	}

	for accountID, account := range r.store.accounts {
		if account.StudentID != nil && *account.StudentID == id {
			unlinked := *account
			unlinked.StudentID = nil
			r.store.accounts[accountID] = &unlinked
		}
	}

	return nil
}
