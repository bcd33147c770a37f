package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/campushub/registra/internal/app/models"
)

type departmentRepository struct {
	store *Store
}

func (r *departmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	departments := make([]*models.Department, 0, len(r.store.departments))
	for _, department := range r.store.departments {
		deptCopy := *department
		departments = append(departments, &deptCopy)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].Name < departments[j].Name })
	return departments, nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	department, ok := r.store.departments[id]
	if !ok {
		return nil, nil
	}
	deptCopy := *department
	return &deptCopy, nil
}

func (r *departmentRepository) Add(ctx context.Context, department *models.Department) (*models.Department, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	department.ID = r.store.nextIDFor("departments")
	stored := *department
	r.store.departments[department.ID] = &stored
	return department, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *models.Department) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.departments[department.ID]; !ok {
		return fmt.Errorf("department %d not found", department.ID)
	}
	stored := *department
	r.store.departments[department.ID] = &stored
	return nil
}

// Delete removes the department and clears references from students,
// courses and instructors, mirroring ON DELETE SET NULL.
func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.departments, id)

	for _, student := range r.store.students {
		if student.DepartmentID != nil && *student.DepartmentID == id {
			student.DepartmentID = nil
		}
	}
	for _, course := range r.store.courses {
		if course.DepartmentID != nil && *course.DepartmentID == id {
			course.DepartmentID = nil
		}
	}
	for _, instructor := range r.store.instructors {
		if instructor.DepartmentID != nil && *instructor.DepartmentID == id {
			instructor.DepartmentID = nil
		}
	}

	return nil
}

type instructorRepository struct {
	store *Store
}

func (r *instructorRepository) copyInstructor(instructor *models.Instructor) *models.Instructor {
	out := *instructor
	if instructor.DepartmentID != nil {
		if dept, ok := r.store.departments[*instructor.DepartmentID]; ok {
			deptCopy := *dept
			out.Department = &deptCopy
		}
	}
	return &out
}

func (r *instructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	instructors := make([]*models.Instructor, 0, len(r.store.instructors))
	for _, instructor := range r.store.instructors {
		instructors = append(instructors, r.copyInstructor(instructor))
	}
	sort.Slice(instructors, func(i, j int) bool { return instructors[i].FullName < instructors[j].FullName })
	return instructors, nil
}

func (r *instructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	instructor, ok := r.store.instructors[id]
	if !ok {
		return nil, nil
	}
	return r.copyInstructor(instructor), nil
}

func (r *instructorRepository) Add(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	instructor.ID = r.store.nextIDFor("instructors")
	stored := *instructor
	stored.Department = nil
	r.store.instructors[instructor.ID] = &stored
	return instructor, nil
}

func (r *instructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.instructors[instructor.ID]; !ok {
		return fmt.Errorf("instructor %d not found", instructor.ID)
	}
	stored := *instructor
	stored.Department = nil
	r.store.instructors[instructor.ID] = &stored
	return nil
}

func (r *instructorRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.instructors, id)

	for sectionID, section := range r.store.sections {
		if section.InstructorID == id {
			delete(r.store.sections, sectionID)
		}
	}
	for _, account := range r.store.accounts {
		if account.InstructorID != nil && *account.InstructorID == id {
			account.InstructorID = nil
		}
	}

	return nil
}

type sectionRepository struct {
	store *Store
}

func (r *sectionRepository) GetAll(ctx context.Context) ([]*models.ClassSection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sections := make([]*models.ClassSection, 0, len(r.store.sections))
	for _, section := range r.store.sections {
		sectionCopy := *section
		sections = append(sections, &sectionCopy)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].ID < sections[j].ID })
	return sections, nil
}

func (r *sectionRepository) GetByID(ctx context.Context, id int64) (*models.ClassSection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	section, ok := r.store.sections[id]
	if !ok {
		return nil, nil
	}
	sectionCopy := *section
	return &sectionCopy, nil
}

func (r *sectionRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.ClassSection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var sections []*models.ClassSection
	for _, section := range r.store.sections {
		if section.CourseID == courseID {
			sectionCopy := *section
			sections = append(sections, &sectionCopy)
		}
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].ID < sections[j].ID })
	return sections, nil
}

func (r *sectionRepository) Add(ctx context.Context, section *models.ClassSection) (*models.ClassSection, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	section.ID = r.store.nextIDFor("sections")
	stored := *section
	r.store.sections[section.ID] = &stored
	return section, nil
}

func (r *sectionRepository) Update(ctx context.Context, section *models.ClassSection) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sections[section.ID]; !ok {
		return fmt.Errorf("section %d not found", section.ID)
	}
	stored := *section
	r.store.sections[section.ID] = &stored
	return nil
}

func (r *sectionRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.sections, id)
	return nil
}

type gradeRepository struct {
	store *Store
}

func (r *gradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	grade, ok := r.store.grades[id]
	if !ok {
		return nil, nil
	}
	gradeCopy := *grade
	return &gradeCopy, nil
}

func (r *gradeRepository) GetByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, grade := range r.store.grades {
		if grade.EnrollmentID == enrollmentID {
			gradeCopy := *grade
			return &gradeCopy, nil
		}
	}
	return nil, nil
}

func (r *gradeRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var grades []*models.Grade
	for _, grade := range r.store.grades {
		enrollment, ok := r.store.enrollments[grade.EnrollmentID]
		if ok && enrollment.StudentID == studentID {
			gradeCopy := *grade
			grades = append(grades, &gradeCopy)
		}
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].ID < grades[j].ID })
	return grades, nil
}

func (r *gradeRepository) Add(ctx context.Context, grade *models.Grade) (*models.Grade, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	grade.ID = r.store.nextIDFor("grades")
	stored := *grade
	r.store.grades[grade.ID] = &stored
	return grade, nil
}

func (r *gradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.grades[grade.ID]; !ok {
		return fmt.Errorf("grade %d not found", grade.ID)
	}
	stored := *grade
	r.store.grades[grade.ID] = &stored
	return nil
}

func (r *gradeRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.grades, id)
	return nil
}
