// Package memory implements the persistence contract with in-process maps.
// It backs tests and demo deployments where PostgreSQL is not available.
// One mutex guards all tables, so every operation is atomic on its own;
// the unit of work relies on that and commits are no-ops.
package memory

import (
	"context"
	"sync"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/repositories"
)

var _ repositories.Store = (*Store)(nil)

// Store keeps all records in memory.
type Store struct {
	mu sync.RWMutex

	students    map[int64]*models.Student
	courses     map[int64]*models.Course
	enrollments map[int64]*models.Enrollment
	departments map[int64]*models.Department
	instructors map[int64]*models.Instructor
	sections    map[int64]*models.ClassSection
	grades      map[int64]*models.Grade
	accounts    map[int64]*models.UserAccount

	nextID map[string]int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		students:    make(map[int64]*models.Student),
		courses:     make(map[int64]*models.Course),
		enrollments: make(map[int64]*models.Enrollment),
		departments: make(map[int64]*models.Department),
		instructors: make(map[int64]*models.Instructor),
		sections:    make(map[int64]*models.ClassSection),
		grades:      make(map[int64]*models.Grade),
		accounts:    make(map[int64]*models.UserAccount),
		nextID:      make(map[string]int64),
	}
}

func (s *Store) nextIDFor(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

func (s *Store) Students() repositories.StudentRepository       { return &studentRepository{s} }
func (s *Store) Courses() repositories.CourseRepository         { return &courseRepository{s} }
func (s *Store) Enrollments() repositories.EnrollmentRepository { return &enrollmentRepository{s} }
func (s *Store) Departments() repositories.DepartmentRepository { return &departmentRepository{s} }
func (s *Store) Instructors() repositories.InstructorRepository { return &instructorRepository{s} }
func (s *Store) Sections() repositories.SectionRepository       { return &sectionRepository{s} }
func (s *Store) Grades() repositories.GradeRepository           { return &gradeRepository{s} }
func (s *Store) Accounts() repositories.AccountRepository       { return &accountRepository{s} }

// Begin returns a unit of work over the same tables. Commit and Rollback
// are no-ops; partial failures leave earlier writes in place, which is an
// accepted limitation of this backend.
func (s *Store) Begin(ctx context.Context) (repositories.UnitOfWork, error) {
	return &unitOfWork{store: s}, nil
}

// Close is a no-op.
func (s *Store) Close() {}

type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Students() repositories.StudentRepository       { return u.store.Students() }
func (u *unitOfWork) Courses() repositories.CourseRepository         { return u.store.Courses() }
func (u *unitOfWork) Enrollments() repositories.EnrollmentRepository { return u.store.Enrollments() }
func (u *unitOfWork) Departments() repositories.DepartmentRepository { return u.store.Departments() }
func (u *unitOfWork) Instructors() repositories.InstructorRepository { return u.store.Instructors() }
func (u *unitOfWork) Sections() repositories.SectionRepository       { return u.store.Sections() }
func (u *unitOfWork) Grades() repositories.GradeRepository           { return u.store.Grades() }
func (u *unitOfWork) Accounts() repositories.AccountRepository       { return u.store.Accounts() }

func (u *unitOfWork) Commit(ctx context.Context) error   { return nil }
func (u *unitOfWork) Rollback(ctx context.Context) error { return nil }
