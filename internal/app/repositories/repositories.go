// Package repositories defines the persistence contract shared by the
// postgres and in-memory store variants. Reads go through the Store
// directly; mutations run inside a UnitOfWork so multi-step changes
// commit or roll back together.
package repositories

import (
	"context"

	"github.com/campushub/registra/internal/app/models"
)

// Store is the entry point to persistence. Repositories obtained from the
// Store itself auto-commit each call; Begin opens a UnitOfWork whose
// repositories share one transaction.
type Store interface {
	Students() StudentRepository
	Courses() CourseRepository
	Enrollments() EnrollmentRepository
	Departments() DepartmentRepository
	Instructors() InstructorRepository
	Sections() SectionRepository
	Grades() GradeRepository
	Accounts() AccountRepository

	// Begin opens a unit of work. The caller must Commit or Rollback it.
	Begin(ctx context.Context) (UnitOfWork, error)

	// Close releases the underlying resources.
	Close()
}

// UnitOfWork groups repository operations into a single atomic scope.
// Rollback after Commit is a no-op, so `defer uow.Rollback(ctx)` is safe.
type UnitOfWork interface {
	Students() StudentRepository
	Courses() CourseRepository
	Enrollments() EnrollmentRepository
	Departments() DepartmentRepository
	Instructors() InstructorRepository
	Sections() SectionRepository
	Grades() GradeRepository
	Accounts() AccountRepository

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// StudentRepository manages student records. GetByID returns (nil, nil)
// when no record exists.
type StudentRepository interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByCode(ctx context.Context, code string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	Add(ctx context.Context, student *models.Student) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// CourseRepository manages course records.
type CourseRepository interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	Add(ctx context.Context, course *models.Course) (*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentRepository manages enrollment rows linking students to courses.
type EnrollmentRepository interface {
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	CountActiveByCourse(ctx context.Context, courseID int64) (int, error)
	Add(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentRepository manages departments.
type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Add(ctx context.Context, department *models.Department) (*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// InstructorRepository manages instructors.
type InstructorRepository interface {
	GetAll(ctx context.Context) ([]*models.Instructor, error)
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	Add(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id int64) error
}

// SectionRepository manages class sections.
type SectionRepository interface {
	GetAll(ctx context.Context) ([]*models.ClassSection, error)
	GetByID(ctx context.Context, id int64) (*models.ClassSection, error)
	GetByCourse(ctx context.Context, courseID int64) ([]*models.ClassSection, error)
	Add(ctx context.Context, section *models.ClassSection) (*models.ClassSection, error)
	Update(ctx context.Context, section *models.ClassSection) error
	Delete(ctx context.Context, id int64) error
}

// GradeRepository manages grade rows keyed by enrollment.
type GradeRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	GetByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error)
	Add(ctx context.Context, grade *models.Grade) (*models.Grade, error)
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) error
}

// AccountRepository manages user accounts. Username lookups are
// case-insensitive.
type AccountRepository interface {
	GetAll(ctx context.Context) ([]*models.UserAccount, error)
	GetByID(ctx context.Context, id int64) (*models.UserAccount, error)
	GetByUsername(ctx context.Context, username string) (*models.UserAccount, error)
	GetByStudentID(ctx context.Context, studentID int64) (*models.UserAccount, error)
	Add(ctx context.Context, account *models.UserAccount) (*models.UserAccount, error)
	Update(ctx context.Context, account *models.UserAccount) error
	Delete(ctx context.Context, id int64) error
}
