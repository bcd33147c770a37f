// Package postgres implements the persistence contract on PostgreSQL
// using pgx. Store-level repositories run against the pool; Begin binds a
// fresh repository set to a single transaction.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/registra/internal/app/repositories"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, letting
// every repository run unchanged inside or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repositories.Store = (*Store)(nil)

// Store is the PostgreSQL-backed store.
type Store struct {
	pool *pgxpool.Pool
	repoSet
}

// repoSet bundles the repositories bound to one DBTX.
type repoSet struct {
	students    *StudentRepository
	courses     *CourseRepository
	enrollments *EnrollmentRepository
	departments *DepartmentRepository
	instructors *InstructorRepository
	sections    *SectionRepository
	grades      *GradeRepository
	accounts    *AccountRepository
}

func newRepoSet(db DBTX) repoSet {
	return repoSet{
		students:    NewStudentRepository(db),
		courses:     NewCourseRepository(db),
		enrollments: NewEnrollmentRepository(db),
		departments: NewDepartmentRepository(db),
		instructors: NewInstructorRepository(db),
		sections:    NewSectionRepository(db),
		grades:      NewGradeRepository(db),
		accounts:    NewAccountRepository(db),
	}
}

func (r repoSet) Students() repositories.StudentRepository       { return r.students }
func (r repoSet) Courses() repositories.CourseRepository         { return r.courses }
func (r repoSet) Enrollments() repositories.EnrollmentRepository { return r.enrollments }
func (r repoSet) Departments() repositories.DepartmentRepository { return r.departments }
func (r repoSet) Instructors() repositories.InstructorRepository { return r.instructors }
func (r repoSet) Sections() repositories.SectionRepository       { return r.sections }
func (r repoSet) Grades() repositories.GradeRepository           { return r.grades }
func (r repoSet) Accounts() repositories.AccountRepository       { return r.accounts }

// NewStore creates a store over an established connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:    pool,
		repoSet: newRepoSet(pool),
	}
}

// Begin opens a transaction-scoped unit of work.
func (s *Store) Begin(ctx context.Context) (repositories.UnitOfWork, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return &unitOfWork{
		tx:      tx,
		repoSet: newRepoSet(tx),
	}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

type unitOfWork struct {
	tx   pgx.Tx
	done bool
	repoSet
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Rollback(ctx); err != nil {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}
