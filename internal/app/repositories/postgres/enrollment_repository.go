package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/registra/internal/app/models"
)

const enrollmentSelect = `
	SELECT e.id, e.student_id, e.course_id, e.status
	FROM enrollments e`

// EnrollmentRepository persists enrollment rows.
type EnrollmentRepository struct {
	db DBTX
}

// NewEnrollmentRepository creates a new enrollment repository.
func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := row.Scan(&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.Status)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) queryMany(ctx context.Context, sql string, args ...any) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollments: %w", err)
	}

	return enrollments, nil
}

// GetAll returns every enrollment row.
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	return r.queryMany(ctx, enrollmentSelect+` ORDER BY e.id`)
}

// GetByID returns the enrollment with the given ID, or nil when absent.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	row := r.db.QueryRow(ctx, enrollmentSelect+` WHERE e.id = $1`, id)

	enrollment, err := scanEnrollment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return enrollment, nil
}

// GetByCourse returns the enrollments for one course.
func (r *EnrollmentRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	return r.queryMany(ctx, enrollmentSelect+` WHERE e.course_id = $1 ORDER BY e.id`, courseID)
}

// GetByStudent returns the enrollments for one student.
func (r *EnrollmentRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return r.queryMany(ctx, enrollmentSelect+` WHERE e.student_id = $1 ORDER BY e.id`, studentID)
}

// GetByStudentAndCourse returns the enrollment linking a student to a
// course, or nil when none exists.
func (r *EnrollmentRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	row := r.db.QueryRow(ctx, enrollmentSelect+` WHERE e.student_id = $1 AND e.course_id = $2`, studentID, courseID)

	enrollment, err := scanEnrollment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get enrollment by pair: %w", err)
	}

	return enrollment, nil
}

// CountActiveByCourse counts active enrollments for a course. Inside a
// unit of work the count reflects rows written earlier in the same
// transaction, which is what the capacity check relies on.
func (r *EnrollmentRepository) CountActiveByCourse(ctx context.Context, courseID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM enrollments
		WHERE course_id = $1 AND status = $2`,
		courseID, models.EnrollmentActive,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

// Add inserts an enrollment and returns it with its generated ID. The
// unique (student_id, course_id) constraint surfaces duplicates as a
// unique violation.
func (r *EnrollmentRepository) Add(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO enrollments (student_id, course_id, status)
		VALUES ($1, $2, $3)
		RETURNING id`,
		enrollment.StudentID, enrollment.CourseID, enrollment.Status,
	).Scan(&enrollment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert enrollment: %w", err)
	}

	return enrollment, nil
}

// Update rewrites an enrollment's status.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE enrollments SET status = $1 WHERE id = $2`,
		enrollment.Status, enrollment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("enrollment %d not found", enrollment.ID)
	}

	return nil
}

// Delete removes an enrollment. Missing rows are ignored.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete enrollment: %w", err)
	}
	return nil
}
