package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/registra/internal/app/models"
)

const gradeSelect = `
	SELECT g.id, g.enrollment_id, g.assignment_score, g.midterm_score, g.final_score, g.final_grade
	FROM grades g`

// GradeRepository persists grade rows.
type GradeRepository struct {
	db DBTX
}

// NewGradeRepository creates a new grade repository.
func NewGradeRepository(db DBTX) *GradeRepository {
	return &GradeRepository{db: db}
}

func scanGrade(row pgx.Row) (*models.Grade, error) {
	var grade models.Grade
	err := row.Scan(
		&grade.ID, &grade.EnrollmentID, &grade.AssignmentScore,
		&grade.MidtermScore, &grade.FinalScore, &grade.FinalGrade,
	)
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

// GetByID returns the grade with the given ID, or nil when absent.
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	row := r.db.QueryRow(ctx, gradeSelect+` WHERE g.id = $1`, id)

	grade, err := scanGrade(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grade: %w", err)
	}

	return grade, nil
}

// GetByEnrollment returns the grade recorded for an enrollment, or nil
// when none exists.
func (r *GradeRepository) GetByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	row := r.db.QueryRow(ctx, gradeSelect+` WHERE g.enrollment_id = $1`, enrollmentID)

	grade, err := scanGrade(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grade by enrollment: %w", err)
	}

	return grade, nil
}

// GetByStudent returns all grades belonging to a student's enrollments.
func (r *GradeRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	rows, err := r.db.Query(ctx, gradeSelect+`
		JOIN enrollments e ON e.id = g.enrollment_id
		WHERE e.student_id = $1
		ORDER BY g.id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		grade, err := scanGrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grades: %w", err)
	}

	return grades, nil
}

// Add inserts a grade and returns it with its generated ID.
func (r *GradeRepository) Add(ctx context.Context, grade *models.Grade) (*models.Grade, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO grades (enrollment_id, assignment_score, midterm_score, final_score, final_grade)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		grade.EnrollmentID, grade.AssignmentScore, grade.MidtermScore,
		grade.FinalScore, grade.FinalGrade,
	).Scan(&grade.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert grade: %w", err)
	}

	return grade, nil
}

// Update rewrites a grade's scores.
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE grades
		SET assignment_score = $1, midterm_score = $2, final_score = $3, final_grade = $4
		WHERE id = $5`,
		grade.AssignmentScore, grade.MidtermScore, grade.FinalScore,
		grade.FinalGrade, grade.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update grade: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("grade %d not found", grade.ID)
	}

	return nil
}

// Delete removes a grade. Missing rows are ignored.
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete grade: %w", err)
	}
	return nil
}
