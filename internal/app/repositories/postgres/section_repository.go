package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/registra/internal/app/models"
)

const sectionSelect = `
	SELECT id, course_id, instructor_id, semester, academic_year, room, schedule
	FROM class_sections`

// SectionRepository persists class sections.
type SectionRepository struct {
	db DBTX
}

// NewSectionRepository creates a new section repository.
func NewSectionRepository(db DBTX) *SectionRepository {
	return &SectionRepository{db: db}
}

func scanSection(row pgx.Row) (*models.ClassSection, error) {
	var section models.ClassSection
	err := row.Scan(
		&section.ID, &section.CourseID, &section.InstructorID,
		&section.Semester, &section.AcademicYear, &section.Room, &section.Schedule,
	)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) queryMany(ctx context.Context, sql string, args ...any) ([]*models.ClassSection, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	var sections []*models.ClassSection
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sections: %w", err)
	}

	return sections, nil
}

// GetAll returns every class section.
func (r *SectionRepository) GetAll(ctx context.Context) ([]*models.ClassSection, error) {
	return r.queryMany(ctx, sectionSelect+` ORDER BY id`)
}

// GetByID returns the section with the given ID, or nil when absent.
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.ClassSection, error) {
	row := r.db.QueryRow(ctx, sectionSelect+` WHERE id = $1`, id)

	section, err := scanSection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	return section, nil
}

// GetByCourse returns the sections of one course.
func (r *SectionRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.ClassSection, error) {
	return r.queryMany(ctx, sectionSelect+` WHERE course_id = $1 ORDER BY id`, courseID)
}

// Add inserts a section and returns it with its generated ID.
func (r *SectionRepository) Add(ctx context.Context, section *models.ClassSection) (*models.ClassSection, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO class_sections (course_id, instructor_id, semester, academic_year, room, schedule)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		section.CourseID, section.InstructorID, section.Semester,
		section.AcademicYear, section.Room, section.Schedule,
	).Scan(&section.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert section: %w", err)
	}

	return section, nil
}

// Update rewrites a section's fields.
func (r *SectionRepository) Update(ctx context.Context, section *models.ClassSection) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE class_sections
		SET course_id = $1, instructor_id = $2, semester = $3, academic_year = $4, room = $5, schedule = $6
		WHERE id = $7`,
		section.CourseID, section.InstructorID, section.Semester,
		section.AcademicYear, section.Room, section.Schedule, section.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update section: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("section %d not found", section.ID)
	}

	return nil
}

// Delete removes a section. Missing rows are ignored.
func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM class_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}
