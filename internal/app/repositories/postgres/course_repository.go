package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/registra/internal/app/models"
)

const courseSelect = `
	SELECT c.id, c.course_code, c.title, c.description, c.credits, c.instructor,
	       c.semester, c.start_date, c.end_date, c.max_students, c.department_id,
	       d.id, d.name, d.faculty, d.office_location
	FROM courses c
	LEFT JOIN departments d ON d.id = c.department_id`

// CourseRepository persists course records.
type CourseRepository struct {
	db DBTX
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var deptID *int64
	var deptName, deptFaculty, deptOffice *string

	err := row.Scan(
		&course.ID, &course.CourseCode, &course.Title, &course.Description,
		&course.Credits, &course.Instructor, &course.Semester,
		&course.StartDate, &course.EndDate, &course.MaxStudents, &course.DepartmentID,
		&deptID, &deptName, &deptFaculty, &deptOffice,
	)
	if err != nil {
		return nil, err
	}

	if deptID != nil {
		course.Department = &models.Department{
			ID:             *deptID,
			Name:           derefString(deptName),
			Faculty:        derefString(deptFaculty),
			OfficeLocation: derefString(deptOffice),
		}
	}

	return &course, nil
}

// GetAll returns all courses ordered by their code.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, courseSelect+` ORDER BY c.course_code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}

// GetByID returns the course with the given ID, or nil when absent.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	row := r.db.QueryRow(ctx, courseSelect+` WHERE c.id = $1`, id)

	course, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return course, nil
}

// GetByCode returns the course with the given code, matched
// case-insensitively, or nil when absent.
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	row := r.db.QueryRow(ctx, courseSelect+` WHERE LOWER(c.course_code) = LOWER($1)`, code)

	course, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by code: %w", err)
	}

	return course, nil
}

// Add inserts a course and returns it with its generated ID.
func (r *CourseRepository) Add(ctx context.Context, course *models.Course) (*models.Course, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (course_code, title, description, credits, instructor, semester, start_date, end_date, max_students, department_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		course.CourseCode, course.Title, course.Description, course.Credits,
		course.Instructor, course.Semester, course.StartDate, course.EndDate,
		course.MaxStudents, course.DepartmentID,
	).Scan(&course.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert course: %w", err)
	}

	return course, nil
}

// Update rewrites a course's mutable fields.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET title = $1, description = $2, credits = $3, instructor = $4, semester = $5,
		    start_date = $6, end_date = $7, max_students = $8, department_id = $9
		WHERE id = $10`,
		course.Title, course.Description, course.Credits, course.Instructor,
		course.Semester, course.StartDate, course.EndDate, course.MaxStudents,
		course.DepartmentID, course.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("course %d not found", course.ID)
	}

	return nil
}

// Delete removes a course. Missing rows are ignored.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}
