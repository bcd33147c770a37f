package models

import "time"

// Course represents a course students can enroll in.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	CourseCode   string    `json:"courseCode" db:"course_code" example:"CSI101"` // Unique code, compared case-insensitively
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description,omitempty" db:"description"` // Nullable
	Credits      int       `json:"credits" db:"credits" example:"3"`       // 1-10
	Instructor   string    `json:"instructor" db:"instructor"`             // Display name of the lecturer
	Semester     string    `json:"semester" db:"semester" example:"2024-1"`
	StartDate    time.Time `json:"startDate" db:"start_date"`
	EndDate      time.Time `json:"endDate" db:"end_date"`
	MaxStudents  int       `json:"maxStudents" db:"max_students" example:"50"` // Capacity, 1-200
	DepartmentID *int64    `json:"departmentId,omitempty" db:"department_id"`  // Owning department (nullable)

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
