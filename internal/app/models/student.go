package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64     `json:"id" db:"id" example:"1"`                              // Unique identifier for the student record
	StudentCode    string    `json:"studentCode" db:"student_code" example:"STU001"`      // Student's unique code, compared case-insensitively
	FullName       string    `json:"fullName" db:"full_name" example:"Nguyen Van A"`      // Student's full name
	Email          string    `json:"email,omitempty" db:"email"`                          // Email address, unique when present
	Major          string    `json:"major" db:"major" example:"Computer Science"`         // Declared major
	GPA            float64   `json:"gpa" db:"gpa" example:"3.6"`                          // Grade point average, 0-4
	TotalCredits   int       `json:"totalCredits" db:"total_credits" example:"96"`        // Accumulated credits, 0-200
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`                 // Date the student joined
	DepartmentID   *int64    `json:"departmentId,omitempty" db:"department_id"`           // Owning department (nullable)

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
