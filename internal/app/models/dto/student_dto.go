package dto

import "time"

// CreateStudentRequest is the payload for creating a student record.
type CreateStudentRequest struct {
	StudentCode  string  `json:"studentCode" binding:"required,max=20" example:"STU004"`
	FullName     string  `json:"fullName" binding:"required,max=120" example:"Dana Haddad"`
	Email        string  `json:"email" binding:"required,email" example:"dana@university.edu"`
	Major        string  `json:"major" binding:"omitempty,max=80" example:"Computer Science"`
	GPA          float64 `json:"gpa" binding:"gte=0,lte=4"`
	TotalCredits int     `json:"totalCredits" binding:"gte=0" example:"30"`
	DepartmentID *int64  `json:"departmentId,omitempty" example:"1"`
}

// UpdateStudentRequest is the payload for updating a student record.
type UpdateStudentRequest struct {
	FullName     string  `json:"fullName" binding:"required,max=120"`
	Email        string  `json:"email" binding:"required,email"`
	Major        string  `json:"major" binding:"omitempty,max=80"`
	GPA          float64 `json:"gpa" binding:"gte=0,lte=4"`
	TotalCredits int     `json:"totalCredits" binding:"gte=0"`
	DepartmentID *int64  `json:"departmentId,omitempty"`
}

// StudentResponse describes a student record with its classification
// ranks attached.
type StudentResponse struct {
	ID                   int64               `json:"id" example:"1"`
	StudentCode          string              `json:"studentCode" example:"STU001"`
	FullName             string              `json:"fullName" example:"Ali Mansour"`
	Email                string              `json:"email" example:"ali@university.edu"`
	Major                string              `json:"major,omitempty"`
	GPA                  float64             `json:"gpa" example:"3.6"`
	TotalCredits         int                 `json:"totalCredits" example:"96"`
	EnrollmentDate       time.Time           `json:"enrollmentDate"`
	GPAClassification    string              `json:"gpaClassification" example:"Good"`
	CreditClassification string              `json:"creditClassification" example:"Good progress"`
	Department           *DepartmentResponse `json:"department,omitempty"`
}

// StudentDetailResponse extends the student record with its enrollments.
type StudentDetailResponse struct {
	StudentResponse
	Enrollments []EnrollmentResponse `json:"enrollments"`
}
