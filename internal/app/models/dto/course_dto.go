package dto

import "time"

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	CourseCode   string    `json:"courseCode" binding:"required,max=20" example:"CSI101"`
	Title        string    `json:"title" binding:"required,max=160" example:"Introduction to Programming"`
	Description  *string   `json:"description,omitempty"`
	Credits      int       `json:"credits" binding:"required,gte=1,lte=12" example:"3"`
	Instructor   string    `json:"instructor" binding:"omitempty,max=120" example:"Dr. Khalil"`
	Semester     string    `json:"semester" binding:"omitempty,max=40" example:"Fall 2026"`
	StartDate    time.Time `json:"startDate" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required"`
	MaxStudents  int       `json:"maxStudents" binding:"required,gte=1" example:"40"`
	DepartmentID *int64    `json:"departmentId,omitempty" example:"1"`
}

// UpdateCourseRequest is the payload for updating a course.
type UpdateCourseRequest struct {
	Title        string    `json:"title" binding:"required,max=160"`
	Description  *string   `json:"description,omitempty"`
	Credits      int       `json:"credits" binding:"required,gte=1,lte=12"`
	Instructor   string    `json:"instructor" binding:"omitempty,max=120"`
	Semester     string    `json:"semester" binding:"omitempty,max=40"`
	StartDate    time.Time `json:"startDate" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required"`
	MaxStudents  int       `json:"maxStudents" binding:"required,gte=1"`
	DepartmentID *int64    `json:"departmentId,omitempty"`
}

// CourseResponse describes a course.
type CourseResponse struct {
	ID           int64               `json:"id" example:"1"`
	CourseCode   string              `json:"courseCode" example:"CSI101"`
	Title        string              `json:"title" example:"Introduction to Programming"`
	Description  *string             `json:"description,omitempty"`
	Credits      int                 `json:"credits" example:"3"`
	Instructor   string              `json:"instructor,omitempty"`
	Semester     string              `json:"semester,omitempty"`
	StartDate    time.Time           `json:"startDate"`
	EndDate      time.Time           `json:"endDate"`
	MaxStudents  int                 `json:"maxStudents" example:"40"`
	ActiveCount  int                 `json:"activeCount" example:"12"`
	Department   *DepartmentResponse `json:"department,omitempty"`
}

// CourseDetailResponse extends the course with its roster, the students
// still eligible to join, and whether the caller is already on it.
type CourseDetailResponse struct {
	CourseResponse
	EnrolledStudents  []StudentResponse `json:"enrolledStudents"`
	AvailableStudents []StudentResponse `json:"availableStudents"`
	CallerEnrolled    bool              `json:"callerEnrolled" example:"false"`
}
