package dto

// CreateInstructorRequest is the payload for creating an instructor.
type CreateInstructorRequest struct {
	FullName     string `json:"fullName" binding:"required,max=120" example:"Dr. Khalil"`
	Email        string `json:"email" binding:"required,email" example:"khalil@university.edu"`
	PhoneNumber  string `json:"phoneNumber" binding:"omitempty,max=30"`
	DepartmentID *int64 `json:"departmentId,omitempty" example:"1"`
}

// UpdateInstructorRequest is the payload for updating an instructor.
type UpdateInstructorRequest struct {
	FullName     string `json:"fullName" binding:"required,max=120"`
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phoneNumber" binding:"omitempty,max=30"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// InstructorResponse describes an instructor.
type InstructorResponse struct {
	ID          int64               `json:"id" example:"1"`
	FullName    string              `json:"fullName" example:"Dr. Khalil"`
	Email       string              `json:"email" example:"khalil@university.edu"`
	PhoneNumber string              `json:"phoneNumber,omitempty"`
	Department  *DepartmentResponse `json:"department,omitempty"`
}
