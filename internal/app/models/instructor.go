package models

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID           int64  `json:"id" db:"id"`
	FullName     string `json:"fullName" db:"full_name"`
	Email        string `json:"email" db:"email"`
	PhoneNumber  string `json:"phoneNumber" db:"phone_number"`
	DepartmentID *int64 `json:"departmentId,omitempty" db:"department_id"` // Owning department (nullable)

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
