package models

// UserAccount defines a login account based on the 'user_accounts' table.
// Username is unique case-insensitively.
type UserAccount struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Password     string `json:"-" db:"password"` // Hashed password (excluded from JSON)
	Email        string `json:"email" db:"email"`
	Role         Role   `json:"role" db:"role" example:"STUDENT"`
	StudentID    *int64 `json:"studentId,omitempty" db:"student_id"`       // Linked student identity (nullable)
	InstructorID *int64 `json:"instructorId,omitempty" db:"instructor_id"` // Linked instructor identity (nullable)
}

// Sanitized returns a copy of the account with the password hash cleared.
func (a *UserAccount) Sanitized() *UserAccount {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Password = ""
	return &cp
}
