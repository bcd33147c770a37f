package models

// Enrollment links one student to one course. At most one enrollment
// exists per (student, course) pair.
type Enrollment struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	CourseID  int64            `json:"courseId" db:"course_id"`
	Status    EnrollmentStatus `json:"status" db:"status" example:"ACTIVE"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}

// IsActive reports whether the enrollment counts against course capacity.
func (e *Enrollment) IsActive() bool {
	return e.Status == EnrollmentActive
}
