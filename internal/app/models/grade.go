package models

// Grade carries the scores recorded for one enrollment.
type Grade struct {
	ID              int64    `json:"id" db:"id"`
	EnrollmentID    int64    `json:"enrollmentId" db:"enrollment_id"`
	AssignmentScore *float64 `json:"assignmentScore,omitempty" db:"assignment_score"` // 0-100, unset until recorded
	MidtermScore    *float64 `json:"midtermScore,omitempty" db:"midterm_score"`       // 0-100, unset until recorded
	FinalScore      *float64 `json:"finalScore,omitempty" db:"final_score"`           // 0-100, unset until recorded
	FinalGrade      string   `json:"finalGrade" db:"final_grade" example:"A"`
}
