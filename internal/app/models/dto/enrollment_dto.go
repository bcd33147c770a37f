package dto

// AssignStudentRequest is the payload for a staff-initiated enrollment.
type AssignStudentRequest struct {
	StudentID int64 `json:"studentId" binding:"required" example:"1"`
}

// EnrollmentResult reports the outcome of an enrollment operation. Business
// rule rejections are reported here rather than as transport errors.
type EnrollmentResult struct {
	Success     bool   `json:"success" example:"true"`
	Outcome     string `json:"outcome" example:"ENROLLED"`
	Message     string `json:"message" example:"Ali Mansour enrolled in CSI101"`
	ActiveCount int    `json:"activeCount" example:"13"`
}

// EnrollmentResponse describes a single enrollment row.
type EnrollmentResponse struct {
	ID        int64            `json:"id" example:"1"`
	StudentID int64            `json:"studentId" example:"1"`
	CourseID  int64            `json:"courseId" example:"1"`
	Status    string           `json:"status" example:"ACTIVE"`
	Student   *StudentResponse `json:"student,omitempty"`
	Course    *CourseResponse  `json:"course,omitempty"`
}
