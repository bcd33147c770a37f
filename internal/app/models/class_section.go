package models

// ClassSection represents a scheduled section of a course.
type ClassSection struct {
	ID           int64  `json:"id" db:"id"`
	CourseID     int64  `json:"courseId" db:"course_id"`
	InstructorID int64  `json:"instructorId" db:"instructor_id"`
	Semester     string `json:"semester" db:"semester"`
	AcademicYear string `json:"academicYear" db:"academic_year"`
	Room         string `json:"room" db:"room"`
	Schedule     string `json:"schedule" db:"schedule"`
}
