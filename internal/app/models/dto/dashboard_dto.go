package dto

// DepartmentSummary reports per-department record counts.
type DepartmentSummary struct {
	DepartmentID int64  `json:"departmentId" example:"1"`
	Name         string `json:"name" example:"Computer Science"`
	StudentCount int    `json:"studentCount" example:"2"`
	CourseCount  int    `json:"courseCount" example:"1"`
}

// TopStudent is a dashboard row for the highest-GPA students.
type TopStudent struct {
	StudentID   int64   `json:"studentId" example:"3"`
	StudentCode string  `json:"studentCode" example:"STU003"`
	FullName    string  `json:"fullName" example:"Sara Aziz"`
	GPA         float64 `json:"gpa" example:"3.9"`
	Rank        string  `json:"rank" example:"Outstanding"`
}

// DashboardResponse aggregates headline figures for the landing view.
type DashboardResponse struct {
	TotalStudents       int                 `json:"totalStudents" example:"3"`
	TotalCourses        int                 `json:"totalCourses" example:"2"`
	TotalDepartments    int                 `json:"totalDepartments" example:"2"`
	ActiveEnrollments   int                 `json:"activeEnrollments" example:"3"`
	AverageGPA          float64             `json:"averageGpa" example:"3.57"`
	TotalCredits        int                 `json:"totalCredits" example:"286"`
	TopStudents         []TopStudent        `json:"topStudents"`
	Departments         []DepartmentSummary `json:"departments"`
	EnrollmentsByStatus map[string]int      `json:"enrollmentsByStatus"`
	GradeDistribution   map[string]int      `json:"gradeDistribution"`
	AccountsByRole      map[string]int      `json:"accountsByRole"`
}
