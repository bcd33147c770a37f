package services

import (
	"context"
	"math"
	"sort"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/models/dto"
	"github.com/campushub/registra/internal/app/repositories"
)

// topStudentCount limits the dashboard ranking.
const topStudentCount = 3

// DashboardService aggregates headline figures across all records.
type DashboardService struct {
	store          repositories.Store
	classification *ClassificationService
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(store repositories.Store, classification *ClassificationService) *DashboardService {
	return &DashboardService{
		store:          store,
		classification: classification,
	}
}

// GetDashboard computes the landing view aggregates. Pure read.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	students, err := s.store.Students().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.store.Courses().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.store.Departments().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.store.Enrollments().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.store.Accounts().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	response := &dto.DashboardResponse{
		TotalStudents:       len(students),
		TotalCourses:        len(courses),
		TotalDepartments:    len(departments),
		EnrollmentsByStatus: make(map[string]int),
		GradeDistribution:   make(map[string]int),
		AccountsByRole:      make(map[string]int),
		TopStudents:         []dto.TopStudent{},
		Departments:         []dto.DepartmentSummary{},
	}

	gpaSum := 0.0
	for _, student := range students {
		gpaSum += student.GPA
		response.TotalCredits += student.TotalCredits
	}
	if len(students) > 0 {
		// Two decimal places is enough for a headline figure.
		response.AverageGPA = math.Round(gpaSum/float64(len(students))*100) / 100
	}

	for _, enrollment := range enrollments {
		response.EnrollmentsByStatus[string(enrollment.Status)]++
		if enrollment.IsActive() {
			response.ActiveEnrollments++
		}

		grade, err := s.store.Grades().GetByEnrollment(ctx, enrollment.ID)
		if err != nil {
			return nil, err
		}
		if grade != nil && grade.FinalGrade != "" {
			response.GradeDistribution[grade.FinalGrade]++
		}
	}

	for _, account := range accounts {
		response.AccountsByRole[string(account.Role)]++
	}

	response.TopStudents = s.topStudents(students)
	response.Departments = departmentSummaries(departments, students, courses)

	return response, nil
}

func (s *DashboardService) topStudents(students []*models.Student) []dto.TopStudent {
	ranked := make([]*models.Student, len(students))
	copy(ranked, students)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].GPA > ranked[j].GPA })

	if len(ranked) > topStudentCount {
		ranked = ranked[:topStudentCount]
	}

	top := make([]dto.TopStudent, 0, len(ranked))
	for _, student := range ranked {
		top = append(top, dto.TopStudent{
			StudentID:   student.ID,
			StudentCode: student.StudentCode,
			FullName:    student.FullName,
			GPA:         student.GPA,
			Rank:        s.classification.Classify(student, ClassifyByGPA),
		})
	}
	return top
}

func departmentSummaries(departments []*models.Department, students []*models.Student, courses []*models.Course) []dto.DepartmentSummary {
	summaries := make([]dto.DepartmentSummary, 0, len(departments))
	for _, department := range departments {
		summary := dto.DepartmentSummary{
			DepartmentID: department.ID,
			Name:         department.Name,
		}
		for _, student := range students {
			if student.DepartmentID != nil && *student.DepartmentID == department.ID {
				summary.StudentCount++
			}
		}
		for _, course := range courses {
			if course.DepartmentID != nil && *course.DepartmentID == department.ID {
				summary.CourseCount++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
