// Package seed loads the demo dataset into an empty store.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/repositories"
	"github.com/campushub/registra/internal/pkg/auth"
	"github.com/campushub/registra/internal/pkg/logger"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password"

func floatPtr(v float64) *float64 { return &v }

// Run seeds the demo departments, students, courses, instructors,
// sections, enrollments, grades and the three well-known accounts
// (admin, teacher, student). It is a no-op when accounts already exist.
func Run(ctx context.Context, store repositories.Store) error {
	accounts, err := store.Accounts().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if len(accounts) > 0 {
		logger.Debug().Msg("Seed skipped, accounts already present")
		return nil
	}

	cs, err := store.Departments().Add(ctx, &models.Department{
		Name:           "Computer Science",
		Faculty:        "Faculty of Engineering",
		OfficeLocation: "Building A, Floor 2",
	})
	if err != nil {
		return err
	}
	is, err := store.Departments().Add(ctx, &models.Department{
		Name:           "Information Systems",
		Faculty:        "Faculty of Engineering",
		OfficeLocation: "Building B, Floor 1",
	})
	if err != nil {
		return err
	}

	enrolledAt := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

	students := []*models.Student{
		{StudentCode: "STU001", FullName: "Ali Mansour", Email: "ali@university.edu", Major: "Computer Science", GPA: 3.6, TotalCredits: 96, EnrollmentDate: enrolledAt, DepartmentID: &cs.ID},
		{StudentCode: "STU002", FullName: "Mona Khaled", Email: "mona@university.edu", Major: "Information Systems", GPA: 3.2, TotalCredits: 80, EnrollmentDate: enrolledAt, DepartmentID: &is.ID},
		{StudentCode: "STU003", FullName: "Sara Aziz", Email: "sara@university.edu", Major: "Computer Science", GPA: 3.9, TotalCredits: 110, EnrollmentDate: enrolledAt, DepartmentID: &cs.ID},
	}
	for _, student := range students {
		if _, err := store.Students().Add(ctx, student); err != nil {
			return err
		}
	}

	courses := []*models.Course{
		{CourseCode: "CSI101", Title: "Introduction to Programming", Credits: 3, Instructor: "Dr. Khalil", Semester: "Fall 2026", StartDate: time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2026, time.December, 18, 0, 0, 0, 0, time.UTC), MaxStudents: 40, DepartmentID: &cs.ID},
		{CourseCode: "DBI201", Title: "Database Systems", Credits: 4, Instructor: "Dr. Rania", Semester: "Fall 2026", StartDate: time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2026, time.December, 18, 0, 0, 0, 0, time.UTC), MaxStudents: 35, DepartmentID: &is.ID},
	}
	for _, course := range courses {
		if _, err := store.Courses().Add(ctx, course); err != nil {
			return err
		}
	}

	instructors := []*models.Instructor{
		{FullName: "Dr. Khalil Barakat", Email: "khalil@university.edu", PhoneNumber: "+961-1-000001", DepartmentID: &cs.ID},
		{FullName: "Dr. Rania Nasr", Email: "rania@university.edu", PhoneNumber: "+961-1-000002", DepartmentID: &is.ID},
	}
	for _, instructor := range instructors {
		if _, err := store.Instructors().Add(ctx, instructor); err != nil {
			return err
		}
	}

	sections := []*models.ClassSection{
		{CourseID: courses[0].ID, InstructorID: instructors[0].ID, Semester: "Fall 2026", AcademicYear: "2026-2027", Room: "A-204", Schedule: "Mon/Wed 10:00-11:30"},
		{CourseID: courses[1].ID, InstructorID: instructors[1].ID, Semester: "Fall 2026", AcademicYear: "2026-2027", Room: "B-101", Schedule: "Tue/Thu 13:00-14:30"},
	}
	for _, section := range sections {
		if _, err := store.Sections().Add(ctx, section); err != nil {
			return err
		}
	}

	enrollments := []*models.Enrollment{
		{StudentID: students[0].ID, CourseID: courses[0].ID, Status: models.EnrollmentActive},
		{StudentID: students[1].ID, CourseID: courses[0].ID, Status: models.EnrollmentActive},
		{StudentID: students[2].ID, CourseID: courses[1].ID, Status: models.EnrollmentActive},
	}
	for _, enrollment := range enrollments {
		if _, err := store.Enrollments().Add(ctx, enrollment); err != nil {
			return err
		}
	}

	grades := []*models.Grade{
		{EnrollmentID: enrollments[0].ID, AssignmentScore: floatPtr(88), MidtermScore: floatPtr(84), FinalScore: floatPtr(90), FinalGrade: "A-"},
		{EnrollmentID: enrollments[1].ID, AssignmentScore: floatPtr(75), MidtermScore: floatPtr(78), FinalScore: floatPtr(80), FinalGrade: "B+"},
		{EnrollmentID: enrollments[2].ID, AssignmentScore: floatPtr(95), MidtermScore: floatPtr(92), FinalScore: floatPtr(96), FinalGrade: "A"},
	}
	for _, grade := range grades {
		if _, err := store.Grades().Add(ctx, grade); err != nil {
			return err
		}
	}

	hashed, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	demoAccounts := []*models.UserAccount{
		{Username: "admin", Password: hashed, Email: "admin@university.edu", Role: models.RoleAdmin},
		{Username: "teacher", Password: hashed, Email: "teacher@university.edu", Role: models.RoleInstructor, InstructorID: &instructors[0].ID},
		{Username: "student", Password: hashed, Email: "ali@university.edu", Role: models.RoleStudent, StudentID: &students[0].ID},
	}
	for _, account := range demoAccounts {
		if _, err := store.Accounts().Add(ctx, account); err != nil {
			return err
		}
	}

	logger.Info().
		Int("students", len(students)).
		Int("courses", len(courses)).
		Int("accounts", len(demoAccounts)).
		Msg("Demo data seeded")

	return nil
}
