// Package controllers exposes the HTTP handlers. Each controller binds the
// request, delegates to its service, and maps models to response DTOs.
package controllers

import (
	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/models/dto"
	"github.com/campushub/registra/internal/app/services"
)

func toDepartmentResponse(department *models.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}
	return &dto.DepartmentResponse{
		ID:             department.ID,
		Name:           department.Name,
		Faculty:        department.Faculty,
		OfficeLocation: department.OfficeLocation,
	}
}

func toStudentResponse(student *models.Student, classification *services.ClassificationService) dto.StudentResponse {
	return dto.StudentResponse{
		ID:                   student.ID,
		StudentCode:          student.StudentCode,
		FullName:             student.FullName,
		Email:                student.Email,
		Major:                student.Major,
		GPA:                  student.GPA,
		TotalCredits:         student.TotalCredits,
		EnrollmentDate:       student.EnrollmentDate,
		GPAClassification:    classification.Classify(student, services.ClassifyByGPA),
		CreditClassification: classification.Classify(student, services.ClassifyByCredits),
		Department:           toDepartmentResponse(student.Department),
	}
}

func toCourseResponse(course *models.Course, activeCount int) dto.CourseResponse {
	return dto.CourseResponse{
		ID:          course.ID,
		CourseCode:  course.CourseCode,
		Title:       course.Title,
		Description: course.Description,
		Credits:     course.Credits,
		Instructor:  course.Instructor,
		Semester:    course.Semester,
		StartDate:   course.StartDate,
		EndDate:     course.EndDate,
		MaxStudents: course.MaxStudents,
		ActiveCount: activeCount,
		Department:  toDepartmentResponse(course.Department),
	}
}

func toEnrollmentResponse(enrollment *models.Enrollment, classification *services.ClassificationService) dto.EnrollmentResponse {
	response := dto.EnrollmentResponse{
		ID:        enrollment.ID,
		StudentID: enrollment.StudentID,
		CourseID:  enrollment.CourseID,
		Status:    string(enrollment.Status),
	}
	if enrollment.Student != nil {
		student := toStudentResponse(enrollment.Student, classification)
		response.Student = &student
	}
	if enrollment.Course != nil {
		course := toCourseResponse(enrollment.Course, 0)
		response.Course = &course
	}
	return response
}

func toEnrollmentResult(result *services.EnrollmentResult) dto.EnrollmentResult {
	return dto.EnrollmentResult{
		Success:     result.Success,
		Outcome:     string(result.Outcome),
		Message:     result.Message,
		ActiveCount: result.ActiveCount,
	}
}

func toAccountResponse(account *models.UserAccount) dto.AccountResponse {
	return dto.AccountResponse{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		Role:         string(account.Role),
		StudentID:    account.StudentID,
		InstructorID: account.InstructorID,
	}
}

func toInstructorResponse(instructor *models.Instructor) dto.InstructorResponse {
	return dto.InstructorResponse{
		ID:          instructor.ID,
		FullName:    instructor.FullName,
		Email:       instructor.Email,
		PhoneNumber: instructor.PhoneNumber,
		Department:  toDepartmentResponse(instructor.Department),
	}
}
