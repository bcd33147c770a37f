package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/pkg/apperrors"
)

func TestStudentGetAllOrderedByGPA(t *testing.T) {
	store := newSeededStore(t)
	svc := NewStudentService(store)

	students, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 3)

	assert.Equal(t, "STU003", students[0].StudentCode)
	assert.Equal(t, "STU001", students[1].StudentCode)
	assert.Equal(t, "STU002", students[2].StudentCode)
}

func TestStudentCreateDuplicateCode(t *testing.T) {
	store := newSeededStore(t)
	svc := NewStudentService(store)

	_, err := svc.Create(context.Background(), &models.Student{
		StudentCode: "stu001",
		FullName:    "Someone Else",
		Email:       "someone@university.edu",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentCodeExists)
}

func TestStudentCreateDuplicateEmail(t *testing.T) {
	store := newSeededStore(t)
	svc := NewStudentService(store)

	_, err := svc.Create(context.Background(), &models.Student{
		StudentCode: "STU004",
		FullName:    "Someone Else",
		Email:       "ALI@university.edu",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)
}

func TestStudentCreateDefaultsEnrollmentDate(t *testing.T) {
	store := newSeededStore(t)
	svc := NewStudentService(store)

	created, err := svc.Create(context.Background(), &models.Student{
		StudentCode: "STU004",
		FullName:    "Dana Haddad",
		Email:       "dana@university.edu",
		GPA:         3.1,
	})
	require.NoError(t, err)

	assert.False(t, created.EnrollmentDate.IsZero())
	assert.NotZero(t, created.ID)
}

func TestStudentCreateUnknownDepartment(t *testing.T) {
	store := newSeededStore(t)
	svc := NewStudentService(store)

	missing := int64(999)
	_, err := svc.Create(context.Background(), &models.Student{
		StudentCode:  "STU004",
		FullName:     "Dana Haddad",
		Email:        "dana@university.edu",
		DepartmentID: &missing,
	})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestStudentUpdateKeepsCode(t *testing.T) {
	store := newSeededStore(t)
	svc := NewStudentService(store)

	updated, err := svc.Update(context.Background(), 1, &models.Student{
		FullName:     "Ali M. Mansour",
		Email:        "ali@university.edu",
		GPA:          3.7,
		TotalCredits: 99,
	})
	require.NoError(t, err)

	assert.Equal(t, "STU001", updated.StudentCode)
	assert.Equal(t, 3.7, updated.GPA)
}

func TestStudentUpdateDuplicateEmail(t *testing.T) {
	store := newSeededStore(t)
	svc := NewStudentService(store)

	_, err := svc.Update(context.Background(), 1, &models.Student{
		FullName: "Ali Mansour",
		Email:    "mona@university.edu",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)
}

func TestStudentDeleteCascadesEnrollments(t *testing.T) {
	store := newSeededStore(t)
	svc := NewStudentService(store)

	require.NoError(t, svc.Delete(context.Background(), 1))

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	enrollments, err := store.Enrollments().GetByStudent(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestStudentDeleteMissing(t *testing.T) {
	store := newSeededStore(t)
	svc := NewStudentService(store)

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
