package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/pkg/apperrors"
)

func TestEnrollmentPairUniqueness(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Enrollments().Add(ctx, &models.Enrollment{StudentID: 1, CourseID: 1, Status: models.EnrollmentActive})
	require.NoError(t, err)

	_, err = store.Enrollments().Add(ctx, &models.Enrollment{StudentID: 1, CourseID: 1, Status: models.EnrollmentActive})
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
}

func TestAccountUsernameCaseInsensitive(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Accounts().Add(ctx, &models.UserAccount{Username: "JDoe", Password: "hash", Role: models.RoleStudent})
	require.NoError(t, err)

	found, err := store.Accounts().GetByUsername(ctx, "jdoe")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "JDoe", found.Username)

	_, err = store.Accounts().Add(ctx, &models.UserAccount{Username: "JDOE", Password: "hash", Role: models.RoleStudent})
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	student, err := store.Students().GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, student)

	course, err := store.Courses().GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, course)
}

func TestStudentCopiesAreDetached(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, err := store.Students().Add(ctx, &models.Student{
		StudentCode: "STU001",
		FullName:    "Ali Mansour",
		Email:       "ali@university.edu",
	})
	require.NoError(t, err)

	fetched, err := store.Students().GetByID(ctx, created.ID)
	require.NoError(t, err)

	// Mutating the returned copy must not change the stored record.
	fetched.FullName = "Changed"

	again, err := store.Students().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ali Mansour", again.FullName)
}

func TestDepartmentDeleteClearsReferences(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	dept, err := store.Departments().Add(ctx, &models.Department{Name: "Computer Science"})
	require.NoError(t, err)

	student, err := store.Students().Add(ctx, &models.Student{
		StudentCode:  "STU001",
		FullName:     "Ali Mansour",
		Email:        "ali@university.edu",
		DepartmentID: &dept.ID,
	})
	require.NoError(t, err)

	require.NoError(t, store.Departments().Delete(ctx, dept.ID))

	refreshed, err := store.Students().GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Nil(t, refreshed.DepartmentID)
}

func TestIDsAreMonotonic(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first, err := store.Departments().Add(ctx, &models.Department{Name: "A"})
	require.NoError(t, err)
	second, err := store.Departments().Add(ctx, &models.Department{Name: "B"})
	require.NoError(t, err)

	require.NoError(t, store.Departments().Delete(ctx, second.ID))

	third, err := store.Departments().Add(ctx, &models.Department{Name: "C"})
	require.NoError(t, err)

	assert.Equal(t, first.ID+2, third.ID)
}
