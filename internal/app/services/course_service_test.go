package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/pkg/apperrors"
)

func TestCourseGetAllWithCounts(t *testing.T) {
	store := newSeededStore(t)
	svc := NewCourseService(store)

	courses, counts, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, "CSI101", courses[0].CourseCode)
	assert.Equal(t, 2, counts[courses[0].ID])
	assert.Equal(t, 1, counts[courses[1].ID])
}

func TestCourseCreateDuplicateCode(t *testing.T) {
	store := newSeededStore(t)
	svc := NewCourseService(store)

	_, err := svc.Create(context.Background(), &models.Course{
		CourseCode:  "csi101",
		Title:       "Programming Again",
		Credits:     3,
		StartDate:   time.Now(),
		EndDate:     time.Now().AddDate(0, 4, 0),
		MaxStudents: 30,
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseCodeExists)
}

func TestCourseCreateRejectsInvertedDates(t *testing.T) {
	store := newSeededStore(t)
	svc := NewCourseService(store)

	start := time.Now()
	_, err := svc.Create(context.Background(), &models.Course{
		CourseCode:  "NEW300",
		Title:       "Backwards Course",
		Credits:     3,
		StartDate:   start,
		EndDate:     start.AddDate(0, -1, 0),
		MaxStudents: 30,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCourseGetDetailsPartitionsStudents(t *testing.T) {
	store := newSeededStore(t)
	svc := NewCourseService(store)

	// Course 1 carries students 1 and 2; student 3 is available.
	callerStudent := int64(1)
	details, err := svc.GetDetails(context.Background(), 1, &callerStudent)
	require.NoError(t, err)

	assert.Len(t, details.EnrolledStudents, 2)
	assert.Len(t, details.AvailableStudents, 1)
	assert.Equal(t, "STU003", details.AvailableStudents[0].StudentCode)
	assert.Equal(t, 2, details.ActiveCount)
	assert.True(t, details.CallerEnrolled)
}

func TestCourseGetDetailsAnonymousCaller(t *testing.T) {
	store := newSeededStore(t)
	svc := NewCourseService(store)

	details, err := svc.GetDetails(context.Background(), 2, nil)
	require.NoError(t, err)

	assert.False(t, details.CallerEnrolled)
	assert.Equal(t, 1, details.ActiveCount)
}

func TestCourseDeleteCascades(t *testing.T) {
	store := newSeededStore(t)
	svc := NewCourseService(store)

	require.NoError(t, svc.Delete(context.Background(), 1))

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	enrollments, err := store.Enrollments().GetByCourse(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, enrollments)

	sections, err := store.Sections().GetByCourse(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestCourseUpdateMissing(t *testing.T) {
	store := newSeededStore(t)
	svc := NewCourseService(store)

	_, err := svc.Update(context.Background(), 999, &models.Course{
		Title:       "Ghost",
		Credits:     3,
		StartDate:   time.Now(),
		EndDate:     time.Now().AddDate(0, 4, 0),
		MaxStudents: 10,
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
