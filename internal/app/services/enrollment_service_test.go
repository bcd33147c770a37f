package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/registra/internal/app/auth"
	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/repositories/memory"
	"github.com/campushub/registra/internal/pkg/apperrors"
	"github.com/campushub/registra/internal/seed"
)

// newSeededStore opens an in-memory store with the demo dataset:
// departments 1-2, students 1-3, courses 1 (CSI101) and 2 (DBI201), three
// active enrollments and the admin/teacher/student accounts.
func newSeededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, seed.Run(context.Background(), store))
	return store
}

func newEmptyStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.NewStore()
}

func adminIdentity() auth.Identity {
	return auth.Identity{UserID: 1, Username: "admin", Role: models.RoleAdmin}
}

func studentIdentity(studentID int64) auth.Identity {
	return auth.Identity{UserID: 3, Username: "student", Role: models.RoleStudent, StudentID: &studentID}
}

func newEnrollmentService(store *memory.Store) *EnrollmentService {
	return NewEnrollmentService(store, NewAuthService(store, nil))
}

func TestAssignStudentByAdmin(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	// Student 3 is not yet on course 1.
	result, err := svc.AssignStudent(context.Background(), adminIdentity(), 1, 3)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OutcomeEnrolled, result.Outcome)
	assert.Equal(t, 3, result.ActiveCount)

	enrollment, err := store.Enrollments().GetByStudentAndCourse(context.Background(), 3, 1)
	require.NoError(t, err)
	require.NotNil(t, enrollment)
	assert.Equal(t, models.EnrollmentActive, enrollment.Status)
}

func TestAssignStudentDuplicate(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	result, err := svc.AssignStudent(context.Background(), adminIdentity(), 1, 1)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeAlreadyEnrolled, result.Outcome)
}

func TestAssignStudentCourseFull(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	tiny, err := store.Courses().Add(context.Background(), &models.Course{
		CourseCode:  "SEM400",
		Title:       "Research Seminar",
		Credits:     2,
		StartDate:   time.Now(),
		EndDate:     time.Now().AddDate(0, 4, 0),
		MaxStudents: 1,
	})
	require.NoError(t, err)

	first, err := svc.AssignStudent(context.Background(), adminIdentity(), tiny.ID, 1)
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := svc.AssignStudent(context.Background(), adminIdentity(), tiny.ID, 2)
	require.NoError(t, err)

	assert.False(t, second.Success)
	assert.Equal(t, OutcomeCourseFull, second.Outcome)
	assert.Equal(t, 1, second.ActiveCount)
}

func TestAssignStudentMissingCourse(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	_, err := svc.AssignStudent(context.Background(), adminIdentity(), 999, 1)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestAssignStudentMissingStudent(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	result, err := svc.AssignStudent(context.Background(), adminIdentity(), 1, 999)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeNoStudent, result.Outcome)
}

func TestAssignStudentSelfOnlyForStudents(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	// The caller is linked to student 1 but targets student 2.
	result, err := svc.AssignStudent(context.Background(), studentIdentity(1), 2, 2)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeSelfOnly, result.Outcome)
}

func TestEnrollSelf(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	// Student 1 is on course 1 only.
	result, err := svc.EnrollSelf(context.Background(), studentIdentity(1), 2)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OutcomeEnrolled, result.Outcome)
}

func TestEnrollSelfRequiresStudentRole(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	result, err := svc.EnrollSelf(context.Background(), adminIdentity(), 1)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeOnlyStudents, result.Outcome)
}

func TestEnrollSelfUnlinkedAccount(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	_, err := store.Accounts().Add(context.Background(), &models.UserAccount{
		Username: "freshman",
		Password: "irrelevant",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	identity := auth.Identity{UserID: 4, Username: "freshman", Role: models.RoleStudent}
	result, err := svc.EnrollSelf(context.Background(), identity, 1)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeAccountUnlinked, result.Outcome)
}

func TestRemoveStudent(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	result, err := svc.RemoveStudent(context.Background(), adminIdentity(), 1, 1)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OutcomeRemoved, result.Outcome)
	assert.Equal(t, 1, result.ActiveCount)

	enrollment, err := store.Enrollments().GetByStudentAndCourse(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Nil(t, enrollment)
}

func TestRemoveStudentNotEnrolled(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	// Student 3 has no enrollment on course 1; removal still succeeds.
	result, err := svc.RemoveStudent(context.Background(), adminIdentity(), 1, 3)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OutcomeRemoved, result.Outcome)
	assert.Equal(t, 2, result.ActiveCount)
}

func TestRemoveStudentSelfOnly(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	result, err := svc.RemoveStudent(context.Background(), studentIdentity(1), 1, 2)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeSelfOnly, result.Outcome)

	enrollment, err := store.Enrollments().GetByStudentAndCourse(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.NotNil(t, enrollment)
}

func TestEnrollSelfResolvesLinkThroughAccount(t *testing.T) {
	store := newSeededStore(t)
	svc := newEnrollmentService(store)

	// No student id in the claims; the service falls back to the account.
	identity := auth.Identity{UserID: 3, Username: "student", Role: models.RoleStudent}
	result, err := svc.EnrollSelf(context.Background(), identity, 2)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OutcomeEnrolled, result.Outcome)
}
