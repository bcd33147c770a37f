package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardAggregatesSeededData(t *testing.T) {
	store := newSeededStore(t)
	svc := NewDashboardService(store, NewClassificationService())

	dashboard, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.TotalStudents)
	assert.Equal(t, 2, dashboard.TotalCourses)
	assert.Equal(t, 2, dashboard.TotalDepartments)
	assert.Equal(t, 3, dashboard.ActiveEnrollments)
	assert.Equal(t, 3.57, dashboard.AverageGPA)
	assert.Equal(t, 286, dashboard.TotalCredits)

	require.NotEmpty(t, dashboard.TopStudents)
	assert.Equal(t, "STU003", dashboard.TopStudents[0].StudentCode)
	assert.Equal(t, "Outstanding", dashboard.TopStudents[0].Rank)

	assert.Equal(t, 3, dashboard.EnrollmentsByStatus["ACTIVE"])
	assert.Equal(t, 1, dashboard.GradeDistribution["A"])
	assert.Equal(t, 1, dashboard.GradeDistribution["A-"])
	assert.Equal(t, 1, dashboard.GradeDistribution["B+"])

	assert.Equal(t, 1, dashboard.AccountsByRole["ADMIN"])
	assert.Equal(t, 1, dashboard.AccountsByRole["INSTRUCTOR"])
	assert.Equal(t, 1, dashboard.AccountsByRole["STUDENT"])

	require.Len(t, dashboard.Departments, 2)
	cs := dashboard.Departments[0]
	assert.Equal(t, "Computer Science", cs.Name)
	assert.Equal(t, 2, cs.StudentCount)
	assert.Equal(t, 1, cs.CourseCount)
}

func TestDashboardEmptyStore(t *testing.T) {
	store := newEmptyStore(t)
	svc := NewDashboardService(store, NewClassificationService())

	dashboard, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, dashboard.TotalStudents)
	assert.Zero(t, dashboard.AverageGPA)
	assert.Empty(t, dashboard.TopStudents)
}
