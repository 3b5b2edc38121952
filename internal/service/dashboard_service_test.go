package service

import (
	"context"
	"fmt"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(t *testing.T) (*DashboardService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewCourseRepository(db),
		repository.NewLearningPathRepository(db),
		repository.NewProgressRepository(db),
		repository.NewAssignmentRepository(db),
		nil,
	), db
}

func seedCompletedCourses(t *testing.T, db *gorm.DB, user *model.User, completed, inProgress int) {
	t.Helper()
	n := 0
	for i := 0; i < completed+inProgress; i++ {
		n++
		course := createCourse(t, db, fmt.Sprintf("%s-course-%d", user.Name, n))
		assignment := &model.Assignment{UserID: user.ID, CourseID: &course.ID}
		require.NoError(t, db.Create(assignment).Error)

		status := model.Completed
		if i >= completed {
			status = model.InProgress
		}
		require.NoError(t, db.Create(&model.CourseProgress{
			UserID:           user.ID,
			CourseID:         course.ID,
			AssignmentID:     assignment.ID,
			CompletionStatus: status,
		}).Error)
	}
}

func TestDashboardSummaryEmptyStore(t *testing.T) {
	svc, _ := newDashboardService(t)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	// No progress records must yield a 0% rate, not a division by zero.
	assert.Zero(t, summary.CompletionRate)
	assert.Zero(t, summary.TotalProgress)
	assert.Empty(t, summary.TopEmployees)
}

func TestDashboardSummaryCompletionRate(t *testing.T) {
	svc, db := newDashboardService(t)
	eve := createUser(t, db, "eve", model.Employee)
	seedCompletedCourses(t, db, eve, 3, 1)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 4, summary.TotalProgress)
	assert.InDelta(t, 75.0, summary.CompletionRate, 0.001)
	assert.Equal(t, 1, summary.TotalEmployees)
}

func TestDashboardSummaryRankings(t *testing.T) {
	svc, db := newDashboardService(t)

	// Seven employees with decreasing completion counts.
	for i := 0; i < 7; i++ {
		user := createUser(t, db, fmt.Sprintf("emp%d", i), model.Employee)
		seedCompletedCourses(t, db, user, 7-i, 0)
	}

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.TopEmployees, 5)
	require.Len(t, summary.BottomEmployees, 5)

	assert.Equal(t, "emp0", summary.TopEmployees[0].Name)
	assert.Equal(t, 7, summary.TopEmployees[0].CompletedCourses)
	assert.Equal(t, "emp6", summary.BottomEmployees[0].Name)
	assert.Equal(t, 1, summary.BottomEmployees[0].CompletedCourses)
}

func TestDashboardEmployeeOverview(t *testing.T) {
	svc, db := newDashboardService(t)
	eve := createUser(t, db, "eve", model.Employee)

	// One completed, one in progress, one never started.
	seedCompletedCourses(t, db, eve, 1, 1)
	course := createCourse(t, db, "untouched")
	require.NoError(t, db.Create(&model.Assignment{UserID: eve.ID, CourseID: &course.ID}).Error)

	overview, err := svc.GetEmployeeOverview(eve.ID)
	require.NoError(t, err)

	assert.Len(t, overview.Completed, 1)
	assert.Len(t, overview.InProgress, 1)
	assert.Len(t, overview.NotStarted, 1)
}

func TestDashboardEmployeeOverviewEmpty(t *testing.T) {
	svc, db := newDashboardService(t)
	eve := createUser(t, db, "eve", model.Employee)

	overview, err := svc.GetEmployeeOverview(eve.ID)
	require.NoError(t, err)

	assert.Empty(t, overview.Completed)
	assert.Empty(t, overview.InProgress)
	assert.Empty(t, overview.NotStarted)
}
