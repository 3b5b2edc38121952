package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCourseService(t *testing.T) *CourseService {
	t.Helper()
	return NewCourseService(repository.NewCourseRepository(newTestDB(t)))
}

func TestCourseCreateRejectsDuplicateTitle(t *testing.T) {
	svc := newCourseService(t)

	course, err := svc.Create("Go Basics", 10, model.Easy)
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", course.Title)

	_, err = svc.Create("Go Basics", 20, model.Hard)
	assert.ErrorIs(t, err, util.ErrCourseTitleTaken)
}

func TestCourseUpdate(t *testing.T) {
	svc := newCourseService(t)

	course, err := svc.Create("Go Basics", 10, model.Easy)
	require.NoError(t, err)
	other, err := svc.Create("Concurrency", 15, model.Hard)
	require.NoError(t, err)

	// Renaming onto an existing title is rejected.
	_, err = svc.Update(course.ID, other.Title, 0, "")
	assert.ErrorIs(t, err, util.ErrCourseTitleTaken)

	// Zero values leave fields untouched.
	updated, err := svc.Update(course.ID, "", 0, model.Medium)
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", updated.Title)
	assert.Equal(t, 10, updated.Duration)
	assert.Equal(t, model.Medium, updated.DifficultyLevel)
}

func TestCourseDeleteNotFound(t *testing.T) {
	svc := newCourseService(t)
	assert.ErrorIs(t, svc.Delete(999), gorm.ErrRecordNotFound)
}
