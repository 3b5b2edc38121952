package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLearningPathService(t *testing.T) (*LearningPathService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewLearningPathService(
		repository.NewLearningPathRepository(db),
		repository.NewCourseRepository(db),
		db,
	), db
}

func TestLearningPathCreatePreservesOrder(t *testing.T) {
	svc, db := newLearningPathService(t)
	c1 := createCourse(t, db, "Go Basics")
	c2 := createCourse(t, db, "Concurrency")
	c3 := createCourse(t, db, "Testing")

	// Curriculum order follows the request order, not the course ids.
	path, err := svc.Create("Backend Track", "", []uint{c3.ID, c1.ID, c2.ID})
	require.NoError(t, err)
	require.Len(t, path.Courses, 3)

	assert.Equal(t, c3.ID, path.Courses[0].CourseID)
	assert.Equal(t, 1, path.Courses[0].Order)
	assert.Equal(t, c1.ID, path.Courses[1].CourseID)
	assert.Equal(t, 2, path.Courses[1].Order)
	assert.Equal(t, c2.ID, path.Courses[2].CourseID)
	assert.Equal(t, 3, path.Courses[2].Order)
}

func TestLearningPathCreateUnknownCourseRollsBack(t *testing.T) {
	svc, db := newLearningPathService(t)
	c1 := createCourse(t, db, "Go Basics")

	_, err := svc.Create("Broken", "", []uint{c1.ID, 999})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var total int64
	require.NoError(t, db.Model(&model.LearningPath{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}

func TestLearningPathUpdateReplacesCurriculum(t *testing.T) {
	svc, db := newLearningPathService(t)
	c1 := createCourse(t, db, "Go Basics")
	c2 := createCourse(t, db, "Concurrency")
	c3 := createCourse(t, db, "Testing")

	path, err := svc.Create("Backend Track", "", []uint{c1.ID, c2.ID, c3.ID})
	require.NoError(t, err)

	// Full replace: the old rows disappear and positions restart at 1.
	updated, err := svc.Update(path.ID, "Backend Track v2", "revised", []uint{c2.ID, c3.ID})
	require.NoError(t, err)
	assert.Equal(t, "Backend Track v2", updated.Title)
	require.Len(t, updated.Courses, 2)
	assert.Equal(t, c2.ID, updated.Courses[0].CourseID)
	assert.Equal(t, 1, updated.Courses[0].Order)
	assert.Equal(t, c3.ID, updated.Courses[1].CourseID)
	assert.Equal(t, 2, updated.Courses[1].Order)

	var rows int64
	require.NoError(t, db.Model(&model.LearningPathCourse{}).
		Where("learning_path_id = ?", path.ID).Count(&rows).Error)
	assert.EqualValues(t, 2, rows)
}

func TestLearningPathAddCoursesAppends(t *testing.T) {
	svc, db := newLearningPathService(t)
	c1 := createCourse(t, db, "Go Basics")
	c2 := createCourse(t, db, "Concurrency")

	path, err := svc.Create("Backend Track", "", []uint{c1.ID})
	require.NoError(t, err)

	updated, err := svc.AddCourses(path.ID, []uint{c2.ID})
	require.NoError(t, err)
	require.Len(t, updated.Courses, 2)
	assert.Equal(t, 2, updated.Courses[1].Order)
}

func TestLearningPathAddCoursesSurfacesQueryError(t *testing.T) {
	svc, db := newLearningPathService(t)
	c1 := createCourse(t, db, "Go Basics")
	c2 := createCourse(t, db, "Concurrency")

	path, err := svc.Create("Backend Track", "", []uint{c1.ID})
	require.NoError(t, err)

	// Breaking the curriculum table makes the max-position query fail; the
	// append must report that instead of starting over at position 1.
	require.NoError(t, db.Migrator().DropTable(&model.LearningPathCourse{}))

	_, err = svc.AddCourses(path.ID, []uint{c2.ID})
	assert.Error(t, err)
}

func TestLearningPathRemoveCourseKeepsPositions(t *testing.T) {
	svc, db := newLearningPathService(t)
	c1 := createCourse(t, db, "Go Basics")
	c2 := createCourse(t, db, "Concurrency")
	c3 := createCourse(t, db, "Testing")

	path, err := svc.Create("Backend Track", "", []uint{c1.ID, c2.ID, c3.ID})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveCourse(path.ID, c2.ID))

	got, err := svc.GetByID(path.ID)
	require.NoError(t, err)
	require.Len(t, got.Courses, 2)
	// Remaining positions are untouched, leaving a gap.
	assert.Equal(t, 1, got.Courses[0].Order)
	assert.Equal(t, 3, got.Courses[1].Order)
}

func TestLearningPathDeleteRemovesCurriculum(t *testing.T) {
	svc, db := newLearningPathService(t)
	c1 := createCourse(t, db, "Go Basics")

	path, err := svc.Create("Backend Track", "", []uint{c1.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(path.ID))

	_, err = svc.GetByID(path.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var rows int64
	require.NoError(t, db.Model(&model.LearningPathCourse{}).
		Where("learning_path_id = ?", path.ID).Count(&rows).Error)
	assert.EqualValues(t, 0, rows)
}
