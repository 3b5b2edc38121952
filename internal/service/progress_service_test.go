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

func newProgressService(t *testing.T) (*ProgressService, *AssignmentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	progressSvc := NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewAssignmentRepository(db),
	)
	assignmentSvc := NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewLearningPathRepository(db),
		repository.NewUserRepository(db),
		repository.NewCourseRepository(db),
		db,
	)
	return progressSvc, assignmentSvc, db
}

func startProgress(t *testing.T, db *gorm.DB, svc *ProgressService, asg *AssignmentService) (*model.CourseProgress, *model.Assignment) {
	t.Helper()
	employee := createUser(t, db, "eve", model.Employee)
	course := createCourse(t, db, "Go Basics")
	created, err := asg.Create(employee.ID, &course.ID, nil)
	require.NoError(t, err)

	progress, err := svc.Start(employee.ID, course.ID, created[0].ID)
	require.NoError(t, err)
	return progress, &created[0]
}

func TestProgressStart(t *testing.T) {
	svc, asg, db := newProgressService(t)
	progress, assignment := startProgress(t, db, svc, asg)

	assert.Equal(t, model.InProgress, progress.CompletionStatus)
	assert.Zero(t, progress.Progress)

	// A second start on the same pair is rejected.
	_, err := svc.Start(progress.UserID, progress.CourseID, assignment.ID)
	assert.ErrorIs(t, err, util.ErrProgressExists)
}

func TestProgressStartUnknownAssignment(t *testing.T) {
	svc, _, _ := newProgressService(t)

	_, err := svc.Start(1, 1, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProgressUpdateMergesFields(t *testing.T) {
	svc, asg, db := newProgressService(t)
	progress, _ := startProgress(t, db, svc, asg)

	p := 40.0
	score := 85.0
	updated, err := svc.Update(progress.ID, ProgressUpdate{Progress: &p, Score: &score})
	require.NoError(t, err)

	assert.Equal(t, 40.0, updated.Progress)
	assert.Equal(t, 85.0, updated.Score)
	// Untouched fields keep their value.
	assert.Equal(t, model.InProgress, updated.CompletionStatus)
	assert.Zero(t, updated.TimeInvested)
}

func TestProgressHundredPercentForcesCompleted(t *testing.T) {
	svc, asg, db := newProgressService(t)
	progress, _ := startProgress(t, db, svc, asg)

	p := 100.0
	status := model.InProgress
	updated, err := svc.Update(progress.ID, ProgressUpdate{Progress: &p, CompletionStatus: &status})
	require.NoError(t, err)

	// 100% wins over whatever status the caller sent.
	assert.Equal(t, model.Completed, updated.CompletionStatus)
}

func TestProgressUpdateNotFound(t *testing.T) {
	svc, _, _ := newProgressService(t)

	p := 10.0
	_, err := svc.Update(999, ProgressUpdate{Progress: &p})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProgressAttachCertificate(t *testing.T) {
	svc, asg, db := newProgressService(t)
	progress, _ := startProgress(t, db, svc, asg)

	updated, err := svc.AttachCertificate(progress.ID, "http://files.local/cert.pdf")
	require.NoError(t, err)
	require.NotNil(t, updated.CertificateURL)
	assert.Equal(t, "http://files.local/cert.pdf", *updated.CertificateURL)
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name    string
		records []model.CourseProgress
		want    model.CompletionStatus
	}{
		{name: "no records", want: model.NotStarted},
		{
			name:    "in progress",
			records: []model.CourseProgress{{CompletionStatus: model.InProgress}},
			want:    model.InProgress,
		},
		{
			name: "any completed wins",
			records: []model.CourseProgress{
				{CompletionStatus: model.InProgress},
				{CompletionStatus: model.Completed},
			},
			want: model.Completed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.records))
		})
	}
}
