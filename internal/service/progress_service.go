package service

import (
	"errors"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo   *repository.ProgressRepository
	AssignmentRepo *repository.AssignmentRepository
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	assignmentRepo *repository.AssignmentRepository,
) *ProgressService {
	return &ProgressService{
		ProgressRepo:   progressRepo,
		AssignmentRepo: assignmentRepo,
	}
}

// Start creates the progress row for an assignment-course pair. A course has
// no row at all until the employee starts it; the row is born at progress 0
// with status IN_PROGRESS.
func (s *ProgressService) Start(userID, courseID, assignmentID uint) (*model.CourseProgress, error) {
	if _, err := s.AssignmentRepo.FindByID(assignmentID); err != nil {
		return nil, err
	}

	_, err := s.ProgressRepo.FindByAssignmentAndCourse(assignmentID, courseID)
	if err == nil {
		return nil, util.ErrProgressExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress := &model.CourseProgress{
		UserID:           userID,
		CourseID:         courseID,
		AssignmentID:     assignmentID,
		Progress:         0,
		TimeInvested:     0,
		CompletionStatus: model.InProgress,
	}
	if err := s.ProgressRepo.Create(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ProgressUpdate carries the optional fields of a progress update; nil means
// "leave unchanged".
type ProgressUpdate struct {
	Progress           *float64
	Score              *float64
	TimeInvested       *int
	CompletionStatus   *model.CompletionStatus
	CertificateURL     *string
	QuizScore          *int
	AssignmentScore    *int
	ParticipationCount *int
	TimeSpentOnQuizzes *int
}

// Update merges the supplied fields into the stored row. Reaching 100%
// forces CompletionStatus to COMPLETED so the invariant holds at the store
// level rather than relying on callers.
func (s *ProgressService) Update(id uint, patch ProgressUpdate) (*model.CourseProgress, error) {
	progress, err := s.ProgressRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Progress != nil {
		progress.Progress = *patch.Progress
	}
	if patch.Score != nil {
		progress.Score = *patch.Score
	}
	if patch.TimeInvested != nil {
		progress.TimeInvested = *patch.TimeInvested
	}
	if patch.CompletionStatus != nil {
		progress.CompletionStatus = *patch.CompletionStatus
	}
	if patch.CertificateURL != nil {
		progress.CertificateURL = patch.CertificateURL
	}
	if patch.QuizScore != nil {
		progress.QuizScore = *patch.QuizScore
	}
	if patch.AssignmentScore != nil {
		progress.AssignmentScore = *patch.AssignmentScore
	}
	if patch.ParticipationCount != nil {
		progress.ParticipationCount = *patch.ParticipationCount
	}
	if patch.TimeSpentOnQuizzes != nil {
		progress.TimeSpentOnQuizzes = *patch.TimeSpentOnQuizzes
	}

	if progress.Progress >= 100 {
		progress.CompletionStatus = model.Completed
	}

	if err := s.ProgressRepo.Update(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *ProgressService) GetByUser(userID uint) ([]model.CourseProgress, error) {
	return s.ProgressRepo.FindByUser(userID)
}

func (s *ProgressService) GetByAssignmentAndCourse(assignmentID, courseID uint) (*model.CourseProgress, error) {
	return s.ProgressRepo.FindByAssignmentAndCourse(assignmentID, courseID)
}

func (s *ProgressService) GetAll() ([]model.CourseProgress, error) {
	return s.ProgressRepo.FindAll()
}

// AttachCertificate persists the stored certificate URL for a progress row.
func (s *ProgressService) AttachCertificate(id uint, url string) (*model.CourseProgress, error) {
	progress, err := s.ProgressRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	progress.CertificateURL = &url
	if err := s.ProgressRepo.Update(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// DeriveStatus computes the dashboard grouping for one course assignment:
// COMPLETED if any progress row completed, IN_PROGRESS if a row exists,
// NOT_STARTED otherwise. The value is never stored.
func DeriveStatus(records []model.CourseProgress) model.CompletionStatus {
	if len(records) == 0 {
		return model.NotStarted
	}
	for _, r := range records {
		if r.CompletionStatus == model.Completed {
			return model.Completed
		}
	}
	return model.InProgress
}
