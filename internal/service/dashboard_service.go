package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = 30 * time.Second
	rankingSize     = 5
)

type DashboardService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	PathRepo       *repository.LearningPathRepository
	ProgressRepo   *repository.ProgressRepository
	AssignmentRepo *repository.AssignmentRepository
	Redis          *redis.Client
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	pathRepo *repository.LearningPathRepository,
	progressRepo *repository.ProgressRepository,
	assignmentRepo *repository.AssignmentRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		PathRepo:       pathRepo,
		ProgressRepo:   progressRepo,
		AssignmentRepo: assignmentRepo,
		Redis:          rdb,
	}
}

type EmployeeRanking struct {
	UserID           uint   `json:"userId"`
	Name             string `json:"name"`
	CompletedCourses int    `json:"completedCourses"`
}

type Summary struct {
	TotalCourses       int64             `json:"totalCourses"`
	TotalLearningPaths int64             `json:"totalLearningPaths"`
	TotalEmployees     int               `json:"totalEmployees"`
	TotalProgress      int64             `json:"totalProgressRecords"`
	CompletionRate     float64           `json:"overallCompletionRate"`
	TopEmployees       []EmployeeRanking `json:"topEmployees"`
	BottomEmployees    []EmployeeRanking `json:"bottomEmployees"`
}

// GetSummary recomputes the admin dashboard projection from the store on
// every call; a short-lived Redis cache absorbs dashboard refresh bursts.
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, summaryCacheKey).Result(); err == nil {
			var summary Summary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return &summary, nil
			}
		}
	}

	summary, err := s.computeSummary()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := s.Redis.Set(ctx, summaryCacheKey, payload, summaryCacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache dashboard summary", zap.Error(err))
			}
		}
	}

	return summary, nil
}

func (s *DashboardService) computeSummary() (*Summary, error) {
	totalCourses, err := s.CourseRepo.Count()
	if err != nil {
		return nil, err
	}
	totalPaths, err := s.PathRepo.Count()
	if err != nil {
		return nil, err
	}
	employees, err := s.UserRepo.FindByRole(model.Employee)
	if err != nil {
		return nil, err
	}
	totalProgress, err := s.ProgressRepo.Count()
	if err != nil {
		return nil, err
	}
	completed, err := s.ProgressRepo.CountByStatus(model.Completed)
	if err != nil {
		return nil, err
	}

	// Guard the empty set: no progress records means a 0% rate, not NaN.
	completionRate := 0.0
	if totalProgress > 0 {
		completionRate = float64(completed) / float64(totalProgress) * 100
	}

	completedByUser, err := s.ProgressRepo.CompletedCountByUser()
	if err != nil {
		return nil, err
	}

	rankings := make([]EmployeeRanking, 0, len(employees))
	for _, e := range employees {
		rankings = append(rankings, EmployeeRanking{
			UserID:           e.ID,
			Name:             e.Name,
			CompletedCourses: completedByUser[e.ID],
		})
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].CompletedCourses > rankings[j].CompletedCourses
	})

	top := rankings
	if len(top) > rankingSize {
		top = top[:rankingSize]
	}
	bottom := make([]EmployeeRanking, 0, rankingSize)
	for i := len(rankings) - 1; i >= 0 && len(bottom) < rankingSize; i-- {
		bottom = append(bottom, rankings[i])
	}

	return &Summary{
		TotalCourses:       totalCourses,
		TotalLearningPaths: totalPaths,
		TotalEmployees:     len(employees),
		TotalProgress:      totalProgress,
		CompletionRate:     completionRate,
		TopEmployees:       append([]EmployeeRanking{}, top...),
		BottomEmployees:    bottom,
	}, nil
}

type CourseStatus struct {
	Assignment model.Assignment       `json:"assignment"`
	Status     model.CompletionStatus `json:"status"`
}

type EmployeeOverview struct {
	Completed  []CourseStatus `json:"completed"`
	InProgress []CourseStatus `json:"inProgress"`
	NotStarted []CourseStatus `json:"notStarted"`
}

// GetEmployeeOverview groups the employee's course assignments by derived
// completion status.
func (s *DashboardService) GetEmployeeOverview(userID uint) (*EmployeeOverview, error) {
	assignments, err := s.AssignmentRepo.FindCourseAssignmentsByUser(userID)
	if err != nil {
		return nil, err
	}

	overview := &EmployeeOverview{
		Completed:  []CourseStatus{},
		InProgress: []CourseStatus{},
		NotStarted: []CourseStatus{},
	}
	for _, a := range assignments {
		if a.CourseProgress == nil {
			a.CourseProgress = []model.CourseProgress{}
		}
		entry := CourseStatus{Assignment: a, Status: DeriveStatus(a.CourseProgress)}
		switch entry.Status {
		case model.Completed:
			overview.Completed = append(overview.Completed, entry)
		case model.InProgress:
			overview.InProgress = append(overview.InProgress, entry)
		default:
			overview.NotStarted = append(overview.NotStarted, entry)
		}
	}
	return overview, nil
}
