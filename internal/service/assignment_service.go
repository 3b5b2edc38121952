package service

import (
	"errors"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	PathRepo       *repository.LearningPathRepository
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	DB             *gorm.DB
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	pathRepo *repository.LearningPathRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	db *gorm.DB,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		PathRepo:       pathRepo,
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		DB:             db,
	}
}

// Create assigns a course or a learning path to an employee. Exactly one of
// courseID/learningPathID must be set.
//
// A learning-path assignment fans out into one course-level assignment per
// course in the path's curriculum, skipping courses the employee already has,
// so repeating the call creates no new rows. The whole fan-out runs in one
// transaction; a failure mid-loop rolls back every row.
//
// A direct course assignment that already exists is rejected instead of
// no-oping, matching the admin UI contract.
//
// Returns the course-level assignments created by this call.
func (s *AssignmentService) Create(employeeID uint, courseID, learningPathID *uint) ([]model.Assignment, error) {
	if (courseID == nil) == (learningPathID == nil) {
		return nil, util.ErrAssignmentTargetRequired
	}

	if _, err := s.UserRepo.FindByID(employeeID); err != nil {
		return nil, err
	}

	created := []model.Assignment{}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if learningPathID != nil {
			pathID := *learningPathID
			if err := tx.First(&model.LearningPath{}, pathID).Error; err != nil {
				return err
			}

			var existing model.Assignment
			err := tx.Where("user_id = ? AND learning_path_id = ?", employeeID, pathID).
				First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				pathAssignment := model.Assignment{
					UserID:         employeeID,
					LearningPathID: &pathID,
				}
				if err := tx.Create(&pathAssignment).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			var rows []model.LearningPathCourse
			if err := tx.Where("learning_path_id = ?", pathID).
				Order("position asc").
				Find(&rows).Error; err != nil {
				return err
			}

			for _, row := range rows {
				var courseAssignment model.Assignment
				err := tx.Where("user_id = ? AND course_id = ?", employeeID, row.CourseID).
					First(&courseAssignment).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					cid := row.CourseID
					newAssignment := model.Assignment{
						UserID:   employeeID,
						CourseID: &cid,
					}
					if err := tx.Create(&newAssignment).Error; err != nil {
						return err
					}
					created = append(created, newAssignment)
				} else if err != nil {
					return err
				}
			}
			return nil
		}

		cid := *courseID
		if err := tx.First(&model.Course{}, cid).Error; err != nil {
			return err
		}

		var existing model.Assignment
		err := tx.Where("user_id = ? AND course_id = ?", employeeID, cid).
			First(&existing).Error
		if err == nil {
			return util.ErrCourseAlreadyAssigned
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		newAssignment := model.Assignment{
			UserID:   employeeID,
			CourseID: &cid,
		}
		if err := tx.Create(&newAssignment).Error; err != nil {
			return err
		}
		created = append(created, newAssignment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *AssignmentService) GetAll() ([]model.Assignment, error) {
	assignments, err := s.AssignmentRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range assignments {
		if assignments[i].CourseProgress == nil {
			assignments[i].CourseProgress = []model.CourseProgress{}
		}
	}
	return assignments, nil
}

// GetByEmployee returns the employee's course-level assignments with their
// courses and progress rows; learning-path rows are excluded from this view.
func (s *AssignmentService) GetByEmployee(employeeID uint) ([]model.Assignment, error) {
	assignments, err := s.AssignmentRepo.FindCourseAssignmentsByUser(employeeID)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	for i := range assignments {
		if assignments[i].CourseProgress == nil {
			assignments[i].CourseProgress = []model.CourseProgress{}
		}
	}
	return assignments, nil
}

type AssignmentUpdate struct {
	UserID         *uint
	CourseID       *uint
	LearningPathID *uint
}

// Update overwrites the supplied fields and re-validates the one-course-or-
// one-path rule so an update cannot corrupt the invariant.
func (s *AssignmentService) Update(id uint, patch AssignmentUpdate) (*model.Assignment, error) {
	if patch.CourseID != nil && patch.LearningPathID != nil {
		return nil, util.ErrAssignmentTargetRequired
	}

	assignment, err := s.AssignmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.UserID != nil {
		assignment.UserID = *patch.UserID
	}
	if patch.CourseID != nil {
		assignment.CourseID = patch.CourseID
		assignment.LearningPathID = nil
	}
	if patch.LearningPathID != nil {
		assignment.LearningPathID = patch.LearningPathID
		assignment.CourseID = nil
	}

	if (assignment.CourseID == nil) == (assignment.LearningPathID == nil) {
		return nil, util.ErrAssignmentTargetRequired
	}

	if assignment.CourseID != nil {
		existing, err := s.AssignmentRepo.FindByUserAndCourse(assignment.UserID, *assignment.CourseID)
		if err == nil && existing.ID != assignment.ID {
			return nil, util.ErrCourseAlreadyAssigned
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := s.AssignmentRepo.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) Delete(id uint) error {
	if _, err := s.AssignmentRepo.FindByID(id); err != nil {
		return err
	}
	return s.AssignmentRepo.Delete(id)
}
