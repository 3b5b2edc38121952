package util

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailRegistered          = errors.New("user with this email already exists")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrCourseTitleTaken         = errors.New("course with this title already exists")
	ErrCourseAlreadyAssigned    = errors.New("course is already assigned to the employee")
	ErrAssignmentTargetRequired = errors.New("exactly one of courseId or learningPathId must be set")
	ErrProgressExists           = errors.New("progress already exists for this assignment and course")
	ErrSkillAlreadyAdded        = errors.New("skill already added")
)
