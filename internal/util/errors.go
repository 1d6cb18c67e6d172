package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmptyGoals           = errors.New("at least one study goal is required")
	ErrInvalidLearningStyle = errors.New("learning style must be visual, auditory, kinesthetic, or reading")
	ErrInvalidDifficulty    = errors.New("preferred difficulty must be easy, medium, hard, or adaptive")
	ErrInvalidPlanStructure = errors.New("generated plan failed structural validation")
	ErrPlanNotFound         = errors.New("no active study plan")
	ErrEmptyUpload          = errors.New("uploaded file is empty")
	ErrUploadTooLarge       = errors.New("uploaded file exceeds the size limit")
)
