package service

import (
	"errors"
	"fmt"

	"ap_study_backend/internal/engine"
	"ap_study_backend/internal/model"
	"ap_study_backend/internal/repository"
	"ap_study_backend/internal/util"

	"gorm.io/gorm"
)

var validLearningStyles = map[string]bool{
	engine.StyleVisual:      true,
	engine.StyleAuditory:    true,
	engine.StyleKinesthetic: true,
	engine.StyleReading:     true,
}

var validDifficulties = map[string]bool{
	"easy":     true,
	"medium":   true,
	"hard":     true,
	"adaptive": true,
}

type UserService struct {
	UserRepo *repository.UserRepository
	Tracker  *engine.ProgressTracker
}

func NewUserService(userRepo *repository.UserRepository, tracker *engine.ProgressTracker) *UserService {
	return &UserService{UserRepo: userRepo, Tracker: tracker}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfileRequest carries the editable study preferences. Pointer
// fields distinguish "leave unchanged" from an explicit empty value.
type UpdateProfileRequest struct {
	Name                *string   `json:"name"`
	LearningStyle       *string   `json:"learningStyle"`
	PreferredDifficulty *string   `json:"preferredDifficulty"`
	DailyTimeAvailable  *int      `json:"dailyTimeAvailable"`
	WeakAreas           *[]string `json:"weakAreas"`
	StrongAreas         *[]string `json:"strongAreas"`
	StudyGoals          *[]string `json:"studyGoals"`
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.LearningStyle != nil {
		if !validLearningStyles[*req.LearningStyle] {
			return nil, util.ErrInvalidLearningStyle
		}
		user.LearningStyle = *req.LearningStyle
	}
	if req.PreferredDifficulty != nil {
		if !validDifficulties[*req.PreferredDifficulty] {
			return nil, util.ErrInvalidDifficulty
		}
		user.PreferredDifficulty = *req.PreferredDifficulty
	}
	if req.DailyTimeAvailable != nil && *req.DailyTimeAvailable > 0 {
		user.DailyTimeAvailable = *req.DailyTimeAvailable
	}
	if req.WeakAreas != nil {
		user.WeakAreas = *req.WeakAreas
	}
	if req.StrongAreas != nil {
		user.StrongAreas = *req.StrongAreas
	}
	if req.StudyGoals != nil {
		user.StudyGoals = *req.StudyGoals
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// BuildLearnerProfile projects a user row into the profile the planning
// engine consumes, folding in recent session insights when available.
func (s *UserService) BuildLearnerProfile(user *model.User) engine.LearnerProfile {
	profile := engine.LearnerProfile{
		Name:                user.Name,
		Level:               user.Level,
		TotalStars:          user.TotalStars,
		CurrentStreak:       user.CurrentStreak,
		StudyTimeMinutes:    user.StudyTimeMinutes,
		CompletedLessons:    user.CompletedLessons,
		WeakAreas:           append([]string(nil), user.WeakAreas...),
		StrongAreas:         append([]string(nil), user.StrongAreas...),
		LearningStyle:       user.LearningStyle,
		PreferredDifficulty: user.PreferredDifficulty,
		StudyGoals:          append([]string(nil), user.StudyGoals...),
		DailyTimeAvailable:  user.DailyTimeAvailable,
	}

	insights := s.Tracker.Insights(fmt.Sprintf("%d", user.ID))
	if insights.HasData {
		profile.RecentPerformance = &engine.PerformanceSnapshot{
			Accuracy:    int(insights.AverageAccuracy),
			Consistency: int(insights.StudyPatterns.ConsistencyScore),
		}
		for _, area := range insights.CommonWeakAreas {
			if !containsFold(profile.WeakAreas, area) {
				profile.WeakAreas = append(profile.WeakAreas, area)
			}
		}
	}
	return profile
}

func containsFold(haystack []string, needle string) bool {
	for _, item := range haystack {
		if item == needle {
			return true
		}
	}
	return false
}
