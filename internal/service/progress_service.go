package service

import (
	"fmt"
	"math"
	"time"

	"ap_study_backend/internal/engine"
	"ap_study_backend/internal/model"
	"ap_study_backend/internal/repository"
	"ap_study_backend/pkg/logger"

	"go.uber.org/zap"
)

// ProgressService records finished study sessions and serves rolling
// insights. Recent history lives in an in-memory tracker; every session is
// also written through to the database so the tracker can be rebuilt after
// a restart.
type ProgressService struct {
	SessionRepo *repository.SessionRepository
	UserRepo    *repository.UserRepository
	Tracker     *engine.ProgressTracker
}

func NewProgressService(sessionRepo *repository.SessionRepository, userRepo *repository.UserRepository, tracker *engine.ProgressTracker) *ProgressService {
	return &ProgressService{
		SessionRepo: sessionRepo,
		UserRepo:    userRepo,
		Tracker:     tracker,
	}
}

// RecordSessionRequest is the payload for a finished study session.
type RecordSessionRequest struct {
	Subject             string    `json:"subject" binding:"required"`
	Topic               string    `json:"topic" binding:"required"`
	Difficulty          string    `json:"difficulty"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	Duration            int       `json:"duration"`
	QuestionsAnswered   int       `json:"questionsAnswered"`
	CorrectAnswers      int       `json:"correctAnswers"`
	StarsEarned         int       `json:"starsEarned"`
	ConceptsMastered    []string  `json:"conceptsMastered"`
	AreasForImprovement []string  `json:"areasForImprovement"`
}

// Record persists one finished session and folds it into the in-memory
// tracker. Accuracy is derived here so clients cannot submit a value that
// disagrees with the answer counts.
func (s *ProgressService) Record(userID uint, req RecordSessionRequest) (engine.SessionRecord, error) {
	rec := engine.SessionRecord{
		UserID:              fmt.Sprintf("%d", userID),
		Subject:             req.Subject,
		Topic:               req.Topic,
		Difficulty:          req.Difficulty,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Duration:            req.Duration,
		QuestionsAnswered:   req.QuestionsAnswered,
		CorrectAnswers:      req.CorrectAnswers,
		StarsEarned:         req.StarsEarned,
		ConceptsMastered:    req.ConceptsMastered,
		AreasForImprovement: req.AreasForImprovement,
	}
	if rec.Duration <= 0 && !rec.EndTime.IsZero() && rec.EndTime.After(rec.StartTime) {
		rec.Duration = int(rec.EndTime.Sub(rec.StartTime).Minutes())
	}
	if rec.QuestionsAnswered > 0 {
		rec.Accuracy = math.Round(float64(rec.CorrectAnswers)/float64(rec.QuestionsAnswered)*100*100) / 100
	}

	row := &model.StudySession{
		UserID:              userID,
		Subject:             rec.Subject,
		Topic:               rec.Topic,
		Difficulty:          rec.Difficulty,
		StartTime:           rec.StartTime,
		EndTime:             rec.EndTime,
		Duration:            rec.Duration,
		QuestionsAnswered:   rec.QuestionsAnswered,
		CorrectAnswers:      rec.CorrectAnswers,
		Accuracy:            rec.Accuracy,
		StarsEarned:         rec.StarsEarned,
		ConceptsMastered:    rec.ConceptsMastered,
		AreasForImprovement: rec.AreasForImprovement,
	}
	if err := s.SessionRepo.Append(row); err != nil {
		return engine.SessionRecord{}, err
	}
	s.Tracker.Record(rec)

	if rec.StarsEarned > 0 || rec.Duration > 0 {
		if err := s.UserRepo.AddStars(userID, rec.StarsEarned, rec.Duration); err != nil {
			logger.Log.Warn("failed to credit stars", zap.Uint("userId", userID), zap.Error(err))
		}
	}
	return rec, nil
}

// History returns the retained session log for one user, warming the
// tracker from the database when it is empty.
func (s *ProgressService) History(userID uint) ([]engine.SessionRecord, error) {
	key := fmt.Sprintf("%d", userID)
	if records := s.Tracker.History(key); len(records) > 0 {
		return records, nil
	}
	return s.warm(userID)
}

// Insights aggregates the retained history for one user.
func (s *ProgressService) Insights(userID uint) (engine.SessionInsights, error) {
	records, err := s.History(userID)
	if err != nil {
		return engine.SessionInsights{}, err
	}
	return engine.AggregateSessions(records), nil
}

// warm rebuilds the in-memory log from persisted rows.
func (s *ProgressService) warm(userID uint) ([]engine.SessionRecord, error) {
	rows, err := s.SessionRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%d", userID)
	records := make([]engine.SessionRecord, 0, len(rows))
	for _, row := range rows {
		rec := engine.SessionRecord{
			UserID:              key,
			Subject:             row.Subject,
			Topic:               row.Topic,
			Difficulty:          row.Difficulty,
			StartTime:           row.StartTime,
			EndTime:             row.EndTime,
			Duration:            row.Duration,
			QuestionsAnswered:   row.QuestionsAnswered,
			CorrectAnswers:      row.CorrectAnswers,
			Accuracy:            row.Accuracy,
			StarsEarned:         row.StarsEarned,
			ConceptsMastered:    row.ConceptsMastered,
			AreasForImprovement: row.AreasForImprovement,
		}
		s.Tracker.Record(rec)
		records = append(records, rec)
	}
	return records, nil
}
