package service

import (
	"context"
	"time"

	"ap_study_backend/internal/engine"
	"ap_study_backend/pkg/logger"

	"go.uber.org/zap"
)

// RemoteContentGenerator is the optional external strategy for single
// exercises. Question sets are always generated locally.
type RemoteContentGenerator interface {
	GenerateContent(ctx context.Context, subject, topic, difficulty, style string) (*engine.StudyContent, error)
}

// ContentService serves study content and question sets, remote-first with
// an unconditional local fallback.
type ContentService struct {
	Generator *engine.ContentGenerator
	Remote    RemoteContentGenerator

	remoteEnabled bool
	remoteTimeout time.Duration
}

func NewContentService(generator *engine.ContentGenerator, remote RemoteContentGenerator, remoteEnabled bool, remoteTimeout time.Duration) *ContentService {
	return &ContentService{
		Generator:     generator,
		Remote:        remote,
		remoteEnabled: remoteEnabled,
		remoteTimeout: remoteTimeout,
	}
}

// GenerateContent returns one exercise for the given subject and topic.
// The local path cannot fail, so this method never returns an error once
// inputs are validated at the controller.
func (s *ContentService) GenerateContent(ctx context.Context, subject, topic, difficulty, style string) engine.StudyContent {
	if s.remoteEnabled && s.Remote != nil {
		remoteCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
		defer cancel()

		content, err := s.Remote.GenerateContent(remoteCtx, subject, topic, difficulty, style)
		if err != nil {
			logger.Log.Warn("remote content generation failed, using local generator",
				zap.String("subject", subject), zap.Error(err))
		} else if content != nil && content.Question != "" {
			return *content
		}
	}
	return s.Generator.GenerateContent(subject, topic, difficulty, style)
}

// GenerateQuestionSets builds the fixed practice categories locally.
func (s *ContentService) GenerateQuestionSets(subject, topic, difficulty string, profile engine.LearnerProfile) []engine.QuestionSet {
	return s.Generator.GenerateQuestionSets(subject, topic, difficulty, profile)
}
