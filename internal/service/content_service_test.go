package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ap_study_backend/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContentGenerator struct {
	content *engine.StudyContent
	err     error
}

func (s *stubContentGenerator) GenerateContent(ctx context.Context, subject, topic, difficulty, style string) (*engine.StudyContent, error) {
	return s.content, s.err
}

func pinnedGenerator() *engine.ContentGenerator {
	return engine.NewContentGeneratorWithSelector(func(n int) int { return 0 })
}

func TestContentServiceLocalWhenRemoteDisabled(t *testing.T) {
	svc := NewContentService(pinnedGenerator(), nil, false, time.Second)

	content := svc.GenerateContent(context.Background(), "AP Calculus AB", "Derivatives", engine.TierBeginner, engine.StyleVisual)
	assert.NotEmpty(t, content.Question)
	assert.NotEmpty(t, content.Explanation)
}

func TestContentServiceFallsBackOnRemoteError(t *testing.T) {
	remote := &stubContentGenerator{err: errors.New("timeout")}
	svc := NewContentService(pinnedGenerator(), remote, true, time.Second)

	content := svc.GenerateContent(context.Background(), "AP Calculus AB", "Derivatives", engine.TierBeginner, engine.StyleVisual)
	assert.NotEmpty(t, content.Question)

	local := pinnedGenerator().GenerateContent("AP Calculus AB", "Derivatives", engine.TierBeginner, engine.StyleVisual)
	assert.Equal(t, local, content)
}

func TestContentServicePrefersRemoteResult(t *testing.T) {
	remote := &stubContentGenerator{content: &engine.StudyContent{
		Type:     engine.QuestionShortAnswer,
		Question: "Explain the chain rule in your own words.",
		Points:   15,
	}}
	svc := NewContentService(pinnedGenerator(), remote, true, time.Second)

	content := svc.GenerateContent(context.Background(), "AP Calculus AB", "Derivatives", engine.TierIntermediate, engine.StyleVisual)
	assert.Equal(t, *remote.content, content)
}

func TestContentServiceFallsBackOnEmptyRemoteContent(t *testing.T) {
	remote := &stubContentGenerator{content: &engine.StudyContent{}}
	svc := NewContentService(pinnedGenerator(), remote, true, time.Second)

	content := svc.GenerateContent(context.Background(), "AP Calculus AB", "Derivatives", engine.TierIntermediate, engine.StyleVisual)
	assert.NotEmpty(t, content.Question)
}

func TestContentServiceQuestionSetsAreLocal(t *testing.T) {
	svc := NewContentService(pinnedGenerator(), nil, false, time.Second)

	sets := svc.GenerateQuestionSets("AP Calculus AB", "Limits", engine.TierIntermediate, engine.LearnerProfile{})
	require.Len(t, sets, 3)
	for _, set := range sets {
		assert.Len(t, set.Questions, 4)
	}
}
