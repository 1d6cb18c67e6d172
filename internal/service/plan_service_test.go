package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ap_study_backend/internal/engine"
	"ap_study_backend/internal/model"
	"ap_study_backend/internal/util"
	"ap_study_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

type stubPlanGenerator struct {
	plan *engine.StudyPlan
	err  error
}

func (s *stubPlanGenerator) GeneratePlan(ctx context.Context, profile engine.LearnerProfile, goals []string, rawText string) (*engine.StudyPlan, error) {
	return s.plan, s.err
}

func testProfile() engine.LearnerProfile {
	return engine.LearnerProfile{
		Name:          "Jordan",
		Level:         3,
		LearningStyle: engine.StyleVisual,
	}
}

func TestGenerateUsesLocalEngineWhenRemoteDisabled(t *testing.T) {
	svc := NewPlanService(nil, nil, nil, false, time.Second, nil)

	goals := []string{"pass AP Calculus"}
	plan, strategy, err := svc.generate(context.Background(), testProfile(), goals, "")
	require.NoError(t, err)
	assert.Equal(t, model.StrategyLocal, strategy)

	want := engine.AssemblePlan(testProfile(), goals, "")
	assert.Equal(t, &want, plan)
}

func TestGenerateFallsBackOnRemoteError(t *testing.T) {
	remote := &stubPlanGenerator{err: errors.New("connection refused")}
	svc := NewPlanService(nil, nil, remote, true, time.Second, nil)

	goals := []string{"pass AP Calculus"}
	plan, strategy, err := svc.generate(context.Background(), testProfile(), goals, "")
	require.NoError(t, err)
	assert.Equal(t, model.StrategyFallback, strategy)

	want := engine.AssemblePlan(testProfile(), goals, "")
	assert.Equal(t, &want, plan)
}

func TestGenerateReturnsRemotePlanWhenValid(t *testing.T) {
	remotePlan := engine.AssemblePlan(testProfile(), []string{"improve biology"}, "")
	remote := &stubPlanGenerator{plan: &remotePlan}
	svc := NewPlanService(nil, nil, remote, true, time.Second, nil)

	plan, strategy, err := svc.generate(context.Background(), testProfile(), []string{"improve biology"}, "")
	require.NoError(t, err)
	assert.Equal(t, model.StrategyRemote, strategy)
	assert.Equal(t, &remotePlan, plan)
}

func TestGenerateRejectsStructurallyBrokenRemotePlan(t *testing.T) {
	remote := &stubPlanGenerator{plan: &engine.StudyPlan{Title: "empty"}}
	svc := NewPlanService(nil, nil, remote, true, time.Second, nil)

	_, _, err := svc.generate(context.Background(), testProfile(), []string{"pass AP Calculus"}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrInvalidPlanStructure)
}

func TestGenerateRequiresGoals(t *testing.T) {
	svc := NewPlanService(nil, nil, nil, false, time.Second, nil)

	_, err := svc.Generate(context.Background(), 1, testProfile(), GeneratePlanRequest{})
	assert.ErrorIs(t, err, util.ErrEmptyGoals)
}

func TestRepairPlanPatchesMissingPieces(t *testing.T) {
	plan := &engine.StudyPlan{
		Subjects: []engine.Subject{
			{Name: "AP Biology"},
		},
		DurationDays: 7,
		Confidence:   40,
	}

	repairPlan(plan, testProfile())

	require.Len(t, plan.Subjects[0].Topics, 1)
	assert.Equal(t, "AP Biology Fundamentals", plan.Subjects[0].Topics[0].Name)
	assert.NotEmpty(t, plan.Subjects[0].Reasoning)
	assert.Equal(t, 30, plan.DurationDays)
	assert.Equal(t, 60, plan.Confidence)
	assert.NotEmpty(t, plan.Milestones)
}

func TestRepairPlanClampsUpperBounds(t *testing.T) {
	plan := &engine.StudyPlan{
		Subjects: []engine.Subject{
			{
				Name:      "AP Chemistry",
				Reasoning: "already set",
				Topics:    []engine.Topic{{Name: "Stoichiometry"}},
			},
		},
		DurationDays: 400,
		Confidence:   99,
		Milestones:   []engine.Milestone{{Week: 1, Title: "Foundation Building"}},
	}

	repairPlan(plan, testProfile())

	assert.Equal(t, 120, plan.DurationDays)
	assert.Equal(t, 95, plan.Confidence)
	assert.Equal(t, "already set", plan.Subjects[0].Reasoning)
	assert.Len(t, plan.Milestones, 1)
}
