package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ap_study_backend/internal/engine"
	"ap_study_backend/internal/model"
	"ap_study_backend/internal/repository"
	"ap_study_backend/internal/util"
	"ap_study_backend/pkg/logger"
	"ap_study_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RemotePlanGenerator is the optional external strategy tried before the
// local engine.
type RemotePlanGenerator interface {
	GeneratePlan(ctx context.Context, profile engine.LearnerProfile, goals []string, rawText string) (*engine.StudyPlan, error)
}

// PlanService orchestrates study-plan generation: remote strategy first
// when configured, with an unconditional fallback to the deterministic
// local engine, followed by one validate-and-repair pass, persistence, and
// cache refresh.
type PlanService struct {
	PlanRepo     *repository.PlanRepository
	MaterialRepo *repository.MaterialRepository
	Remote       RemotePlanGenerator
	Redis        *redis.Client

	remoteEnabled bool
	remoteTimeout time.Duration
}

func NewPlanService(
	planRepo *repository.PlanRepository,
	materialRepo *repository.MaterialRepository,
	remote RemotePlanGenerator,
	remoteEnabled bool,
	remoteTimeout time.Duration,
	rdb *redis.Client,
) *PlanService {
	return &PlanService{
		PlanRepo:      planRepo,
		MaterialRepo:  materialRepo,
		Remote:        remote,
		Redis:         rdb,
		remoteEnabled: remoteEnabled,
		remoteTimeout: remoteTimeout,
	}
}

// GeneratePlanRequest is the caller-facing input for plan generation.
type GeneratePlanRequest struct {
	Goals       []string `json:"goals" binding:"required"`
	WeakAreas   []string `json:"weakAreas"`
	StrongAreas []string `json:"strongAreas"`
	RawText     string   `json:"rawText"`
}

// Generate builds and persists a new active plan for the user. Empty goals
// are rejected up front as a user-actionable error; everything past that
// point always yields a plan.
func (s *PlanService) Generate(ctx context.Context, userID uint, profile engine.LearnerProfile, req GeneratePlanRequest) (*engine.StudyPlan, error) {
	if len(req.Goals) == 0 {
		return nil, util.ErrEmptyGoals
	}

	// Request-level overrides win over the stored profile.
	if len(req.WeakAreas) > 0 {
		profile.WeakAreas = req.WeakAreas
	}
	if len(req.StrongAreas) > 0 {
		profile.StrongAreas = req.StrongAreas
	}

	rawText := req.RawText
	if rawText == "" && s.MaterialRepo != nil {
		// Fall back to previously uploaded materials.
		if combined, err := s.MaterialRepo.CombinedText(userID); err == nil {
			rawText = combined
		}
	}

	plan, strategy, err := s.generate(ctx, profile, req.Goals, rawText)
	if err != nil {
		return nil, err
	}

	repairPlan(plan, profile)
	monitoring.PlanGenerations.WithLabelValues(string(strategy)).Inc()

	if err := s.persist(ctx, userID, plan, strategy); err != nil {
		return nil, err
	}
	return plan, nil
}

// generate runs the strategy selection. A remote failure is logged and
// falls through to the local engine; a remote result that parses but is
// structurally broken is a contract violation surfaced to the caller.
func (s *PlanService) generate(ctx context.Context, profile engine.LearnerProfile, goals []string, rawText string) (*engine.StudyPlan, model.PlanStrategy, error) {
	if !s.remoteEnabled || s.Remote == nil {
		plan := engine.AssemblePlan(profile, goals, rawText)
		return &plan, model.StrategyLocal, nil
	}

	remoteCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
	defer cancel()

	remote, err := s.Remote.GeneratePlan(remoteCtx, profile, goals, rawText)
	if err != nil {
		logger.Log.Warn("remote plan generation failed, using local engine", zap.Error(err))
		plan := engine.AssemblePlan(profile, goals, rawText)
		return &plan, model.StrategyFallback, nil
	}

	if len(remote.Subjects) == 0 {
		return nil, model.StrategyRemote, fmt.Errorf("%w: remote plan has no subjects", util.ErrInvalidPlanStructure)
	}
	return remote, model.StrategyRemote, nil
}

// repairPlan is the single validate-and-repair pass at the generation
// boundary. Malformed pieces are patched in place, never rejected; repairs
// are logged for diagnostics only.
func repairPlan(plan *engine.StudyPlan, profile engine.LearnerProfile) {
	for i := range plan.Subjects {
		subject := &plan.Subjects[i]
		if len(subject.Topics) == 0 {
			logger.Log.Warn("plan subject missing topics, substituting default",
				zap.String("subject", subject.Name))
			subject.Topics = []engine.Topic{{
				Name:               subject.Name + " Fundamentals",
				Difficulty:         engine.TierIntermediate,
				EstimatedTime:      45,
				LearningObjectives: []string{"Master the core concepts of " + subject.Name},
				Resources:          []string{"Official AP practice questions"},
				Assessments:        []string{"Topic quiz with scored feedback"},
			}}
		}
		if subject.Reasoning == "" {
			subject.Reasoning = subject.Name + " is included in your study plan."
		}
	}
	if plan.DurationDays < 30 {
		plan.DurationDays = 30
	} else if plan.DurationDays > 120 {
		plan.DurationDays = 120
	}
	if plan.Confidence < 60 {
		plan.Confidence = 60
	} else if plan.Confidence > 95 {
		plan.Confidence = 95
	}
	if len(plan.Milestones) == 0 {
		logger.Log.Warn("plan missing milestones, regenerating from duration")
		fresh := engine.AssemblePlan(profile, []string{}, "")
		plan.Milestones = fresh.Milestones
	}
}

func (s *PlanService) persist(ctx context.Context, userID uint, plan *engine.StudyPlan, strategy model.PlanStrategy) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	record := &model.StudyPlanRecord{
		UserID:       userID,
		Strategy:     strategy,
		Title:        plan.Title,
		DurationDays: plan.DurationDays,
		Confidence:   plan.Confidence,
		Payload:      string(payload),
	}
	if err := s.PlanRepo.SaveActive(record); err != nil {
		return err
	}

	if s.Redis != nil {
		if err := s.Redis.Set(ctx, activePlanKey(userID), payload, 24*time.Hour).Err(); err != nil {
			logger.Log.Warn("failed to cache active plan", zap.Error(err))
		}
	}
	return nil
}

// Active returns the user's active plan, preferring the cache.
func (s *PlanService) Active(ctx context.Context, userID uint) (*engine.StudyPlan, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, activePlanKey(userID)).Bytes(); err == nil {
			var plan engine.StudyPlan
			if err := json.Unmarshal(cached, &plan); err == nil {
				return &plan, nil
			}
		}
	}

	record, err := s.PlanRepo.FindActive(userID)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}

	var plan engine.StudyPlan
	if err := json.Unmarshal([]byte(record.Payload), &plan); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := s.Redis.Set(ctx, activePlanKey(userID), record.Payload, 24*time.Hour).Err(); err != nil {
			logger.Log.Warn("failed to cache active plan", zap.Error(err))
		}
	}
	return &plan, nil
}

// History lists the user's stored plans, newest first.
func (s *PlanService) History(userID uint, limit int) ([]model.StudyPlanRecord, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.PlanRepo.ListByUser(userID, limit)
}

func activePlanKey(userID uint) string {
	return fmt.Sprintf("study_plan:active:%d", userID)
}
