package engine

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblePlanEmptyProfileDefaults(t *testing.T) {
	plan := AssemblePlan(LearnerProfile{}, nil, "")

	require.Len(t, plan.Subjects, len(defaultSubjects))
	for i, subject := range plan.Subjects {
		assert.Equal(t, defaultSubjects[i], subject.Name)
		assert.NotEmpty(t, subject.Topics)
		assert.NotEmpty(t, subject.Reasoning)
	}
	assert.GreaterOrEqual(t, plan.DurationDays, 30)
	assert.LessOrEqual(t, plan.DurationDays, 120)
	assert.GreaterOrEqual(t, plan.Confidence, 60)
	assert.LessOrEqual(t, plan.Confidence, 95)
	assert.NotEmpty(t, plan.Milestones)
	assert.NotEmpty(t, plan.EstimatedOutcome)
	assert.True(t, plan.AdaptiveFeatures.DifficultyScaling)
	assert.True(t, plan.AdaptiveFeatures.PersonalizedPacing)
	assert.True(t, plan.AdaptiveFeatures.WeakAreaFocus)
	assert.True(t, plan.AdaptiveFeatures.ProgressPrediction)
}

func TestAssemblePlanDeterministic(t *testing.T) {
	profile := LearnerProfile{
		Name:                "Jordan",
		Level:               4,
		TotalStars:          230,
		CurrentStreak:       9,
		WeakAreas:           []string{"Calculus"},
		StrongAreas:         []string{"Biology"},
		LearningStyle:       StyleVisual,
		PreferredDifficulty: "adaptive",
		DailyTimeAvailable:  60,
	}
	goals := []string{"score a 5 in calculus and biology"}
	text := "Chapter 1: Limits and Continuity\nFocus on derivatives."

	first := AssemblePlan(profile, goals, text)
	second := AssemblePlan(profile, goals, text)
	require.True(t, reflect.DeepEqual(first, second))
}

func TestAssemblePlanWeakSubjectPriority(t *testing.T) {
	profile := LearnerProfile{
		WeakAreas:          []string{"Calculus"},
		DailyTimeAvailable: 60,
	}
	plan := AssemblePlan(profile, []string{"Master AP Calculus AB for 5 on exam"}, "")

	require.Len(t, plan.Subjects, 1)
	subject := plan.Subjects[0]
	assert.Equal(t, "AP Calculus AB", subject.Name)
	assert.Equal(t, "high", subject.Priority)
	assert.Equal(t, 35, subject.TimeAllocation)
}

func TestAssemblePlanStrongAndNeutralPriorities(t *testing.T) {
	profile := LearnerProfile{
		StrongAreas:        []string{"Biology"},
		DailyTimeAvailable: 60,
	}
	plan := AssemblePlan(profile, []string{"biology and chemistry"}, "")

	require.Len(t, plan.Subjects, 2)
	assert.Equal(t, "low", plan.Subjects[0].Priority)
	assert.Equal(t, 20, plan.Subjects[0].TimeAllocation)
	assert.Equal(t, "medium", plan.Subjects[1].Priority)
	assert.Equal(t, 25, plan.Subjects[1].TimeAllocation)
}

func TestPlanDurationFormulaAndClamp(t *testing.T) {
	// 60 + 0 + 30 (level<3) + 40 (time<30) + 20 (two weak areas) = 150 -> 120.
	profile := LearnerProfile{
		Level:              2,
		DailyTimeAvailable: 20,
		WeakAreas:          []string{"A", "B"},
	}
	assert.Equal(t, 120, planDuration(profile, 1))

	// 60 - 20 (level>7) - 20 (time>90) = 20 -> clamped up to 30.
	fast := LearnerProfile{Level: 9, DailyTimeAvailable: 120}
	assert.Equal(t, 30, planDuration(fast, 1))

	// Mid-range value passes through unclamped: 60 + 20 + 0 + 0 + 10 = 90.
	mid := LearnerProfile{Level: 5, DailyTimeAvailable: 60, WeakAreas: []string{"A"}}
	assert.Equal(t, 90, planDuration(mid, 2))
}

func TestDifficultyLabel(t *testing.T) {
	passthrough := LearnerProfile{PreferredDifficulty: "hard"}
	assert.Equal(t, "hard", difficultyLabel(passthrough))

	// adaptive: score = level*10 + stars/10 + strong*5 - weak*5
	supportive := LearnerProfile{PreferredDifficulty: "adaptive", Level: 2, WeakAreas: []string{"a", "b"}}
	assert.Equal(t, "AP Supportive", difficultyLabel(supportive)) // 20 - 10 = 10

	balanced := LearnerProfile{PreferredDifficulty: "adaptive", Level: 6, TotalStars: 100}
	assert.Equal(t, "AP Balanced", difficultyLabel(balanced)) // 60 + 10 = 70

	challenging := LearnerProfile{PreferredDifficulty: "adaptive", Level: 9, TotalStars: 200}
	assert.Equal(t, "AP Challenging", difficultyLabel(challenging)) // 90 + 20 = 110
}

func TestBuildMilestones(t *testing.T) {
	milestones := buildMilestones(120) // ceil(120/7) = 18 weeks -> capped at 12
	require.NotEmpty(t, milestones)
	require.LessOrEqual(t, len(milestones), maxMilestones)

	// Weeks advance at a fixed two-week cadence starting at week 1.
	for i, m := range milestones {
		assert.Equal(t, 1+2*i, m.Week)
		assert.NotEmpty(t, m.Title)
		assert.Len(t, m.SuccessCriteria, 3)
	}
	last := milestones[len(milestones)-1]
	assert.LessOrEqual(t, last.Week, maxMilestones)

	// Titles follow the week bands.
	assert.Equal(t, "Foundation Building", milestones[0].Title)
	assert.Equal(t, "Skill Development", milestones[1].Title)  // week 3
	assert.Equal(t, "Skill Development", milestones[2].Title)  // week 5
	assert.Equal(t, "Application Mastery", milestones[3].Title) // week 7
	assert.Equal(t, "Application Mastery", milestones[4].Title) // week 9
	assert.Equal(t, "Exam Readiness", milestones[5].Title)      // week 11
}

func TestBuildMilestonesShortPlan(t *testing.T) {
	milestones := buildMilestones(30) // ceil(30/7) = 5 weeks -> weeks 1, 3, 5
	require.Len(t, milestones, 3)
	assert.Equal(t, 1, milestones[0].Week)
	assert.Equal(t, 5, milestones[2].Week)
}

func TestBuildRecommendationsOrderAndCap(t *testing.T) {
	profile := LearnerProfile{
		LearningStyle:      StyleVisual,
		WeakAreas:          []string{"limits"},
		DailyTimeAvailable: 20,
		RecentPerformance:  &PerformanceSnapshot{Accuracy: 60, Consistency: 50, Speed: 80, Engagement: 80},
	}
	insight := ContentInsight{Difficulty: InsightIntermediate, HasFormulas: true, HasExamples: true}

	recs := buildRecommendations(profile, insight)
	require.Len(t, recs, maxRecommendations)

	// Fixed generation order: style pair first, weak-area pair next.
	assert.Equal(t, styleRecommendations[StyleVisual][0], recs[0])
	assert.Equal(t, styleRecommendations[StyleVisual][1], recs[1])
	assert.Contains(t, recs[2], "limits")
}

func TestBuildRecommendationsMinimalProfile(t *testing.T) {
	recs := buildRecommendations(LearnerProfile{DailyTimeAvailable: 60}, ContentInsight{Difficulty: InsightIntermediate})
	assert.LessOrEqual(t, len(recs), maxRecommendations)
}

func TestPlanConfidenceFormula(t *testing.T) {
	// 70 + 15 (level cap) + 10 (stars cap) + 10 (streak cap) + 4 (strong) + 5 (time) = 114 -> 95.
	maxed := LearnerProfile{
		Level: 10, TotalStars: 1000, CurrentStreak: 40,
		StrongAreas: []string{"a", "b"}, DailyTimeAvailable: 90,
	}
	assert.Equal(t, 95, planConfidence(maxed))

	// 70 - 15 (five weak areas) - 5 (low time) = 50 -> 60.
	low := LearnerProfile{
		WeakAreas:          []string{"a", "b", "c", "d", "e"},
		DailyTimeAvailable: 10,
	}
	assert.Equal(t, 60, planConfidence(low))

	// Unclamped mid value: 70 + 9 + 2 + 3 - 3 + 2 + 5 = 88.
	mid := LearnerProfile{
		Level: 3, TotalStars: 100, CurrentStreak: 6,
		WeakAreas: []string{"a"}, StrongAreas: []string{"b"},
		DailyTimeAvailable: 60,
	}
	assert.Equal(t, 88, planConfidence(mid))
}

func TestSubjectReasoningMentionsMaterialOverlap(t *testing.T) {
	insight := ContentInsight{
		Difficulty: InsightIntermediate,
		Topics:     []string{"Calculus AB", "Unrelated"},
	}
	reasoning := subjectReasoning("AP Calculus AB", "high", insight)
	assert.Contains(t, reasoning, "AP Calculus AB is included")
	assert.Contains(t, reasoning, "prioritized")
	assert.Contains(t, reasoning, "Calculus AB")
	assert.NotContains(t, reasoning, "Unrelated")
}
