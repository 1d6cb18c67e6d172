package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionAt(user string, day int) SessionRecord {
	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC).AddDate(0, 0, day)
	return SessionRecord{
		UserID:            user,
		Subject:           "AP Calculus AB",
		Topic:             "Derivatives",
		Difficulty:        TierIntermediate,
		StartTime:         start,
		EndTime:           start.Add(30 * time.Minute),
		Duration:          30,
		QuestionsAnswered: 10,
		CorrectAnswers:    8,
		Accuracy:          80,
	}
}

func TestProgressTrackerEvictionBoundary(t *testing.T) {
	tracker := NewProgressTracker()
	for i := 0; i < 55; i++ {
		rec := sessionAt("u1", i)
		rec.Topic = fmt.Sprintf("topic-%d", i)
		tracker.Record(rec)
	}

	history := tracker.History("u1")
	require.Len(t, history, MaxSessionHistory)
	// The oldest five were evicted; the most recent fifty remain in order.
	assert.Equal(t, "topic-5", history[0].Topic)
	assert.Equal(t, "topic-54", history[len(history)-1].Topic)
}

func TestProgressTrackerIsolatesUsers(t *testing.T) {
	tracker := NewProgressTracker()
	tracker.Record(sessionAt("u1", 0))
	tracker.Record(sessionAt("u2", 0))
	tracker.Record(sessionAt("u2", 1))

	assert.Len(t, tracker.History("u1"), 1)
	assert.Len(t, tracker.History("u2"), 2)
	assert.Empty(t, tracker.History("nobody"))
}

func TestAggregateSessionsEmpty(t *testing.T) {
	insights := AggregateSessions(nil)
	assert.False(t, insights.HasData)
	assert.Zero(t, insights.TotalSessions)
}

func TestAggregateSessionsBasicStats(t *testing.T) {
	records := []SessionRecord{}
	for i := 0; i < 4; i++ {
		rec := sessionAt("u1", i)
		rec.Accuracy = float64(60 + i*10) // 60, 70, 80, 90
		rec.Duration = 20 + i*10          // 20, 30, 40, 50
		rec.QuestionsAnswered = 10
		records = append(records, rec)
	}

	insights := AggregateSessions(records)
	require.True(t, insights.HasData)
	assert.Equal(t, 4, insights.TotalSessions)
	assert.InDelta(t, 75, insights.AverageAccuracy, 0.001)
	assert.InDelta(t, 35, insights.StudyPatterns.AverageDuration, 0.001)
	assert.InDelta(t, 10, insights.StudyPatterns.AverageQuestions, 0.001)
	// Daily sessions: mean gap of one day scores a full 100.
	assert.InDelta(t, 100, insights.StudyPatterns.ConsistencyScore, 0.001)
}

func TestAggregateSessionsConsistency(t *testing.T) {
	// Sessions every 4 days: 100 - (4-1)*10 = 70.
	records := []SessionRecord{sessionAt("u1", 0), sessionAt("u1", 4), sessionAt("u1", 8)}
	insights := AggregateSessions(records)
	assert.InDelta(t, 70, insights.StudyPatterns.ConsistencyScore, 0.001)

	// A single session cannot establish a rhythm.
	single := AggregateSessions([]SessionRecord{sessionAt("u1", 0)})
	assert.Zero(t, single.StudyPatterns.ConsistencyScore)

	// Very sparse sessions floor at 0: 100 - (15-1)*10 < 0.
	sparse := AggregateSessions([]SessionRecord{sessionAt("u1", 0), sessionAt("u1", 15)})
	assert.Zero(t, sparse.StudyPatterns.ConsistencyScore)
}

func TestAggregateSessionsCommonWeakAreas(t *testing.T) {
	mk := func(areas ...string) SessionRecord {
		rec := sessionAt("u1", 0)
		rec.AreasForImprovement = areas
		return rec
	}
	records := []SessionRecord{
		mk("limits", "chain rule"),
		mk("chain rule"),
		mk("integrals", "limits"),
		mk("chain rule", "units"),
	}

	insights := AggregateSessions(records)
	// chain rule x3, then limits x2, then the first-encountered single.
	require.Equal(t, []string{"chain rule", "limits", "integrals"}, insights.CommonWeakAreas)
}

func TestAggregateSessionsPreferredDifficulty(t *testing.T) {
	mk := func(tier string, accuracy float64) SessionRecord {
		rec := sessionAt("u1", 0)
		rec.Difficulty = tier
		rec.Accuracy = accuracy
		return rec
	}

	// Intermediate has 4 sessions at 78 (bonus applies: 83); Advanced has
	// 2 sessions at 80 (no bonus). Intermediate wins.
	records := []SessionRecord{
		mk(TierIntermediate, 78), mk(TierIntermediate, 78),
		mk(TierIntermediate, 78), mk(TierIntermediate, 78),
		mk(TierAdvanced, 80), mk(TierAdvanced, 80),
	}
	insights := AggregateSessions(records)
	assert.Equal(t, TierIntermediate, insights.PreferredDifficulty)

	// Without the volume bonus the higher mean wins.
	fewer := []SessionRecord{mk(TierIntermediate, 78), mk(TierAdvanced, 80)}
	assert.Equal(t, TierAdvanced, AggregateSessions(fewer).PreferredDifficulty)
}

func TestProgressTrackerInsights(t *testing.T) {
	tracker := NewProgressTracker()
	assert.False(t, tracker.Insights("u1").HasData)

	tracker.Record(sessionAt("u1", 0))
	insights := tracker.Insights("u1")
	assert.True(t, insights.HasData)
	assert.Equal(t, 1, insights.TotalSessions)
	assert.InDelta(t, 80, insights.AverageAccuracy, 0.001)
}

func TestAggregateSessionsTieBreakFirstEncountered(t *testing.T) {
	mk := func(areas ...string) SessionRecord {
		rec := sessionAt("u1", 0)
		rec.AreasForImprovement = areas
		return rec
	}
	records := []SessionRecord{mk("alpha"), mk("beta"), mk("gamma"), mk("delta")}
	insights := AggregateSessions(records)
	require.Equal(t, []string{"alpha", "beta", "gamma"}, insights.CommonWeakAreas)
}
