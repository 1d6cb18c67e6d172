package engine

import (
	"sort"
	"sync"
)

// MaxSessionHistory bounds the per-user session log; the oldest entries
// are evicted first once the bound is exceeded.
const MaxSessionHistory = 50

// ProgressTracker keeps a per-user append-only log of finished study
// sessions and derives rolling insights from it. Appends for the same user
// are serialized; there is no cross-user coordination.
type ProgressTracker struct {
	mu      sync.Mutex
	history map[string][]SessionRecord
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{history: make(map[string][]SessionRecord)}
}

// Record appends a finished session, evicting the oldest entries beyond
// the history bound.
func (t *ProgressTracker) Record(rec SessionRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()

	log := append(t.history[rec.UserID], rec)
	if len(log) > MaxSessionHistory {
		log = log[len(log)-MaxSessionHistory:]
	}
	t.history[rec.UserID] = log
}

// History returns a copy of the user's retained session log in insertion
// order.
func (t *ProgressTracker) History(userID string) []SessionRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]SessionRecord(nil), t.history[userID]...)
}

// Insights aggregates the retained history for one user.
func (t *ProgressTracker) Insights(userID string) SessionInsights {
	return AggregateSessions(t.History(userID))
}

// AggregateSessions derives rolling statistics from a session log. An
// empty log yields HasData=false with zero values throughout.
func AggregateSessions(records []SessionRecord) SessionInsights {
	if len(records) == 0 {
		return SessionInsights{}
	}

	insights := SessionInsights{
		HasData:       true,
		TotalSessions: len(records),
	}

	var accuracySum, durationSum, questionSum float64
	for _, r := range records {
		accuracySum += r.Accuracy
		durationSum += float64(r.Duration)
		questionSum += float64(r.QuestionsAnswered)
	}
	n := float64(len(records))
	insights.AverageAccuracy = accuracySum / n
	insights.StudyPatterns.AverageDuration = durationSum / n
	insights.StudyPatterns.AverageQuestions = questionSum / n
	insights.StudyPatterns.ConsistencyScore = consistencyScore(records)

	insights.CommonWeakAreas = topWeakAreas(records, 3)
	insights.PreferredDifficulty = preferredDifficulty(records)

	return insights
}

// topWeakAreas returns the most frequent improvement areas. Ties are broken
// by first encounter in the log.
func topWeakAreas(records []SessionRecord, limit int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for _, r := range records {
		for _, area := range r.AreasForImprovement {
			if _, ok := counts[area]; !ok {
				firstSeen[area] = len(order)
				order = append(order, area)
			}
			counts[area]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// preferredDifficulty scores each difficulty tier by mean accuracy, with a
// small bonus once the tier has a meaningful sample, and returns the
// highest scorer. Ties keep the tier encountered first.
func preferredDifficulty(records []SessionRecord) string {
	type tierStats struct {
		sum   float64
		count int
	}
	stats := make(map[string]*tierStats)
	var order []string
	for _, r := range records {
		tier := r.Difficulty
		if tier == "" {
			continue
		}
		st, ok := stats[tier]
		if !ok {
			st = &tierStats{}
			stats[tier] = st
			order = append(order, tier)
		}
		st.sum += r.Accuracy
		st.count++
	}
	if len(order) == 0 {
		return ""
	}

	best, bestScore := "", -1.0
	for _, tier := range order {
		st := stats[tier]
		score := st.sum / float64(st.count)
		if st.count > 3 {
			score += 5
		}
		if score > bestScore {
			best, bestScore = tier, score
		}
	}
	return best
}

// consistencyScore measures how regularly sessions recur: 100 for daily
// study, dropping 10 points per extra day of mean gap, floored at 0.
// Fewer than two sessions cannot establish a rhythm and score 0.
func consistencyScore(records []SessionRecord) float64 {
	if len(records) < 2 {
		return 0
	}

	var totalGapDays float64
	for i := 1; i < len(records); i++ {
		gap := records[i].StartTime.Sub(records[i-1].StartTime)
		totalGapDays += gap.Hours() / 24
	}
	meanGap := totalGapDays / float64(len(records)-1)

	score := 100 - (meanGap-1)*10
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
