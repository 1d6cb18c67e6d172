package engine

import (
	"fmt"
	"strings"
)

// AssemblePlan builds a complete study plan from the learner profile, the
// stated goals, and optional raw study-material text. It is deterministic
// and never fails for a well-typed profile: a profile with all-empty lists
// and zero counters still produces a complete plan through the default
// branches.
func AssemblePlan(profile LearnerProfile, goals []string, rawText string) StudyPlan {
	subjectNames := ClassifySubjects(goals, profile.WeakAreas, profile.StrongAreas)
	insight := AnalyzeContent(rawText)

	subjects := make([]Subject, 0, len(subjectNames))
	for _, name := range subjectNames {
		subjects = append(subjects, buildSubject(name, profile, insight))
	}

	duration := planDuration(profile, len(subjects))

	plan := StudyPlan{
		Title:               planTitle(profile),
		Description:         planDescription(subjectNames, duration),
		DurationDays:        duration,
		DailyTimeCommitment: profile.DailyTimeAvailable,
		Difficulty:          difficultyLabel(profile),
		Subjects:            subjects,
		Milestones:          buildMilestones(duration),
		AdaptiveFeatures: AdaptiveFeatures{
			DifficultyScaling:  true,
			PersonalizedPacing: true,
			WeakAreaFocus:      true,
			ProgressPrediction: true,
		},
		PersonalizedRecommendations: buildRecommendations(profile, insight),
		EstimatedOutcome:            estimatedOutcome(profile, subjectNames),
		Confidence:                  planConfidence(profile),
	}
	return plan
}

func buildSubject(name string, profile LearnerProfile, insight ContentInsight) Subject {
	isWeak := matchesAnyArea(name, profile.WeakAreas)
	isStrong := matchesAnyArea(name, profile.StrongAreas)

	priority, allocation := "medium", 25
	switch {
	case isWeak:
		priority, allocation = "high", 35
	case isStrong:
		priority, allocation = "low", 20
	}

	return Subject{
		Name:           name,
		Priority:       priority,
		TimeAllocation: allocation,
		Topics:         SynthesizeTopics(name, profile, insight),
		Reasoning:      subjectReasoning(name, priority, insight),
	}
}

// matchesAnyArea checks case-insensitive substring containment in either
// direction between the subject name and each listed area.
func matchesAnyArea(subject string, areas []string) bool {
	lowerSubject := strings.ToLower(subject)
	for _, area := range areas {
		lowerArea := strings.ToLower(area)
		if lowerArea == "" {
			continue
		}
		if strings.Contains(lowerSubject, lowerArea) || strings.Contains(lowerArea, lowerSubject) {
			return true
		}
	}
	return false
}

func subjectReasoning(name, priority string, insight ContentInsight) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is included in your study plan. ", name)
	switch priority {
	case "high":
		b.WriteString("It is prioritized because it overlaps your weak areas, so it receives the largest share of study time.")
	case "low":
		b.WriteString("You are already strong here, so it gets a lighter maintenance allocation.")
	default:
		b.WriteString("It receives balanced coverage to keep steady progress toward your goals.")
	}

	lowerName := strings.ToLower(name)
	var covered []string
	for _, t := range insight.Topics {
		lowerTopic := strings.ToLower(t)
		if strings.Contains(lowerName, lowerTopic) || strings.Contains(lowerTopic, lowerName) {
			covered = append(covered, t)
		}
	}
	if len(covered) > 0 {
		fmt.Fprintf(&b, " Your uploaded materials already cover: %s.", strings.Join(covered, ", "))
	}
	return b.String()
}

func planDuration(profile LearnerProfile, subjectCount int) int {
	duration := 60
	if subjectCount > 1 {
		duration += 20 * (subjectCount - 1)
	}
	if profile.Level < 3 {
		duration += 30
	} else if profile.Level > 7 {
		duration -= 20
	}
	if profile.DailyTimeAvailable < 30 {
		duration += 40
	} else if profile.DailyTimeAvailable > 90 {
		duration -= 20
	}
	duration += 10 * len(profile.WeakAreas)
	return clampInt(duration, 30, 120)
}

func difficultyLabel(profile LearnerProfile) string {
	if profile.PreferredDifficulty != "" && profile.PreferredDifficulty != "adaptive" {
		return profile.PreferredDifficulty
	}
	score := profile.Level*10 + profile.TotalStars/10 +
		len(profile.StrongAreas)*5 - len(profile.WeakAreas)*5
	switch {
	case score < 50:
		return "AP Supportive"
	case score < 100:
		return "AP Balanced"
	default:
		return "AP Challenging"
	}
}

type milestoneTemplate struct {
	title       string
	description string
	criteria    []string
}

var milestoneTemplates = []struct {
	maxWeek int
	milestoneTemplate
}{
	{2, milestoneTemplate{
		title:       "Foundation Building",
		description: "Establish your baseline and lock in a daily study routine.",
		criteria: []string{
			"Complete the diagnostic review for every subject",
			"Hold your daily study schedule for the full period",
			"Finish the first topic in each subject",
		},
	}},
	{6, milestoneTemplate{
		title:       "Skill Development",
		description: "Deepen core skills and close early gaps.",
		criteria: []string{
			"Reach 70% accuracy on topic quizzes",
			"Clear every Beginner-tier topic in your weak areas",
			"Complete two timed practice sets per subject",
		},
	}},
	{10, milestoneTemplate{
		title:       "Application Mastery",
		description: "Apply skills under exam-like conditions.",
		criteria: []string{
			"Reach 80% accuracy on mixed practice sets",
			"Finish all Intermediate-tier topics",
			"Complete a full-length practice section per subject",
		},
	}},
}

var examReadinessMilestone = milestoneTemplate{
	title:       "Exam Readiness",
	description: "Polish timing, review mistakes, and simulate test day.",
	criteria: []string{
		"Score 4 or higher on a full practice exam",
		"Review every logged mistake from earlier weeks",
		"Run at least one timed full simulation per subject",
	},
}

// buildMilestones emits a milestone every two weeks starting at week 1,
// bounded by the plan duration (in weeks) and the milestone cap.
func buildMilestones(durationDays int) []Milestone {
	totalWeeks := (durationDays + 6) / 7
	if totalWeeks > maxMilestones {
		totalWeeks = maxMilestones
	}

	var milestones []Milestone
	for week := 1; week <= totalWeeks && len(milestones) < maxMilestones; week += 2 {
		tmpl := examReadinessMilestone
		for _, m := range milestoneTemplates {
			if week <= m.maxWeek {
				tmpl = m.milestoneTemplate
				break
			}
		}
		milestones = append(milestones, Milestone{
			Week:            week,
			Title:           tmpl.title,
			Description:     tmpl.description,
			SuccessCriteria: append([]string(nil), tmpl.criteria...),
		})
	}
	return milestones
}

var styleRecommendations = map[string][]string{
	StyleVisual: {
		"Use diagrams, graphs, and concept maps while studying",
		"Watch a video walkthrough before attempting new problem types",
	},
	StyleAuditory: {
		"Talk through each solution out loud as you work",
		"Listen to topic summaries during commutes or breaks",
	},
	StyleKinesthetic: {
		"Work problems by hand before reading worked solutions",
		"Use simulations or manipulatives for abstract concepts",
	},
	StyleReading: {
		"Write a short summary after every study session",
		"Annotate practice explanations in your own words",
	},
}

// buildRecommendations assembles the recommendation list in a fixed order:
// learning style, weak areas, time management, content signals, then recent
// performance, truncated at the cap.
func buildRecommendations(profile LearnerProfile, insight ContentInsight) []string {
	var recs []string
	recs = append(recs, styleRecommendations[profile.LearningStyle]...)

	if len(profile.WeakAreas) > 0 {
		recs = append(recs,
			fmt.Sprintf("Start each day with a focused block on your weak areas: %s", strings.Join(profile.WeakAreas, ", ")),
			"Retake missed questions in weak areas until your accuracy passes 80%",
		)
	}

	if profile.DailyTimeAvailable < 45 {
		recs = append(recs, "Keep sessions to a single topic so short study windows stay productive")
	} else if profile.DailyTimeAvailable > 90 {
		recs = append(recs, "Split long sessions with a 10-minute break every 45 minutes")
	}

	if insight.HasFormulas {
		recs = append(recs, "Build a formula sheet from your materials and rehearse it daily")
	}
	if insight.HasExamples {
		recs = append(recs, "Rework the examples in your materials without looking at the solutions")
	}

	if perf := profile.RecentPerformance; perf != nil {
		if perf.Accuracy < 70 {
			recs = append(recs, "Slow down: review the explanation after every missed question")
		}
		if perf.Consistency < 70 {
			recs = append(recs, "Study at the same time each day to rebuild consistency")
		}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func estimatedOutcome(profile LearnerProfile, subjects []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Following this plan consistently puts you on track for scores of 4-5 in %s.",
		strings.Join(subjects, ", "))
	if len(profile.WeakAreas) > 0 {
		fmt.Fprintf(&b, " Expect measurable improvement in %s within the first few weeks.",
			strings.Join(profile.WeakAreas, ", "))
	}
	fmt.Fprintf(&b, " Pacing is tuned for a %s learner at level %d.", profile.LearningStyle, profile.Level)
	return b.String()
}

func planConfidence(profile LearnerProfile) int {
	confidence := 70
	confidence += minInt(profile.Level*3, 15)
	confidence += minInt(profile.TotalStars/50, 10)
	confidence += minInt(profile.CurrentStreak/2, 10)
	confidence -= len(profile.WeakAreas) * 3
	confidence += len(profile.StrongAreas) * 2
	if profile.DailyTimeAvailable >= 60 {
		confidence += 5
	} else if profile.DailyTimeAvailable < 30 {
		confidence -= 5
	}
	return clampInt(confidence, 60, 95)
}

func planTitle(profile LearnerProfile) string {
	if profile.Name != "" {
		return fmt.Sprintf("%s's AP Success Plan", profile.Name)
	}
	return "Personalized AP Study Plan"
}

func planDescription(subjects []string, durationDays int) string {
	return fmt.Sprintf("A %d-day adaptive study plan covering %s, built from your goals, strengths, and study habits.",
		durationDays, strings.Join(subjects, ", "))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
