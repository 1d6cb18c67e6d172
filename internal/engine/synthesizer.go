package engine

import (
	"fmt"
	"strings"
)

const materialTopicSuffix = " (From Your Materials)"

// SynthesizeTopics builds the ordered topic list for one subject,
// personalized by the learner profile and enriched by content insight.
// Catalog topics come first; topics discovered in uploaded materials are
// appended afterwards, and the final list is capped.
func SynthesizeTopics(subject string, profile LearnerProfile, insight ContentInsight) []Topic {
	names, ok := subjectTopicCatalog[subject]
	if !ok {
		names = genericTopicNames(subject)
	}

	topics := make([]Topic, 0, len(names))
	for i, name := range names {
		topic := Topic{
			Name:          name,
			Difficulty:    topicDifficulty(name, profile, insight),
			EstimatedTime: estimateTopicTime(profile),
			Resources:     topicResources(subject, profile.LearningStyle),
			Assessments:   topicAssessments(profile.LearningStyle),
		}
		if i > 0 {
			topic.Prerequisites = []string{names[i-1]}
		}
		topic.LearningObjectives = topicObjectives(name, profile.LearningStyle, insight)
		topics = append(topics, topic)
	}

	topics = appendMaterialTopics(topics, insight)

	if len(topics) > maxTopicsPerSubject {
		topics = topics[:maxTopicsPerSubject]
	}
	return topics
}

// topicDifficulty applies profile signals first (weak downgrades, then a
// strong match unconditionally overwrites), then content-derived signals:
// an advanced insight upgrades anything that is not Beginner, while a
// beginner insight always forces Beginner.
func topicDifficulty(name string, profile LearnerProfile, insight ContentInsight) string {
	difficulty := TierIntermediate
	lower := strings.ToLower(name)

	for _, weak := range profile.WeakAreas {
		if weak != "" && strings.Contains(lower, strings.ToLower(weak)) {
			difficulty = TierBeginner
			break
		}
	}
	for _, strong := range profile.StrongAreas {
		if strong != "" && strings.Contains(lower, strings.ToLower(strong)) {
			difficulty = TierAdvanced
			break
		}
	}

	switch insight.Difficulty {
	case InsightAdvanced:
		if difficulty != TierBeginner {
			difficulty = TierAdvanced
		}
	case InsightBeginner:
		difficulty = TierBeginner
	}
	return difficulty
}

// estimateTopicTime picks the base session length from the daily time
// budget, then applies the learning-style adjustment on top.
func estimateTopicTime(profile LearnerProfile) int {
	minutes := 45
	if profile.DailyTimeAvailable < 30 {
		minutes = 25
	} else if profile.DailyTimeAvailable > 90 {
		minutes = 60
	}

	switch profile.LearningStyle {
	case StyleKinesthetic:
		minutes += 15
	case StyleReading:
		minutes -= 10
	}
	return minutes
}

func topicObjectives(name, style string, insight ContentInsight) []string {
	objectives := []string{fmt.Sprintf("Master the core concepts of %s", name)}
	if obj, ok := styleObjectives[style]; ok {
		objectives = append(objectives, obj)
	}

	lowerName := strings.ToLower(name)
	for _, focus := range insight.FocusAreas {
		if len(objectives) >= 4 {
			break
		}
		lowerFocus := strings.ToLower(focus)
		if strings.Contains(lowerName, lowerFocus) || strings.Contains(lowerFocus, lowerName) {
			objectives = append(objectives, fmt.Sprintf("Focus on %s as flagged in your materials", focus))
		}
	}
	if len(objectives) > 4 {
		objectives = objectives[:4]
	}
	return objectives
}

func topicResources(subject, style string) []string {
	resources := []string{
		fmt.Sprintf("%s course textbook and class notes", subject),
		"Official AP practice questions",
	}
	return append(resources, styleResources[style]...)
}

func topicAssessments(style string) []string {
	assessments := []string{
		"Topic quiz with scored feedback",
		"Timed AP-style practice set",
	}
	return append(assessments, styleAssessments[style]...)
}

// appendMaterialTopics adds insight-derived topics that are not already
// covered by the catalog list, tagged as coming from uploaded materials.
func appendMaterialTopics(topics []Topic, insight ContentInsight) []Topic {
	for _, discovered := range insight.Topics {
		lower := strings.ToLower(discovered)
		exists := false
		for _, t := range topics {
			existing := strings.ToLower(t.Name)
			if strings.Contains(existing, lower) || strings.Contains(lower, existing) {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		topics = append(topics, Topic{
			Name:          discovered + materialTopicSuffix,
			Difficulty:    insightTier(insight.Difficulty),
			EstimatedTime: 45,
			LearningObjectives: []string{
				fmt.Sprintf("Review %s from your uploaded materials", discovered),
				fmt.Sprintf("Connect %s to the core curriculum topics", discovered),
			},
			Resources:   []string{"Your uploaded study materials"},
			Assessments: []string{"Self-check against your materials"},
		})
	}
	return topics
}

// insightTier maps a content-derived difficulty label to a topic tier.
func insightTier(difficulty string) string {
	switch difficulty {
	case InsightBeginner:
		return TierBeginner
	case InsightAdvanced:
		return TierAdvanced
	default:
		return TierIntermediate
	}
}
