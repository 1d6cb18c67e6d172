package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neutralInsight() ContentInsight {
	return ContentInsight{Difficulty: InsightIntermediate}
}

func TestSynthesizeTopicsStructuralInvariants(t *testing.T) {
	profiles := []LearnerProfile{
		{},
		{LearningStyle: StyleKinesthetic, DailyTimeAvailable: 120, WeakAreas: []string{"limits"}},
		{LearningStyle: StyleReading, DailyTimeAvailable: 20, StrongAreas: []string{"derivatives"}},
	}
	tiers := map[string]bool{TierBeginner: true, TierIntermediate: true, TierAdvanced: true, TierExpert: true}

	for _, profile := range profiles {
		for _, subject := range []string{"AP Calculus AB", "AP Underwater Basket Weaving"} {
			topics := SynthesizeTopics(subject, profile, neutralInsight())
			require.NotEmpty(t, topics)
			require.LessOrEqual(t, len(topics), maxTopicsPerSubject)
			for _, topic := range topics {
				assert.NotEmpty(t, topic.Name)
				assert.Positive(t, topic.EstimatedTime)
				assert.NotEmpty(t, topic.LearningObjectives)
				assert.True(t, tiers[topic.Difficulty], "unexpected tier %q", topic.Difficulty)
				assert.NotContains(t, topic.Prerequisites, topic.Name)
			}
		}
	}
}

func TestSynthesizeTopicsGenericFallbackChain(t *testing.T) {
	topics := SynthesizeTopics("AP Basket Weaving", LearnerProfile{}, neutralInsight())
	require.Len(t, topics, 3)
	assert.Equal(t, "AP Basket Weaving Fundamentals", topics[0].Name)
	assert.Equal(t, "AP Basket Weaving Applications", topics[1].Name)
	assert.Equal(t, "AP Basket Weaving Problem Solving", topics[2].Name)
	assert.Empty(t, topics[0].Prerequisites)
	assert.Equal(t, []string{topics[0].Name}, topics[1].Prerequisites)
	assert.Equal(t, []string{topics[1].Name}, topics[2].Prerequisites)
}

func TestTopicDifficultyWeakAndStrongPrecedence(t *testing.T) {
	profile := LearnerProfile{
		WeakAreas:   []string{"limits"},
		StrongAreas: []string{"continuity"},
	}
	// Matches only the weak phrase.
	assert.Equal(t, TierBeginner, topicDifficulty("Limits at Infinity", profile, neutralInsight()))
	// Matches only the strong phrase.
	assert.Equal(t, TierAdvanced, topicDifficulty("Continuity Rules", profile, neutralInsight()))
	// Matches both: the strong upgrade is applied last and wins.
	assert.Equal(t, TierAdvanced, topicDifficulty("Limits and Continuity", profile, neutralInsight()))
	// Matches neither.
	assert.Equal(t, TierIntermediate, topicDifficulty("Integrals", profile, neutralInsight()))
}

func TestTopicDifficultyInsightOverrides(t *testing.T) {
	advanced := ContentInsight{Difficulty: InsightAdvanced}
	beginner := ContentInsight{Difficulty: InsightBeginner}
	weak := LearnerProfile{WeakAreas: []string{"limits"}}

	// Advanced insight upgrades non-Beginner topics only.
	assert.Equal(t, TierAdvanced, topicDifficulty("Integrals", LearnerProfile{}, advanced))
	assert.Equal(t, TierBeginner, topicDifficulty("Limits at Infinity", weak, advanced))
	// Beginner insight always wins.
	strong := LearnerProfile{StrongAreas: []string{"integrals"}}
	assert.Equal(t, TierBeginner, topicDifficulty("Integrals", strong, beginner))
}

func TestEstimateTopicTime(t *testing.T) {
	cases := []struct {
		name    string
		profile LearnerProfile
		want    int
	}{
		{"default base", LearnerProfile{DailyTimeAvailable: 45}, 45},
		{"short budget", LearnerProfile{DailyTimeAvailable: 20}, 25},
		{"long budget", LearnerProfile{DailyTimeAvailable: 120}, 60},
		{"kinesthetic adds after base", LearnerProfile{DailyTimeAvailable: 20, LearningStyle: StyleKinesthetic}, 40},
		{"reading subtracts after base", LearnerProfile{DailyTimeAvailable: 120, LearningStyle: StyleReading}, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, estimateTopicTime(tc.profile))
		})
	}
}

func TestSynthesizeTopicsObjectives(t *testing.T) {
	profile := LearnerProfile{LearningStyle: StyleVisual, DailyTimeAvailable: 60}
	insight := ContentInsight{
		Difficulty: InsightIntermediate,
		FocusAreas: []string{"limits", "unrelated phrase"},
	}
	topics := SynthesizeTopics("AP Calculus AB", profile, insight)

	limitsTopic := topics[0]
	require.Equal(t, "Limits and Continuity", limitsTopic.Name)
	require.LessOrEqual(t, len(limitsTopic.LearningObjectives), 4)
	assert.Contains(t, limitsTopic.LearningObjectives[1], "Visualize")
	found := false
	for _, obj := range limitsTopic.LearningObjectives {
		if strings.Contains(obj, "limits") {
			found = true
		}
	}
	assert.True(t, found, "focus-area objective missing")
}

func TestSynthesizeTopicsAppendsMaterialTopics(t *testing.T) {
	insight := ContentInsight{
		Difficulty: InsightAdvanced,
		Topics:     []string{"Related Rates", "Limits"}, // second overlaps the catalog
	}
	topics := SynthesizeTopics("AP Calculus AB", LearnerProfile{DailyTimeAvailable: 60}, insight)

	var material []Topic
	for _, topic := range topics {
		if strings.HasSuffix(topic.Name, materialTopicSuffix) {
			material = append(material, topic)
		}
	}
	require.Len(t, material, 1)
	assert.Equal(t, "Related Rates"+materialTopicSuffix, material[0].Name)
	assert.Equal(t, TierAdvanced, material[0].Difficulty)
	assert.Equal(t, 45, material[0].EstimatedTime)
}

func TestSynthesizeTopicsCapAtEight(t *testing.T) {
	insight := ContentInsight{
		Difficulty: InsightIntermediate,
		Topics: []string{
			"Alpha Material", "Beta Material", "Gamma Material", "Delta Material",
			"Epsilon Material", "Zeta Material",
		},
	}
	topics := SynthesizeTopics("AP Calculus AB", LearnerProfile{DailyTimeAvailable: 60}, insight)
	require.Len(t, topics, maxTopicsPerSubject)
	// Catalog topics keep their position ahead of material appends.
	assert.Equal(t, "Limits and Continuity", topics[0].Name)
}

func TestSynthesizeTopicsEmptyInsightLeavesCatalogUnmodified(t *testing.T) {
	insight := AnalyzeContent("")
	topics := SynthesizeTopics("AP Calculus AB", LearnerProfile{DailyTimeAvailable: 60}, insight)
	require.Len(t, topics, len(subjectTopicCatalog["AP Calculus AB"]))
	for i, topic := range topics {
		assert.Equal(t, subjectTopicCatalog["AP Calculus AB"][i], topic.Name)
		assert.Equal(t, TierIntermediate, topic.Difficulty)
	}
}
