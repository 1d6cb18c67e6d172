package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinned(i int) func(n int) int {
	return func(n int) int {
		if i >= n {
			return n - 1
		}
		return i
	}
}

func TestGenerateContentUnknownSubjectBeginner(t *testing.T) {
	g := NewContentGeneratorWithSelector(pinned(0))
	content := g.GenerateContent("AP Unknownology", "Wave Mechanics", TierBeginner, StyleVisual)

	assert.Equal(t, 10, content.Points)
	require.Len(t, content.CommonMistakes, 3)
	for _, mistake := range content.CommonMistakes {
		assert.Contains(t, mistake, "Wave Mechanics")
	}
	assert.Equal(t, "Wave Mechanics", content.Concepts[0])
	assert.NotEmpty(t, content.Explanation)
	assert.NotEmpty(t, content.Hint)
}

func TestGenerateContentPointsLookup(t *testing.T) {
	cases := map[string]int{
		TierBeginner:     10,
		TierIntermediate: 15,
		TierAdvanced:     22,
		TierExpert:       30,
		"anything else":  15,
	}
	for tier, points := range cases {
		assert.Equal(t, points, pointsForDifficulty(tier), tier)
	}
}

func TestGenerateContentDeterministicWithPinnedSelector(t *testing.T) {
	g := NewContentGeneratorWithSelector(pinned(1))
	first := g.GenerateContent("AP Calculus AB", "Derivatives", TierAdvanced, StyleReading)
	second := g.GenerateContent("AP Calculus AB", "Derivatives", TierAdvanced, StyleReading)
	require.True(t, reflect.DeepEqual(first, second))
}

func TestGenerateContentDifficultyRewrite(t *testing.T) {
	g := NewContentGeneratorWithSelector(pinned(0))

	advanced := g.GenerateContent("AP Calculus AB", "Derivatives", TierAdvanced, StyleVisual)
	assert.Contains(t, advanced.Question, "advanced")
	assert.NotContains(t, advanced.Question, "basic")

	beginner := g.GenerateContent("AP Calculus AB", "Derivatives", TierBeginner, StyleVisual)
	assert.Contains(t, beginner.Question, "basic")

	intermediate := g.GenerateContent("AP Calculus AB", "Derivatives", TierIntermediate, StyleVisual)
	assert.Contains(t, intermediate.Question, "basic")
}

func TestRewriteForDifficulty(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		difficulty string
		want       string
	}{
		{"basic to advanced", "a basic and simple case", TierAdvanced, "a advanced and complex case"},
		{"expert also upgrades", "a basic case", TierExpert, "a advanced case"},
		{"advanced to basic", "an advanced and complex case", TierBeginner, "an basic and simple case"},
		{"intermediate is no-op", "a basic case", TierIntermediate, "a basic case"},
		{"no anchor is no-op", "nothing to rewrite", TierAdvanced, "nothing to rewrite"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RewriteForDifficulty(tc.text, tc.difficulty))
		})
	}
}

func TestGenerateContentStyleAttachments(t *testing.T) {
	g := NewContentGeneratorWithSelector(pinned(0))

	visual := g.GenerateContent("AP Biology", "Cells", TierIntermediate, StyleVisual)
	assert.NotEmpty(t, visual.VisualAid)
	assert.Empty(t, visual.AudioExplanation)

	auditory := g.GenerateContent("AP Biology", "Cells", TierIntermediate, StyleAuditory)
	assert.NotEmpty(t, auditory.AudioExplanation)

	kinesthetic := g.GenerateContent("AP Biology", "Cells", TierIntermediate, StyleKinesthetic)
	assert.NotEmpty(t, kinesthetic.InteractiveElement)

	assert.True(t, strings.HasSuffix(visual.Explanation, styleExplanations[StyleVisual]))
	assert.True(t, strings.HasSuffix(visual.Hint, styleHints[StyleVisual]))
}

func TestGenerateQuestionSets(t *testing.T) {
	g := NewContentGeneratorWithSelector(pinned(0))
	profile := LearnerProfile{LearningStyle: StyleReading}

	sets := g.GenerateQuestionSets("AP Calculus AB", "Derivatives", TierAdvanced, profile)
	require.Len(t, sets, 3)

	titles := []string{
		"Derivatives: Conceptual Understanding",
		"Derivatives: Problem Solving",
		"Derivatives: Application",
	}
	for i, set := range sets {
		assert.Equal(t, titles[i], set.Title)
		assert.Equal(t, TierAdvanced, set.Difficulty)
		require.Len(t, set.Questions, 4)
		for _, q := range set.Questions {
			assert.NotContains(t, q.Question, "%TOPIC%")
			assert.Contains(t, q.Question, "Derivatives")
			assert.Equal(t, 22, q.Points)
		}
	}

	// Pools are smaller than four entries, so indexing wraps via modulo.
	first := sets[0].Questions
	assert.Equal(t, first[0].Question, first[2].Question)
	assert.Equal(t, first[1].Question, first[3].Question)
}
