package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeContentEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		insight := AnalyzeContent(text)
		assert.Empty(t, insight.Topics)
		assert.Empty(t, insight.Concepts)
		assert.Empty(t, insight.FocusAreas)
		assert.Equal(t, InsightIntermediate, insight.Difficulty)
		assert.False(t, insight.HasFormulas)
		assert.False(t, insight.HasExamples)
		assert.False(t, insight.HasDefinitions)
		assert.Zero(t, insight.ContentLength)
	}
}

func TestAnalyzeContentTopicHarvest(t *testing.T) {
	text := "Chapter 1: Limits and Continuity\n" +
		"Chapter 2: Derivatives\n" +
		"Topic: Chain Rule\n" +
		"Chapter 3: abc\n" // below the 4-char bound, dropped

	insight := AnalyzeContent(text)
	require.Equal(t, []string{"Limits and Continuity", "Derivatives", "Chain Rule"}, insight.Topics)
}

func TestAnalyzeContentTopicCap(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&b, "Chapter %d: Topic Number %d\n", i, i)
	}
	insight := AnalyzeContent(b.String())
	require.Len(t, insight.Topics, maxInsightTopics)
	assert.Equal(t, "Topic Number 1", insight.Topics[0])
}

func TestAnalyzeContentDifficultyVote(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"advanced wins", "A rigorous proof of the theorem with full derivation.", InsightAdvanced},
		{"basic wins", "An introduction with a basic overview for beginners.", InsightBeginner},
		{"tie is intermediate", "A basic look at the theorem.", InsightIntermediate},
		{"no signal is intermediate", "The water cycle moves moisture around.", InsightIntermediate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AnalyzeContent(tc.text).Difficulty)
		})
	}
}

func TestAnalyzeContentFocusAreas(t *testing.T) {
	text := "Focus on integration by parts. Important: chain rule practice. " +
		"Focus on limits at infinity, then rest."
	insight := AnalyzeContent(text)
	require.Equal(t, []string{
		"integration by parts",
		"limits at infinity",
		"chain rule practice",
	}, insight.FocusAreas)
}

func TestAnalyzeContentFocusAreaCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		fmt.Fprintf(&b, "Focus on practice area number %d. ", i)
	}
	insight := AnalyzeContent(b.String())
	require.Len(t, insight.FocusAreas, maxFocusAreas)
}

func TestAnalyzeContentFlagsAndConcepts(t *testing.T) {
	text := "Definition: the derivative is the limit of the difference quotient, f'(x) = lim. Example: f(x) = x^2."
	insight := AnalyzeContent(text)
	assert.True(t, insight.HasFormulas)
	assert.True(t, insight.HasExamples)
	assert.True(t, insight.HasDefinitions)
	assert.Contains(t, insight.Concepts, "derivative")
	assert.Contains(t, insight.Concepts, "limit")
	assert.Equal(t, len(text), insight.ContentLength)
}
