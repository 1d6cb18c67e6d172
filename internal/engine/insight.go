package engine

import (
	"regexp"
	"strings"
)

// Label-prefixed patterns harvesting topic candidates from study material.
// Scan order is fixed; the first occurrences win once the cap is reached.
var topicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*chapter\s+\d+\s*[:.\-]\s*(.+)$`),
	regexp.MustCompile(`(?im)^\s*unit\s+\d+\s*[:.\-]\s*(.+)$`),
	regexp.MustCompile(`(?im)^\s*topic\s*[:.\-]\s*(.+)$`),
	regexp.MustCompile(`(?im)^\s*section\s+[\d.]+\s*[:.\-]\s*(.+)$`),
	regexp.MustCompile(`(?im)^\s*lesson\s+\d+\s*[:.\-]\s*(.+)$`),
}

var focusPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)focus on\s+([^.,;\n]+)`),
	regexp.MustCompile(`(?i)important\s*:\s*([^.,;\n]+)`),
	regexp.MustCompile(`(?i)pay attention to\s+([^.,;\n]+)`),
	regexp.MustCompile(`(?i)make sure (?:you|to)\s+([^.,;\n]+)`),
}

// conceptKeywords are recognized domain terms across the AP catalog.
var conceptKeywords = []string{
	"derivative", "integral", "limit", "function", "equation", "theorem",
	"cell", "photosynthesis", "mitosis", "evolution", "ecosystem", "enzyme",
	"atom", "molecule", "reaction", "equilibrium", "acid", "base",
	"force", "energy", "momentum", "velocity", "acceleration",
	"probability", "distribution", "hypothesis", "regression",
	"algorithm", "recursion", "array", "inheritance",
	"revolution", "democracy", "constitution", "federalism",
	"supply", "demand", "inflation", "elasticity",
	"thesis", "rhetoric", "argument", "synthesis",
	"memory", "cognition", "conditioning", "neuron",
}

var advancedVocabulary = []string{
	"theorem", "proof", "derivation", "rigorous", "differential",
	"multivariable", "equilibrium constant", "thermodynamic", "quantum",
	"synthesis", "advanced", "optimization", "asymptotic",
}

var basicVocabulary = []string{
	"introduction", "intro", "basic", "overview", "fundamental",
	"beginner", "simple", "getting started", "what is", "review of",
}

var formulaPattern = regexp.MustCompile(`[=∫∑√π]|\\frac|\d\s*[+\-*/^]\s*\d`)

// AnalyzeContent mines topics, concepts, a coarse difficulty label, and
// focus phrases from raw study-material text. Empty or whitespace-only
// input yields the neutral default insight; downstream generation treats
// that as a no-signal case, never as an error.
func AnalyzeContent(text string) ContentInsight {
	insight := ContentInsight{
		Topics:     []string{},
		Concepts:   []string{},
		Difficulty: InsightIntermediate,
		FocusAreas: []string{},
	}
	if strings.TrimSpace(text) == "" {
		return insight
	}

	lower := strings.ToLower(text)
	insight.ContentLength = len(text)

	insight.Topics = harvest(topicPatterns, text, maxInsightTopics, 4, 99)
	insight.FocusAreas = harvest(focusPatterns, text, maxFocusAreas, 4, 99)

	for _, kw := range conceptKeywords {
		if strings.Contains(lower, kw) {
			insight.Concepts = append(insight.Concepts, kw)
		}
	}

	advanced, basic := 0, 0
	for _, w := range advancedVocabulary {
		if strings.Contains(lower, w) {
			advanced++
		}
	}
	for _, w := range basicVocabulary {
		if strings.Contains(lower, w) {
			basic++
		}
	}
	switch {
	case advanced > basic:
		insight.Difficulty = InsightAdvanced
	case basic > advanced:
		insight.Difficulty = InsightBeginner
	default:
		insight.Difficulty = InsightIntermediate
	}

	insight.HasFormulas = formulaPattern.MatchString(text) || strings.Contains(lower, "formula")
	insight.HasExamples = strings.Contains(lower, "example") || strings.Contains(lower, "e.g.")
	insight.HasDefinitions = strings.Contains(lower, "definition") || strings.Contains(lower, "is defined as")

	return insight
}

// harvest runs the patterns in order, trims captures, drops candidates
// outside the length bounds, deduplicates case-insensitively, and hard
// truncates at limit keeping the first matches in scan order.
func harvest(patterns []*regexp.Regexp, text string, limit, minLen, maxLen int) []string {
	found := []string{}
	seen := make(map[string]bool)
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) < minLen || len(candidate) > maxLen {
				continue
			}
			key := strings.ToLower(candidate)
			if seen[key] {
				continue
			}
			seen[key] = true
			found = append(found, candidate)
			if len(found) >= limit {
				return found
			}
		}
	}
	return found
}
