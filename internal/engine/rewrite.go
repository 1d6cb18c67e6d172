package engine

import "strings"

// Literal word swaps used to personalize template text. The rewrite is a
// pure transform: templates that lack the target words pass through
// unchanged, which is acceptable and covered by tests per substitution rule.
var (
	toAdvanced = strings.NewReplacer("basic", "advanced", "simple", "complex")
	toBasic    = strings.NewReplacer("advanced", "basic", "complex", "simple")
)

// RewriteForDifficulty adjusts template wording for the requested tier.
// Advanced and Expert push wording up, Beginner pulls it down, and
// Intermediate is a no-op.
func RewriteForDifficulty(text, difficulty string) string {
	switch difficulty {
	case TierAdvanced, TierExpert:
		return toAdvanced.Replace(text)
	case TierBeginner:
		return toBasic.Replace(text)
	default:
		return text
	}
}

// rewriteOptions applies the difficulty rewrite across a template's options.
func rewriteOptions(options []string, difficulty string) []string {
	if len(options) == 0 {
		return nil
	}
	out := make([]string, len(options))
	for i, opt := range options {
		out[i] = RewriteForDifficulty(opt, difficulty)
	}
	return out
}

// Style-specific sentences appended to generated explanations.
var styleExplanations = map[string]string{
	StyleVisual:      " Sketch the relationship as a quick diagram to anchor it visually.",
	StyleAuditory:    " Say the reasoning out loud once to reinforce it.",
	StyleKinesthetic: " Rework this by hand with different numbers to make it stick.",
	StyleReading:     " Write a one-sentence summary of the idea in your notes.",
}

// Style-specific clauses appended to hints.
var styleHints = map[string]string{
	StyleVisual:      " Try drawing it out first.",
	StyleAuditory:    " Talk through the setup before computing.",
	StyleKinesthetic: " Work a simpler case by hand first.",
	StyleReading:     " Re-read the definition before answering.",
}

// hintForDifficulty picks the base hint sentence by tier.
func hintForDifficulty(difficulty string) string {
	switch difficulty {
	case TierBeginner:
		return "Take it one step at a time and check each step against the definition."
	case TierAdvanced, TierExpert:
		return "Consider which theorem or structural property applies before computing."
	default:
		return "Identify what the question is really asking before choosing an approach."
	}
}
