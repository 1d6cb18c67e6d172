package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// ContentGenerator produces study content and question sets from the static
// template pools. Template selection is the only randomized step and is
// injectable so callers and tests can pin the output.
type ContentGenerator struct {
	pick func(n int) int
}

// NewContentGenerator returns a generator with uniform random selection.
func NewContentGenerator() *ContentGenerator {
	return &ContentGenerator{pick: rand.Intn}
}

// NewContentGeneratorWithSelector returns a generator using the given
// selection function. The function receives the pool size and must return
// an index in [0, n).
func NewContentGeneratorWithSelector(pick func(n int) int) *ContentGenerator {
	return &ContentGenerator{pick: pick}
}

// GenerateContent builds a single exercise for the given subject and topic,
// personalized for difficulty tier and learning style. It is pure apart
// from the injected template pick.
func (g *ContentGenerator) GenerateContent(subject, topic, difficulty, style string) StudyContent {
	pool, ok := subjectTemplates[subject]
	if !ok || len(pool) == 0 {
		pool = genericTemplates
	}
	tmpl := pool[g.pick(len(pool))]
	return g.render(tmpl, subject, topic, difficulty, style)
}

// GenerateQuestionSets builds the three fixed practice categories, drawing
// four questions each from the per-category pools with wrap-around
// indexing, personalized from the learner profile.
func (g *ContentGenerator) GenerateQuestionSets(subject, topic, difficulty string, profile LearnerProfile) []QuestionSet {
	sets := make([]QuestionSet, 0, len(questionSetCategories))
	for _, cat := range questionSetCategories {
		pool := categoryTemplates[cat.title]
		questions := make([]StudyContent, 0, 4)
		for i := 0; i < 4; i++ {
			tmpl := pool[i%len(pool)]
			questions = append(questions, g.render(tmpl, subject, topic, difficulty, profile.LearningStyle))
		}
		sets = append(sets, QuestionSet{
			Title:       fmt.Sprintf("%s: %s", topic, cat.title),
			Description: cat.description,
			Difficulty:  difficulty,
			Questions:   questions,
		})
	}
	return sets
}

func (g *ContentGenerator) render(tmpl questionTemplate, subject, topic, difficulty, style string) StudyContent {
	question := strings.ReplaceAll(tmpl.question, "%TOPIC%", topic)
	question = RewriteForDifficulty(question, difficulty)

	explanation := tmpl.explanation + styleExplanations[style]
	hint := hintForDifficulty(difficulty) + styleHints[style]

	content := StudyContent{
		Type:           tmpl.qtype,
		Question:       question,
		Options:        rewriteOptions(tmpl.options, difficulty),
		CorrectAnswer:  tmpl.correctAnswer,
		Explanation:    explanation,
		Hint:           hint,
		Points:         pointsForDifficulty(difficulty),
		Concepts:       contentConcepts(subject, topic),
		APSkills:       contentSkills(subject, topic),
		CommonMistakes: contentMistakes(subject, topic),
	}

	switch style {
	case StyleVisual:
		content.VisualAid = fmt.Sprintf("Annotated diagram for %s", topic)
	case StyleAuditory:
		content.AudioExplanation = fmt.Sprintf("Narrated walkthrough for %s", topic)
	case StyleKinesthetic:
		content.InteractiveElement = fmt.Sprintf("Interactive practice for %s", topic)
	}
	return content
}

// pointsForDifficulty is the fixed tier-to-points lookup.
func pointsForDifficulty(difficulty string) int {
	switch difficulty {
	case TierBeginner:
		return 10
	case TierIntermediate:
		return 15
	case TierAdvanced:
		return 22
	case TierExpert:
		return 30
	default:
		return 15
	}
}

func contentConcepts(subject, topic string) []string {
	concepts := []string{topic}
	if extra, ok := subjectConcepts[subject]; ok {
		return append(concepts, extra...)
	}
	return append(concepts,
		topic+" fundamentals",
		topic+" methods",
		topic+" applications",
	)
}

func contentSkills(subject, topic string) []string {
	if skills, ok := subjectSkills[subject]; ok {
		return append([]string(nil), skills...)
	}
	return []string{
		fmt.Sprintf("Explaining %s concepts", topic),
		fmt.Sprintf("Applying %s to new problems", topic),
		fmt.Sprintf("Evaluating %s reasoning", topic),
	}
}

func contentMistakes(subject, topic string) []string {
	if mistakes, ok := subjectMistakes[subject]; ok {
		return append([]string(nil), mistakes...)
	}
	return []string{
		fmt.Sprintf("Rushing through %s problems without checking the setup", topic),
		fmt.Sprintf("Memorizing %s procedures without understanding why they work", topic),
		fmt.Sprintf("Skipping the verification step on %s questions", topic),
	}
}
