package engine

import "time"

// Learning style constants. Profiles coming from the API are validated
// against these before they reach the engine.
const (
	StyleVisual      = "visual"
	StyleAuditory    = "auditory"
	StyleKinesthetic = "kinesthetic"
	StyleReading     = "reading"
)

// Topic difficulty tiers.
const (
	TierBeginner     = "Beginner"
	TierIntermediate = "Intermediate"
	TierAdvanced     = "Advanced"
	TierExpert       = "Expert"
)

// Insight difficulty labels (content-derived, lowercase by convention).
const (
	InsightBeginner     = "beginner"
	InsightIntermediate = "intermediate"
	InsightAdvanced     = "advanced"
)

// PerformanceSnapshot holds recent rolling performance metrics, each 0-100.
type PerformanceSnapshot struct {
	Accuracy    int `json:"accuracy"`
	Speed       int `json:"speed"`
	Consistency int `json:"consistency"`
	Engagement  int `json:"engagement"`
}

// LearnerProfile is the immutable input driving plan generation.
type LearnerProfile struct {
	Name                string               `json:"name"`
	Level               int                  `json:"level"`
	TotalStars          int                  `json:"totalStars"`
	CurrentStreak       int                  `json:"currentStreak"`
	StudyTimeMinutes    int                  `json:"studyTimeMinutes"`
	CompletedLessons    int                  `json:"completedLessons"`
	WeakAreas           []string             `json:"weakAreas"`
	StrongAreas         []string             `json:"strongAreas"`
	LearningStyle       string               `json:"learningStyle"`
	PreferredDifficulty string               `json:"preferredDifficulty"`
	StudyGoals          []string             `json:"studyGoals"`
	DailyTimeAvailable  int                  `json:"dailyTimeAvailable"`
	RecentPerformance   *PerformanceSnapshot `json:"recentPerformance,omitempty"`
}

// ContentInsight carries the signals mined from uploaded or typed material.
type ContentInsight struct {
	Topics         []string `json:"topics"`
	Concepts       []string `json:"concepts"`
	Difficulty     string   `json:"difficulty"`
	FocusAreas     []string `json:"focusAreas"`
	HasFormulas    bool     `json:"hasFormulas"`
	HasExamples    bool     `json:"hasExamples"`
	HasDefinitions bool     `json:"hasDefinitions"`
	ContentLength  int      `json:"contentLength"`
}

// Topic is one gradable unit of study within a subject.
type Topic struct {
	Name               string   `json:"name"`
	Difficulty         string   `json:"difficulty"`
	EstimatedTime      int      `json:"estimatedTime"`
	Prerequisites      []string `json:"prerequisites"`
	LearningObjectives []string `json:"learningObjectives"`
	Resources          []string `json:"resources"`
	Assessments        []string `json:"assessments"`
}

// Subject is one AP course inside a plan.
type Subject struct {
	Name           string  `json:"name"`
	Priority       string  `json:"priority"`
	TimeAllocation int     `json:"timeAllocation"`
	Topics         []Topic `json:"topics"`
	Reasoning      string  `json:"reasoning"`
}

// Milestone is a dated checkpoint with success criteria.
type Milestone struct {
	Week            int      `json:"week"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SuccessCriteria []string `json:"successCriteria"`
}

// AdaptiveFeatures flags which adaptive behaviors the plan carries.
// Locally generated plans always enable all of them.
type AdaptiveFeatures struct {
	DifficultyScaling  bool `json:"difficultyScaling"`
	PersonalizedPacing bool `json:"personalizedPacing"`
	WeakAreaFocus      bool `json:"weakAreaFocus"`
	ProgressPrediction bool `json:"progressPrediction"`
}

// StudyPlan is the full multi-week curriculum handed to the caller.
type StudyPlan struct {
	Title                       string           `json:"title"`
	Description                 string           `json:"description"`
	DurationDays                int              `json:"durationDays"`
	DailyTimeCommitment         int              `json:"dailyTimeCommitment"`
	Difficulty                  string           `json:"difficulty"`
	Subjects                    []Subject        `json:"subjects"`
	Milestones                  []Milestone      `json:"milestones"`
	AdaptiveFeatures            AdaptiveFeatures `json:"adaptiveFeatures"`
	PersonalizedRecommendations []string         `json:"personalizedRecommendations"`
	EstimatedOutcome            string           `json:"estimatedOutcome"`
	Confidence                  int              `json:"confidence"`
}

// Question types.
const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionShortAnswer    = "short-answer"
	QuestionEssay          = "essay"
	QuestionProblemSolving = "problem-solving"
)

// StudyContent is a single generated exercise. CorrectAnswer is an option
// index for multiple-choice questions and a model answer string otherwise.
type StudyContent struct {
	Type               string      `json:"type"`
	Question           string      `json:"question"`
	Options            []string    `json:"options,omitempty"`
	CorrectAnswer      interface{} `json:"correctAnswer"`
	Explanation        string      `json:"explanation"`
	Hint               string      `json:"hint"`
	Points             int         `json:"points"`
	Concepts           []string    `json:"concepts"`
	APSkills           []string    `json:"apSkills"`
	VisualAid          string      `json:"visualAid,omitempty"`
	AudioExplanation   string      `json:"audioExplanation,omitempty"`
	InteractiveElement string      `json:"interactiveElement,omitempty"`
	CommonMistakes     []string    `json:"commonMistakes"`
}

// QuestionSet groups generated questions under one practice category.
type QuestionSet struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Difficulty  string         `json:"difficulty"`
	Questions   []StudyContent `json:"questions"`
}

// SessionRecord is the immutable summary of one finished study session.
type SessionRecord struct {
	UserID              string    `json:"userId"`
	Subject             string    `json:"subject"`
	Topic               string    `json:"topic"`
	Difficulty          string    `json:"difficulty"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	Duration            int       `json:"duration"`
	QuestionsAnswered   int       `json:"questionsAnswered"`
	CorrectAnswers      int       `json:"correctAnswers"`
	Accuracy            float64   `json:"accuracy"`
	StarsEarned         int       `json:"starsEarned"`
	ConceptsMastered    []string  `json:"conceptsMastered"`
	AreasForImprovement []string  `json:"areasForImprovement"`
}

// StudyPatterns summarizes how a learner actually studies.
type StudyPatterns struct {
	AverageDuration  float64 `json:"averageDuration"`
	AverageQuestions float64 `json:"averageQuestions"`
	ConsistencyScore float64 `json:"consistencyScore"`
}

// SessionInsights is the rolling aggregate over a learner's session history.
type SessionInsights struct {
	HasData             bool          `json:"hasData"`
	TotalSessions       int           `json:"totalSessions"`
	AverageAccuracy     float64       `json:"averageAccuracy"`
	CommonWeakAreas     []string      `json:"commonWeakAreas"`
	PreferredDifficulty string        `json:"preferredDifficulty"`
	StudyPatterns       StudyPatterns `json:"studyPatterns"`
}
