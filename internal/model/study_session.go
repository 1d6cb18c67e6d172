package model

import "time"

// StudySession is the persisted row for one finished study session. Rows
// are append-only; only the most recent entries per user are retained.
type StudySession struct {
	BaseModel
	UserID              uint      `gorm:"index;not null" json:"userId"`
	Subject             string    `gorm:"size:100" json:"subject"`
	Topic               string    `gorm:"size:255" json:"topic"`
	Difficulty          string    `gorm:"size:20" json:"difficulty"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	Duration            int       `json:"duration"`
	QuestionsAnswered   int       `json:"questionsAnswered"`
	CorrectAnswers      int       `json:"correctAnswers"`
	Accuracy            float64   `json:"accuracy"`
	StarsEarned         int       `json:"starsEarned"`
	ConceptsMastered    []string  `gorm:"serializer:json" json:"conceptsMastered"`
	AreasForImprovement []string  `gorm:"serializer:json" json:"areasForImprovement"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
