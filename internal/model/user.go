package model

import "time"

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('student','admin');default:'student'" json:"role"`

	// Gamification counters driving plan personalization.
	Level            int `gorm:"default:1" json:"level"`
	TotalStars       int `gorm:"default:0" json:"totalStars"`
	CurrentStreak    int `gorm:"default:0" json:"currentStreak"`
	StudyTimeMinutes int `gorm:"default:0" json:"studyTimeMinutes"`
	CompletedLessons int `gorm:"default:0" json:"completedLessons"`

	// Study preferences, editable from the profile screen.
	LearningStyle       string `gorm:"size:20;default:'visual'" json:"learningStyle"`
	PreferredDifficulty string `gorm:"size:20;default:'adaptive'" json:"preferredDifficulty"`
	DailyTimeAvailable  int    `gorm:"default:60" json:"dailyTimeAvailable"`

	WeakAreas   []string `gorm:"serializer:json" json:"weakAreas"`
	StrongAreas []string `gorm:"serializer:json" json:"strongAreas"`
	StudyGoals  []string `gorm:"serializer:json" json:"studyGoals"`

	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
