package model

// PlanStrategy records which generation path produced a stored plan.
type PlanStrategy string

const (
	StrategyLocal    PlanStrategy = "local"
	StrategyRemote   PlanStrategy = "remote"
	StrategyFallback PlanStrategy = "fallback"
)

// StudyPlanRecord stores one generated plan keyed by user. The full plan is
// kept as a JSON payload; a few columns are denormalized for listing.
// Exactly one record per user carries the active flag.
type StudyPlanRecord struct {
	BaseModel
	UserID       uint         `gorm:"index;not null" json:"userId"`
	Active       bool         `gorm:"default:false;index" json:"active"`
	Strategy     PlanStrategy `gorm:"size:20;default:'local'" json:"strategy"`
	Title        string       `gorm:"size:255" json:"title"`
	DurationDays int          `json:"durationDays"`
	Confidence   int          `json:"confidence"`
	Payload      string       `gorm:"type:longtext" json:"payload"`
}

func (StudyPlanRecord) TableName() string {
	return "study_plans"
}
