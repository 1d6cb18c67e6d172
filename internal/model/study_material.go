package model

// StudyMaterial is an uploaded study document. Text-like formats keep their
// extracted text for insight analysis; binary formats store a placeholder
// describing the file instead.
type StudyMaterial struct {
	BaseModel
	UserID        uint   `gorm:"index;not null" json:"userId"`
	Filename      string `gorm:"size:255" json:"filename"`
	ContentType   string `gorm:"size:100" json:"contentType"`
	Size          int64  `json:"size"`
	URL           string `gorm:"size:512" json:"url"`
	ExtractedText string `gorm:"type:longtext" json:"-"`
}

func (StudyMaterial) TableName() string {
	return "study_materials"
}
