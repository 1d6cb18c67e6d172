package repository

import (
	"ap_study_backend/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(material *model.StudyMaterial) error {
	return r.DB.Create(material).Error
}

func (r *MaterialRepository) ListByUser(userID uint) ([]model.StudyMaterial, error) {
	var materials []model.StudyMaterial
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&materials).Error
	return materials, err
}

// CombinedText concatenates the extracted text of a user's materials,
// newest first, for insight analysis.
func (r *MaterialRepository) CombinedText(userID uint) (string, error) {
	var texts []string
	err := r.DB.Model(&model.StudyMaterial{}).
		Where("user_id = ? AND extracted_text <> ''", userID).
		Order("created_at DESC").Pluck("extracted_text", &texts).Error
	if err != nil {
		return "", err
	}

	combined := ""
	for i, t := range texts {
		if i > 0 {
			combined += "\n\n"
		}
		combined += t
	}
	return combined, nil
}
