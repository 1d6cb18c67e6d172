package repository

import (
	"ap_study_backend/internal/model"

	"gorm.io/gorm"
)

type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

// SaveActive stores a newly generated plan as the user's active plan,
// deactivating any previous one in the same transaction.
func (r *PlanRepository) SaveActive(record *model.StudyPlanRecord) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.StudyPlanRecord{}).
			Where("user_id = ? AND active = ?", record.UserID, true).
			Update("active", false).Error; err != nil {
			return err
		}
		record.Active = true
		return tx.Create(record).Error
	})
}

func (r *PlanRepository) FindActive(userID uint) (*model.StudyPlanRecord, error) {
	var record model.StudyPlanRecord
	err := r.DB.Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").First(&record).Error
	return &record, err
}

func (r *PlanRepository) ListByUser(userID uint, limit int) ([]model.StudyPlanRecord, error) {
	var records []model.StudyPlanRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}
