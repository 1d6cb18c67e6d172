package repository

import (
	"ap_study_backend/internal/engine"
	"ap_study_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Append stores a finished session and prunes rows beyond the retained
// history bound, oldest first. Callers serialize appends per user.
func (r *SessionRepository) Append(session *model.StudySession) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.StudySession{}).
			Where("user_id = ?", session.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count <= engine.MaxSessionHistory {
			return nil
		}

		var stale []uint
		if err := tx.Model(&model.StudySession{}).
			Where("user_id = ?", session.UserID).
			Order("id ASC").Limit(int(count)-engine.MaxSessionHistory).
			Pluck("id", &stale).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.StudySession{}, stale).Error
	})
}

// ListByUser returns the retained sessions in insertion order.
func (r *SessionRepository) ListByUser(userID uint) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&sessions).Error
	return sessions, err
}
