package audit

import (
	"time"

	"pharma-pos/internal/models"

	"gorm.io/gorm"
)

// Record appends one audit row. Callers pass their open transaction when the
// entry must commit atomically with the action it describes (checkout does).
func Record(db *gorm.DB, userID uint, userName, action, detail string) error {
	return db.Create(&models.AuditLog{
		At:       time.Now(),
		UserID:   userID,
		UserName: userName,
		Action:   action,
		Detail:   detail,
	}).Error
}

// Recent returns the newest entries, capped at limit.
func Recent(db *gorm.DB, limit int) ([]models.AuditLog, error) {
	var rows []models.AuditLog
	if err := db.Order("at desc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
