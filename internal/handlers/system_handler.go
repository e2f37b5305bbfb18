package handlers

import (
	"fmt"
	"net/http"
	"time"

	"pharma-pos/internal/audit"
	"pharma-pos/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SystemHandler serves status and the manual backup export.
type SystemHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSystemHandler(db *gorm.DB, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{db: db, logger: logger}
}

// Status returns quick store counts for the dashboard ping.
func (h *SystemHandler) Status(c *gin.Context) {
	var products, sales, users int64
	h.db.Model(&models.Product{}).Count(&products)
	h.db.Model(&models.Sale{}).Count(&sales)
	h.db.Model(&models.User{}).Count(&users)

	c.JSON(http.StatusOK, gin.H{
		"status":   "online",
		"products": products,
		"sales":    sales,
		"users":    users,
	})
}

// backupDocument is the JSON payload offered for download. It is never consumed
// by the system; there is no import path.
type backupDocument struct {
	ExportedAt time.Time           `json:"exported_at"`
	Settings   []models.AppSetting `json:"settings"`
	Users      []models.User       `json:"users"`
}

// Backup serializes settings and users as a downloadable JSON document.
func (h *SystemHandler) Backup(c *gin.Context) {
	var doc backupDocument
	doc.ExportedAt = time.Now()

	if err := h.db.Order("setting_key").Find(&doc.Settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read settings"})
		return
	}
	if err := h.db.Order("id").Find(&doc.Users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read users"})
		return
	}

	if err := audit.Record(h.db, c.GetUint("userID"), c.GetString("userName"), "system.backup", "settings and users exported"); err != nil {
		h.logger.Warn("audit write failed", zap.Error(err))
	}

	filename := fmt.Sprintf("pharmacy-backup-%s.json", doc.ExportedAt.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, doc)
}
