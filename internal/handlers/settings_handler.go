package handlers

import (
	"net/http"

	"pharma-pos/internal/audit"
	"pharma-pos/internal/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SettingsHandler serves the settings registry.
type SettingsHandler struct {
	db     *gorm.DB
	svc    *settings.Service
	logger *zap.Logger
}

func NewSettingsHandler(db *gorm.DB, svc *settings.Service, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{db: db, svc: svc, logger: logger}
}

// List returns every settings row.
func (h *SettingsHandler) List(c *gin.Context) {
	rows, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type settingUpdate struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// Update writes one key. Values are stored as strings; numeric consumers fall
// back to their defaults if the value doesn't parse.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req settingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	row, err := h.svc.Set(req.Key, req.Value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting"})
		return
	}

	if err := audit.Record(h.db, c.GetUint("userID"), c.GetString("userName"), "settings.update", req.Key+" = "+req.Value); err != nil {
		h.logger.Warn("audit write failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, row)
}
