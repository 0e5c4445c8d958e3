package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akupelikilinc/TalhaBookLib/internal/database/settings"
	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
)

// SettingStore defines the database operations for the settings endpoints.
type SettingStore interface {
	All() ([]entities.Setting, error)
	Get(key string) (*entities.Setting, error)
	Upsert(key, value string, description *string) (*entities.Setting, error)
	Delete(key string) error
}

type SettingsController struct {
	store SettingStore
}

func NewSettingsController(store SettingStore) *SettingsController {
	return &SettingsController{store: store}
}

// settingValue is the per-key payload of the settings map.
type settingValue struct {
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type settingRequest struct {
	Value       string  `json:"value"`
	Description *string `json:"description"`
}

// All returns every setting as a key-indexed map.
// GET /api/settings
func (controller *SettingsController) All(c *gin.Context) {
	all, err := controller.store.All()
	if err != nil {
		respondInternalError(c, err, "list settings")
		return
	}

	result := make(map[string]settingValue, len(all))
	for _, setting := range all {
		result[setting.Key] = settingValue{
			Value:       setting.Value,
			Description: setting.Description,
			UpdatedAt:   setting.UpdatedAt,
		}
	}

	c.JSON(http.StatusOK, result)
}

// Get returns a single setting.
// GET /api/settings/:key
func (controller *SettingsController) Get(c *gin.Context) {
	setting, err := controller.store.Get(c.Param("key"))
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			respondNotFound(c, "setting")
			return
		}
		respondInternalError(c, err, "get setting")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":         setting.Key,
		"value":       setting.Value,
		"description": setting.Description,
	})
}

// Upsert creates or updates a setting. An existing description is kept
// unless the request supplies a new one.
// PUT /api/settings/:key
func (controller *SettingsController) Upsert(c *gin.Context) {
	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	setting, err := controller.store.Upsert(c.Param("key"), req.Value, req.Description)
	if err != nil {
		respondInternalError(c, err, "upsert setting")
		return
	}

	c.JSON(http.StatusOK, setting)
}

// Delete removes a setting.
// DELETE /api/settings/:key
func (controller *SettingsController) Delete(c *gin.Context) {
	if err := controller.store.Delete(c.Param("key")); err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			respondNotFound(c, "setting")
			return
		}
		respondInternalError(c, err, "delete setting")
		return
	}

	respondSuccess(c, "setting deleted successfully")
}
