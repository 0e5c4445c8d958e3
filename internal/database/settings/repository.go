// Package settings provides database operations for application settings.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	setting, err := repo.Get("site_title")
package settings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
)

// ErrNotFound is returned when no setting matches the requested key.
var ErrNotFound = errors.New("setting not found")

// Repository handles all settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// All returns every setting.
func (r *Repository) All() ([]entities.Setting, error) {
	var settings []entities.Setting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

// Get retrieves a setting by key.
func (r *Repository) Get(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// Upsert creates or updates a setting. The description of an existing
// setting is kept unless a new one is supplied. The modification timestamp
// is bumped on every write.
func (r *Repository) Upsert(key, value string, description *string) (*entities.Setting, error) {
	var setting entities.Setting
	result := r.db.Where("key = ?", key).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = entities.Setting{
			Key:   key,
			Value: value,
		}
		if description != nil {
			setting.Description = *description
		}
		if err := r.db.Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	} else if result.Error != nil {
		return nil, result.Error
	}

	setting.Value = value
	if description != nil {
		setting.Description = *description
	}
	if err := r.db.Save(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// Delete removes a setting by key. Returns ErrNotFound when the key does
// not exist.
func (r *Repository) Delete(key string) error {
	result := r.db.Where("key = ?", key).Delete(&entities.Setting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
