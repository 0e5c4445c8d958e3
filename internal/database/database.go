package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
)

var defaultSettings = []entities.Setting{
	{Key: entities.SettingKeySiteTitle, Value: "Talha'nın Okuma Günlüğü", Description: "Site başlığı"},
	{Key: entities.SettingKeySiteSubtitle, Value: "Her sayfa yeni bir macera!", Description: "Site alt başlığı"},
	{Key: entities.SettingKeySiteDescription, Value: "Okunan kitaplar, hisler ve küçük notlar için dijital kütüphane.", Description: "Site açıklaması"},
	{Key: entities.SettingKeyProfileImage, Value: "profile.jpg", Description: "Profil resmi dosya adı"},
	{Key: entities.SettingKeyAutoRefreshInterval, Value: "30000", Description: "Otomatik yenileme süresi (ms)"},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Setting{},
		&entities.User{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	// Seed default settings
	if err := database.seedSettings(); err != nil {
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedSettings() error {
	for _, setting := range defaultSettings {
		var existing entities.Setting
		result := d.DB.Where("key = ?", setting.Key).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&setting).Error; err != nil {
				return fmt.Errorf("failed to create setting %s: %w", setting.Key, err)
			}
			log.Printf("Created setting: %s", setting.Key)
		}
	}
	return nil
}

// Ping verifies database connectivity for health checks.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
