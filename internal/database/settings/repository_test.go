package settings

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_settings_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Setting{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func strPtr(s string) *string { return &s }

func TestRepository_Upsert_New(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	setting, err := repo.Upsert("site_title", "Talha'nın Kitaplığı", strPtr("Site başlığı"))
	require.NoError(t, err)
	assert.NotZero(t, setting.ID)
	assert.Equal(t, "site_title", setting.Key)
	assert.Equal(t, "Talha'nın Kitaplığı", setting.Value)
	assert.Equal(t, "Site başlığı", setting.Description)
}

func TestRepository_Upsert_NewWithoutDescription(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	setting, err := repo.Upsert("site_title", "Kitaplık", nil)
	require.NoError(t, err)
	assert.Empty(t, setting.Description)
}

func TestRepository_Upsert_UpdateKeepsDescription(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Upsert("site_title", "Kitaplık", strPtr("Site başlığı"))
	require.NoError(t, err)

	updated, err := repo.Upsert("site_title", "Yeni Kitaplık", nil)
	require.NoError(t, err)
	assert.Equal(t, "Yeni Kitaplık", updated.Value)
	assert.Equal(t, "Site başlığı", updated.Description)

	// A supplied description replaces the old one
	replaced, err := repo.Upsert("site_title", "Yeni Kitaplık", strPtr("Başlık"))
	require.NoError(t, err)
	assert.Equal(t, "Başlık", replaced.Description)
}

func TestRepository_Upsert_DoesNotDuplicate(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.Upsert("theme", "light", nil)
	require.NoError(t, err)
	second, err := repo.Upsert("theme", "dark", nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_Get_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_All_SortedByKey(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Upsert("site_title", "Kitaplık", nil)
	require.NoError(t, err)
	_, err = repo.Upsert("auto_refresh_interval", "30", nil)
	require.NoError(t, err)

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "auto_refresh_interval", all[0].Key)
	assert.Equal(t, "site_title", all[1].Key)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Upsert("theme", "dark", nil)
	require.NoError(t, err)

	require.NoError(t, repo.Delete("theme"))
	_, err = repo.Get("theme")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete("theme"), ErrNotFound)
}
