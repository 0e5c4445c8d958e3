package users

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
	dbPath := "./test_users_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create("admin", "$2a$10$hash", entities.UserRoleAdmin)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byName, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, "$2a$10$hash", byName.PasswordHash)
	assert.Equal(t, entities.UserRoleAdmin, byName.Role)

	byID, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)
}

func TestRepository_Create_DuplicateUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Create("admin", "hash1", entities.UserRoleAdmin)
	require.NoError(t, err)

	_, err = repo.Create("admin", "hash2", entities.UserRoleAdmin)
	assert.Error(t, err)
}

func TestRepository_Get_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByUsername("ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_Count(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = repo.Create("admin", "hash", entities.UserRoleAdmin)
	require.NoError(t, err)

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
