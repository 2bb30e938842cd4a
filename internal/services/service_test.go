package services

import (
	"testing"

	"github.com/artatlas/atlas-api/internal/config"
	"github.com/artatlas/atlas-api/internal/database"
	"github.com/artatlas/atlas-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// In-memory SQLite is per-connection; keep the pool at one.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ArtEntry{},
		&models.ArtType{},
		&models.ArtPeriod{},
		&models.UserProfile{},
		&models.ContentReport{},
		&models.ActivityLog{},
		&models.RefreshToken{},
	))
	require.NoError(t, database.SeedTaxonomies(db))

	return db
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.JWTSecret = "test-secret"
	return cfg
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		FullName:     username,
		Role:         role,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func actorFor(user *models.User) *Actor {
	return &Actor{ID: user.ID, Username: user.Username, Role: user.Role}
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
