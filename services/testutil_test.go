package services

import (
	"campus/config"
	"campus/database"
	"campus/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDb wires the global database instance to a fresh in-memory sqlite
// database and installs test configuration.
func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.Absence{},
		&models.Justification{},
		&models.Notification{},
		&models.DocumentRequest{},
	))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		WarningThreshold:     3,
		EliminationThreshold: 4,
		UploadDir:            t.TempDir(),
	}

	return db
}

func createStudent(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	student := models.User{
		FirstName:    "Test",
		LastName:     "Student",
		Email:        email,
		Role:         "STUDENT",
		EnrollmentNo: "20231548",
	}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func createAdmin(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	admin := models.User{
		FirstName: "Test",
		LastName:  "Admin",
		Email:     email,
		Role:      "ADMIN",
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func createModule(t *testing.T, db *gorm.DB, code string) models.Module {
	t.Helper()
	module := models.Module{Code: code, Name: "Module " + code, TeacherID: 1}
	require.NoError(t, db.Create(&module).Error)
	return module
}

func day(offset int) time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func notificationsFor(t *testing.T, db *gorm.DB, userID uint, notifType string) []models.Notification {
	t.Helper()
	var notifications []models.Notification
	require.NoError(t, db.
		Where("user_id = ? AND type = ?", userID, notifType).
		Find(&notifications).Error)
	return notifications
}
