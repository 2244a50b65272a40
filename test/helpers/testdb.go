package helpers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"contest_backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB открывает отдельную in-memory SQLite базу для теста и мигрирует схему
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Не удалось получить *sql.DB из GORM: %v", err)
	}
	// одно соединение: воркер и запросы не конкурируют за табличные блокировки shared cache
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// CreateUser создает пользователя; пустые email и имя заполняются уникальными значениями
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()

	if user.Email == "" {
		user.Email = fmt.Sprintf("user_%d@test.com", time.Now().UnixNano())
	}
	if user.Name == "" {
		user.Name = "Test User"
	}
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", user.Email, err)
	}
	return user
}

// CreateUserWithProfile создает пользователя с профилем
func CreateUserWithProfile(t *testing.T, db *gorm.DB, role models.UserRole) (*models.User, *models.Profile) {
	t.Helper()

	user := CreateUser(t, db, &models.User{Role: role})
	city := "Almaty"
	profile := &models.Profile{UserID: user.ID, City: &city}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Не удалось создать профиль: %v", err)
	}
	return user, profile
}

// CreateContest создает конкурс, идущий в момент вызова
func CreateContest(t *testing.T, db *gorm.DB, name string) *models.Contest {
	t.Helper()

	now := time.Now().UTC()
	contest := &models.Contest{
		Name:      name,
		PrizePool: decimal.NewFromInt(1000),
		StartDate: now.Add(-24 * time.Hour),
		EndDate:   now.Add(7 * 24 * time.Hour),
	}
	if err := db.Create(contest).Error; err != nil {
		t.Fatalf("Не удалось создать конкурс: %v", err)
	}
	return contest
}

// CreateNotification симулирует уведомление, созданное другим сервисом
func CreateNotification(t *testing.T, db *gorm.DB, userID, message string, isRead bool) *models.Notification {
	t.Helper()

	n := &models.Notification{
		UserID:  userID,
		Type:    models.DefaultNotificationType,
		Message: message,
		IsRead:  isRead,
	}
	if isRead {
		at := time.Now()
		n.ReadAt = &at
	}
	if err := db.Create(n).Error; err != nil {
		t.Fatalf("Не удалось создать уведомление: %v", err)
	}
	return n
}
