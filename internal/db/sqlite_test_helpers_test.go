package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/plantcare/internal/models"
	"gorm.io/gorm"
)

func openTestSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "plantcare-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func mustSeedProduct(t *testing.T, database *gorm.DB, categoryName string, productName string, water string) models.Product {
	t.Helper()

	category := models.Category{Name: categoryName}
	if err := database.Where("name = ?", categoryName).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	product := models.Product{CategoryID: category.ID, Name: productName, WaterRequirement: water}
	if err := database.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func mustCreatePlant(t *testing.T, repo *UserPlantRepository, userID uint, productID uint, reminderDates ...time.Time) models.UserPlant {
	t.Helper()

	plant := models.UserPlant{
		UserID:      userID,
		ProductID:   productID,
		PlantedDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.PlantStatusAlive,
	}
	reminders := make([]models.Reminder, 0, len(reminderDates))
	for _, date := range reminderDates {
		reminders = append(reminders, models.Reminder{
			Type:         models.ReminderWatering,
			Message:      "Time to water your plant",
			ReminderDate: date,
		})
	}
	if err := repo.CreateWithReminders(testContext(t), &plant, reminders); err != nil {
		t.Fatalf("create plant with reminders: %v", err)
	}
	return plant
}

// testContext mirrors testing.T.Context (Go 1.24+) for older toolchains.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
