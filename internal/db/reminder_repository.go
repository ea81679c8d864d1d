package db

import (
	"context"

	"github.com/terraincognita07/plantcare/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	return repo.database.WithContext(ctx).Create(reminder).Error
}

func (repo *ReminderRepository) ListByUserPlant(ctx context.Context, userPlantID uint) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_plant_id = ?", userPlantID).
		Order("reminder_date ASC, id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListOpenWithOwner returns the current reminder of each type for every
// alive plant. A newer reminder of the same plant and type supersedes older
// rows, which stay in the table as history.
func (repo *ReminderRepository) ListOpenWithOwner(ctx context.Context) ([]models.OpenReminder, error) {
	latest := repo.database.
		Model(&models.Reminder{}).
		Select("MAX(id)").
		Group("user_plant_id, type")

	rows := make([]models.OpenReminder, 0)
	if err := repo.database.WithContext(ctx).
		Table("reminders").
		Select("reminders.id AS reminder_id, reminders.user_plant_id, user_plants.user_id, reminders.type, reminders.reminder_date").
		Joins("JOIN user_plants ON user_plants.id = reminders.user_plant_id").
		Where("reminders.id IN (?)", latest).
		Where("reminders.is_completed = ?", false).
		Where("user_plants.status = ?", models.PlantStatusAlive).
		Order("user_plants.user_id ASC, reminders.reminder_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
