package db

import (
	"context"
	"errors"

	"github.com/terraincognita07/plantcare/internal/models"
	"gorm.io/gorm"
)

type UserPlantRepository struct {
	database *gorm.DB
}

func NewUserPlantRepository(database *gorm.DB) *UserPlantRepository {
	return &UserPlantRepository{database: database}
}

func (repo *UserPlantRepository) ListByUser(ctx context.Context, userID uint) ([]models.UserPlant, error) {
	plants := make([]models.UserPlant, 0)
	if err := repo.database.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

func (repo *UserPlantRepository) FindByIDForUser(ctx context.Context, userPlantID uint, userID uint) (models.UserPlant, bool, error) {
	var plant models.UserPlant
	err := repo.database.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND user_id = ?", userPlantID, userID).
		First(&plant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserPlant{}, false, nil
	}
	if err != nil {
		return models.UserPlant{}, false, err
	}
	return plant, true, nil
}

// CreateWithReminders inserts the plant and its seed reminders in one
// transaction. Reminder UserPlantIDs are filled from the new plant.
func (repo *UserPlantRepository) CreateWithReminders(ctx context.Context, plant *models.UserPlant, reminders []models.Reminder) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Product").Create(plant).Error; err != nil {
			return err
		}
		if len(reminders) == 0 {
			return nil
		}
		for index := range reminders {
			reminders[index].UserPlantID = plant.ID
		}
		return tx.Create(&reminders).Error
	})
}

func (repo *UserPlantRepository) UpdateForUser(ctx context.Context, userPlantID uint, userID uint, updates map[string]any) (bool, error) {
	result := repo.database.WithContext(ctx).
		Model(&models.UserPlant{}).
		Where("id = ? AND user_id = ?", userPlantID, userID).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *UserPlantRepository) DeleteWithReminders(ctx context.Context, userPlantID uint, userID uint) (bool, error) {
	deleted := false
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plant models.UserPlant
		err := tx.Select("id").Where("id = ? AND user_id = ?", userPlantID, userID).First(&plant).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Where("user_plant_id = ?", plant.ID).Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.UserPlant{}, plant.ID).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}
