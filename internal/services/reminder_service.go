package services

import (
	"context"
	"fmt"
	"time"

	"github.com/terraincognita07/plantcare/internal/models"
)

type ReminderWriter interface {
	Create(ctx context.Context, reminder *models.Reminder) error
}

type ReminderService struct {
	reminders ReminderWriter
}

func NewReminderService(reminders ReminderWriter) *ReminderService {
	return &ReminderService{reminders: reminders}
}

// BuildReminder derives the next reminder for plant without persisting it.
// plant.Product must be loaded for the watering interval to apply.
func BuildReminder(plant models.UserPlant, reminderType models.ReminderType, from time.Time) models.Reminder {
	requirement := models.WaterUnknown
	if plant.Product != nil {
		requirement = plant.Product.Water()
	}

	return models.Reminder{
		UserPlantID:  plant.ID,
		Type:         reminderType,
		Message:      reminderMessage(reminderType, plant.DisplayName()),
		ReminderDate: NextDueDate(reminderType, requirement, from).UTC(),
		IsCompleted:  false,
	}
}

func SeedReminders(plant models.UserPlant, now time.Time) []models.Reminder {
	return []models.Reminder{
		BuildReminder(plant, models.ReminderWatering, now),
		BuildReminder(plant, models.ReminderFertilizing, now),
	}
}

func (service *ReminderService) ScheduleNext(ctx context.Context, plant models.UserPlant, reminderType models.ReminderType, from time.Time) (models.Reminder, error) {
	reminder := BuildReminder(plant, reminderType, from)
	if err := service.reminders.Create(ctx, &reminder); err != nil {
		return models.Reminder{}, fmt.Errorf("create %s reminder: %w", reminderType, err)
	}
	return reminder, nil
}

func reminderMessage(reminderType models.ReminderType, plantName string) string {
	if plantName == "" {
		plantName = "your plant"
	}
	switch reminderType {
	case models.ReminderFertilizing:
		return fmt.Sprintf("Time to fertilize %s", plantName)
	default:
		return fmt.Sprintf("Time to water %s", plantName)
	}
}
