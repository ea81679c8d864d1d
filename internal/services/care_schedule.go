package services

import (
	"time"

	"github.com/terraincognita07/plantcare/internal/models"
)

const (
	DefaultWateringIntervalDays = 7
	FertilizingIntervalDays     = 30

	NeedsWateringAfterDays    = 7
	NeedsFertilizingAfterDays = 30
)

var wateringIntervalDays = map[models.WaterRequirement]int{
	models.WaterLow:    10,
	models.WaterMedium: 5,
	models.WaterHigh:   2,
}

func WateringIntervalDays(requirement models.WaterRequirement) int {
	if days, ok := wateringIntervalDays[requirement]; ok {
		return days
	}
	return DefaultWateringIntervalDays
}

func ReminderIntervalDays(reminderType models.ReminderType, requirement models.WaterRequirement) int {
	if reminderType == models.ReminderFertilizing {
		return FertilizingIntervalDays
	}
	return WateringIntervalDays(requirement)
}

// NextDueDate keeps the wall-clock time of from and moves it forward by the
// interval for the reminder type.
func NextDueDate(reminderType models.ReminderType, requirement models.WaterRequirement, from time.Time) time.Time {
	return from.AddDate(0, 0, ReminderIntervalDays(reminderType, requirement))
}
