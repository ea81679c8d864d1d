package services

import (
	"time"

	"github.com/terraincognita07/plantcare/internal/models"
)

type PlantStatistics struct {
	Total            int
	Alive            int
	Dead             int
	NeedsWatering    int
	NeedsFertilizing int
}

func BuildPlantStatistics(plants []models.UserPlant, now time.Time, location *time.Location) PlantStatistics {
	stats := PlantStatistics{Total: len(plants)}
	for _, plant := range plants {
		switch plant.Status {
		case models.PlantStatusAlive:
			stats.Alive++
		case models.PlantStatusDead:
			stats.Dead++
		}
		if NeedsWatering(plant, now, location) {
			stats.NeedsWatering++
		}
		if NeedsFertilizing(plant, now, location) {
			stats.NeedsFertilizing++
		}
	}
	return stats
}

func NeedsWatering(plant models.UserPlant, now time.Time, location *time.Location) bool {
	return plant.LastWatered == nil || DaysSince(plant.LastWatered, now, location) >= NeedsWateringAfterDays
}

func NeedsFertilizing(plant models.UserPlant, now time.Time, location *time.Location) bool {
	return plant.LastFertilized == nil || DaysSince(plant.LastFertilized, now, location) >= NeedsFertilizingAfterDays
}
