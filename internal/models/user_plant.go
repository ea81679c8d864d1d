package models

import (
	"strings"
	"time"
)

type PlantStatus string

const (
	PlantStatusAlive     PlantStatus = "alive"
	PlantStatusDead      PlantStatus = "dead"
	PlantStatusGivenAway PlantStatus = "given-away"
	PlantStatusSold      PlantStatus = "sold"
)

func PlantStatuses() []PlantStatus {
	return []PlantStatus{PlantStatusAlive, PlantStatusDead, PlantStatusGivenAway, PlantStatusSold}
}

func ParsePlantStatus(raw string) (PlantStatus, bool) {
	normalized := strings.TrimSpace(raw)
	for _, status := range PlantStatuses() {
		if string(status) == normalized {
			return status, true
		}
	}
	return "", false
}

type UserPlant struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"not null;index"`
	ProductID      uint      `gorm:"not null;index"`
	Nickname       string    `gorm:"not null;default:''"`
	PlantedDate    time.Time `gorm:"not null"`
	LastWatered    *time.Time
	LastFertilized *time.Time
	Notes          string      `gorm:"not null;default:''"`
	Status         PlantStatus `gorm:"not null;default:alive"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// DisplayName is the nickname when set, the catalog name otherwise.
func (plant UserPlant) DisplayName() string {
	if nickname := strings.TrimSpace(plant.Nickname); nickname != "" {
		return nickname
	}
	if plant.Product != nil {
		return plant.Product.Name
	}
	return ""
}
