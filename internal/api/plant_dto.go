package api

import (
	"time"

	"github.com/terraincognita07/plantcare/internal/models"
	"github.com/terraincognita07/plantcare/internal/services"
)

type plantSummaryDTO struct {
	UserPlantID      uint               `json:"userPlantId"`
	ProductID        uint               `json:"productId"`
	ProductName      string             `json:"productName"`
	ProductImageURL  string             `json:"productImageUrl"`
	Difficulty       string             `json:"difficulty"`
	LightRequirement string             `json:"lightRequirement"`
	WaterRequirement string             `json:"waterRequirement"`
	SoilType         string             `json:"soilType"`
	Nickname         string             `json:"nickname"`
	PlantedDate      time.Time          `json:"plantedDate"`
	LastWatered      *time.Time         `json:"lastWatered"`
	LastFertilized   *time.Time         `json:"lastFertilized"`
	Notes            string             `json:"notes"`
	Status           models.PlantStatus `json:"status"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

type plantDetailDTO struct {
	plantSummaryDTO
	DaysSincePlanted    int           `json:"daysSincePlanted"`
	DaysSinceWatered    int           `json:"daysSinceWatered"`
	DaysSinceFertilized int           `json:"daysSinceFertilized"`
	UpcomingReminders   []reminderDTO `json:"upcomingReminders"`
}

type reminderDTO struct {
	ReminderID   uint                `json:"reminderId"`
	UserPlantID  uint                `json:"userPlantId"`
	Type         models.ReminderType `json:"reminderType"`
	Message      string              `json:"message"`
	ReminderDate time.Time           `json:"reminderDate"`
	IsCompleted  bool                `json:"isCompleted"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type plantStatisticsDTO struct {
	TotalPlants      int `json:"totalPlants"`
	AlivePlants      int `json:"alivePlants"`
	DeadPlants       int `json:"deadPlants"`
	NeedsWatering    int `json:"needsWatering"`
	NeedsFertilizing int `json:"needsFertilizing"`
}

type categoryDTO struct {
	CategoryID  uint   `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type productDTO struct {
	ProductID        uint      `json:"productId"`
	CategoryID       uint      `json:"categoryId"`
	CategoryName     string    `json:"categoryName"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"`
	Stock            int       `json:"stock"`
	Difficulty       string    `json:"difficulty"`
	LightRequirement string    `json:"lightRequirement"`
	WaterRequirement string    `json:"waterRequirement"`
	SoilType         string    `json:"soilType"`
	ImageURL         string    `json:"imageUrl"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toPlantSummaryDTO(plant models.UserPlant) plantSummaryDTO {
	dto := plantSummaryDTO{
		UserPlantID:    plant.ID,
		ProductID:      plant.ProductID,
		Nickname:       plant.Nickname,
		PlantedDate:    plant.PlantedDate,
		LastWatered:    plant.LastWatered,
		LastFertilized: plant.LastFertilized,
		Notes:          plant.Notes,
		Status:         plant.Status,
		CreatedAt:      plant.CreatedAt,
		UpdatedAt:      plant.UpdatedAt,
	}
	if product := plant.Product; product != nil {
		dto.ProductName = product.Name
		dto.ProductImageURL = product.ImageURL
		dto.Difficulty = product.Difficulty
		dto.LightRequirement = product.LightRequirement
		dto.WaterRequirement = product.WaterRequirement
		dto.SoilType = product.SoilType
	}
	return dto
}

func toPlantSummaryDTOs(plants []models.UserPlant) []plantSummaryDTO {
	result := make([]plantSummaryDTO, 0, len(plants))
	for _, plant := range plants {
		result = append(result, toPlantSummaryDTO(plant))
	}
	return result
}

func toPlantDetailDTO(detail services.PlantDetail) plantDetailDTO {
	return plantDetailDTO{
		plantSummaryDTO:     toPlantSummaryDTO(detail.Plant),
		DaysSincePlanted:    detail.DaysSincePlanted,
		DaysSinceWatered:    detail.DaysSinceWatered,
		DaysSinceFertilized: detail.DaysSinceFertilized,
		UpcomingReminders:   toReminderDTOs(detail.UpcomingReminders),
	}
}

func toReminderDTOs(reminders []models.Reminder) []reminderDTO {
	result := make([]reminderDTO, 0, len(reminders))
	for _, reminder := range reminders {
		result = append(result, reminderDTO{
			ReminderID:   reminder.ID,
			UserPlantID:  reminder.UserPlantID,
			Type:         reminder.Type,
			Message:      reminder.Message,
			ReminderDate: reminder.ReminderDate,
			IsCompleted:  reminder.IsCompleted,
			CreatedAt:    reminder.CreatedAt,
		})
	}
	return result
}

func toPlantStatisticsDTO(stats services.PlantStatistics) plantStatisticsDTO {
	return plantStatisticsDTO{
		TotalPlants:      stats.Total,
		AlivePlants:      stats.Alive,
		DeadPlants:       stats.Dead,
		NeedsWatering:    stats.NeedsWatering,
		NeedsFertilizing: stats.NeedsFertilizing,
	}
}

func toProductDTO(product models.Product) productDTO {
	dto := productDTO{
		ProductID:        product.ID,
		CategoryID:       product.CategoryID,
		Name:             product.Name,
		Description:      product.Description,
		Price:            product.Price,
		Stock:            product.Stock,
		Difficulty:       product.Difficulty,
		LightRequirement: product.LightRequirement,
		WaterRequirement: product.WaterRequirement,
		SoilType:         product.SoilType,
		ImageURL:         product.ImageURL,
		CreatedAt:        product.CreatedAt,
		UpdatedAt:        product.UpdatedAt,
	}
	if product.Category != nil {
		dto.CategoryName = product.Category.Name
	}
	return dto
}
