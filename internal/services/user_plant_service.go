package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/plantcare/internal/models"
)

var (
	ErrLoadPlantsFailed  = errors.New("load user plants failed")
	ErrLoadProductFailed = errors.New("load product failed")
	ErrCreatePlantFailed = errors.New("create user plant failed")
	ErrUpdatePlantFailed = errors.New("update user plant failed")
	ErrDeletePlantFailed = errors.New("delete user plant failed")
)

const DefaultUpcomingReminderLimit = 5

type UserPlantRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.UserPlant, error)
	FindByIDForUser(ctx context.Context, userPlantID uint, userID uint) (models.UserPlant, bool, error)
	CreateWithReminders(ctx context.Context, plant *models.UserPlant, reminders []models.Reminder) error
	UpdateForUser(ctx context.Context, userPlantID uint, userID uint, updates map[string]any) (bool, error)
	DeleteWithReminders(ctx context.Context, userPlantID uint, userID uint) (bool, error)
}

type PlantProductReader interface {
	FindByID(ctx context.Context, productID uint) (models.Product, bool, error)
}

type PlantReminderRepository interface {
	ReminderWriter
	ListByUserPlant(ctx context.Context, userPlantID uint) ([]models.Reminder, error)
}

type PlantDetail struct {
	Plant               models.UserPlant
	DaysSincePlanted    int
	DaysSinceWatered    int
	DaysSinceFertilized int
	UpcomingReminders   []models.Reminder
}

type UserPlantService struct {
	plants        UserPlantRepository
	products      PlantProductReader
	reminders     PlantReminderRepository
	scheduler     *ReminderService
	location      *time.Location
	upcomingLimit int
}

func NewUserPlantService(plants UserPlantRepository, products PlantProductReader, reminders PlantReminderRepository, location *time.Location, upcomingLimit int) *UserPlantService {
	if location == nil {
		location = time.UTC
	}
	if upcomingLimit <= 0 {
		upcomingLimit = DefaultUpcomingReminderLimit
	}
	return &UserPlantService{
		plants:        plants,
		products:      products,
		reminders:     reminders,
		scheduler:     NewReminderService(reminders),
		location:      location,
		upcomingLimit: upcomingLimit,
	}
}

func (service *UserPlantService) Location() *time.Location {
	return service.location
}

func (service *UserPlantService) ListPlants(ctx context.Context, userID uint) ([]models.UserPlant, error) {
	plants, err := service.plants.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadPlantsFailed, err)
	}
	return plants, nil
}

func (service *UserPlantService) GetPlantDetail(ctx context.Context, userID uint, userPlantID uint, now time.Time) (PlantDetail, bool, error) {
	plant, found, err := service.plants.FindByIDForUser(ctx, userPlantID, userID)
	if err != nil {
		return PlantDetail{}, false, fmt.Errorf("%w: %v", ErrLoadPlantsFailed, err)
	}
	if !found {
		return PlantDetail{}, false, nil
	}

	reminders, err := service.reminders.ListByUserPlant(ctx, plant.ID)
	if err != nil {
		return PlantDetail{}, false, fmt.Errorf("%w: %v", ErrLoadPlantsFailed, err)
	}

	planted := plant.PlantedDate
	return PlantDetail{
		Plant:               plant,
		DaysSincePlanted:    DaysSince(&planted, now, service.location),
		DaysSinceWatered:    DaysSince(plant.LastWatered, now, service.location),
		DaysSinceFertilized: DaysSince(plant.LastFertilized, now, service.location),
		UpcomingReminders:   UpcomingReminders(reminders, now, service.upcomingLimit),
	}, true, nil
}

func (service *UserPlantService) AddPlant(ctx context.Context, userID uint, input AddPlantInput, now time.Time) (models.UserPlant, error) {
	if input.ProductID == 0 {
		return models.UserPlant{}, invalidField("productId", ErrInvalidProductID)
	}
	nickname := strings.TrimSpace(input.Nickname)
	notes := strings.TrimSpace(input.Notes)
	if err := validateFreeText(nickname, notes); err != nil {
		return models.UserPlant{}, err
	}

	product, found, err := service.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return models.UserPlant{}, fmt.Errorf("%w: %v", ErrLoadProductFailed, err)
	}
	if !found {
		return models.UserPlant{}, invalidField("productId", ErrProductNotFound)
	}

	plantedDate := DateAtLocation(now, service.location)
	if input.PlantedDate != nil && !input.PlantedDate.IsZero() {
		plantedDate = *input.PlantedDate
	}

	plant := models.UserPlant{
		UserID:      userID,
		ProductID:   product.ID,
		Nickname:    nickname,
		PlantedDate: plantedDate,
		Notes:       notes,
		Status:      models.PlantStatusAlive,
		Product:     &product,
	}
	reminders := SeedReminders(plant, now)
	if err := service.plants.CreateWithReminders(ctx, &plant, reminders); err != nil {
		return models.UserPlant{}, fmt.Errorf("%w: %v", ErrCreatePlantFailed, err)
	}
	plant.Product = &product
	return plant, nil
}

func (service *UserPlantService) UpdatePlant(ctx context.Context, userID uint, patch UpdatePlantPatch, now time.Time) (bool, error) {
	updates, err := service.patchUpdates(patch)
	if err != nil {
		return false, err
	}
	updates["updated_at"] = now

	updated, err := service.plants.UpdateForUser(ctx, patch.UserPlantID, userID, updates)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUpdatePlantFailed, err)
	}
	return updated, nil
}

func (service *UserPlantService) patchUpdates(patch UpdatePlantPatch) (map[string]any, error) {
	updates := make(map[string]any)

	nickname := strings.TrimSpace(patch.Nickname)
	notes := strings.TrimSpace(patch.Notes)
	if err := validateFreeText(nickname, notes); err != nil {
		return nil, err
	}
	if nickname != "" {
		updates["nickname"] = nickname
	}
	if notes != "" {
		updates["notes"] = notes
	}

	if strings.TrimSpace(patch.LastWatered) != "" {
		watered, err := ParsePlantDate(patch.LastWatered, service.location)
		if err != nil {
			return nil, invalidField("lastWatered", err)
		}
		updates["last_watered"] = watered
	}
	if strings.TrimSpace(patch.LastFertilized) != "" {
		fertilized, err := ParsePlantDate(patch.LastFertilized, service.location)
		if err != nil {
			return nil, invalidField("lastFertilized", err)
		}
		updates["last_fertilized"] = fertilized
	}

	if strings.TrimSpace(patch.Status) != "" {
		status, ok := models.ParsePlantStatus(patch.Status)
		if !ok {
			return nil, invalidField("status", ErrInvalidPlantStatus)
		}
		updates["status"] = status
	}
	return updates, nil
}

func (service *UserPlantService) DeletePlant(ctx context.Context, userID uint, userPlantID uint) (bool, error) {
	deleted, err := service.plants.DeleteWithReminders(ctx, userPlantID, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrDeletePlantFailed, err)
	}
	return deleted, nil
}

func (service *UserPlantService) RecordWatering(ctx context.Context, userID uint, userPlantID uint, date time.Time, now time.Time) (bool, error) {
	return service.recordCare(ctx, userID, userPlantID, models.ReminderWatering, date, now)
}

func (service *UserPlantService) RecordFertilizing(ctx context.Context, userID uint, userPlantID uint, date time.Time, now time.Time) (bool, error) {
	return service.recordCare(ctx, userID, userPlantID, models.ReminderFertilizing, date, now)
}

// recordCare stamps the care date and schedules the following reminder from
// it. A failed reminder insert is logged and does not undo the stamp.
func (service *UserPlantService) recordCare(ctx context.Context, userID uint, userPlantID uint, reminderType models.ReminderType, date time.Time, now time.Time) (bool, error) {
	plant, found, err := service.plants.FindByIDForUser(ctx, userPlantID, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrLoadPlantsFailed, err)
	}
	if !found {
		return false, nil
	}

	careDate := date
	if careDate.IsZero() {
		careDate = now
	}

	column := "last_watered"
	if reminderType == models.ReminderFertilizing {
		column = "last_fertilized"
	}
	updated, err := service.plants.UpdateForUser(ctx, plant.ID, userID, map[string]any{
		column:       careDate,
		"updated_at": now,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUpdatePlantFailed, err)
	}
	if !updated {
		return false, nil
	}

	if _, err := service.scheduler.ScheduleNext(ctx, plant, reminderType, careDate); err != nil {
		log.Printf("user plants: plant %d: %v", plant.ID, err)
	}
	return true, nil
}

func (service *UserPlantService) SetStatus(ctx context.Context, userID uint, userPlantID uint, rawStatus string, now time.Time) (bool, error) {
	status, ok := models.ParsePlantStatus(rawStatus)
	if !ok {
		return false, invalidField("status", ErrInvalidPlantStatus)
	}

	updated, err := service.plants.UpdateForUser(ctx, userPlantID, userID, map[string]any{
		"status":     status,
		"updated_at": now,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUpdatePlantFailed, err)
	}
	return updated, nil
}

// SearchPlants matches term case-sensitively against nickname and product
// name. The match runs in Go because SQLite LIKE folds ASCII case.
func (service *UserPlantService) SearchPlants(ctx context.Context, userID uint, term string) ([]models.UserPlant, error) {
	plants, err := service.ListPlants(ctx, userID)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return plants, nil
	}

	matched := make([]models.UserPlant, 0, len(plants))
	for _, plant := range plants {
		if strings.Contains(plant.Nickname, term) {
			matched = append(matched, plant)
			continue
		}
		if plant.Product != nil && strings.Contains(plant.Product.Name, term) {
			matched = append(matched, plant)
		}
	}
	return matched, nil
}

func (service *UserPlantService) FilterByStatus(ctx context.Context, userID uint, rawStatus string) ([]models.UserPlant, error) {
	status, ok := models.ParsePlantStatus(rawStatus)
	if !ok {
		return nil, invalidField("status", ErrInvalidPlantStatus)
	}

	plants, err := service.ListPlants(ctx, userID)
	if err != nil {
		return nil, err
	}
	matched := make([]models.UserPlant, 0, len(plants))
	for _, plant := range plants {
		if plant.Status == status {
			matched = append(matched, plant)
		}
	}
	return matched, nil
}

func (service *UserPlantService) Statistics(ctx context.Context, userID uint, now time.Time) (PlantStatistics, error) {
	plants, err := service.ListPlants(ctx, userID)
	if err != nil {
		return PlantStatistics{}, err
	}
	return BuildPlantStatistics(plants, now, service.location), nil
}

func (service *UserPlantService) ListReminders(ctx context.Context, userID uint, userPlantID uint) ([]models.Reminder, bool, error) {
	plant, found, err := service.plants.FindByIDForUser(ctx, userPlantID, userID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrLoadPlantsFailed, err)
	}
	if !found {
		return nil, false, nil
	}

	reminders, err := service.reminders.ListByUserPlant(ctx, plant.ID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrLoadPlantsFailed, err)
	}
	return reminders, true, nil
}

// UpcomingReminders keeps incomplete reminders due at or after now, earliest
// first, capped at limit.
func UpcomingReminders(reminders []models.Reminder, now time.Time, limit int) []models.Reminder {
	upcoming := make([]models.Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		if reminder.IsCompleted || reminder.ReminderDate.Before(now) {
			continue
		}
		upcoming = append(upcoming, reminder)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].ReminderDate.Equal(upcoming[j].ReminderDate) {
			return upcoming[i].ID < upcoming[j].ID
		}
		return upcoming[i].ReminderDate.Before(upcoming[j].ReminderDate)
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
