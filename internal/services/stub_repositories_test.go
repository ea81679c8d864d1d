package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/terraincognita07/plantcare/internal/models"
)

type stubPlantStore struct {
	plants      map[uint]models.UserPlant
	products    map[uint]models.Product
	reminders   []models.Reminder
	nextPlantID uint
	nextRemID   uint

	lastUpdates  map[string]any
	createRemErr error
	listErr      error
}

func newStubPlantStore(products ...models.Product) *stubPlantStore {
	store := &stubPlantStore{
		plants:   make(map[uint]models.UserPlant),
		products: make(map[uint]models.Product),
	}
	for _, product := range products {
		store.products[product.ID] = product
	}
	return store
}

func (store *stubPlantStore) ListByUser(_ context.Context, userID uint) ([]models.UserPlant, error) {
	if store.listErr != nil {
		return nil, store.listErr
	}
	result := make([]models.UserPlant, 0)
	for _, plant := range store.plants {
		if plant.UserID == userID {
			result = append(result, store.withProduct(plant))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (store *stubPlantStore) FindByIDForUser(_ context.Context, userPlantID uint, userID uint) (models.UserPlant, bool, error) {
	plant, ok := store.plants[userPlantID]
	if !ok || plant.UserID != userID {
		return models.UserPlant{}, false, nil
	}
	return store.withProduct(plant), true, nil
}

func (store *stubPlantStore) CreateWithReminders(_ context.Context, plant *models.UserPlant, reminders []models.Reminder) error {
	store.nextPlantID++
	plant.ID = store.nextPlantID
	stored := *plant
	stored.Product = nil
	store.plants[plant.ID] = stored
	for index := range reminders {
		reminders[index].UserPlantID = plant.ID
		store.appendReminder(&reminders[index])
	}
	return nil
}

func (store *stubPlantStore) UpdateForUser(_ context.Context, userPlantID uint, userID uint, updates map[string]any) (bool, error) {
	store.lastUpdates = updates
	plant, ok := store.plants[userPlantID]
	if !ok || plant.UserID != userID {
		return false, nil
	}
	for column, value := range updates {
		switch column {
		case "nickname":
			plant.Nickname = value.(string)
		case "notes":
			plant.Notes = value.(string)
		case "status":
			plant.Status = value.(models.PlantStatus)
		case "last_watered":
			watered := value.(time.Time)
			plant.LastWatered = &watered
		case "last_fertilized":
			fertilized := value.(time.Time)
			plant.LastFertilized = &fertilized
		}
	}
	store.plants[userPlantID] = plant
	return true, nil
}

func (store *stubPlantStore) DeleteWithReminders(_ context.Context, userPlantID uint, userID uint) (bool, error) {
	plant, ok := store.plants[userPlantID]
	if !ok || plant.UserID != userID {
		return false, nil
	}
	delete(store.plants, userPlantID)
	kept := store.reminders[:0]
	for _, reminder := range store.reminders {
		if reminder.UserPlantID != userPlantID {
			kept = append(kept, reminder)
		}
	}
	store.reminders = kept
	return true, nil
}

func (store *stubPlantStore) FindByID(_ context.Context, productID uint) (models.Product, bool, error) {
	product, ok := store.products[productID]
	return product, ok, nil
}

func (store *stubPlantStore) Create(_ context.Context, reminder *models.Reminder) error {
	if store.createRemErr != nil {
		return store.createRemErr
	}
	store.appendReminder(reminder)
	return nil
}

func (store *stubPlantStore) ListByUserPlant(_ context.Context, userPlantID uint) ([]models.Reminder, error) {
	result := make([]models.Reminder, 0)
	for _, reminder := range store.reminders {
		if reminder.UserPlantID == userPlantID {
			result = append(result, reminder)
		}
	}
	return result, nil
}

func (store *stubPlantStore) appendReminder(reminder *models.Reminder) {
	store.nextRemID++
	reminder.ID = store.nextRemID
	store.reminders = append(store.reminders, *reminder)
}

func (store *stubPlantStore) withProduct(plant models.UserPlant) models.UserPlant {
	if product, ok := store.products[plant.ProductID]; ok {
		plant.Product = &product
	}
	return plant
}

var errStub = errors.New("stub failure")
