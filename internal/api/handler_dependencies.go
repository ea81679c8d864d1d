package api

import (
	"github.com/terraincognita07/plantcare/internal/db"
	"github.com/terraincognita07/plantcare/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.plantService = services.NewUserPlantService(
		handler.repositories.UserPlants,
		handler.repositories.Products,
		handler.repositories.Reminders,
		handler.location,
		handler.upcomingLimit,
	)
	handler.catalogService = services.NewCatalogService(handler.repositories.Products)
	return handler
}
