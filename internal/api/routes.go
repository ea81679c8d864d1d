package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/categories", handler.ListCategories)
	products := api.Group("/products")
	products.Get("", handler.ListProducts)
	products.Get("/:id", handler.GetProduct)

	plants := api.Group("/userplants", handler.AuthRequired)
	plants.Get("", handler.ListUserPlants)
	plants.Get("/statistics", handler.GetPlantStatistics)
	plants.Get("/search", handler.SearchUserPlants)
	plants.Get("/filter", handler.FilterUserPlants)
	plants.Post("", handler.AddUserPlant)
	plants.Put("", handler.UpdateUserPlant)
	plants.Get("/:id", handler.GetUserPlant)
	plants.Get("/:id/reminders", handler.ListUserPlantReminders)
	plants.Delete("/:id", handler.DeleteUserPlant)
	plants.Patch("/:id/watering", handler.RecordWatering)
	plants.Patch("/:id/fertilizing", handler.RecordFertilizing)
	plants.Patch("/:id/status", handler.SetUserPlantStatus)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
