package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListUserPlants(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plants, err := handler.plantService.ListPlants(c.UserContext(), userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plants")
	}
	return c.JSON(toPlantSummaryDTOs(plants))
}

func (handler *Handler) GetUserPlant(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	userPlantID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user plant id")
	}

	detail, found, err := handler.plantService.GetPlantDetail(c.UserContext(), userID, userPlantID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plant")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "user plant not found")
	}
	return c.JSON(toPlantDetailDTO(detail))
}

func (handler *Handler) ListUserPlantReminders(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	userPlantID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user plant id")
	}

	reminders, found, err := handler.plantService.ListReminders(c.UserContext(), userID, userPlantID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reminders")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "user plant not found")
	}
	return c.JSON(toReminderDTOs(reminders))
}

func (handler *Handler) SearchUserPlants(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plants, err := handler.plantService.SearchPlants(c.UserContext(), userID, c.Query("term"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to search plants")
	}
	return c.JSON(toPlantSummaryDTOs(plants))
}

func (handler *Handler) FilterUserPlants(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	status := c.Query("status")
	if !plantStatusRegex.MatchString(status) {
		return validationError(c, "status", "invalid plant status")
	}

	plants, err := handler.plantService.FilterByStatus(c.UserContext(), userID, status)
	if err != nil {
		return respondServiceError(c, err, "failed to filter plants")
	}
	return c.JSON(toPlantSummaryDTOs(plants))
}

func (handler *Handler) GetPlantStatistics(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.plantService.Statistics(c.UserContext(), userID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load statistics")
	}
	return c.JSON(toPlantStatisticsDTO(stats))
}
