package api

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantcare/internal/services"
)

func (handler *Handler) AddUserPlant(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := addPlantPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	input := services.AddPlantInput{
		ProductID: payload.ProductID,
		Nickname:  payload.Nickname,
		Notes:     payload.Notes,
	}
	if strings.TrimSpace(payload.PlantedDate) != "" {
		plantedDate, err := services.ParsePlantDate(payload.PlantedDate, handler.location)
		if err != nil {
			return validationError(c, "plantedDate", "invalid date")
		}
		input.PlantedDate = &plantedDate
	}

	plant, err := handler.plantService.AddPlant(c.UserContext(), userID, input, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to add plant")
	}
	return c.Status(fiber.StatusCreated).JSON(toPlantSummaryDTO(plant))
}

func (handler *Handler) UpdateUserPlant(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := updatePlantPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.UserPlantID == 0 {
		return validationError(c, "userPlantId", "invalid user plant id")
	}
	if payload.Status != "" && !plantStatusRegex.MatchString(payload.Status) {
		return validationError(c, "status", "invalid plant status")
	}

	updated, err := handler.plantService.UpdatePlant(c.UserContext(), userID, services.UpdatePlantPatch{
		UserPlantID:    payload.UserPlantID,
		Nickname:       payload.Nickname,
		LastWatered:    payload.LastWatered,
		LastFertilized: payload.LastFertilized,
		Notes:          payload.Notes,
		Status:         payload.Status,
	}, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to update plant")
	}
	if !updated {
		return apiError(c, fiber.StatusNotFound, "user plant not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteUserPlant(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	userPlantID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user plant id")
	}

	deleted, err := handler.plantService.DeletePlant(c.UserContext(), userID, userPlantID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete plant")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "user plant not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) RecordWatering(c *fiber.Ctx) error {
	return handler.recordCare(c, handler.plantService.RecordWatering)
}

func (handler *Handler) RecordFertilizing(c *fiber.Ctx) error {
	return handler.recordCare(c, handler.plantService.RecordFertilizing)
}

type careRecorder func(ctx context.Context, userID uint, userPlantID uint, date time.Time, now time.Time) (bool, error)

func (handler *Handler) recordCare(c *fiber.Ctx, record careRecorder) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	userPlantID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user plant id")
	}

	payload := careDatePayload{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	var careDate time.Time
	if strings.TrimSpace(payload.Date) != "" {
		parsed, err := services.ParsePlantDate(payload.Date, handler.location)
		if err != nil {
			return validationError(c, "date", "invalid date")
		}
		careDate = parsed
	}

	recorded, err := record(c.UserContext(), userID, userPlantID, careDate, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update plant")
	}
	if !recorded {
		return apiError(c, fiber.StatusNotFound, "user plant not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) SetUserPlantStatus(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	userPlantID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid user plant id")
	}

	payload := statusPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !plantStatusRegex.MatchString(payload.Status) {
		return validationError(c, "status", "invalid plant status")
	}

	updated, err := handler.plantService.SetStatus(c.UserContext(), userID, userPlantID, payload.Status, handler.now())
	if err != nil {
		return respondServiceError(c, err, "failed to update plant status")
	}
	if !updated {
		return apiError(c, fiber.StatusNotFound, "user plant not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
