package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantcare/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, field string, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  message,
		"fields": fiber.Map{field: message},
	})
}

// respondServiceError maps field validation failures to 400 and anything
// else to 500 with fallback as the message.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	var invalid *services.ValidationError
	if errors.As(err, &invalid) {
		return validationError(c, invalid.Field, invalid.Err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
