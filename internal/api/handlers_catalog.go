package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantcare/internal/models"
)

func (handler *Handler) ListProducts(c *fiber.Ctx) error {
	filter := models.ProductFilter{Name: strings.TrimSpace(c.Query("name"))}
	if raw := strings.TrimSpace(c.Query("categoryId")); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || categoryID == 0 {
			return validationError(c, "categoryId", "invalid category id")
		}
		filter.CategoryID = uint(categoryID)
	}

	products, err := handler.catalogService.ListProducts(c.UserContext(), filter)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load products")
	}
	result := make([]productDTO, 0, len(products))
	for _, product := range products {
		result = append(result, toProductDTO(product))
	}
	return c.JSON(result)
}

func (handler *Handler) GetProduct(c *fiber.Ctx) error {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid product id")
	}

	product, found, err := handler.catalogService.GetProduct(c.UserContext(), productID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load product")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "product not found")
	}
	return c.JSON(toProductDTO(product))
}

func (handler *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := handler.catalogService.ListCategories(c.UserContext())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load categories")
	}
	result := make([]categoryDTO, 0, len(categories))
	for _, category := range categories {
		result = append(result, categoryDTO{
			CategoryID:  category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}
	return c.JSON(result)
}
