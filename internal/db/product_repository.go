package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/plantcare/internal/models"
	"gorm.io/gorm"
)

type ProductRepository struct {
	database *gorm.DB
}

func NewProductRepository(database *gorm.DB) *ProductRepository {
	return &ProductRepository{database: database}
}

type txContextKey struct{}

// InTransaction runs fn in one transaction. Repository calls made with the
// context passed to fn join it; any error from fn rolls everything back.
func (repo *ProductRepository) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return repo.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

func (repo *ProductRepository) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return repo.database.WithContext(ctx)
}

func (repo *ProductRepository) FindByID(ctx context.Context, productID uint) (models.Product, bool, error) {
	var product models.Product
	err := repo.database.WithContext(ctx).Preload("Category").First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, false, nil
	}
	if err != nil {
		return models.Product{}, false, err
	}
	return product, true, nil
}

func (repo *ProductRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := repo.database.WithContext(ctx).Model(&models.Product{}).Preload("Category")
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	products := make([]models.Product, 0)
	if err := query.Order("name ASC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (repo *ProductRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := repo.database.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// UpsertCategoryByName creates the category or refreshes the description of
// an existing one with the same name. category.ID is set either way.
func (repo *ProductRepository) UpsertCategoryByName(ctx context.Context, category *models.Category) error {
	return repo.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Category
		err := tx.Where("name = ?", category.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(category).Error
		}
		if err != nil {
			return fmt.Errorf("load category %q: %w", category.Name, err)
		}
		category.ID = existing.ID
		category.CreatedAt = existing.CreatedAt
		return tx.Model(&existing).Update("description", category.Description).Error
	})
}

// UpsertByName matches products on (category_id, name).
func (repo *ProductRepository) UpsertByName(ctx context.Context, product *models.Product) (bool, error) {
	created := false
	err := repo.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.Where("category_id = ? AND name = ?", product.CategoryID, product.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(product).Error
		}
		if err != nil {
			return fmt.Errorf("load product %q: %w", product.Name, err)
		}
		product.ID = existing.ID
		product.CreatedAt = existing.CreatedAt
		return tx.Model(&existing).Updates(map[string]any{
			"description":       product.Description,
			"price":             product.Price,
			"stock":             product.Stock,
			"difficulty":        product.Difficulty,
			"light_requirement": product.LightRequirement,
			"water_requirement": product.WaterRequirement,
			"soil_type":         product.SoilType,
			"image_url":         product.ImageURL,
		}).Error
	})
	return created, err
}
