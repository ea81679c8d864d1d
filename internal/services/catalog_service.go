package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/plantcare/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrLoadCatalogFailed   = errors.New("load catalog failed")
	ErrInvalidCatalog      = errors.New("invalid catalog document")
	ErrImportCatalogFailed = errors.New("import catalog failed")
)

type CatalogRepository interface {
	FindByID(ctx context.Context, productID uint) (models.Product, bool, error)
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpsertCategoryByName(ctx context.Context, category *models.Category) error
	UpsertByName(ctx context.Context, product *models.Product) (bool, error)
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CatalogDocument is the YAML shape accepted by ImportCatalog.
type CatalogDocument struct {
	Categories []CatalogCategory `yaml:"categories"`
}

type CatalogCategory struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Products    []CatalogProduct `yaml:"products"`
}

type CatalogProduct struct {
	Name             string  `yaml:"name"`
	Description      string  `yaml:"description"`
	Price            float64 `yaml:"price"`
	Stock            int     `yaml:"stock"`
	Difficulty       string  `yaml:"difficulty"`
	LightRequirement string  `yaml:"light"`
	WaterRequirement string  `yaml:"water"`
	SoilType         string  `yaml:"soil"`
	ImageURL         string  `yaml:"image_url"`
}

type CatalogImportResult struct {
	Categories      int
	ProductsCreated int
	ProductsUpdated int
}

type CatalogService struct {
	products CatalogRepository
}

func NewCatalogService(products CatalogRepository) *CatalogService {
	return &CatalogService{products: products}
}

func (service *CatalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	products, err := service.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalogFailed, err)
	}
	return products, nil
}

func (service *CatalogService) GetProduct(ctx context.Context, productID uint) (models.Product, bool, error) {
	product, found, err := service.products.FindByID(ctx, productID)
	if err != nil {
		return models.Product{}, false, fmt.Errorf("%w: %v", ErrLoadCatalogFailed, err)
	}
	return product, found, nil
}

func (service *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := service.products.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalogFailed, err)
	}
	return categories, nil
}

func ParseCatalogDocument(raw []byte) (CatalogDocument, error) {
	var document CatalogDocument
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return CatalogDocument{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := document.Validate(); err != nil {
		return CatalogDocument{}, err
	}
	return document, nil
}

func (document CatalogDocument) Validate() error {
	if len(document.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidCatalog)
	}
	for _, category := range document.Categories {
		if strings.TrimSpace(category.Name) == "" {
			return fmt.Errorf("%w: category without name", ErrInvalidCatalog)
		}
		for _, product := range category.Products {
			if strings.TrimSpace(product.Name) == "" {
				return fmt.Errorf("%w: product without name in %q", ErrInvalidCatalog, category.Name)
			}
			if product.Price < 0 || product.Stock < 0 {
				return fmt.Errorf("%w: negative price or stock for %q", ErrInvalidCatalog, product.Name)
			}
		}
	}
	return nil
}

// ImportCatalog upserts categories by name and products by category and name.
// The whole document is applied in one transaction: on error nothing is kept.
func (service *CatalogService) ImportCatalog(ctx context.Context, document CatalogDocument) (CatalogImportResult, error) {
	if err := document.Validate(); err != nil {
		return CatalogImportResult{}, err
	}

	var result CatalogImportResult
	err := service.products.InTransaction(ctx, func(ctx context.Context) error {
		result = CatalogImportResult{}
		for _, entry := range document.Categories {
			if err := service.importCategory(ctx, entry, &result); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return CatalogImportResult{}, fmt.Errorf("%w: %v", ErrImportCatalogFailed, err)
	}
	return result, nil
}

func (service *CatalogService) importCategory(ctx context.Context, entry CatalogCategory, result *CatalogImportResult) error {
	category := models.Category{
		Name:        strings.TrimSpace(entry.Name),
		Description: strings.TrimSpace(entry.Description),
	}
	if err := service.products.UpsertCategoryByName(ctx, &category); err != nil {
		return err
	}
	result.Categories++

	for _, item := range entry.Products {
		product := models.Product{
			CategoryID:       category.ID,
			Name:             strings.TrimSpace(item.Name),
			Description:      strings.TrimSpace(item.Description),
			Price:            item.Price,
			Stock:            item.Stock,
			Difficulty:       strings.TrimSpace(item.Difficulty),
			LightRequirement: strings.TrimSpace(item.LightRequirement),
			WaterRequirement: strings.TrimSpace(item.WaterRequirement),
			SoilType:         strings.TrimSpace(item.SoilType),
			ImageURL:         strings.TrimSpace(item.ImageURL),
		}
		created, err := service.products.UpsertByName(ctx, &product)
		if err != nil {
			return err
		}
		if created {
			result.ProductsCreated++
		} else {
			result.ProductsUpdated++
		}
	}
	return nil
}
