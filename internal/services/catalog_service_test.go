package services

import (
	"context"
	"errors"
	"testing"

	"github.com/terraincognita07/plantcare/internal/models"
)

type stubCatalog struct {
	categories map[string]models.Category
	products   map[string]models.Product
	nextID     uint
	upsertErr  error
	failOn     string
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		categories: make(map[string]models.Category),
		products:   make(map[string]models.Product),
	}
}

func (stub *stubCatalog) FindByID(_ context.Context, productID uint) (models.Product, bool, error) {
	for _, product := range stub.products {
		if product.ID == productID {
			return product, true, nil
		}
	}
	return models.Product{}, false, nil
}

func (stub *stubCatalog) List(context.Context, models.ProductFilter) ([]models.Product, error) {
	result := make([]models.Product, 0, len(stub.products))
	for _, product := range stub.products {
		result = append(result, product)
	}
	return result, nil
}

func (stub *stubCatalog) ListCategories(context.Context) ([]models.Category, error) {
	result := make([]models.Category, 0, len(stub.categories))
	for _, category := range stub.categories {
		result = append(result, category)
	}
	return result, nil
}

func (stub *stubCatalog) UpsertCategoryByName(_ context.Context, category *models.Category) error {
	if existing, ok := stub.categories[category.Name]; ok {
		category.ID = existing.ID
	} else {
		stub.nextID++
		category.ID = stub.nextID
	}
	stub.categories[category.Name] = *category
	return nil
}

func (stub *stubCatalog) UpsertByName(_ context.Context, product *models.Product) (bool, error) {
	if stub.upsertErr != nil {
		return false, stub.upsertErr
	}
	if product.Name == stub.failOn {
		return false, errStub
	}
	key := product.Name
	existing, ok := stub.products[key]
	if ok {
		product.ID = existing.ID
	} else {
		stub.nextID++
		product.ID = stub.nextID
	}
	stub.products[key] = *product
	return !ok, nil
}

func (stub *stubCatalog) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	categories := make(map[string]models.Category, len(stub.categories))
	for key, value := range stub.categories {
		categories[key] = value
	}
	products := make(map[string]models.Product, len(stub.products))
	for key, value := range stub.products {
		products[key] = value
	}
	nextID := stub.nextID

	if err := fn(ctx); err != nil {
		stub.categories = categories
		stub.products = products
		stub.nextID = nextID
		return err
	}
	return nil
}

const sampleCatalog = `
categories:
  - name: Succulents
    description: Low maintenance
    products:
      - name: Aloe Vera
        price: 12.5
        stock: 4
        water: low
        light: Bright indirect
      - name: Jade Plant
        price: 9
        water: Low
  - name: Tropical
    products:
      - name: Calathea
        water: High
        image_url: https://example.com/calathea.jpg
`

func TestParseCatalogDocument(t *testing.T) {
	document, err := ParseCatalogDocument([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("ParseCatalogDocument() unexpected error: %v", err)
	}
	if len(document.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(document.Categories))
	}
	aloe := document.Categories[0].Products[0]
	if aloe.Name != "Aloe Vera" || aloe.Price != 12.5 || aloe.Stock != 4 || aloe.WaterRequirement != "low" || aloe.LightRequirement != "Bright indirect" {
		t.Fatalf("unexpected product: %#v", aloe)
	}
	if document.Categories[1].Products[0].ImageURL != "https://example.com/calathea.jpg" {
		t.Fatalf("unexpected image url: %q", document.Categories[1].Products[0].ImageURL)
	}
}

func TestParseCatalogDocumentRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "malformed yaml", raw: "categories: [\n"},
		{name: "empty", raw: ""},
		{name: "category without name", raw: "categories:\n  - description: x\n"},
		{name: "product without name", raw: "categories:\n  - name: A\n    products:\n      - price: 1\n"},
		{name: "negative stock", raw: "categories:\n  - name: A\n    products:\n      - name: B\n        stock: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCatalogDocument([]byte(tt.raw)); !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestImportCatalogCreatesThenUpdates(t *testing.T) {
	document, err := ParseCatalogDocument([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("ParseCatalogDocument() unexpected error: %v", err)
	}
	stub := newStubCatalog()
	service := NewCatalogService(stub)

	first, err := service.ImportCatalog(context.Background(), document)
	if err != nil {
		t.Fatalf("ImportCatalog() unexpected error: %v", err)
	}
	if first != (CatalogImportResult{Categories: 2, ProductsCreated: 3}) {
		t.Fatalf("first import = %#v", first)
	}
	if stub.products["Calathea"].CategoryID != stub.categories["Tropical"].ID {
		t.Fatal("expected product linked to its category")
	}

	second, err := service.ImportCatalog(context.Background(), document)
	if err != nil {
		t.Fatalf("second ImportCatalog() unexpected error: %v", err)
	}
	if second != (CatalogImportResult{Categories: 2, ProductsUpdated: 3}) {
		t.Fatalf("second import = %#v", second)
	}
}

func TestImportCatalogWrapsRepositoryError(t *testing.T) {
	stub := newStubCatalog()
	stub.upsertErr = errStub
	service := NewCatalogService(stub)

	document := CatalogDocument{Categories: []CatalogCategory{{Name: "A", Products: []CatalogProduct{{Name: "B"}}}}}
	if _, err := service.ImportCatalog(context.Background(), document); !errors.Is(err, ErrImportCatalogFailed) {
		t.Fatalf("expected ErrImportCatalogFailed, got %v", err)
	}
}

func TestImportCatalogKeepsNothingOnMidwayFailure(t *testing.T) {
	document, err := ParseCatalogDocument([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("ParseCatalogDocument() unexpected error: %v", err)
	}
	stub := newStubCatalog()
	stub.failOn = "Calathea"
	service := NewCatalogService(stub)

	result, err := service.ImportCatalog(context.Background(), document)
	if !errors.Is(err, ErrImportCatalogFailed) {
		t.Fatalf("expected ErrImportCatalogFailed, got %v", err)
	}
	if result != (CatalogImportResult{}) {
		t.Fatalf("expected empty result on failure, got %#v", result)
	}
	if len(stub.categories) != 0 || len(stub.products) != 0 {
		t.Fatalf("expected rollback, got %d categories and %d products", len(stub.categories), len(stub.products))
	}
}
