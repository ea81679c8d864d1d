package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCatalogEndpoints(t *testing.T) {
	env := newTestApp(t, "")
	aloe := env.seedProduct(t, "Aloe Vera", "Low")
	env.seedProduct(t, "Boston Fern", "High")

	listResponse := env.do(t, http.MethodGet, "/api/products", nil, "")
	defer listResponse.Body.Close()
	products := []productDTO{}
	decodeJSONBody(t, listResponse.Body, &products)
	if len(products) != 2 || products[0].Name != "Aloe Vera" || products[1].Name != "Boston Fern" {
		t.Fatalf("unexpected products: %#v", products)
	}
	if products[0].CategoryName != "Category Aloe Vera" || products[0].Price != 9.99 {
		t.Fatalf("unexpected product fields: %#v", products[0])
	}

	filteredResponse := env.do(t, http.MethodGet, "/api/products?name=fern", nil, "")
	defer filteredResponse.Body.Close()
	filtered := []productDTO{}
	decodeJSONBody(t, filteredResponse.Body, &filtered)
	if len(filtered) != 1 || filtered[0].Name != "Boston Fern" {
		t.Fatalf("unexpected filtered products: %#v", filtered)
	}

	byCategoryResponse := env.do(t, http.MethodGet, fmt.Sprintf("/api/products?categoryId=%d", aloe.CategoryID), nil, "")
	defer byCategoryResponse.Body.Close()
	byCategory := []productDTO{}
	decodeJSONBody(t, byCategoryResponse.Body, &byCategory)
	if len(byCategory) != 1 || byCategory[0].ProductID != aloe.ID {
		t.Fatalf("unexpected category products: %#v", byCategory)
	}

	productResponse := env.do(t, http.MethodGet, fmt.Sprintf("/api/products/%d", aloe.ID), nil, "")
	defer productResponse.Body.Close()
	product := productDTO{}
	decodeJSONBody(t, productResponse.Body, &product)
	if product.ProductID != aloe.ID || product.WaterRequirement != "Low" {
		t.Fatalf("unexpected product: %#v", product)
	}

	categoriesResponse := env.do(t, http.MethodGet, "/api/categories", nil, "")
	defer categoriesResponse.Body.Close()
	categories := []categoryDTO{}
	decodeJSONBody(t, categoriesResponse.Body, &categories)
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
}

func TestCatalogErrors(t *testing.T) {
	env := newTestApp(t, "")

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantError  string
	}{
		{name: "missing product", target: "/api/products/999", wantStatus: http.StatusNotFound, wantError: "product not found"},
		{name: "bad product id", target: "/api/products/abc", wantStatus: http.StatusBadRequest, wantError: "invalid product id"},
		{name: "bad category id", target: "/api/products?categoryId=-1", wantStatus: http.StatusBadRequest, wantError: "invalid category id"},
		{name: "unknown route", target: "/api/plants", wantStatus: http.StatusNotFound, wantError: "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := env.do(t, http.MethodGet, tt.target, nil, "")
			defer response.Body.Close()
			if response.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", response.StatusCode, tt.wantStatus)
			}
			if got := readAPIError(t, response.Body); got != tt.wantError {
				t.Fatalf("error = %q, want %q", got, tt.wantError)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	env := newTestApp(t, "")

	response := env.do(t, http.MethodGet, "/healthz", nil, "")
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("healthz status = %d, want 200", response.StatusCode)
	}
	payload := map[string]string{}
	decodeJSONBody(t, response.Body, &payload)
	if payload["status"] != "ok" {
		t.Fatalf("unexpected health payload: %#v", payload)
	}
}
