package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/plantcare/internal/db"
	"github.com/terraincognita07/plantcare/internal/models"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key"

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

type testApp struct {
	app      *fiber.App
	handler  *Handler
	database *gorm.DB
}

func newTestApp(t *testing.T, secret string) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "plantcare-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, secret, time.UTC, 5)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return &testApp{app: app, handler: handler, database: database}
}

func (env *testApp) seedProduct(t *testing.T, name string, water string) models.Product {
	t.Helper()

	category := models.Category{Name: "Category " + name}
	if err := env.database.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	product := models.Product{CategoryID: category.ID, Name: name, WaterRequirement: water, Price: 9.99, Stock: 2}
	if err := env.database.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func (env *testApp) do(t *testing.T, method string, target string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, target, reader)
	if body != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	return response
}

func (env *testApp) addPlant(t *testing.T, userID uint, productID uint, nickname string) plantSummaryDTO {
	t.Helper()

	response := env.do(t, http.MethodPost, fmt.Sprintf("/api/userplants?userId=%d", userID), map[string]any{
		"productId": productID,
		"nickname":  nickname,
	}, "")
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("add plant status = %d, want 201 (%s)", response.StatusCode, readAPIError(t, response.Body))
	}

	created := plantSummaryDTO{}
	decodeJSONBody(t, response.Body, &created)
	return created
}

func mintToken(t *testing.T, secret string, userID uint, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
