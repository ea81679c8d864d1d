package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/plantcare/internal/db"
	"github.com/terraincognita07/plantcare/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	location      *time.Location
	upcomingLimit int
	now           func() time.Time

	repositories   *db.Repositories
	plantService   *services.UserPlantService
	catalogService *services.CatalogService
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
