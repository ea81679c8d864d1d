package api

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// NewHandler wires repositories and services over database. An empty secret
// switches caller identity to the userId query parameter.
func NewHandler(database *gorm.DB, secret string, location *time.Location, upcomingLimit int) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:            database,
		secretKey:     []byte(secret),
		location:      location,
		upcomingLimit: upcomingLimit,
		now:           time.Now,
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) authEnabled() bool {
	return len(handler.secretKey) > 0
}
