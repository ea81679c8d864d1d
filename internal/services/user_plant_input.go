package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidPlantStatus = errors.New("invalid plant status")
	ErrInvalidPlantDate   = errors.New("invalid date")
	ErrNicknameTooLong    = errors.New("nickname is too long")
	ErrNotesTooLong       = errors.New("notes are too long")
)

const (
	maxNicknameLength = 100
	maxNotesLength    = 1000
)

// ValidationError ties a validation failure to the input field that caused it.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalidField(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

type AddPlantInput struct {
	ProductID   uint
	Nickname    string
	PlantedDate *time.Time
	Notes       string
}

// UpdatePlantPatch carries raw values. An empty string leaves the stored
// value unchanged; there is no way to clear a field through a patch.
type UpdatePlantPatch struct {
	UserPlantID    uint
	Nickname       string
	LastWatered    string
	LastFertilized string
	Notes          string
	Status         string
}

// ParsePlantDate accepts a calendar date (2006-01-02), read in location, or a
// full RFC3339 timestamp.
func ParsePlantDate(raw string, location *time.Location) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, ErrInvalidPlantDate
	}
	if location == nil {
		location = time.UTC
	}
	if parsed, err := time.ParseInLocation("2006-01-02", value, location); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Time{}, ErrInvalidPlantDate
}

func validateFreeText(nickname string, notes string) error {
	if len(nickname) > maxNicknameLength {
		return invalidField("nickname", ErrNicknameTooLong)
	}
	if len(notes) > maxNotesLength {
		return invalidField("notes", ErrNotesTooLong)
	}
	return nil
}
