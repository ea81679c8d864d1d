package models

import (
	"strings"
	"time"
)

type WaterRequirement string

const (
	WaterLow     WaterRequirement = "Low"
	WaterMedium  WaterRequirement = "Medium"
	WaterHigh    WaterRequirement = "High"
	WaterUnknown WaterRequirement = ""
)

// ParseWaterRequirement maps a catalog value onto the closed set. Anything
// unrecognized, including an empty value, is WaterUnknown.
func ParseWaterRequirement(raw string) WaterRequirement {
	switch normalized := strings.TrimSpace(raw); {
	case strings.EqualFold(normalized, string(WaterLow)):
		return WaterLow
	case strings.EqualFold(normalized, string(WaterMedium)):
		return WaterMedium
	case strings.EqualFold(normalized, string(WaterHigh)):
		return WaterHigh
	default:
		return WaterUnknown
	}
}

// ProductFilter narrows a catalog listing. Zero values match everything.
type ProductFilter struct {
	CategoryID uint
	Name       string
}

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;uniqueIndex"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Product struct {
	ID               uint   `gorm:"primaryKey"`
	CategoryID       uint   `gorm:"not null;index"`
	Name             string `gorm:"not null"`
	Description      string
	Price            float64 `gorm:"not null;default:0"`
	Stock            int     `gorm:"not null;default:0"`
	Difficulty       string
	LightRequirement string
	WaterRequirement string
	SoilType         string
	ImageURL         string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (product Product) Water() WaterRequirement {
	return ParseWaterRequirement(product.WaterRequirement)
}
