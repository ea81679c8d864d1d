package models

import "time"

type ReminderType string

const (
	ReminderWatering    ReminderType = "watering"
	ReminderFertilizing ReminderType = "fertilizing"
)

type Reminder struct {
	ID           uint         `gorm:"primaryKey"`
	UserPlantID  uint         `gorm:"not null;index"`
	Type         ReminderType `gorm:"not null"`
	Message      string       `gorm:"not null"`
	ReminderDate time.Time    `gorm:"not null;index"`
	IsCompleted  bool         `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

// OpenReminder is an incomplete reminder joined with the owner of its plant.
type OpenReminder struct {
	ReminderID   uint         `gorm:"column:reminder_id"`
	UserPlantID  uint         `gorm:"column:user_plant_id"`
	UserID       uint         `gorm:"column:user_id"`
	Type         ReminderType `gorm:"column:type"`
	ReminderDate time.Time    `gorm:"column:reminder_date"`
}
