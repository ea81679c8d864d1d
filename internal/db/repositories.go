package db

import "gorm.io/gorm"

type Repositories struct {
	Products   *ProductRepository
	UserPlants *UserPlantRepository
	Reminders  *ReminderRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Products:   NewProductRepository(database),
		UserPlants: NewUserPlantRepository(database),
		Reminders:  NewReminderRepository(database),
	}
}
