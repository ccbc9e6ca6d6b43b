package db

import (
	"github.com/terraincognita07/healthtracker/internal/models"
	"gorm.io/gorm"
)

type WorkoutStatusRepository struct {
	database *gorm.DB
}

func NewWorkoutStatusRepository(database *gorm.DB) *WorkoutStatusRepository {
	return &WorkoutStatusRepository{database: database}
}

func (repo *WorkoutStatusRepository) FindByUsername(username string) (models.WorkoutStatus, bool, error) {
	return findByUsername[models.WorkoutStatus](repo.database, username)
}

func (repo *WorkoutStatusRepository) Upsert(status *models.WorkoutStatus) (bool, error) {
	return UpsertByUsername(repo.database, status, "workout_days_per_week", "duration_per_day", "last_updated")
}
