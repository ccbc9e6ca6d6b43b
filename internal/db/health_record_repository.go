package db

import (
	"github.com/terraincognita07/healthtracker/internal/models"
	"gorm.io/gorm"
)

type HealthRecordRepository struct {
	database *gorm.DB
}

func NewHealthRecordRepository(database *gorm.DB) *HealthRecordRepository {
	return &HealthRecordRepository{database: database}
}

func (repo *HealthRecordRepository) FindByUsername(username string) (models.HealthRecord, bool, error) {
	return findByUsername[models.HealthRecord](repo.database, username)
}

func (repo *HealthRecordRepository) Upsert(record *models.HealthRecord) (bool, error) {
	return UpsertByUsername(repo.database, record, "weight", "height", "bmi", "last_updated")
}
