package services

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/healthtracker/internal/models"
)

type HealthRecordRepository interface {
	FindByUsername(username string) (models.HealthRecord, bool, error)
	Upsert(record *models.HealthRecord) (bool, error)
}

type HealthRecordService struct {
	records HealthRecordRepository
	logger  zerolog.Logger
}

func NewHealthRecordService(records HealthRecordRepository, logger zerolog.Logger) *HealthRecordService {
	return &HealthRecordService{
		records: records,
		logger:  logger.With().Str("component", "health_records").Logger(),
	}
}

// Upsert stores weight (kg) and height (m) with a freshly computed BMI.
func (service *HealthRecordService) Upsert(username string, weightKg float64, heightM float64, now time.Time) Result {
	bmi, err := CalculateBMI(weightKg, heightM)
	if err != nil {
		return failed(err)
	}

	record := models.HealthRecord{
		Username:    NormalizeUsername(username),
		Weight:      weightKg,
		Height:      heightM,
		BMI:         bmi,
		LastUpdated: now.UTC(),
	}
	created, err := service.records.Upsert(&record)
	if err != nil {
		service.logger.Error().Err(err).Str("username", record.Username).Str("operation", "upsert").Msg("save health record failed")
		return storageFailed("Failed to save health data", err)
	}

	service.logger.Debug().Str("username", record.Username).Bool("created", created).Float64("bmi", bmi).Msg("health record saved")
	return succeeded("Your information updated successfully.")
}

func (service *HealthRecordService) Get(username string) (models.HealthRecord, bool, error) {
	return service.records.FindByUsername(NormalizeUsername(username))
}
