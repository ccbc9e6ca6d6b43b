package services

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/healthtracker/internal/models"
)

const MaxWorkoutDaysPerWeek = 7

type WorkoutStatusRepository interface {
	FindByUsername(username string) (models.WorkoutStatus, bool, error)
	Upsert(status *models.WorkoutStatus) (bool, error)
}

type WorkoutService struct {
	statuses WorkoutStatusRepository
	logger   zerolog.Logger
}

func NewWorkoutService(statuses WorkoutStatusRepository, logger zerolog.Logger) *WorkoutService {
	return &WorkoutService{
		statuses: statuses,
		logger:   logger.With().Str("component", "workouts").Logger(),
	}
}

func ValidateWorkout(daysPerWeek int, hoursPerSession float64) error {
	if daysPerWeek < 0 || daysPerWeek > MaxWorkoutDaysPerWeek || !isPositiveMeasurement(hoursPerSession) {
		return ErrInvalidWorkout
	}
	return nil
}

func (service *WorkoutService) Upsert(username string, daysPerWeek int, hoursPerSession float64, now time.Time) Result {
	if err := ValidateWorkout(daysPerWeek, hoursPerSession); err != nil {
		return failed(err)
	}

	status := models.WorkoutStatus{
		Username:           NormalizeUsername(username),
		WorkoutDaysPerWeek: daysPerWeek,
		DurationPerDay:     hoursPerSession,
		LastUpdated:        now.UTC(),
	}
	created, err := service.statuses.Upsert(&status)
	if err != nil {
		service.logger.Error().Err(err).Str("username", status.Username).Str("operation", "upsert").Msg("save workout status failed")
		return storageFailed("Failed to save workout status", err)
	}

	service.logger.Debug().Str("username", status.Username).Bool("created", created).Msg("workout status saved")
	return succeeded("Workout status updated successfully.")
}

func (service *WorkoutService) Get(username string) (models.WorkoutStatus, bool, error) {
	return service.statuses.FindByUsername(NormalizeUsername(username))
}
