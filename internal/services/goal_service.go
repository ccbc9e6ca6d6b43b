package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/healthtracker/internal/models"
)

type GoalRepository interface {
	FindByUsername(username string) (models.Goal, bool, error)
	Upsert(goal *models.Goal) (bool, error)
	CalorieIntake(username string) (int, bool, error)
}

type GoalProfileReader interface {
	GetProfile(username string, now time.Time) (Profile, bool, error)
}

type GoalHealthReader interface {
	Get(username string) (models.HealthRecord, bool, error)
}

type GoalWorkoutReader interface {
	Get(username string) (models.WorkoutStatus, bool, error)
}

// CalorieEstimate is every intermediate value of the goal pipeline.
type CalorieEstimate struct {
	Goal               string
	BMR                float64
	ActivityMultiplier float64
	Maintenance        float64
	CalorieIntake      int
}

type GoalService struct {
	goals    GoalRepository
	profiles GoalProfileReader
	health   GoalHealthReader
	workouts GoalWorkoutReader
	logger   zerolog.Logger
}

func NewGoalService(goals GoalRepository, profiles GoalProfileReader, health GoalHealthReader, workouts GoalWorkoutReader, logger zerolog.Logger) *GoalService {
	return &GoalService{
		goals:    goals,
		profiles: profiles,
		health:   health,
		workouts: workouts,
		logger:   logger.With().Str("component", "goals").Logger(),
	}
}

// Estimate runs the read-only part of the pipeline: inputs, BMR, activity and goal adjustment.
func (service *GoalService) Estimate(username string, goalKind string, now time.Time) (CalorieEstimate, error) {
	username = NormalizeUsername(username)

	profile, profileFound, err := service.profiles.GetProfile(username, now)
	if err != nil {
		return CalorieEstimate{}, fmt.Errorf("load profile: %w", err)
	}
	record, recordFound, err := service.health.Get(username)
	if err != nil {
		return CalorieEstimate{}, fmt.Errorf("load health record: %w", err)
	}
	status, _, err := service.workouts.Get(username)
	if err != nil {
		return CalorieEstimate{}, fmt.Errorf("load workout status: %w", err)
	}

	if !profileFound || !recordFound {
		return CalorieEstimate{}, ErrMissingGoalInputs
	}

	heightCm := record.Height * 100
	if profile.Gender == "" || profile.Age == 0 || record.Weight == 0 || heightCm == 0 {
		return CalorieEstimate{}, ErrIncompleteBMRData
	}

	bmr, err := CalculateBMR(profile.Gender, record.Weight, heightCm, profile.Age)
	if err != nil {
		return CalorieEstimate{}, err
	}

	// an absent workout status is zero days of zero hours
	multiplier := ActivityMultiplier(status.WeeklyMinutes())
	maintenance := bmr * multiplier

	calories, err := AdjustCalories(maintenance, goalKind)
	if err != nil {
		return CalorieEstimate{}, err
	}
	kind, _ := NormalizeGoalKind(goalKind)

	return CalorieEstimate{
		Goal:               kind,
		BMR:                bmr,
		ActivityMultiplier: multiplier,
		Maintenance:        maintenance,
		CalorieIntake:      calories,
	}, nil
}

// ComputeAndStore estimates the calorie target for goalKind and upserts it.
// Nothing is written unless every step of the estimate succeeds.
func (service *GoalService) ComputeAndStore(username string, goalKind string, now time.Time) Result {
	username = NormalizeUsername(username)

	estimate, err := service.Estimate(username, goalKind, now)
	if err != nil {
		if KindOf(err) == KindStorage {
			service.logger.Error().Err(err).Str("username", username).Str("operation", "estimate").Msg("load goal inputs failed")
			return storageFailed("Failed to load goal inputs", err)
		}
		return failed(err)
	}

	goal := models.Goal{
		Username:      username,
		Goal:          estimate.Goal,
		BMR:           estimate.BMR,
		CalorieIntake: estimate.CalorieIntake,
		LastUpdated:   now.UTC(),
	}
	created, err := service.goals.Upsert(&goal)
	if err != nil {
		service.logger.Error().Err(err).Str("username", username).Str("operation", "upsert").Msg("save goal failed")
		return storageFailed("Error saving goal", err)
	}

	service.logger.Debug().
		Str("username", username).
		Bool("created", created).
		Float64("bmr", estimate.BMR).
		Float64("multiplier", estimate.ActivityMultiplier).
		Int("calories", estimate.CalorieIntake).
		Msg("goal saved")
	return succeeded(fmt.Sprintf("Your estimated daily calorie intake to %s weight is %d kcal.", estimate.Goal, estimate.CalorieIntake))
}

func (service *GoalService) Get(username string) (models.Goal, bool, error) {
	return service.goals.FindByUsername(NormalizeUsername(username))
}

// CalorieGoal is the stored daily calorie intake, read by the meal planner.
func (service *GoalService) CalorieGoal(username string) (int, bool, error) {
	return service.goals.CalorieIntake(NormalizeUsername(username))
}
