package services

import (
	"math"
	"strings"

	"github.com/terraincognita07/healthtracker/internal/models"
)

const calorieGoalOffset = 500

// CalculateBMI returns weight / height² rounded to two decimals.
func CalculateBMI(weightKg float64, heightM float64) (float64, error) {
	if !isPositiveMeasurement(weightKg) {
		return 0, ErrInvalidWeight
	}
	if !isPositiveMeasurement(heightM) {
		return 0, ErrInvalidHeight
	}
	return math.Round(weightKg/(heightM*heightM)*100) / 100, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// CalculateBMR applies the Mifflin-St Jeor equation. Height is in centimeters.
func CalculateBMR(gender string, weightKg float64, heightCm float64, age int) (float64, error) {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case models.GenderMale:
		return base + 5, nil
	case models.GenderFemale:
		return base - 161, nil
	default:
		return 0, ErrInvalidGender
	}
}

// ActivityMultiplier maps weekly exercise minutes onto the activity bands.
func ActivityMultiplier(weeklyMinutes float64) float64 {
	switch {
	case weeklyMinutes <= 0:
		return 1.2
	case weeklyMinutes <= 150:
		return 1.375
	case weeklyMinutes <= 300:
		return 1.55
	case weeklyMinutes <= 450:
		return 1.725
	default:
		return 1.9
	}
}

// NormalizeGoalKind lower-cases goal and reports whether it is a known kind.
func NormalizeGoalKind(goal string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(goal))
	switch normalized {
	case models.GoalMaintain, models.GoalLose, models.GoalGain:
		return normalized, true
	default:
		return normalized, false
	}
}

// AdjustCalories shifts maintenance calories for the goal and rounds half to even.
func AdjustCalories(maintenance float64, goal string) (int, error) {
	kind, ok := NormalizeGoalKind(goal)
	if !ok {
		return 0, ErrInvalidGoal
	}

	adjusted := maintenance
	switch kind {
	case models.GoalLose:
		adjusted -= calorieGoalOffset
	case models.GoalGain:
		adjusted += calorieGoalOffset
	}
	return int(math.RoundToEven(adjusted)), nil
}

func isPositiveMeasurement(value float64) bool {
	return value > 0 && !math.IsInf(value, 1)
}
