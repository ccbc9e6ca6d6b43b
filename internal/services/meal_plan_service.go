package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/healthtracker/internal/models"
)

const DefaultMealPlanAttempts = 10

var (
	MealCategories = []string{"Beef", "Chicken", "Seafood", "Vegetarian", "Vegan", "Pasta"}
	MealPlanDays   = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	MealSlots      = []string{"Breakfast", "Lunch", "Dinner"}
)

type RecipeCatalog interface {
	MealsByCategory(ctx context.Context, category string) ([]models.Recipe, error)
}

type CalorieGoalReader interface {
	CalorieGoal(username string) (int, bool, error)
}

type PlannedMeal struct {
	Slot   string
	Recipe models.Recipe
}

type DayPlan struct {
	Day   string
	Meals []PlannedMeal
}

// WeeklyMealPlan pairs the stored calorie goal with the schedule. The two are
// shown together but the recipes are not chosen to meet the goal.
type WeeklyMealPlan struct {
	CalorieGoal int
	Days        []DayPlan
}

type MealPlanService struct {
	goals       CalorieGoalReader
	catalog     RecipeCatalog
	random      *rand.Rand
	maxAttempts int
	logger      zerolog.Logger
}

func NewMealPlanService(goals CalorieGoalReader, catalog RecipeCatalog, random *rand.Rand, maxAttempts int, logger zerolog.Logger) *MealPlanService {
	if random == nil {
		random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMealPlanAttempts
	}
	return &MealPlanService{
		goals:       goals,
		catalog:     catalog,
		random:      random,
		maxAttempts: maxAttempts,
		logger:      logger.With().Str("component", "meal_plan").Logger(),
	}
}

func (service *MealPlanService) GenerateWeeklyPlan(ctx context.Context, username string) (WeeklyMealPlan, error) {
	username = NormalizeUsername(username)
	calories, found, err := service.goals.CalorieGoal(username)
	if err != nil {
		return WeeklyMealPlan{}, fmt.Errorf("load calorie goal: %w", err)
	}
	if !found {
		return WeeklyMealPlan{}, ErrNoGoalSet
	}

	plan := WeeklyMealPlan{
		CalorieGoal: calories,
		Days:        make([]DayPlan, 0, len(MealPlanDays)),
	}
	used := make(map[string]struct{})
	for _, day := range MealPlanDays {
		dayPlan := DayPlan{Day: day, Meals: make([]PlannedMeal, 0, len(MealSlots))}
		for _, slot := range MealSlots {
			if err := ctx.Err(); err != nil {
				return WeeklyMealPlan{}, err
			}

			recipe, ok := service.pickRecipe(ctx, used)
			if !ok {
				service.logger.Warn().Str("day", day).Str("slot", slot).Int("attempts", service.maxAttempts).Msg("no unused recipe found")
				continue
			}
			used[recipe.ID] = struct{}{}
			dayPlan.Meals = append(dayPlan.Meals, PlannedMeal{Slot: slot, Recipe: recipe})
		}
		plan.Days = append(plan.Days, dayPlan)
	}
	return plan, nil
}

// pickRecipe tries random categories until it finds a recipe not in used,
// giving up after maxAttempts.
func (service *MealPlanService) pickRecipe(ctx context.Context, used map[string]struct{}) (models.Recipe, bool) {
	for attempt := 0; attempt < service.maxAttempts; attempt++ {
		category := MealCategories[service.random.IntN(len(MealCategories))]
		recipes, err := service.catalog.MealsByCategory(ctx, category)
		if err != nil {
			service.logger.Warn().Err(err).Str("category", category).Msg("fetch meals failed")
			continue
		}

		candidates := slices.Clone(recipes)
		service.random.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, recipe := range candidates {
			if _, taken := used[recipe.ID]; taken {
				continue
			}
			if recipe.Category == "" {
				recipe.Category = category
			}
			return recipe, true
		}
	}
	return models.Recipe{}, false
}
