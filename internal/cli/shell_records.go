package cli

import (
	"context"
	"strings"

	"github.com/terraincognita07/healthtracker/internal/services"
)

const (
	recordTimeLayout = "2006-01-02 15:04"
	planSeparator    = "------------------------------------------------------------"
)

func (shell *Shell) manageHealthRecord(username string) error {
	shell.println("\nYour health record:")

	record, found, err := shell.health.Get(username)
	if err != nil {
		shell.logger.Error().Err(err).Str("username", username).Msg("load health record failed")
		shell.println("Failed to load your health record:", err)
		return nil
	}
	if found {
		shell.printf("Weight in kg: %g\n", record.Weight)
		shell.printf("Height in meters: %g\n", record.Height)
		shell.printf("BMI: %.2f (%s)\n", record.BMI, services.BMICategory(record.BMI))
		shell.printf("Last updated: %s\n", record.LastUpdated.Local().Format(recordTimeLayout))

		update, err := shell.confirm("Do you want to update your health record? (y/n): ")
		if err != nil || !update {
			return err
		}
	} else {
		shell.println("No health record found.")
	}

	weight, ok, err := shell.readFloat("Enter your weight in kg: ")
	if err != nil {
		return err
	}
	heightCm, heightOK, err := shell.readFloat("Enter your height in cm: ")
	if err != nil {
		return err
	}
	if !ok || !heightOK {
		shell.println("Please enter numeric values for weight and height.")
		return nil
	}

	shell.printResult(shell.health.Upsert(username, weight, heightCm/100, shell.now()))
	return nil
}

func (shell *Shell) manageWorkout(username string) error {
	shell.println("\nYour workout status:")

	status, found, err := shell.workouts.Get(username)
	if err != nil {
		shell.logger.Error().Err(err).Str("username", username).Msg("load workout status failed")
		shell.println("Failed to load your workout status:", err)
		return nil
	}
	if found {
		shell.printf("Workout days per week: %d\n", status.WorkoutDaysPerWeek)
		shell.printf("Average duration per day (hrs): %g\n", status.DurationPerDay)
		shell.printf("Last updated: %s\n", status.LastUpdated.Local().Format(recordTimeLayout))

		update, err := shell.confirm("Do you want to update your workout status? (y/n): ")
		if err != nil || !update {
			return err
		}
	} else {
		shell.println("You have not entered your workout status yet.")
	}

	days, ok, err := shell.readInt("How many days do you work out per week (0-7)? ")
	if err != nil {
		return err
	}
	hours, hoursOK, err := shell.readFloat("How many hours per day do you work out? ")
	if err != nil {
		return err
	}
	if !ok || !hoursOK {
		shell.println("Please enter numeric values.")
		return nil
	}

	shell.printResult(shell.workouts.Upsert(username, days, hours, shell.now()))
	return nil
}

func (shell *Shell) manageGoal(username string) error {
	shell.println("\nCurrent personal goals:")

	goal, found, err := shell.goals.Get(username)
	if err != nil {
		shell.logger.Error().Err(err).Str("username", username).Msg("load goal failed")
		shell.println("Failed to load your goal:", err)
		return nil
	}
	if found {
		shell.printf("Goal: %s\n", goal.Goal)
		shell.printf("BMR: %.2f\n", goal.BMR)
		shell.printf("Daily calorie intake: %d kcal\n", goal.CalorieIntake)
		shell.printf("Last updated: %s\n", goal.LastUpdated.Local().Format(recordTimeLayout))

		update, err := shell.confirm("Do you want to update your personal goals? (y/n): ")
		if err != nil || !update {
			return err
		}
	} else {
		shell.println("You have not set your personal goals yet.")
	}

	kind, err := shell.readLine("How do you want to manage your weight (maintain, lose, or gain)? ")
	if err != nil {
		return err
	}
	shell.printResult(shell.goals.ComputeAndStore(username, strings.ToLower(kind), shell.now()))
	return nil
}

func (shell *Shell) showMealPlan(ctx context.Context, username string) {
	shell.println("\nGenerating your 7-day meal plan:")

	plan, err := shell.meals.GenerateWeeklyPlan(ctx, username)
	if err != nil {
		shell.println(services.MessageFor(err))
		return
	}

	shell.printf("\nHere is your 7-day meal plan based on a daily goal of %d kcal:\n\n", plan.CalorieGoal)
	for _, day := range plan.Days {
		shell.printf("%s:\n", day.Day)
		meals := make(map[string]services.PlannedMeal, len(day.Meals))
		for _, meal := range day.Meals {
			meals[meal.Slot] = meal
		}
		for _, slot := range services.MealSlots {
			meal, ok := meals[slot]
			if !ok {
				shell.printf("  %s: no meal found\n", slot)
				continue
			}
			shell.printf("  %s: %s (Category: %s)\n", slot, meal.Recipe.Name, meal.Recipe.Category)
			if meal.Recipe.Thumbnail != "" {
				shell.printf("    Image: %s\n", meal.Recipe.Thumbnail)
			}
		}
		shell.println(planSeparator)
	}
}
