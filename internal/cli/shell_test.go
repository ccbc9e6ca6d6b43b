package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/healthtracker/internal/db"
	"github.com/terraincognita07/healthtracker/internal/models"
	"github.com/terraincognita07/healthtracker/internal/services"
	"golang.org/x/crypto/bcrypt"
)

type mealPlannerStub struct {
	plan     services.WeeklyMealPlan
	err      error
	username string
}

func (stub *mealPlannerStub) GenerateWeeklyPlan(_ context.Context, username string) (services.WeeklyMealPlan, error) {
	stub.username = username
	return stub.plan, stub.err
}

var shellTestNow = time.Date(2025, time.September, 1, 10, 0, 0, 0, time.UTC)

func newTestShell(t *testing.T, script string, meals MealPlanner) (*Shell, *bytes.Buffer) {
	t.Helper()

	repos, err := db.Open(filepath.Join(t.TempDir(), "shell.db"))
	if err != nil {
		t.Fatalf("open repositories: %v", err)
	}
	t.Cleanup(func() {
		_ = repos.Close()
	})

	logger := zerolog.Nop()
	credentials := services.NewCredentialService(repos.Users, bcrypt.MinCost, logger)
	health := services.NewHealthRecordService(repos.HealthRecords, logger)
	workouts := services.NewWorkoutService(repos.Workouts, logger)
	goals := services.NewGoalService(repos.Goals, credentials, health, workouts, logger)
	if meals == nil {
		meals = &mealPlannerStub{err: services.ErrNoGoalSet}
	}

	out := &bytes.Buffer{}
	shell := NewShell(ShellConfig{
		In:       strings.NewReader(script),
		Out:      out,
		Accounts: credentials,
		Health:   health,
		Workouts: workouts,
		Goals:    goals,
		Meals:    meals,
		Logger:   logger,
		Now:      func() time.Time { return shellTestNow },
	})
	return shell, out
}

func scriptLines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func assertOutputContains(t *testing.T, output string, expected ...string) {
	t.Helper()

	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func registerJohnScript() []string {
	return []string{"1", "john", "john@example.com", "password123", "John", "Doe", "2000", "male"}
}

func TestShellSignUpRepromptsUntilEachFieldIsValid(t *testing.T) {
	shell, out := newTestShell(t, scriptLines(
		"1",
		"jo", "john",
		"not-an-email", "John@Example.com",
		"short", "password123",
		"", "John",
		"Doe",
		"abcd", "1900", "2000",
		"other", "Male",
		"3",
	), nil)

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("run shell: %v", err)
	}

	assertOutputContains(t, out.String(),
		"Your username must be between 3 and 8 characters.",
		"Invalid email address.",
		"Your password must be at least 8 characters long.",
		"First name cannot be empty.",
		"Invalid year. Please input a 4-digit year.",
		"Please enter a valid year of birth.",
		"Gender must be male or female.",
		"User registered successfully.",
		"Thank you!",
	)
}

func TestShellFullSessionComputesCalorieGoal(t *testing.T) {
	planner := &mealPlannerStub{plan: services.WeeklyMealPlan{
		CalorieGoal: 2594,
		Days: []services.DayPlan{{
			Day: "Monday",
			Meals: []services.PlannedMeal{{
				Slot:   "Breakfast",
				Recipe: models.Recipe{ID: "52874", Name: "Beef and Mustard Pie", Category: "Beef", Thumbnail: "https://example.com/pie.jpg"},
			}},
		}},
	}}

	lines := registerJohnScript()
	lines = append(lines,
		"2", "john", "password123",
		"2", "70", "175",
		"3", "3", "1",
		"4", "maintain",
		"1",
		"5",
		"6",
		"3",
	)
	shell, out := newTestShell(t, scriptLines(lines...), planner)

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("run shell: %v", err)
	}

	assertOutputContains(t, out.String(),
		"Login successful.",
		"Hi john",
		"No health record found.",
		"Your information updated successfully.",
		"You have not entered your workout status yet.",
		"Workout status updated successfully.",
		"Your estimated daily calorie intake to maintain weight is 2594 kcal.",
		"Email: john@example.com",
		"Age: 25",
		"daily goal of 2594 kcal",
		"  Breakfast: Beef and Mustard Pie (Category: Beef)",
		"    Image: https://example.com/pie.jpg",
		"  Lunch: no meal found",
		"Logging out ...",
	)
	if planner.username != "john" {
		t.Fatalf("expected meal plan for john, got %q", planner.username)
	}
}

func TestShellShowsStoredRecordsBeforeUpdating(t *testing.T) {
	lines := registerJohnScript()
	lines = append(lines,
		"2", "john", "password123",
		"2", "70", "175",
		"2", "maybe", "y", "heavy", "175",
		"2", "n",
		"6",
		"3",
	)
	shell, out := newTestShell(t, scriptLines(lines...), nil)

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("run shell: %v", err)
	}

	assertOutputContains(t, out.String(),
		"Weight in kg: 70",
		"Height in meters: 1.75",
		"BMI: 22.86 (Normal weight)",
		"Invalid input. Please enter 'y' for yes or 'n' for no.",
		"Please enter numeric values for weight and height.",
	)
}

func TestShellRejectsInvalidLoginAndMenuChoices(t *testing.T) {
	lines := registerJohnScript()
	lines = append(lines,
		"9",
		"2", "john", "wrongpass1",
		"2", "ghost", "password123",
	)
	shell, out := newTestShell(t, scriptLines(lines...), nil)

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("run shell: %v", err)
	}

	output := out.String()
	assertOutputContains(t, output, "Invalid choice. Please try again.")
	if strings.Count(output, "Invalid username or password.") != 2 {
		t.Fatalf("expected two identical login failures, got:\n%s", output)
	}
	if strings.Contains(output, "Hi john") {
		t.Fatalf("expected no session after failed login, got:\n%s", output)
	}
}

func TestShellReportsGoalPreconditions(t *testing.T) {
	lines := registerJohnScript()
	lines = append(lines,
		"2", "john", "password123",
		"4", "maintain",
		"2", "70", "175",
		"4", "bulk",
		"5",
		"6",
		"3",
	)
	shell, out := newTestShell(t, scriptLines(lines...), nil)

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("run shell: %v", err)
	}

	assertOutputContains(t, out.String(),
		"You have not set your personal goals yet.",
		"Missing user or health information.",
		"Invalid goal. Choose from 'maintain', 'lose', or 'gain'.",
		"No calorie goal found for this user. Please set up your goal first.",
	)
}

func TestShellRejectsDuplicateRegistration(t *testing.T) {
	lines := registerJohnScript()
	lines = append(lines, registerJohnScript()...)
	lines = append(lines, "3")
	shell, out := newTestShell(t, scriptLines(lines...), nil)

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("run shell: %v", err)
	}

	assertOutputContains(t, out.String(), "Username already exists.")
}

func TestShellStopsAtEndOfInput(t *testing.T) {
	shell, out := newTestShell(t, "2\njohn\n", nil)

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit at end of input, got %v", err)
	}
	if strings.Contains(out.String(), "Thank you!") {
		t.Fatalf("expected no exit message at end of input, got:\n%s", out.String())
	}
}

func TestShellHonorsCancelledContext(t *testing.T) {
	shell, _ := newTestShell(t, "3\n", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := shell.Run(ctx); err == nil {
		t.Fatal("expected cancelled context error")
	}
}

func TestShellFallsBackToLineInputWhenSecretInputIsNotATerminal(t *testing.T) {
	notTerminal, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	t.Cleanup(func() {
		_ = notTerminal.Close()
	})

	lines := registerJohnScript()
	lines = append(lines, "2", "john", "password123", "6", "3")
	shell, out := newTestShell(t, scriptLines(lines...), nil)
	shell.secretInput = notTerminal

	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("run shell: %v", err)
	}
	if shell.secretInput != nil {
		t.Fatal("expected secret input to be dropped after the terminal check failed")
	}
	assertOutputContains(t, out.String(), "User registered successfully.", "Login successful.")
}
