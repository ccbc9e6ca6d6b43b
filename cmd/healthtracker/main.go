package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/healthtracker/internal/cli"
	"github.com/terraincognita07/healthtracker/internal/config"
	"github.com/terraincognita07/healthtracker/internal/db"
	"github.com/terraincognita07/healthtracker/internal/logging"
	"github.com/terraincognita07/healthtracker/internal/mealdb"
	"github.com/terraincognita07/healthtracker/internal/services"
)

const usage = "usage: healthtracker [reset-password <username>]"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	if len(args) > 0 && args[0] != "reset-password" {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	if len(args) > 0 && len(args) != 2 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return 1
	}

	repos, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error().Err(err).Str("db_path", cfg.DatabasePath).Msg("database init failed")
		return 1
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("close database failed")
		}
	}()

	app := newApplication(cfg, repos, logger)

	if len(args) == 2 {
		if err := cli.RunResetPasswordCommand(app.credentials, args[1], stdout); err != nil {
			logger.Error().Err(err).Msg("reset password failed")
			fmt.Fprintf(stderr, "reset-password: %v\n", err)
			return 1
		}
		return 0
	}

	shellConfig := cli.ShellConfig{
		In:       stdin,
		Out:      stdout,
		Accounts: app.credentials,
		Health:   app.health,
		Workouts: app.workouts,
		Goals:    app.goals,
		Meals:    app.meals,
		Logger:   logger,
	}
	if file, ok := stdin.(*os.File); ok {
		shellConfig.SecretInput = file
	}

	logger.Debug().Str("db_path", cfg.DatabasePath).Msg("starting shell")
	if err := cli.NewShell(shellConfig).Run(ctx); err != nil {
		logger.Error().Err(err).Msg("shell stopped")
		return 1
	}
	return 0
}

type application struct {
	credentials *services.CredentialService
	health      *services.HealthRecordService
	workouts    *services.WorkoutService
	goals       *services.GoalService
	meals       *services.MealPlanService
}

func newApplication(cfg *config.Config, repos *db.Repositories, logger zerolog.Logger) application {
	credentials := services.NewCredentialService(repos.Users, cfg.BcryptCost, logger)
	health := services.NewHealthRecordService(repos.HealthRecords, logger)
	workouts := services.NewWorkoutService(repos.Workouts, logger)
	goals := services.NewGoalService(repos.Goals, credentials, health, workouts, logger)

	transportConfig := mealdb.DefaultTransportConfig()
	transportConfig.Timeout = cfg.MealDB.Timeout
	transportConfig.MaxRetries = cfg.MealDB.MaxRetries
	catalog := mealdb.NewClient(mealdb.ClientConfig{
		BaseURL:   cfg.MealDB.BaseURL,
		Transport: mealdb.NewTransport(transportConfig),
		Logger:    logger,
	})

	return application{
		credentials: credentials,
		health:      health,
		workouts:    workouts,
		goals:       goals,
		meals:       services.NewMealPlanService(goals, catalog, nil, cfg.MealDB.MaxAttempts, logger),
	}
}
