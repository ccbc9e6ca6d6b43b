package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/healthtracker/internal/models"
	"github.com/terraincognita07/healthtracker/internal/services"
)

type AccountService interface {
	Register(input services.RegistrationInput, now time.Time) services.Result
	Authenticate(username string, password string) services.Result
	GetProfile(username string, now time.Time) (services.Profile, bool, error)
}

type HealthRecordManager interface {
	Get(username string) (models.HealthRecord, bool, error)
	Upsert(username string, weightKg float64, heightM float64, now time.Time) services.Result
}

type WorkoutManager interface {
	Get(username string) (models.WorkoutStatus, bool, error)
	Upsert(username string, daysPerWeek int, hoursPerSession float64, now time.Time) services.Result
}

type GoalManager interface {
	Get(username string) (models.Goal, bool, error)
	ComputeAndStore(username string, goalKind string, now time.Time) services.Result
}

type MealPlanner interface {
	GenerateWeeklyPlan(ctx context.Context, username string) (services.WeeklyMealPlan, error)
}

type ShellConfig struct {
	In       io.Reader
	Out      io.Writer
	Accounts AccountService
	Health   HealthRecordManager
	Workouts WorkoutManager
	Goals    GoalManager
	Meals    MealPlanner
	Logger   zerolog.Logger
	Now      func() time.Time

	// SecretInput, when it is a terminal, is read with echo disabled for passwords.
	SecretInput *os.File
}

// Shell is the interactive menu loop. It owns no state beyond the logged-in username.
type Shell struct {
	reader      *bufio.Reader
	out         io.Writer
	accounts    AccountService
	health      HealthRecordManager
	workouts    WorkoutManager
	goals       GoalManager
	meals       MealPlanner
	logger      zerolog.Logger
	now         func() time.Time
	secretInput *os.File
}

var errInputClosed = errors.New("input closed")

func NewShell(cfg ShellConfig) *Shell {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Shell{
		reader:      bufio.NewReader(cfg.In),
		out:         cfg.Out,
		accounts:    cfg.Accounts,
		health:      cfg.Health,
		workouts:    cfg.Workouts,
		goals:       cfg.Goals,
		meals:       cfg.Meals,
		logger:      cfg.Logger.With().Str("component", "shell").Logger(),
		now:         now,
		secretInput: cfg.SecretInput,
	}
}

// Run shows the home menu until the user exits or input ends.
func (shell *Shell) Run(ctx context.Context) error {
	err := shell.runHome(ctx)
	if errors.Is(err, errInputClosed) {
		shell.println()
		return nil
	}
	return err
}

func (shell *Shell) runHome(ctx context.Context) error {
	shell.println("Welcome to Health Tracker.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		shell.println("\nHome:")
		shell.println("1. Sign up")
		shell.println("2. Log in")
		shell.println("3. Exit")
		choice, err := shell.readLine("Please choose an option (1, 2, or 3): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := shell.signUp(); err != nil {
				return err
			}
		case "2":
			username, ok, err := shell.logIn()
			if err != nil {
				return err
			}
			if ok {
				if err := shell.runSession(ctx, username); err != nil {
					return err
				}
			}
		case "3":
			shell.println("Thank you!")
			return nil
		default:
			shell.println("Invalid choice. Please try again.")
		}
	}
}

func (shell *Shell) runSession(ctx context.Context, username string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		shell.printf("\nHi %s\n", username)
		shell.println("1. View your user account")
		shell.println("2. View your health record")
		shell.println("3. View your workout status")
		shell.println("4. Set up personal goals")
		shell.println("5. View your diet plan")
		shell.println("6. Logout")
		option, err := shell.readLine("Please choose an option (1-6): ")
		if err != nil {
			return err
		}

		switch option {
		case "1":
			shell.showProfile(username)
		case "2":
			err = shell.manageHealthRecord(username)
		case "3":
			err = shell.manageWorkout(username)
		case "4":
			err = shell.manageGoal(username)
		case "5":
			shell.showMealPlan(ctx, username)
		case "6":
			shell.println("Logging out ...")
			return nil
		default:
			shell.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (shell *Shell) readLine(prompt string) (string, error) {
	if prompt != "" {
		shell.printf("%s", prompt)
	}
	line, err := shell.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (shell *Shell) readSecret(prompt string) (string, error) {
	if shell.secretInput == nil {
		return shell.readLine(prompt)
	}

	shell.printf("%s", prompt)
	value, err := readSecretLine(shell.secretInput, shell.reader)
	if errors.Is(err, io.EOF) {
		return "", errInputClosed
	}
	if err != nil {
		// Not a terminal: fall back to plain line input for the rest of the session.
		shell.logger.Debug().Err(err).Msg("no-echo prompt unavailable")
		shell.secretInput = nil
		return shell.readLine("")
	}
	shell.println()
	return value, nil
}

// readUntilValid re-prompts until check accepts the answer.
func (shell *Shell) readUntilValid(prompt string, check func(string) (string, error)) (string, error) {
	for {
		raw, err := shell.readLine(prompt)
		if err != nil {
			return "", err
		}
		value, checkErr := check(raw)
		if checkErr == nil {
			return value, nil
		}
		shell.println(promptMessage(checkErr))
	}
}

// confirm asks a y/n question until it gets one of the two answers.
func (shell *Shell) confirm(prompt string) (bool, error) {
	for {
		answer, err := shell.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		shell.println("Invalid input. Please enter 'y' for yes or 'n' for no.")
	}
}

func (shell *Shell) readFloat(prompt string) (float64, bool, error) {
	raw, err := shell.readLine(prompt)
	if err != nil {
		return 0, false, err
	}
	value, parseErr := strconv.ParseFloat(raw, 64)
	if parseErr != nil {
		return 0, false, nil
	}
	return value, true, nil
}

func (shell *Shell) readInt(prompt string) (int, bool, error) {
	raw, err := shell.readLine(prompt)
	if err != nil {
		return 0, false, err
	}
	value, parseErr := strconv.Atoi(raw)
	if parseErr != nil {
		return 0, false, nil
	}
	return value, true, nil
}

func (shell *Shell) printResult(result services.Result) {
	shell.println(result.Message)
}

func (shell *Shell) println(values ...any) {
	fmt.Fprintln(shell.out, values...)
}

func (shell *Shell) printf(format string, values ...any) {
	fmt.Fprintf(shell.out, format, values...)
}
