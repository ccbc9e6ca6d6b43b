package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/terraincognita07/healthtracker/internal/services"
)

var (
	errFirstNameRequired = errors.New("first name required")
	errLastNameRequired  = errors.New("last name required")
	errBirthYearFormat   = errors.New("birth year not a number")
)

var promptMessages = map[error]string{
	errFirstNameRequired: "First name cannot be empty.",
	errLastNameRequired:  "Last name cannot be empty.",
	errBirthYearFormat:   "Invalid year. Please input a 4-digit year.",
}

func promptMessage(err error) string {
	if message, ok := promptMessages[err]; ok {
		return message
	}
	return services.MessageFor(err)
}

func (shell *Shell) signUp() error {
	shell.println("\nPlease enter your information")

	username, err := shell.readUntilValid("Username (3-8 characters): ", func(raw string) (string, error) {
		username := services.NormalizeUsername(raw)
		return username, services.ValidateUsername(username)
	})
	if err != nil {
		return err
	}

	email, err := shell.readUntilValid("Email: ", func(raw string) (string, error) {
		email := services.NormalizeEmail(raw)
		return email, services.ValidateEmail(email)
	})
	if err != nil {
		return err
	}

	var password string
	for {
		password, err = shell.readSecret("Password: ")
		if err != nil {
			return err
		}
		validationErr := services.ValidatePassword(password)
		if validationErr == nil {
			break
		}
		shell.println(promptMessage(validationErr))
	}

	firstName, err := shell.readUntilValid("First Name: ", requireText(errFirstNameRequired))
	if err != nil {
		return err
	}
	lastName, err := shell.readUntilValid("Last Name: ", requireText(errLastNameRequired))
	if err != nil {
		return err
	}

	yearText, err := shell.readUntilValid("Year of Birth: ", func(raw string) (string, error) {
		year, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			return "", errBirthYearFormat
		}
		return raw, services.ValidateBirthYear(year)
	})
	if err != nil {
		return err
	}
	yearOfBirth, _ := strconv.Atoi(yearText)

	gender, err := shell.readUntilValid("Gender (male or female): ", services.NormalizeGender)
	if err != nil {
		return err
	}

	result := shell.accounts.Register(services.RegistrationInput{
		Username:    username,
		Email:       email,
		Password:    password,
		FirstName:   firstName,
		LastName:    lastName,
		YearOfBirth: yearOfBirth,
		Gender:      gender,
	}, shell.now())
	shell.printResult(result)
	return nil
}

func (shell *Shell) logIn() (string, bool, error) {
	shell.println("\nLog in:")
	username, err := shell.readLine("Username: ")
	if err != nil {
		return "", false, err
	}
	password, err := shell.readSecret("Password: ")
	if err != nil {
		return "", false, err
	}

	result := shell.accounts.Authenticate(username, password)
	shell.printResult(result)
	return services.NormalizeUsername(username), result.Success, nil
}

func (shell *Shell) showProfile(username string) {
	profile, found, err := shell.accounts.GetProfile(username, shell.now())
	if err != nil {
		shell.logger.Error().Err(err).Str("username", username).Msg("load profile failed")
		shell.println("Failed to load your profile:", err)
		return
	}
	if !found {
		shell.println("Your profile was not found.")
		return
	}

	shell.println("\nYour profile:")
	shell.printf("Username: %s\n", profile.Username)
	shell.printf("Email: %s\n", profile.Email)
	shell.printf("First name: %s\n", profile.FirstName)
	shell.printf("Last name: %s\n", profile.LastName)
	shell.printf("Age: %d\n", profile.Age)
	shell.printf("Gender: %s\n", profile.Gender)
}

func requireText(missing error) func(string) (string, error) {
	return func(raw string) (string, error) {
		value := strings.TrimSpace(raw)
		if value == "" {
			return "", missing
		}
		return value, nil
	}
}
