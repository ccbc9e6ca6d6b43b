package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/healthtracker/internal/models"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 8
	MinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes
	MaxPasswordBytes = 72
	MinBirthYear     = 1945
	MaxBirthYear     = 2012
)

var registrationEmailRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

type RegistrationInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	YearOfBirth int
	Gender      string
}

func NormalizeUsername(raw string) string {
	return strings.TrimSpace(raw)
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ValidateUsername(username string) error {
	length := utf8.RuneCountInString(username)
	if length < MinUsernameLength || length > MaxUsernameLength {
		return ErrUsernameLength
	}
	return nil
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func ValidateEmail(email string) error {
	if !registrationEmailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidateBirthYear(year int) error {
	if year < MinBirthYear || year > MaxBirthYear {
		return ErrBirthYearOutOfRange
	}
	return nil
}

// NormalizeGender lower-cases gender and rejects anything outside the closed set.
func NormalizeGender(raw string) (string, error) {
	gender := strings.ToLower(strings.TrimSpace(raw))
	switch gender {
	case models.GenderMale, models.GenderFemale:
		return gender, nil
	default:
		return "", ErrInvalidGender
	}
}

// NormalizeRegistrationInput validates fields in a fixed order and stops at the first failure.
func NormalizeRegistrationInput(input RegistrationInput) (RegistrationInput, error) {
	input.Username = NormalizeUsername(input.Username)
	input.Email = NormalizeEmail(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)

	if err := ValidateUsername(input.Username); err != nil {
		return input, err
	}
	if err := ValidatePassword(input.Password); err != nil {
		return input, err
	}
	if err := ValidateEmail(input.Email); err != nil {
		return input, err
	}
	if err := ValidateBirthYear(input.YearOfBirth); err != nil {
		return input, err
	}

	gender, err := NormalizeGender(input.Gender)
	if err != nil {
		return input, err
	}
	input.Gender = gender
	return input, nil
}
