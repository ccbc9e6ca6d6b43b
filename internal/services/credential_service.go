package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/healthtracker/internal/db"
	"github.com/terraincognita07/healthtracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type CredentialUserRepository interface {
	FindByUsername(username string) (models.User, bool, error)
	Create(user *models.User) error
	UpdatePasswordHash(username string, passwordHash string) error
}

type Profile struct {
	Username    string
	Email       string
	FirstName   string
	LastName    string
	YearOfBirth int
	Gender      string
	Age         int
	CreatedAt   time.Time
}

type CredentialService struct {
	users    CredentialUserRepository
	hashCost int
	logger   zerolog.Logger
}

func NewCredentialService(users CredentialUserRepository, hashCost int, logger zerolog.Logger) *CredentialService {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	return &CredentialService{
		users:    users,
		hashCost: hashCost,
		logger:   logger.With().Str("component", "credentials").Logger(),
	}
}

func (service *CredentialService) Register(input RegistrationInput, now time.Time) Result {
	normalized, err := NormalizeRegistrationInput(input)
	if err != nil {
		return failed(err)
	}

	passwordHash, err := service.hashPassword(normalized.Password)
	if err != nil {
		return failed(err)
	}

	user := models.User{
		Username:     normalized.Username,
		Email:        normalized.Email,
		PasswordHash: passwordHash,
		FirstName:    normalized.FirstName,
		LastName:     normalized.LastName,
		YearOfBirth:  normalized.YearOfBirth,
		Gender:       normalized.Gender,
		CreatedAt:    now.UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		switch {
		case errors.Is(err, db.ErrDuplicateUsername):
			return failed(ErrUsernameExists)
		case errors.Is(err, db.ErrDuplicateEmail):
			return failed(ErrEmailExists)
		}
		service.logger.Error().Err(err).Str("username", normalized.Username).Str("operation", "register").Msg("create user failed")
		return storageFailed("Failed to register user", err)
	}

	service.logger.Debug().Str("username", user.Username).Msg("user registered")
	return succeeded("User registered successfully.")
}

// Authenticate never tells the caller whether the username or the password was wrong.
func (service *CredentialService) Authenticate(username string, password string) Result {
	user, found, err := service.users.FindByUsername(NormalizeUsername(username))
	if err != nil {
		service.logger.Error().Err(err).Str("username", username).Str("operation", "authenticate").Msg("load user failed")
		return storageFailed("Login failed", err)
	}
	if !found {
		return failed(ErrInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return failed(ErrInvalidCredentials)
	}
	return succeeded("Login successful.")
}

func (service *CredentialService) GetProfile(username string, now time.Time) (Profile, bool, error) {
	user, found, err := service.users.FindByUsername(NormalizeUsername(username))
	if err != nil || !found {
		return Profile{}, false, err
	}

	return Profile{
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		YearOfBirth: user.YearOfBirth,
		Gender:      user.Gender,
		Age:         user.Age(now.Year()),
		CreatedAt:   user.CreatedAt,
	}, true, nil
}

// SetPassword replaces the stored digest without checking the previous password.
func (service *CredentialService) SetPassword(username string, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	passwordHash, err := service.hashPassword(password)
	if err != nil {
		return err
	}
	if err := service.users.UpdatePasswordHash(NormalizeUsername(username), passwordHash); err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	return nil
}

func (service *CredentialService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
