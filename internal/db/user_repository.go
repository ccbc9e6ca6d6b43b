package db

import (
	"errors"
	"strings"

	"github.com/terraincognita07/healthtracker/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrDuplicateEmail    = errors.New("duplicate email")
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByUsername(username string) (models.User, bool, error) {
	var user models.User
	result := repo.database.Where("username = ?", username).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

// Create inserts a new user. Unique violations come back as
// ErrDuplicateUsername or ErrDuplicateEmail.
func (repo *UserRepository) Create(user *models.User) error {
	return classifyUniqueViolation(repo.database.Create(user).Error)
}

func (repo *UserRepository) UpdatePasswordHash(username string, passwordHash string) error {
	result := repo.database.Model(&models.User{}).Where("username = ?", username).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func classifyUniqueViolation(err error) error {
	if err == nil {
		return nil
	}

	detail := strings.ToLower(err.Error())
	if !strings.Contains(detail, "unique constraint failed") {
		return err
	}
	switch {
	case strings.Contains(detail, "users.username"):
		return errors.Join(ErrDuplicateUsername, err)
	case strings.Contains(detail, "users.email"):
		return errors.Join(ErrDuplicateEmail, err)
	default:
		return err
	}
}
