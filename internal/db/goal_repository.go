package db

import (
	"github.com/terraincognita07/healthtracker/internal/models"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) FindByUsername(username string) (models.Goal, bool, error) {
	return findByUsername[models.Goal](repo.database, username)
}

func (repo *GoalRepository) Upsert(goal *models.Goal) (bool, error) {
	return UpsertByUsername(repo.database, goal, "goal", "bmr", "calorie_intake", "last_updated")
}

func (repo *GoalRepository) CalorieIntake(username string) (int, bool, error) {
	goal, found, err := findByUsername[models.Goal](repo.database, username, "calorie_intake")
	if err != nil || !found {
		return 0, found, err
	}
	return goal.CalorieIntake, true, nil
}
