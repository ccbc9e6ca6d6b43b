package models

import "time"

const (
	GoalMaintain = "maintain"
	GoalLose     = "lose"
	GoalGain     = "gain"
)

type Goal struct {
	ID            uint      `gorm:"primaryKey"`
	Username      string    `gorm:"not null;uniqueIndex"`
	Goal          string    `gorm:"not null"`
	BMR           float64   `gorm:"column:bmr;not null"`
	CalorieIntake int       `gorm:"not null"`
	LastUpdated   time.Time `gorm:"not null"`
}

func (Goal) TableName() string {
	return "user_goals"
}

func (goal *Goal) KeyUsername() string { return goal.Username }
func (goal *Goal) RecordID() uint      { return goal.ID }
func (goal *Goal) AssignID(id uint)    { goal.ID = id }
