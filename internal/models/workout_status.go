package models

import "time"

type WorkoutStatus struct {
	ID                 uint      `gorm:"primaryKey"`
	Username           string    `gorm:"not null;uniqueIndex"`
	WorkoutDaysPerWeek int       `gorm:"not null"`
	DurationPerDay     float64   `gorm:"not null"`
	LastUpdated        time.Time `gorm:"not null"`
}

func (WorkoutStatus) TableName() string {
	return "workout_status"
}

func (status *WorkoutStatus) KeyUsername() string { return status.Username }
func (status *WorkoutStatus) RecordID() uint      { return status.ID }
func (status *WorkoutStatus) AssignID(id uint)    { status.ID = id }

// WeeklyMinutes is the total exercise volume per week.
func (status *WorkoutStatus) WeeklyMinutes() float64 {
	return float64(status.WorkoutDaysPerWeek) * status.DurationPerDay * 60
}
