package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FirstName    string
	LastName     string
	YearOfBirth  int
	Gender       string
	CreatedAt    time.Time `gorm:"not null"`
}

// Age is the difference between the given year and the year of birth.
func (user User) Age(currentYear int) int {
	if user.YearOfBirth == 0 {
		return 0
	}
	return currentYear - user.YearOfBirth
}
