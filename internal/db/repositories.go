package db

import "gorm.io/gorm"

// Repositories owns the single store handle and lends it to every table repository.
type Repositories struct {
	database      *gorm.DB
	Users         *UserRepository
	HealthRecords *HealthRecordRepository
	Workouts      *WorkoutStatusRepository
	Goals         *GoalRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		database:      database,
		Users:         NewUserRepository(database),
		HealthRecords: NewHealthRecordRepository(database),
		Workouts:      NewWorkoutStatusRepository(database),
		Goals:         NewGoalRepository(database),
	}
}

// Open opens the store at dbPath and returns repositories bound to it.
// Callers release the handle with Close.
func Open(dbPath string) (*Repositories, error) {
	database, err := OpenSQLite(dbPath)
	if err != nil {
		return nil, err
	}
	return NewRepositories(database), nil
}

func (repos *Repositories) Close() error {
	return closeSQLite(repos.database)
}
