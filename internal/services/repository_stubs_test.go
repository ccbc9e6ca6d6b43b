package services

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/healthtracker/internal/db"
	"github.com/terraincognita07/healthtracker/internal/models"
	"gorm.io/gorm"
)

var testLogger = zerolog.Nop()

type userRepositoryStub struct {
	users     map[string]models.User
	findErr   error
	createErr error
	creates   int
}

func newUserRepositoryStub() *userRepositoryStub {
	return &userRepositoryStub{users: make(map[string]models.User)}
}

func (stub *userRepositoryStub) FindByUsername(username string) (models.User, bool, error) {
	if stub.findErr != nil {
		return models.User{}, false, stub.findErr
	}
	user, ok := stub.users[username]
	return user, ok, nil
}

func (stub *userRepositoryStub) Create(user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	if _, exists := stub.users[user.Username]; exists {
		return db.ErrDuplicateUsername
	}
	for _, existing := range stub.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return db.ErrDuplicateEmail
		}
	}
	stub.creates++
	user.ID = uint(len(stub.users) + 1)
	stub.users[user.Username] = *user
	return nil
}

func (stub *userRepositoryStub) UpdatePasswordHash(username string, passwordHash string) error {
	user, ok := stub.users[username]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.PasswordHash = passwordHash
	stub.users[username] = user
	return nil
}

// keyedStore is an in-memory username -> row map shared by the child-table stubs.
type keyedStore[T any] struct {
	rows      map[string]T
	findErr   error
	upsertErr error
	upserts   int
}

func newKeyedStore[T any]() *keyedStore[T] {
	return &keyedStore[T]{rows: make(map[string]T)}
}

func (store *keyedStore[T]) find(username string) (T, bool, error) {
	if store.findErr != nil {
		var zero T
		return zero, false, store.findErr
	}
	row, ok := store.rows[username]
	return row, ok, nil
}

func (store *keyedStore[T]) upsert(username string, row T) (bool, error) {
	if store.upsertErr != nil {
		return false, store.upsertErr
	}
	_, exists := store.rows[username]
	store.rows[username] = row
	store.upserts++
	return !exists, nil
}

type healthRecordRepositoryStub struct{ *keyedStore[models.HealthRecord] }

func newHealthRecordRepositoryStub() healthRecordRepositoryStub {
	return healthRecordRepositoryStub{newKeyedStore[models.HealthRecord]()}
}

func (stub healthRecordRepositoryStub) FindByUsername(username string) (models.HealthRecord, bool, error) {
	return stub.find(username)
}

func (stub healthRecordRepositoryStub) Upsert(record *models.HealthRecord) (bool, error) {
	return stub.upsert(record.Username, *record)
}

type workoutRepositoryStub struct{ *keyedStore[models.WorkoutStatus] }

func newWorkoutRepositoryStub() workoutRepositoryStub {
	return workoutRepositoryStub{newKeyedStore[models.WorkoutStatus]()}
}

func (stub workoutRepositoryStub) FindByUsername(username string) (models.WorkoutStatus, bool, error) {
	return stub.find(username)
}

func (stub workoutRepositoryStub) Upsert(status *models.WorkoutStatus) (bool, error) {
	return stub.upsert(status.Username, *status)
}

type goalRepositoryStub struct{ *keyedStore[models.Goal] }

func newGoalRepositoryStub() goalRepositoryStub {
	return goalRepositoryStub{newKeyedStore[models.Goal]()}
}

func (stub goalRepositoryStub) FindByUsername(username string) (models.Goal, bool, error) {
	return stub.find(username)
}

func (stub goalRepositoryStub) Upsert(goal *models.Goal) (bool, error) {
	return stub.upsert(goal.Username, *goal)
}

func (stub goalRepositoryStub) CalorieIntake(username string) (int, bool, error) {
	goal, found, err := stub.find(username)
	return goal.CalorieIntake, found, err
}
