package services

import "errors"

type ErrorKind string

const (
	KindNone         ErrorKind = ""
	KindValidation   ErrorKind = "validation"
	KindConflict     ErrorKind = "conflict"
	KindCredentials  ErrorKind = "credentials"
	KindPrecondition ErrorKind = "precondition"
	KindStorage      ErrorKind = "storage"
)

var (
	ErrUsernameLength      = errors.New("username length out of range")
	ErrPasswordTooShort    = errors.New("password too short")
	ErrPasswordTooLong     = errors.New("password too long")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrBirthYearOutOfRange = errors.New("year of birth out of range")
	ErrInvalidGender       = errors.New("invalid gender")
	ErrInvalidWeight       = errors.New("invalid weight")
	ErrInvalidHeight       = errors.New("invalid height")
	ErrInvalidWorkout      = errors.New("invalid workout status")
	ErrInvalidGoal         = errors.New("invalid goal")

	ErrUsernameExists = errors.New("username exists")
	ErrEmailExists    = errors.New("email exists")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingGoalInputs = errors.New("missing user or health information")
	ErrIncompleteBMRData = errors.New("incomplete data for bmr calculation")
	ErrNoGoalSet         = errors.New("no goal set")

	ErrStorage = errors.New("storage failure")
)

var errorKinds = []struct {
	kind   ErrorKind
	errors []error
}{
	{kind: KindStorage, errors: []error{ErrStorage}},
	{kind: KindConflict, errors: []error{ErrUsernameExists, ErrEmailExists}},
	{kind: KindCredentials, errors: []error{ErrInvalidCredentials}},
	{kind: KindPrecondition, errors: []error{ErrMissingGoalInputs, ErrIncompleteBMRData, ErrNoGoalSet}},
	{kind: KindValidation, errors: []error{
		ErrUsernameLength,
		ErrPasswordTooShort,
		ErrPasswordTooLong,
		ErrInvalidEmail,
		ErrBirthYearOutOfRange,
		ErrInvalidGender,
		ErrInvalidWeight,
		ErrInvalidHeight,
		ErrInvalidWorkout,
		ErrInvalidGoal,
	}},
}

// KindOf classifies err. Errors outside the known set are storage failures.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, group := range errorKinds {
		for _, target := range group.errors {
			if errors.Is(err, target) {
				return group.kind
			}
		}
	}
	return KindStorage
}
