package services

import (
	"errors"
	"fmt"
)

// Result is the outcome of a write operation: a success flag and one line for the user.
type Result struct {
	Success bool
	Message string
	Err     error
}

func (result Result) Kind() ErrorKind {
	return KindOf(result.Err)
}

var resultMessages = []struct {
	err     error
	message string
}{
	{ErrUsernameLength, "Your username must be between 3 and 8 characters."},
	{ErrPasswordTooShort, "Your password must be at least 8 characters long."},
	{ErrPasswordTooLong, "Your password must be at most 72 bytes long."},
	{ErrInvalidEmail, "Invalid email address."},
	{ErrBirthYearOutOfRange, "Please enter a valid year of birth."},
	{ErrInvalidGender, "Gender must be male or female."},
	{ErrUsernameExists, "Username already exists."},
	{ErrEmailExists, "Email already exists."},
	{ErrInvalidCredentials, "Invalid username or password."},
	{ErrInvalidWeight, "Invalid weight value. It must be a positive number."},
	{ErrInvalidHeight, "Invalid height value. It must be a positive number."},
	{ErrInvalidWorkout, "Workout days must be 0-7 and duration must be a positive number."},
	{ErrMissingGoalInputs, "Missing user or health information."},
	{ErrIncompleteBMRData, "Incomplete data for BMR calculation."},
	{ErrInvalidGoal, "Invalid goal. Choose from 'maintain', 'lose', or 'gain'."},
	{ErrNoGoalSet, "No calorie goal found for this user. Please set up your goal first."},
}

// MessageFor returns the user-facing line for a known error, or err.Error().
func MessageFor(err error) string {
	for _, entry := range resultMessages {
		if errors.Is(err, entry.err) {
			return entry.message
		}
	}
	return err.Error()
}

func succeeded(message string) Result {
	return Result{Success: true, Message: message}
}

func failed(err error) Result {
	return Result{Message: MessageFor(err), Err: err}
}

// storageFailed reports an unexpected persistence error with its detail appended.
func storageFailed(operation string, cause error) Result {
	return Result{
		Message: fmt.Sprintf("%s: %v", operation, cause),
		Err:     errors.Join(ErrStorage, cause),
	}
}
