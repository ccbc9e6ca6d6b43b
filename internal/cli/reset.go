package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/healthtracker/internal/security"
	"github.com/terraincognita07/healthtracker/internal/services"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

type PasswordSetter interface {
	SetPassword(username string, password string) error
}

// RunResetPasswordCommand replaces the password of username with a generated one and prints it.
func RunResetPasswordCommand(credentials PasswordSetter, username string, out io.Writer) error {
	normalizedUsername := services.NormalizeUsername(username)
	if normalizedUsername == "" {
		return errors.New("username is required")
	}

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	if err := credentials.SetPassword(normalizedUsername, temporaryPassword); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedUsername)
		}
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "Log in with it and keep it private.")
	return nil
}
