package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/terraincognita07/healthtracker/internal/security"
	"gorm.io/gorm"
)

type passwordSetterStub struct {
	username string
	password string
	err      error
}

func (stub *passwordSetterStub) SetPassword(username string, password string) error {
	stub.username = username
	stub.password = password
	return stub.err
}

func TestRunResetPasswordCommandPrintsTemporaryPassword(t *testing.T) {
	t.Parallel()

	stub := &passwordSetterStub{}
	var out bytes.Buffer
	if err := RunResetPasswordCommand(stub, "  john ", &out); err != nil {
		t.Fatalf("RunResetPasswordCommand returned error: %v", err)
	}
	if stub.username != "john" {
		t.Fatalf("expected normalized username john, got %q", stub.username)
	}
	if len(stub.password) != temporaryPasswordLength {
		t.Fatalf("temporary password len = %d, want %d", len(stub.password), temporaryPasswordLength)
	}
	for _, char := range stub.password {
		if !strings.ContainsRune(security.TemporaryPasswordAlphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", stub.password, char)
		}
	}
	if !strings.Contains(out.String(), "Temporary password: "+stub.password) {
		t.Fatalf("expected printed temporary password, got %q", out.String())
	}
}

func TestRunResetPasswordCommandRejectsEmptyUsername(t *testing.T) {
	t.Parallel()

	stub := &passwordSetterStub{}
	if err := RunResetPasswordCommand(stub, "   ", &bytes.Buffer{}); err == nil {
		t.Fatal("expected empty username to fail")
	}
	if stub.password != "" {
		t.Fatal("expected no password update for empty username")
	}
}

func TestRunResetPasswordCommandReportsUnknownUser(t *testing.T) {
	t.Parallel()

	stub := &passwordSetterStub{err: fmt.Errorf("update password hash: %w", gorm.ErrRecordNotFound)}
	var out bytes.Buffer
	err := RunResetPasswordCommand(stub, "ghost", &out)
	if err == nil || !strings.Contains(err.Error(), "user ghost not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", out.String())
	}
}

func TestRunResetPasswordCommandWrapsStorageError(t *testing.T) {
	t.Parallel()

	storageErr := errors.New("disk full")
	err := RunResetPasswordCommand(&passwordSetterStub{err: storageErr}, "john", &bytes.Buffer{})
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}
