//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

import (
	"bufio"
	"errors"
	"os"
)

func readSecretLine(_ *os.File, _ *bufio.Reader) (string, error) {
	return "", errors.New("no-echo input unsupported on this platform")
}
