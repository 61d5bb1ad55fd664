// Where: internal/app/interaction.go
// What: TTY detection and the destructive-run confirmation prompt.
// Why: Require an explicit yes before versions are deleted.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// isTerminal reports whether file is an interactive terminal. Package var so
// tests can force either mode.
var isTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	fd := file.Fd()
	return fd == 0 || fd == 1 || fd == 2
}

// promptYesNo asks on stderr and reads one line from stdin. Anything but an
// explicit yes declines. Package var so tests can script answers.
var promptYesNo = func(question string) (bool, error) {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
