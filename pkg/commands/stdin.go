package commands

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/xfiles/pkg/ui"
)

// ReadPiped reads r fully when it carries piped input. Terminals and other
// character devices such as /dev/null are not piped and are never read. Lines are split on newlines with trailing carriage returns and blank
// lines dropped.
func ReadPiped(r io.Reader) ([]string, bool, error) {
	if r == nil {
		return nil, false, nil
	}
	if f, ok := r.(*os.File); ok && !isPipedFile(f) {
		return nil, false, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, false, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, true, nil
}

// Stdin returns a StdinFunc reading r at most once
func Stdin(r io.Reader) StdinFunc {
	var (
		done  bool
		lines []string
		piped bool
		err   error
	)
	return func() ([]string, bool, error) {
		if !done {
			lines, piped, err = ReadPiped(r)
			done = true
		}
		return lines, piped, err
	}
}

func isPipedFile(f *os.File) bool {
	if ui.IsTerminal(f) {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
