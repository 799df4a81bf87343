package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how diagnostics on stderr are rendered. It never affects
// the selection printed on stdout, which is always one plain path per line.
type Format int

const (
	// FormatAuto styles diagnostics only when stderr is a color terminal
	FormatAuto Format = iota
	// FormatTerminal always styles diagnostics
	FormatTerminal
	// FormatText never styles diagnostics
	FormatText
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
}

// formatAliases maps accepted output.format values to formats
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat reads an output.format config value, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, fmt.Errorf("unknown format %q (want auto, term or text)", s)
}

// DetectFormat resolves FormatAuto for the given diagnostics stream
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" || !IsTerminal(output) {
		return FormatText
	}
	return formatForProfile(termenv.NewOutput(output).ColorProfile())
}

// formatForProfile styles only terminals that can show at least ANSI colors
func formatForProfile(profile termenv.Profile) Format {
	if profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// IsTerminal reports whether f is attached to a terminal, including Cygwin/MSYS ptys
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
