// Package ui renders user-facing messages for xfiles.
//
// The selection itself is always written as plain lines. Only diagnostics
// (errors on stderr) are styled, and only when the destination is a color
// terminal or styling was requested explicitly.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/xfiles/pkg/ui/styles"
)

// Reporter writes diagnostics in the configured format
type Reporter struct {
	out    io.Writer
	styled bool
}

// NewReporter creates a reporter for output.
// FormatAuto styles only when output is a color-capable terminal.
func NewReporter(format Format, output io.Writer) *Reporter {
	if format == FormatAuto {
		format = FormatText
		if file, ok := output.(*os.File); ok {
			format = DetectFormat(file)
		}
	}
	return &Reporter{out: output, styled: format == FormatTerminal}
}

// Error writes err as an "Error: ..." line
func (r *Reporter) Error(err error) {
	r.line("Error", fmt.Sprintf("Error: %v", err))
}

// Warning writes msg as a "Warning: ..." line
func (r *Reporter) Warning(msg string) {
	r.line("Warning", "Warning: "+msg)
}

func (r *Reporter) line(style, text string) {
	if r.styled {
		text = styles.GetStyle(style).Render(text)
	}
	_, _ = fmt.Fprintln(r.out, text)
}
