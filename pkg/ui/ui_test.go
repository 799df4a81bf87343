package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arthur-debert/xfiles/pkg/ui"
	"github.com/stretchr/testify/assert"
)

func TestReporterError(t *testing.T) {
	t.Run("plain text for non-file writers", func(t *testing.T) {
		var buf bytes.Buffer
		ui.NewReporter(ui.FormatAuto, &buf).Error(errors.New("store unavailable"))

		assert.Equal(t, "Error: store unavailable\n", buf.String())
	})

	t.Run("explicit text format", func(t *testing.T) {
		var buf bytes.Buffer
		ui.NewReporter(ui.FormatText, &buf).Warning("fast directory missing")

		assert.Equal(t, "Warning: fast directory missing\n", buf.String())
	})

	t.Run("terminal format keeps the message", func(t *testing.T) {
		var buf bytes.Buffer
		ui.NewReporter(ui.FormatTerminal, &buf).Error(errors.New("boom"))

		assert.Contains(t, buf.String(), "Error: boom")
	})
}
