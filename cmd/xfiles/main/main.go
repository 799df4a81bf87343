package main

import (
	"os"

	"github.com/arthur-debert/xfiles/cmd/xfiles"
	"github.com/arthur-debert/xfiles/pkg/config"
	"github.com/arthur-debert/xfiles/pkg/ui"
)

func main() {
	rootCmd := xfiles.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		format := ui.FormatAuto
		if cfg, cfgErr := config.Load(); cfgErr == nil {
			format = cfg.OutputFormat()
		}
		ui.NewReporter(format, os.Stderr).Error(err)
		os.Exit(1)
	}
}
