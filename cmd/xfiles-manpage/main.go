package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/xfiles/cmd/xfiles"
	"github.com/arthur-debert/xfiles/internal/version"
)

func main() {
	rootCmd := xfiles.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "XFILES",
		Section: "1",
		Source:  "xfiles " + version.Version,
		Manual:  "xfiles manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
