package xfiles

import (
	"fmt"

	"github.com/arthur-debert/xfiles/internal/version"
	"github.com/arthur-debert/xfiles/pkg/commands"
	"github.com/arthur-debert/xfiles/pkg/config"
	"github.com/arthur-debert/xfiles/pkg/filesystem"
	"github.com/arthur-debert/xfiles/pkg/logging"
	"github.com/arthur-debert/xfiles/pkg/paths"
	"github.com/arthur-debert/xfiles/pkg/selection"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command.
// Flag parsing is disabled: -, --, + and ++ are commands and every other
// argument, flag-like or not, is a path.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                MsgRootUse,
		Short:              MsgRootShort,
		Long:               MsgRootLong,
		Example:            MsgRootExample,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableAutoGenTag:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: runRoot,
	}

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	logging.SetupLogger(logging.Options{
		Verbosity:  cfg.Log.Verbosity,
		LogFile:    cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
	})
	log.Debug().Str("command", cmd.Name()).Str("version", version.String()).Msg("Command started")
	logging.LogCommand(cmd.Name(), args)

	normalizer, err := paths.NewSystemNormalizer()
	if err != nil {
		return fmt.Errorf(MsgErrWorkDir, err)
	}

	fsys := filesystem.NewOS()
	store := selection.New(fsys, paths.StorePath(fsys, cfg.Location()), normalizer)

	inv, err := commands.Parse(args, commands.Stdin(cmd.InOrStdin()))
	if err != nil {
		return err
	}

	return commands.Run(store, inv, cmd.OutOrStdout())
}
