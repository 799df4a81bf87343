package logging

import (
	"io"
	"os"
	"time"

	"github.com/arthur-debert/xfiles/pkg/paths"
	"github.com/arthur-debert/xfiles/pkg/ui"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger setup. The zero value logs warnings to stderr
// and to the default log file.
type Options struct {
	// Verbosity selects the level: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int

	// LogFile overrides the log file location
	LogFile string

	// MaxSizeMB is the size at which the log file is rotated
	MaxSizeMB int

	// MaxBackups is the number of rotated files to keep
	MaxBackups int

	// Console overrides the console destination (stderr by default)
	Console io.Writer
}

// SetupLogger configures the global logger based on verbosity level.
// It sets up dual output to both console and a rotating log file.
// Logs never go to stdout, which carries the selection.
func SetupLogger(opts Options) {
	switch {
	case opts.Verbosity <= 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case opts.Verbosity == 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case opts.Verbosity == 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	console := opts.Console
	noColor := true
	if console == nil {
		console = os.Stderr
		noColor = ui.DetectFormat(os.Stderr) != ui.FormatTerminal
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = paths.LogFilePath()
	}

	// lumberjack opens the file on first write, so quiet runs leave no trace
	fileWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    positiveOr(opts.MaxSizeMB, 1),
		MaxBackups: positiveOr(opts.MaxBackups, 1),
	}

	multi := io.MultiWriter(consoleWriter, fileWriter)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
