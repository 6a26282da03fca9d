// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Arsolitt/yeth/internal/app"
	"github.com/Arsolitt/yeth/internal/fsutil"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Defaults for logging and worker count may be seeded from the environment
// (YETH_LOG_LEVEL, YETH_LOG_FORMAT, YETH_WORKERS), including a .env file in
// the working directory.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	_ = godotenv.Load()

	flagSet := flag.NewFlagSet("yeth", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
yeth - content-derived hashes for applications in a monorepo.

Usage:
  yeth [options] [ROOT]

Arguments:
  ROOT
    Root directory to scan for application manifests. Defaults to ".".

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", "", "Root directory to scan for application manifests.")
	appFlag := flagSet.String("app", "", "Name of a single application to output the hash for.")
	hashOnlyFlag := flagSet.Bool("hash-only", false, "Print only the hash, without the application name (requires -app).")
	graphFlag := flagSet.Bool("graph", false, "Render the dependency graph instead of hashing.")
	writeFlag := flagSet.Bool("write-versions", false, "Write each application's hash to "+fsutil.VersionFile+" next to its manifest.")
	shortFlag := flagSet.Bool("short", false, "Print truncated hashes.")
	shortLenFlag := flagSet.Int("short-length", 10, "Truncated hash length used with -short.")
	verboseFlag := flagSet.Bool("verbose", false, "Print timing statistics after the results.")
	logFormatFlag := flagSet.String("log-format", envDefault("YETH_LOG_FORMAT", "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envDefault("YETH_LOG_LEVEL", "warn"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", envDefaultInt("YETH_WORKERS", 1), "Number of concurrent workers for hashing. 1 selects sequential mode.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	root := "."
	if *rootFlag != "" {
		root = *rootFlag
	} else if flagSet.NArg() > 0 {
		root = flagSet.Arg(0)
	}
	slog.Debug("Root path determined.", "root", root)

	if *hashOnlyFlag && *appFlag == "" {
		return nil, false, &ExitError{Code: 2, Message: "-hash-only requires -app"}
	}

	cfg, err := app.NewConfig(app.Config{
		Root:            root,
		AppName:         *appFlag,
		HashOnly:        *hashOnlyFlag,
		ShowGraph:       *graphFlag,
		WriteVersions:   *writeFlag,
		ShortHash:       *shortFlag,
		ShortHashLength: *shortLenFlag,
		Verbose:         *verboseFlag,
		LogFormat:       strings.ToLower(*logFormatFlag),
		LogLevel:        strings.ToLower(*logLevelFlag),
		WorkerCount:     *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}

// envDefault returns the environment value for key, or fallback when unset.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDefaultInt is envDefault for integer-valued variables; unparsable
// values fall back silently.
func envDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
