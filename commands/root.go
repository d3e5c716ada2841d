package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soni801/go-tatata/internal/core/script"
	"github.com/soni801/go-tatata/internal/core/timeline"
	"github.com/soni801/go-tatata/internal/injection"
	"github.com/soni801/go-tatata/internal/presentation/formatter"
	"github.com/soni801/go-tatata/internal/runtime"
	"github.com/soni801/go-tatata/internal/util"
)

var (
	// Execution related
	dryRun bool
	tickMs int64

	// Logging related
	verbose bool
	debug   bool
	logFile string

	rootCmd = &cobra.Command{
		Use:   "go-tatata <file.tatata>",
		Short: "Timestamp-driven keyboard and mouse automation",
		Long: `go-tatata compiles and executes TATATA scripts: each line names a point
in time and the input actions to perform at that point.

The whole script is validated before any input is injected; a script with
any error never touches the keyboard or mouse.

Examples:
  go-tatata demo.tatata                 # Compile and execute
  go-tatata --dry-run demo.tatata       # Print the dispatch sequence instead
  go-tatata --verbose demo.tatata       # Execute and log every action
  go-tatata check demo.tatata           # Compile only, list problems
  go-tatata check --watch demo.tatata   # Re-check on every save`,
		Args:         cobra.ExactArgs(1),
		RunE:         runScript,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false,
		"Print actions on the timeline instead of injecting them")
	rootCmd.Flags().Int64Var(&tickMs, "tick", runtime.DefaultTickMs,
		"Interpolation tick interval in milliseconds")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log every dispatched action")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Also write logs to this file")
}

func runScript(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	file := args[0]
	source, err := loadScript(file)
	if err != nil {
		return err
	}

	program, diags := script.Compile(source, script.HostCapabilities())
	if len(diags) > 0 {
		if err := formatter.NewDiagnosticsFormatter().Format(os.Stderr, file, diags); err != nil {
			return err
		}
	}
	if program == nil {
		return fmt.Errorf("%s has %d compile %s", file,
			len(diags.Errors()), util.Pluralize("error", len(diags.Errors())))
	}

	tl := timeline.Build(program)
	util.LogDebugf("Compiled %s: %d events over %s", file, tl.Len(), util.FormatMillis(tl.DurationMs()))

	var backend runtime.Backend = injection.NewBackend()
	if dryRun {
		backend = injection.NewDryRun()
	}

	run := runtime.Start(tl, backend, runtime.Options{
		TickMs: tickMs,
		Trace:  verbose || dryRun,
	})

	// Ctrl-C cancels the run; held keys and buttons are released before exit
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)
	go func() {
		if _, ok := <-interrupt; ok {
			util.LogWarn("Interrupt received, cancelling run")
			run.Cancel()
		}
	}()

	outcome := run.Wait()
	switch outcome.State {
	case runtime.StateCompleted:
		util.LogInfof("Script completed: %d actions dispatched", tl.Len())
		return nil
	case runtime.StateCancelled:
		util.LogInfo("Script cancelled, held inputs released")
		return nil
	default:
		return fmt.Errorf("script failed: %w", outcome.Err)
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func initLogging() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	return util.InitLogger(logLevel, logFile)
}

// loadScript reads a script file, rejecting non-TATATA filenames up
// front (https://github.com/soni801/tatata/issues/1)
func loadScript(file string) (string, error) {
	if !strings.HasSuffix(file, ".tatata") {
		return "", fmt.Errorf("not a TATATA file: %s", file)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("couldn't open script file: %w", err)
	}
	return string(data), nil
}
