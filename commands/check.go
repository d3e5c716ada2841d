package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soni801/go-tatata/internal/core/script"
	"github.com/soni801/go-tatata/internal/core/timeline"
	"github.com/soni801/go-tatata/internal/presentation/formatter"
	"github.com/soni801/go-tatata/internal/util"
	"github.com/soni801/go-tatata/internal/watcher"
)

var (
	// Output related flags
	checkOutput  string
	dumpTimeline bool

	// Watch mode
	watchMode bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file.tatata>",
	Short: "Compile a script without executing it",
	Long: `Compiles the script and lists every problem with its line number.
Nothing is ever injected; check is safe to run anywhere.

With --dump-timeline the fully resolved timeline is printed so the exact
dispatch order can be inspected before a real run.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "text",
		"Output format (text, json)")
	checkCmd.Flags().BoolVar(&dumpTimeline, "dump-timeline", false,
		"Print the compiled timeline")
	checkCmd.Flags().BoolVarP(&watchMode, "watch", "w", false,
		"Stay resident and re-check on every save")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}
	if checkOutput != "text" && checkOutput != "json" {
		return fmt.Errorf("unknown output format %q", checkOutput)
	}

	file := args[0]
	if !watchMode {
		return checkOnce(file)
	}

	fw, err := watcher.NewFileWatcher(file)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", file, err)
	}
	defer fw.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	// First pass immediately, then once per save. Compile problems keep
	// the watch alive; only watch failures end it.
	if err := checkOnce(file); err != nil {
		util.LogDebugf("check: %v", err)
	}
	for {
		select {
		case _, ok := <-fw.Events():
			if !ok {
				return nil
			}
			util.LogInfof("%s changed, re-checking", file)
			if err := checkOnce(file); err != nil {
				util.LogDebugf("check: %v", err)
			}
		case <-interrupt:
			return nil
		}
	}
}

func checkOnce(file string) error {
	source, err := loadScript(file)
	if err != nil {
		return err
	}

	program, diags := script.Compile(source, script.HostCapabilities())

	var tl *timeline.Timeline
	if program != nil {
		tl = timeline.Build(program)
	}

	if checkOutput == "json" {
		var dumped *timeline.Timeline
		if dumpTimeline {
			dumped = tl
		}
		if err := formatter.NewJSONFormatter().Format(os.Stdout, file, diags, dumped); err != nil {
			return err
		}
	} else {
		if err := formatter.NewDiagnosticsFormatter().Format(os.Stdout, file, diags); err != nil {
			return err
		}
		if dumpTimeline && tl != nil {
			if err := formatter.NewTimelineFormatter().Format(os.Stdout, tl); err != nil {
				return err
			}
		}
	}

	if program == nil {
		return fmt.Errorf("%s has %d compile %s", file,
			len(diags.Errors()), util.Pluralize("error", len(diags.Errors())))
	}
	return nil
}
