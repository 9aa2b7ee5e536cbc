package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mica/internal/driver"
	"mica/internal/ui"
)

type checkOutcome struct {
	results []driver.CheckDirResult
	err     error
}

// runCheckDirWithUI runs the directory check in the background while a
// Bubble Tea model renders per-file progress. Closing the event channel
// tells the model to quit.
func runCheckDirWithUI(cmd *cobra.Command, dir string, opts driver.CheckDirOptions) ([]driver.CheckDirResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "no .mi files under %s\n", dir)
		return nil, nil
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		results, err := driver.CheckDir(cmd.Context(), dir, optsCopy)
		outcomeCh <- checkOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
