package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jsparse/internal/driver"
	"jsparse/internal/pipeline"
	"jsparse/internal/ui"
)

type batchOutcome struct {
	results []driver.FileResult
	err     error
}

// runBatchWithUI runs a directory batch behind a Bubble Tea progress display.
// The batch itself runs in a goroutine and feeds events through a channel
// sink; the UI exits when the channel closes.
func runBatchWithUI(ctx context.Context, title string, files []string, run batchRun, opts driver.BatchOptions) ([]driver.FileResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		opts.Progress = pipeline.ChannelSink{Ch: events}
		res, err := run(ctx, opts)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
