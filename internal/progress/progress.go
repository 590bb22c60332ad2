// Package progress provides terminal feedback while a document is being
// analyzed by the remote service. Analysis is a single long call, so the
// terminal reporter shows a spinner rather than a counted bar.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides feedback during a long-running remote call.
type Reporter interface {
	Start(description string)
	Finish()
}

// NewReporter returns a TerminalReporter, or a CIReporter if the CI
// environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a spinner in the terminal.
type TerminalReporter struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

func (r *TerminalReporter) Start(description string) {
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	r.done = make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-r.done:
				return
			case <-ticker.C:
				_ = r.bar.Add(1)
			}
		}
	}()
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		close(r.done)
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct{}

func (r *CIReporter) Start(description string) {
	fmt.Fprintf(os.Stderr, "%s...\n", description)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(os.Stderr, "Done")
}
