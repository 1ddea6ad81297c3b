package cli

import (
	"io"
	"sync"
	"testing"

	"github.com/briandowns/spinner"

	"github.com/agbru/hexcalc/internal/orchestration"
)

// fakeSpinner records spinner interactions without touching the terminal.
type fakeSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (f *fakeSpinner) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
}

func (f *fakeSpinner) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSpinner) UpdateSuffix(suffix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suffixes = append(f.suffixes, suffix)
}

func TestDisplayProgress(t *testing.T) {
	fake := &fakeSpinner{}
	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return fake }
	defer func() { newSpinner = orig }()

	progressChan := make(chan orchestration.ProgressUpdate, 3)
	progressChan <- orchestration.ProgressUpdate{Processed: 10}
	progressChan <- orchestration.ProgressUpdate{Processed: 20}
	close(progressChan)

	var wg sync.WaitGroup
	wg.Add(1)
	DisplayProgress(&wg, progressChan, io.Discard)
	wg.Wait()

	if !fake.started || !fake.stopped {
		t.Errorf("spinner lifecycle incomplete: started=%v stopped=%v", fake.started, fake.stopped)
	}
	// Initial suffix plus one per update.
	if len(fake.suffixes) != 3 {
		t.Fatalf("suffix updates = %d, want 3", len(fake.suffixes))
	}
	if fake.suffixes[2] != " converted 20 values" {
		t.Errorf("final suffix = %q", fake.suffixes[2])
	}
}

func TestCLIProgressReporter_ImplementsInterface(t *testing.T) {
	var _ orchestration.ProgressReporter = CLIProgressReporter{}
}
