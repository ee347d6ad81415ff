package watch

import (
	"context"
	"slices"
	"time"
)

// Event is a batch of changed files.
type Event struct {
	Paths []string
	Time  time.Time
}

// Debouncer batches rapid changes so an editor's save burst causes one
// re-render. A batch is flushed once the input has been quiet for the quiet
// period, or maxWait after its first change, whichever comes first.
type Debouncer struct {
	input       <-chan string
	output      chan Event
	quietPeriod time.Duration
	maxWait     time.Duration
}

// NewDebouncer creates a debouncer reading paths from input. A maxWait of
// zero disables the upper bound.
func NewDebouncer(input <-chan string, quietPeriod, maxWait time.Duration) *Debouncer {
	return &Debouncer{
		input:       input,
		output:      make(chan Event, 1),
		quietPeriod: quietPeriod,
		maxWait:     maxWait,
	}
}

// Start begins processing changes. The output channel is closed when ctx
// is done or the input is closed; a pending batch is flushed first in the
// latter case.
func (d *Debouncer) Start(ctx context.Context) {
	go d.run(ctx)
}

// Output returns the channel of debounced events.
func (d *Debouncer) Output() <-chan Event {
	return d.output
}

func (d *Debouncer) run(ctx context.Context) {
	defer close(d.output)

	var (
		pending  = make(map[string]struct{})
		quiet    <-chan time.Time
		deadline <-chan time.Time
	)

	flush := func() bool {
		quiet, deadline = nil, nil
		if len(pending) == 0 {
			return true
		}
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		slices.Sort(paths)
		clear(pending)

		select {
		case d.output <- Event{Paths: paths, Time: time.Now()}:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case path, ok := <-d.input:
			if !ok {
				flush()
				return
			}
			pending[path] = struct{}{}
			quiet = time.After(d.quietPeriod)
			if deadline == nil && d.maxWait > 0 {
				deadline = time.After(d.maxWait)
			}

		case <-quiet:
			if !flush() {
				return
			}

		case <-deadline:
			if !flush() {
				return
			}
		}
	}
}
