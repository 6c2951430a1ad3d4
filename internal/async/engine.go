package async

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/atomicstack/forge/internal/git"
	"github.com/atomicstack/forge/internal/logging/events"
)

// Kind identifies a remote operation.
type Kind int

const (
	KindFetch Kind = iota
	KindPush
	KindPull
)

func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindPush:
		return "push"
	case KindPull:
		return "pull"
	}
	return "unknown"
}

// Status is the terminal state of an operation.
type Status int

const (
	StatusSucceeded Status = iota
	StatusFailed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Snapshot is one progress report.
type Snapshot struct {
	Kind    Kind
	Phase   string
	Percent int
	Objects int
	Total   int
	Bytes   int64
}

// Outcome is the single terminal report of an operation. Objects and Bytes
// carry the final transfer totals when the remote reported any.
type Outcome struct {
	Kind     Kind
	Status   Status
	Class    git.ErrorClass
	Message  string
	Objects  int
	Bytes    int64
	Err      error
	Duration time.Duration
}

// Event carries either a progress snapshot or the terminal outcome. Exactly
// one outcome is delivered per operation, after which the channel closes.
type Event struct {
	Snapshot *Snapshot
	Outcome  *Outcome
}

// Runner executes a remote operation, reporting transport progress to sink.
type Runner func(ctx context.Context, kind Kind, sink git.ProgressSink) error

// ErrBusy is returned by Start while an operation is still running.
var ErrBusy = errors.New("operation already in progress")

const progressInterval = 80 * time.Millisecond

// Engine owns at most one running operation at a time.
type Engine struct {
	runner Runner

	mu      sync.Mutex
	current *Operation
}

// NewEngine builds an engine dispatching operations to runner.
func NewEngine(runner Runner) *Engine {
	return &Engine{runner: runner}
}

// Operation is one in-flight remote operation.
type Operation struct {
	kind    Kind
	events  chan Event
	cancel  context.CancelFunc
	flagged atomic.Bool
	started time.Time

	percentMu   sync.Mutex
	lastPercent int

	transferMu sync.Mutex
	transfer   git.Progress
}

// Kind returns the operation kind.
func (o *Operation) Kind() Kind {
	return o.kind
}

// Events returns the event stream. It is closed after the outcome.
func (o *Operation) Events() <-chan Event {
	return o.events
}

// Cancelled reports whether cancellation was requested.
func (o *Operation) Cancelled() bool {
	return o.flagged.Load()
}

// RequestCancel flags the operation and cancels its context. The flag is
// never cleared: an operation that completes after the flag was set still
// reports a cancelled outcome.
func (o *Operation) RequestCancel() {
	if o.flagged.Swap(true) {
		return
	}
	events.Async.CancelRequested(o.kind.String())
	o.cancel()
}

// Start launches kind. A second start while one is running returns ErrBusy.
func (e *Engine) Start(kind Kind) (*Operation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current != nil {
		return nil, ErrBusy
	}
	ctx, cancel := context.WithCancel(context.Background())
	op := &Operation{
		kind:    kind,
		events:  make(chan Event, 16),
		cancel:  cancel,
		started: time.Now(),
	}
	e.current = op
	events.Async.Start(kind.String())
	go e.run(ctx, op)
	return op, nil
}

// Busy reports whether an operation is running.
func (e *Engine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current != nil
}

// Current returns the running operation, if any.
func (e *Engine) Current() *Operation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Cancel requests cancellation of the running operation, if any.
func (e *Engine) Cancel() bool {
	e.mu.Lock()
	op := e.current
	e.mu.Unlock()
	if op == nil {
		return false
	}
	op.RequestCancel()
	return true
}

func (e *Engine) run(ctx context.Context, op *Operation) {
	defer op.cancel()

	limiter := newThrottle(progressInterval)
	sink := func(p git.Progress) {
		if op.flagged.Load() {
			return
		}
		// Record totals before the throttle so a dropped report cannot lose
		// the final counts.
		op.recordTransfer(p)
		percent := op.clampPercent(p.Percent)
		if !limiter.allow() && percent < 100 {
			return
		}
		snapshot := &Snapshot{
			Kind:    op.kind,
			Phase:   p.Phase,
			Percent: percent,
			Objects: p.Objects,
			Total:   p.Total,
			Bytes:   p.Bytes,
		}
		events.Async.Progress(op.kind.String(), snapshot.Percent, snapshot.Phase)
		op.send(Event{Snapshot: snapshot})
	}

	err := e.runner(ctx, op.kind, sink)
	outcome := op.finish(err)
	events.Async.Done(op.kind.String(), outcome.Status.String(), outcome.Message)
	op.send(Event{Outcome: outcome})

	// Release the slot before closing so a consumer that observes the close
	// can immediately start the next operation.
	e.mu.Lock()
	if e.current == op {
		e.current = nil
	}
	e.mu.Unlock()
	close(op.events)
}

// finish settles the terminal outcome. A set cancel flag wins every race: an
// operation that succeeded after the flag was raised still reports cancelled.
func (o *Operation) finish(err error) *Outcome {
	outcome := &Outcome{Kind: o.kind, Duration: time.Since(o.started)}
	switch {
	case o.flagged.Load():
		outcome.Status = StatusCancelled
		outcome.Class = git.ClassCancelled
		outcome.Message = o.kind.String() + " cancelled"
	case err == nil:
		outcome.Status = StatusSucceeded
		outcome.Objects, outcome.Bytes = o.transferTotals()
		outcome.Message = o.kind.String() + " complete" + transferSummary(outcome.Objects, outcome.Bytes)
	default:
		outcome.Err = err
		outcome.Class = git.Classify(err)
		if outcome.Class == git.ClassCancelled {
			outcome.Status = StatusCancelled
			outcome.Message = o.kind.String() + " cancelled"
		} else {
			outcome.Status = StatusFailed
			outcome.Message = git.Explain(err)
		}
	}
	return outcome
}

// send never blocks the transport goroutine: when the buffer is full the
// oldest event is discarded to make room.
func (o *Operation) send(evt Event) {
	for {
		select {
		case o.events <- evt:
			return
		default:
		}
		select {
		case <-o.events:
		default:
		}
	}
}

func (o *Operation) recordTransfer(p git.Progress) {
	o.transferMu.Lock()
	defer o.transferMu.Unlock()
	if p.Objects > o.transfer.Objects {
		o.transfer.Objects = p.Objects
	}
	if p.Total > o.transfer.Total {
		o.transfer.Total = p.Total
	}
	if p.Bytes > o.transfer.Bytes {
		o.transfer.Bytes = p.Bytes
	}
}

func (o *Operation) transferTotals() (int, int64) {
	o.transferMu.Lock()
	defer o.transferMu.Unlock()
	return o.transfer.Objects, o.transfer.Bytes
}

// transferSummary renders " (12 objects, 2.0 kB)" from the final totals, or
// an empty string when the remote reported nothing.
func transferSummary(objects int, bytes int64) string {
	var parts []string
	if objects > 0 {
		parts = append(parts, fmt.Sprintf("%d objects", objects))
	}
	if bytes > 0 {
		parts = append(parts, humanize.Bytes(uint64(bytes)))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// clampPercent keeps reported percent non-decreasing across the operation.
func (o *Operation) clampPercent(percent int) int {
	o.percentMu.Lock()
	defer o.percentMu.Unlock()
	if percent > 100 {
		percent = 100
	}
	if percent < o.lastPercent {
		return o.lastPercent
	}
	o.lastPercent = percent
	return percent
}

// Latest drains evts without blocking and returns the newest event seen,
// preferring an outcome over any snapshot.
func Latest(evts <-chan Event, first Event) Event {
	latest := first
	if latest.Outcome != nil {
		return latest
	}
	for {
		select {
		case evt, ok := <-evts:
			if !ok {
				return latest
			}
			latest = evt
			if latest.Outcome != nil {
				return latest
			}
		default:
			return latest
		}
	}
}
