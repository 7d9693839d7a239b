// Package batch drives a fixed, ordered list of generation requests one at a
// time, keeping the authoritative per-item state of the run.
//
// A Run is created per start action and executed once. Items are processed
// strictly in order: item N+1 is never started before item N reached a
// terminal state, and at most one item of a run is loading at any time.
// Cancellation is cooperative and only checked between items; an in-flight
// generation call is never interrupted, not even by the context passed to
// Execute. Failed items can be retried one by one after the run finished.
package batch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/supchaser/genbatch/internal/app/models"
	"github.com/supchaser/genbatch/internal/utils/errs"
	"github.com/supchaser/genbatch/internal/utils/logger"
	"go.uber.org/zap"
)

// DefaultDelay paces consecutive generation calls.
const DefaultDelay = time.Second

// GenerateFunc produces one artifact for one input.
type GenerateFunc func(ctx context.Context, input models.Input) (*models.Artifact, error)

// RecordFunc persists a successful item. Its errors are logged only.
type RecordFunc func(ctx context.Context, runID string, item models.Item) error

type Options struct {
	// Delay between two items. Zero selects DefaultDelay, a negative value
	// disables pacing.
	Delay    time.Duration
	Observer Observer
	Record   RecordFunc
}

type Run struct {
	id   string
	opts Options

	mu         sync.Mutex
	items      []models.Item
	status     models.RunStatus
	started    bool
	active     bool
	retrying   bool
	createdAt  time.Time
	finishedAt time.Time

	cancelRequested atomic.Bool
	cancelOnce      sync.Once
	cancelCh        chan struct{}
}

func NewRun(id string, inputs []models.Input, opts Options) (*Run, error) {
	if len(inputs) == 0 {
		return nil, errs.ErrEmptyBatch
	}

	switch {
	case opts.Delay == 0:
		opts.Delay = DefaultDelay
	case opts.Delay < 0:
		opts.Delay = 0
	}

	now := time.Now()
	items := make([]models.Item, len(inputs))
	for i, input := range inputs {
		items[i] = models.Item{
			Index:     i,
			Input:     input,
			State:     models.StatePending,
			UpdatedAt: now,
		}
	}

	return &Run{
		id:        id,
		opts:      opts,
		items:     items,
		status:    models.RunRunning,
		active:    true,
		createdAt: now,
		cancelCh:  make(chan struct{}),
	}, nil
}

func (r *Run) ID() string {
	return r.id
}

// Execute processes every item in order and returns the final summary. It
// returns an error only when the run was already executed; per-item failures
// are recorded on the items.
func (r *Run) Execute(ctx context.Context, generate GenerateFunc) (models.Summary, error) {
	const funcName = "Run.Execute"

	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return models.Summary{}, fmt.Errorf("%w: %s", errs.ErrRunStarted, r.id)
	}
	r.started = true
	total := len(r.items)
	r.mu.Unlock()

	logger.Info("starting batch run",
		zap.String("function", funcName),
		zap.String("run_id", r.id),
		zap.Int("items", total),
		zap.Duration("delay", r.opts.Delay),
	)

	stopped := false
	for i := 0; i < total; i++ {
		if r.shouldStop(ctx) {
			stopped = true
			logger.Info("batch run stopped before item",
				zap.String("function", funcName),
				zap.String("run_id", r.id),
				zap.Int("index", i),
			)
			break
		}

		item := r.begin(i)
		r.notifyItem(i, item)
		r.generateItem(ctx, i, item.Input, generate)

		if i < total-1 && !r.shouldStop(ctx) {
			r.wait(ctx)
		}
	}

	r.mu.Lock()
	r.active = false
	r.finishedAt = time.Now()
	if stopped {
		r.status = models.RunCancelled
	} else {
		r.status = models.RunCompleted
	}
	summary := r.summaryLocked()
	r.mu.Unlock()

	logger.Info("batch run finished",
		zap.String("function", funcName),
		zap.String("run_id", r.id),
		zap.String("status", string(summary.Status)),
		zap.Int("success", summary.Progress.Success),
		zap.Int("failed", summary.Progress.Failed),
		zap.Int("pending", summary.Progress.Pending),
	)

	if r.opts.Observer != nil {
		r.opts.Observer.OnRunComplete(summary)
	}

	return summary, nil
}

// RetryItem regenerates a single item, whatever its current state. It is
// rejected while the run is executing or another retry of the run is loading.
func (r *Run) RetryItem(ctx context.Context, index int, generate GenerateFunc) error {
	const funcName = "Run.RetryItem"

	r.mu.Lock()
	if index < 0 || index >= len(r.items) {
		r.mu.Unlock()
		return fmt.Errorf("%w: index %d of %d", errs.ErrItemNotFound, index, len(r.items))
	}
	if r.active {
		r.mu.Unlock()
		return errs.ErrRunActive
	}
	if r.items[index].State == models.StateLoading {
		r.mu.Unlock()
		return errs.ErrItemBusy
	}
	if r.retrying {
		r.mu.Unlock()
		return errs.ErrRunBusy
	}
	r.retrying = true
	item := r.beginLocked(index)
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.retrying = false
		r.mu.Unlock()
	}()

	logger.Info("retrying item",
		zap.String("function", funcName),
		zap.String("run_id", r.id),
		zap.Int("index", index),
		zap.Int("attempt", item.Attempts),
	)

	r.notifyItem(index, item)
	r.generateItem(ctx, index, item.Input, generate)

	return nil
}

// RequestCancel asks the run to stop before the next item. Idempotent.
func (r *Run) RequestCancel() {
	if r.cancelRequested.CompareAndSwap(false, true) {
		logger.Info("cancellation requested",
			zap.String("function", "Run.RequestCancel"),
			zap.String("run_id", r.id),
		)
	}
	r.cancelOnce.Do(func() { close(r.cancelCh) })
}

func (r *Run) CancelRequested() bool {
	return r.cancelRequested.Load()
}

func (r *Run) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *Run) CreatedAt() time.Time {
	return r.createdAt
}

// Items returns a copy of the items in submission order.
func (r *Run) Items() []models.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.copyItemsLocked()
}

func (r *Run) Item(index int) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.items) {
		return models.Item{}, fmt.Errorf("%w: index %d of %d", errs.ErrItemNotFound, index, len(r.items))
	}
	return r.items[index], nil
}

func (r *Run) Progress() models.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CountProgress(r.items)
}

func (r *Run) Snapshot() models.RunView {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.copyItemsLocked()
	view := models.RunView{
		ID:              r.id,
		Status:          r.status,
		CancelRequested: r.cancelRequested.Load(),
		Items:           items,
		Progress:        models.CountProgress(items),
		CreatedAt:       r.createdAt,
	}
	if !r.finishedAt.IsZero() {
		finished := r.finishedAt
		view.FinishedAt = &finished
	}
	return view
}

func (r *Run) shouldStop(ctx context.Context) bool {
	return r.cancelRequested.Load() || ctx.Err() != nil
}

func (r *Run) wait(ctx context.Context) {
	if r.opts.Delay <= 0 {
		return
	}

	timer := time.NewTimer(r.opts.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-r.cancelCh:
	case <-ctx.Done():
	}
}

func (r *Run) begin(index int) models.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.beginLocked(index)
}

func (r *Run) beginLocked(index int) models.Item {
	item := &r.items[index]
	item.State = models.StateLoading
	item.Result = nil
	item.Error = ""
	item.Attempts++
	item.UpdatedAt = time.Now()
	return *item
}

// generateItem runs one generation call to completion. Cancellation of ctx
// only matters between items, so the call and the record hook get a context
// that keeps its values but never gets cancelled.
func (r *Run) generateItem(ctx context.Context, index int, input models.Input, generate GenerateFunc) {
	const funcName = "Run.generateItem"

	ctx = context.WithoutCancel(ctx)
	artifact, err := callGenerate(ctx, generate, input)
	if err == nil && artifact == nil {
		err = errs.ErrEmptyResult
	}

	r.mu.Lock()
	item := &r.items[index]
	if err != nil {
		item.State = models.StateFailed
		item.Error = errorMessage(err)
	} else {
		item.State = models.StateSuccess
		item.Result = artifact
	}
	item.UpdatedAt = time.Now()
	done := *item
	r.mu.Unlock()

	if err != nil {
		logger.Warn("item generation failed",
			zap.String("function", funcName),
			zap.String("run_id", r.id),
			zap.Int("index", index),
			zap.Error(err),
		)
	}

	r.notifyItem(index, done)

	if done.State == models.StateSuccess {
		r.record(ctx, done)
	}
}

func (r *Run) record(ctx context.Context, item models.Item) {
	if r.opts.Record == nil {
		return
	}

	if err := r.opts.Record(ctx, r.id, item); err != nil {
		logger.Error("failed to record result",
			zap.String("function", "Run.record"),
			zap.String("run_id", r.id),
			zap.Int("index", item.Index),
			zap.Error(err),
		)
	}
}

func (r *Run) notifyItem(index int, item models.Item) {
	if r.opts.Observer != nil {
		r.opts.Observer.OnItemUpdated(r.id, index, item)
	}
}

func (r *Run) copyItemsLocked() []models.Item {
	items := make([]models.Item, len(r.items))
	copy(items, r.items)
	return items
}

func (r *Run) summaryLocked() models.Summary {
	items := r.copyItemsLocked()
	return models.Summary{
		RunID:      r.id,
		Status:     r.status,
		Progress:   models.CountProgress(items),
		Items:      items,
		StartedAt:  r.createdAt,
		FinishedAt: r.finishedAt,
	}
}

func callGenerate(ctx context.Context, generate GenerateFunc, input models.Input) (artifact *models.Artifact, err error) {
	defer func() {
		if p := recover(); p != nil {
			artifact = nil
			err = fmt.Errorf("%w: panic: %v", errs.ErrGeneration, p)
		}
	}()
	return generate(ctx, input)
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown error"
}
