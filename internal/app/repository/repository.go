package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/supchaser/genbatch/internal/app/batch"
	"github.com/supchaser/genbatch/internal/app/models"
	"github.com/supchaser/genbatch/internal/utils/errs"
	"github.com/supchaser/genbatch/internal/utils/logger"
	"go.uber.org/zap"
)

// DefaultRetainedRuns bounds how many runs, finished or not, stay queryable.
const DefaultRetainedRuns = 100

type RunRepository struct {
	runs       map[string]*batch.Run
	order      []string
	active     map[string]bool
	maxRuns    int
	retain     int
	mu         sync.Mutex
	generateID func() string
}

func CreateRunRepository(maxRuns, retainRuns int) *RunRepository {
	if retainRuns <= 0 {
		retainRuns = DefaultRetainedRuns
	}
	return &RunRepository{
		runs:       make(map[string]*batch.Run),
		active:     make(map[string]bool),
		maxRuns:    maxRuns,
		retain:     retainRuns,
		generateID: uuid.NewString,
	}
}

func (r *RunRepository) CreateRun(ctx context.Context, inputs []models.Input, opts batch.Options) (*batch.Run, error) {
	const funcName = "RunRepository.CreateRun"
	logger.Debug("attempting to create run",
		zap.String("function", funcName),
		zap.Int("items", len(inputs)),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.active) >= r.maxRuns {
		logger.Warn("maximum runs limit reached",
			zap.String("function", funcName),
			zap.Int("active_runs", len(r.active)),
			zap.Int("max_runs", r.maxRuns),
		)
		return nil, fmt.Errorf("%w: current %d, max %d", errs.ErrMaxRunsReached, len(r.active), r.maxRuns)
	}

	run, err := batch.NewRun(r.generateID(), inputs, opts)
	if err != nil {
		logger.Warn("failed to build run",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	r.runs[run.ID()] = run
	r.order = append(r.order, run.ID())
	r.active[run.ID()] = true
	r.evictLocked()

	logger.Info("run created successfully",
		zap.String("function", funcName),
		zap.String("run_id", run.ID()),
		zap.Int("items", len(inputs)),
		zap.Int("active_runs", len(r.active)),
		zap.Time("created_at", run.CreatedAt()),
	)

	return run, nil
}

func (r *RunRepository) GetRun(ctx context.Context, id string) (*batch.Run, error) {
	const funcName = "RunRepository.GetRun"
	logger.Debug("attempting to get run",
		zap.String("function", funcName),
		zap.String("run_id", id),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	run, exists := r.runs[id]
	if !exists {
		logger.Warn("run not found",
			zap.String("function", funcName),
			zap.String("run_id", id),
		)
		return nil, errs.ErrRunNotFound
	}

	return run, nil
}

// ReleaseRun frees the active slot of a finished run. The run itself stays
// available for inspection and retries.
func (r *RunRepository) ReleaseRun(ctx context.Context, id string) error {
	const funcName = "RunRepository.ReleaseRun"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[id]; !exists {
		logger.Warn("run not found when releasing slot",
			zap.String("function", funcName),
			zap.String("run_id", id),
		)
		return errs.ErrRunNotFound
	}

	if r.active[id] {
		delete(r.active, id)
		logger.Info("active run slot released",
			zap.String("function", funcName),
			zap.String("run_id", id),
			zap.Int("remaining_active_runs", len(r.active)),
		)
	}

	return nil
}

func (r *RunRepository) GetAllRuns(ctx context.Context) ([]*batch.Run, error) {
	const funcName = "RunRepository.GetAllRuns"

	r.mu.Lock()
	runs := make([]*batch.Run, 0, len(r.runs))
	for _, run := range r.runs {
		runs = append(runs, run)
	}
	r.mu.Unlock()

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt().Before(runs[j].CreatedAt())
	})

	logger.Debug("retrieved all runs",
		zap.String("function", funcName),
		zap.Int("count", len(runs)),
	)

	return runs, nil
}

// evictLocked drops the oldest finished runs above the retention cap. Active
// runs are never evicted.
func (r *RunRepository) evictLocked() {
	const funcName = "RunRepository.evictLocked"

	excess := len(r.order) - r.retain
	if excess <= 0 {
		return
	}

	kept := r.order[:0]
	for _, id := range r.order {
		if excess > 0 && !r.active[id] {
			delete(r.runs, id)
			excess--
			logger.Debug("run evicted",
				zap.String("function", funcName),
				zap.String("run_id", id),
			)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
}

func (r *RunRepository) GetMaxRuns() int {
	return r.maxRuns
}

func (r *RunRepository) GetActiveRunsCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}
