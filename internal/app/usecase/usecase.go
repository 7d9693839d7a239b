package usecase

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/supchaser/genbatch/internal/app"
	"github.com/supchaser/genbatch/internal/app/batch"
	"github.com/supchaser/genbatch/internal/app/models"
	"github.com/supchaser/genbatch/internal/utils/errs"
	"github.com/supchaser/genbatch/internal/utils/logger"
	"github.com/supchaser/genbatch/internal/utils/validate"
	"go.uber.org/zap"
)

type Options struct {
	MaxItemsPerRun int
	// ItemDelay paces items of a run; zero or negative disables pacing.
	ItemDelay time.Duration
}

type BatchUsecase struct {
	runRepository app.RunRepository
	generator     app.Generator
	history       app.HistoryStore
	preparer      app.ImagePreparer
	maxItems      int
	itemDelay     time.Duration

	// runs outlive the request that started them
	baseCtx context.Context
	wg      sync.WaitGroup
}

func CreateBatchUsecase(
	ctx context.Context,
	runRepository app.RunRepository,
	generator app.Generator,
	history app.HistoryStore,
	preparer app.ImagePreparer,
	opts Options,
) *BatchUsecase {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.MaxItemsPerRun <= 0 {
		opts.MaxItemsPerRun = validate.DefaultMaxItemsPerRun
	}
	delay := opts.ItemDelay
	if delay <= 0 {
		delay = -1
	}

	return &BatchUsecase{
		runRepository: runRepository,
		generator:     generator,
		history:       history,
		preparer:      preparer,
		maxItems:      opts.MaxItemsPerRun,
		itemDelay:     delay,
		baseCtx:       ctx,
	}
}

func (u *BatchUsecase) StartRun(ctx context.Context, inputs []models.Input) (*models.RunView, error) {
	const funcName = "BatchUsecase.StartRun"
	logger.Debug("starting new run",
		zap.String("function", funcName),
		zap.Int("items", len(inputs)),
	)

	if err := validate.ValidateInputs(inputs, u.maxItems); err != nil {
		logger.Warn("invalid run request",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	prepared, err := u.prepareInputs(inputs)
	if err != nil {
		logger.Warn("failed to prepare reference images",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	run, err := u.runRepository.CreateRun(ctx, prepared, batch.Options{
		Delay:    u.itemDelay,
		Observer: u,
		Record:   u.recordResult,
	})
	if err != nil {
		logger.Error("failed to create run",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	view := run.Snapshot()

	u.wg.Add(1)
	go u.executeRun(run)

	return &view, nil
}

func (u *BatchUsecase) executeRun(run *batch.Run) {
	const funcName = "BatchUsecase.executeRun"
	defer u.wg.Done()

	if _, err := run.Execute(u.baseCtx, u.generator.Generate); err != nil {
		logger.Error("failed to execute run",
			zap.String("function", funcName),
			zap.String("run_id", run.ID()),
			zap.Error(err),
		)
	}
}

// Wait blocks until every started run has finished executing.
func (u *BatchUsecase) Wait() {
	u.wg.Wait()
}

func (u *BatchUsecase) OnItemUpdated(runID string, index int, item models.Item) {
	fields := []zap.Field{
		zap.String("function", "BatchUsecase.OnItemUpdated"),
		zap.String("run_id", runID),
		zap.Int("index", index),
		zap.String("state", string(item.State)),
		zap.Int("attempt", item.Attempts),
	}
	if item.Error != "" {
		fields = append(fields, zap.String("item_error", item.Error))
	}
	logger.Debug("item updated", fields...)
}

func (u *BatchUsecase) OnRunComplete(summary models.Summary) {
	const funcName = "BatchUsecase.OnRunComplete"

	failed := summary.FailedItems()
	failedIndexes := make([]int, 0, len(failed))
	for _, item := range failed {
		failedIndexes = append(failedIndexes, item.Index)
	}

	logger.Info("run finished",
		zap.String("function", funcName),
		zap.String("run_id", summary.RunID),
		zap.String("status", string(summary.Status)),
		zap.Int("success", summary.Progress.Success),
		zap.Int("failed", summary.Progress.Failed),
		zap.Ints("failed_indexes", failedIndexes),
		zap.Int("pending", summary.Progress.Pending),
		zap.Duration("duration", summary.FinishedAt.Sub(summary.StartedAt)),
	)

	if err := u.runRepository.ReleaseRun(context.Background(), summary.RunID); err != nil {
		logger.Error("failed to release run slot",
			zap.String("function", funcName),
			zap.String("run_id", summary.RunID),
			zap.Error(err),
		)
	}
}

func (u *BatchUsecase) GetRun(ctx context.Context, id string) (*models.RunView, error) {
	const funcName = "BatchUsecase.GetRun"
	logger.Debug("getting run",
		zap.String("function", funcName),
		zap.String("run_id", id),
	)

	run, err := u.runRepository.GetRun(ctx, id)
	if err != nil {
		logger.Error("failed to get run",
			zap.String("function", funcName),
			zap.String("run_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	view := run.Snapshot()
	return &view, nil
}

func (u *BatchUsecase) GetAllRuns(ctx context.Context) ([]*models.RunView, error) {
	const funcName = "BatchUsecase.GetAllRuns"
	logger.Debug("getting all runs",
		zap.String("function", funcName),
	)

	runs, err := u.runRepository.GetAllRuns(ctx)
	if err != nil {
		logger.Error("failed to get all runs",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	views := make([]*models.RunView, 0, len(runs))
	for _, run := range runs {
		view := run.Snapshot()
		views = append(views, &view)
	}

	return views, nil
}

func (u *BatchUsecase) CancelRun(ctx context.Context, id string) (*models.RunView, error) {
	const funcName = "BatchUsecase.CancelRun"
	logger.Debug("cancelling run",
		zap.String("function", funcName),
		zap.String("run_id", id),
	)

	run, err := u.runRepository.GetRun(ctx, id)
	if err != nil {
		logger.Error("failed to get run for cancellation",
			zap.String("function", funcName),
			zap.String("run_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	run.RequestCancel()

	view := run.Snapshot()
	return &view, nil
}

// RetryItem regenerates one item and waits for its terminal state. A dropped
// client does not abort the generation call.
func (u *BatchUsecase) RetryItem(ctx context.Context, id string, index int) (*models.Item, error) {
	const funcName = "BatchUsecase.RetryItem"
	logger.Debug("retrying item",
		zap.String("function", funcName),
		zap.String("run_id", id),
		zap.Int("index", index),
	)

	run, err := u.runRepository.GetRun(ctx, id)
	if err != nil {
		logger.Error("failed to get run for retry",
			zap.String("function", funcName),
			zap.String("run_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	if err := run.RetryItem(ctx, index, u.generator.Generate); err != nil {
		logger.Warn("retry rejected",
			zap.String("function", funcName),
			zap.String("run_id", id),
			zap.Int("index", index),
			zap.Error(err),
		)
		return nil, err
	}

	item, err := run.Item(index)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (u *BatchUsecase) GetArtifact(ctx context.Context, id string, index int) (*models.Artifact, error) {
	const funcName = "BatchUsecase.GetArtifact"

	run, err := u.runRepository.GetRun(ctx, id)
	if err != nil {
		logger.Error("failed to get run for artifact",
			zap.String("function", funcName),
			zap.String("run_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	item, err := run.Item(index)
	if err != nil {
		return nil, err
	}

	if item.State != models.StateSuccess || item.Result == nil {
		return nil, fmt.Errorf("%w: item %d is %s", errs.ErrArtifactNotReady, index, item.State)
	}

	return item.Result, nil
}

type manifestEntry struct {
	Index    int         `json:"index"`
	Kind     models.Kind `json:"kind"`
	Prompt   string      `json:"prompt"`
	File     string      `json:"file"`
	MimeType string      `json:"mime_type"`
	Attempts int         `json:"attempts"`
}

// BuildArchive writes a zip of every successful artifact of the run plus a
// manifest.json describing them.
func (u *BatchUsecase) BuildArchive(ctx context.Context, id string, w io.Writer) error {
	const funcName = "BatchUsecase.BuildArchive"
	logger.Debug("building archive",
		zap.String("function", funcName),
		zap.String("run_id", id),
	)

	run, err := u.runRepository.GetRun(ctx, id)
	if err != nil {
		logger.Error("failed to get run for archive",
			zap.String("function", funcName),
			zap.String("run_id", id),
			zap.Error(err),
		)
		return err
	}

	var successful []models.Item
	for _, item := range run.Items() {
		if item.State == models.StateSuccess && item.Result != nil {
			successful = append(successful, item)
		}
	}
	if len(successful) == 0 {
		return errs.ErrNothingToArchive
	}

	zipWriter := zip.NewWriter(w)

	manifest := make([]manifestEntry, 0, len(successful))
	for _, item := range successful {
		fileName := artifactFileName(item.Index, item.Result)

		fileWriter, err := zipWriter.Create(fileName)
		if err != nil {
			zipWriter.Close()
			return fmt.Errorf("create %s in archive: %w", fileName, err)
		}

		content := item.Result.Data
		if len(content) == 0 {
			content = []byte(item.Result.Text)
		}
		if _, err := fileWriter.Write(content); err != nil {
			zipWriter.Close()
			return fmt.Errorf("write %s to archive: %w", fileName, err)
		}

		manifest = append(manifest, manifestEntry{
			Index:    item.Index,
			Kind:     item.Input.Kind,
			Prompt:   item.Input.Prompt,
			File:     fileName,
			MimeType: item.Result.MimeType,
			Attempts: item.Attempts,
		})
	}

	manifestWriter, err := zipWriter.Create("manifest.json")
	if err != nil {
		zipWriter.Close()
		return fmt.Errorf("create manifest in archive: %w", err)
	}
	encoder := json.NewEncoder(manifestWriter)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(manifest); err != nil {
		zipWriter.Close()
		return fmt.Errorf("write manifest to archive: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}

	logger.Info("archive built successfully",
		zap.String("function", funcName),
		zap.String("run_id", id),
		zap.Int("files", len(successful)),
	)

	return nil
}

func (u *BatchUsecase) ListHistory(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	const funcName = "BatchUsecase.ListHistory"

	entries, err := u.history.List(ctx, limit)
	if err != nil {
		logger.Error("failed to list history",
			zap.String("function", funcName),
			zap.Int("limit", limit),
			zap.Error(err),
		)
		return nil, err
	}

	return entries, nil
}

func (u *BatchUsecase) GetMaxRuns() int {
	return u.runRepository.GetMaxRuns()
}

func (u *BatchUsecase) GetActiveRunsCount() int {
	return u.runRepository.GetActiveRunsCount()
}

func (u *BatchUsecase) prepareInputs(inputs []models.Input) ([]models.Input, error) {
	prepared := make([]models.Input, len(inputs))
	for i, input := range inputs {
		prepared[i] = input
		if len(input.ReferenceImage) == 0 || u.preparer == nil {
			continue
		}

		data, mimeType, err := u.preparer.Prepare(input.ReferenceImage, input.MimeType)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		prepared[i].ReferenceImage = data
		prepared[i].MimeType = mimeType
	}
	return prepared, nil
}

func (u *BatchUsecase) recordResult(ctx context.Context, runID string, item models.Item) error {
	if u.history == nil || item.Result == nil {
		return nil
	}

	return u.history.Add(ctx, models.HistoryEntry{
		ID:        uuid.NewString(),
		RunID:     runID,
		Index:     item.Index,
		Kind:      item.Input.Kind,
		Prompt:    item.Input.Prompt,
		MimeType:  item.Result.MimeType,
		Text:      item.Result.Text,
		Data:      item.Result.Data,
		CreatedAt: time.Now(),
	})
}

var knownExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
	"audio/wav":  ".wav",
	"audio/mpeg": ".mp3",
	"text/plain": ".txt",
}

func artifactFileName(index int, artifact *models.Artifact) string {
	mediaType, _, err := mime.ParseMediaType(artifact.MimeType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(artifact.MimeType))
	}

	ext, ok := knownExtensions[mediaType]
	if !ok {
		if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
			ext = exts[0]
		} else if len(artifact.Data) == 0 {
			ext = ".txt"
		} else {
			ext = ".bin"
		}
	}

	return fmt.Sprintf("item_%03d%s", index, ext)
}
