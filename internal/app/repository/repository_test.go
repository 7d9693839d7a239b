package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/supchaser/genbatch/internal/app"
	"github.com/supchaser/genbatch/internal/app/batch"
	"github.com/supchaser/genbatch/internal/app/models"
	"github.com/supchaser/genbatch/internal/utils/errs"
	"github.com/supchaser/genbatch/internal/utils/logger"
)

var _ app.RunRepository = (*RunRepository)(nil)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func inputs(prompts ...string) []models.Input {
	out := make([]models.Input, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, models.Input{Kind: models.KindText, Prompt: p})
	}
	return out
}

func TestCreateRun_Success(t *testing.T) {
	repo := CreateRunRepository(3, 0)

	run, err := repo.CreateRun(context.Background(), inputs("a", "b"), batch.Options{Delay: -1})

	assert.NoError(t, err)
	assert.NotNil(t, run)
	assert.NotEmpty(t, run.ID())
	assert.Len(t, run.Items(), 2)
	assert.Equal(t, 1, repo.GetActiveRunsCount())
	assert.WithinDuration(t, time.Now(), run.CreatedAt(), time.Second)
}

func TestCreateRun_EmptyBatch(t *testing.T) {
	repo := CreateRunRepository(3, 0)

	run, err := repo.CreateRun(context.Background(), nil, batch.Options{})

	assert.Nil(t, run)
	assert.ErrorIs(t, err, errs.ErrEmptyBatch)
	assert.Equal(t, 0, repo.GetActiveRunsCount())
}

func TestCreateRun_MaxRunsReached(t *testing.T) {
	maxRuns := 2
	repo := CreateRunRepository(maxRuns, 0)

	for range maxRuns {
		_, err := repo.CreateRun(context.Background(), inputs("a"), batch.Options{})
		assert.NoError(t, err)
	}

	run, err := repo.CreateRun(context.Background(), inputs("a"), batch.Options{})

	assert.Nil(t, run)
	assert.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMaxRunsReached)
}

func TestGetRun_Success(t *testing.T) {
	repo := CreateRunRepository(5, 0)
	created, err := repo.CreateRun(context.Background(), inputs("a"), batch.Options{})
	assert.NoError(t, err)

	run, err := repo.GetRun(context.Background(), created.ID())

	assert.NoError(t, err)
	assert.Same(t, created, run)
}

func TestGetRun_NotFound(t *testing.T) {
	repo := CreateRunRepository(5, 0)

	run, err := repo.GetRun(context.Background(), "missing")

	assert.Nil(t, run)
	assert.ErrorIs(t, err, errs.ErrRunNotFound)
}

func TestReleaseRun_DecreasesActiveCount(t *testing.T) {
	repo := CreateRunRepository(1, 0)
	created, err := repo.CreateRun(context.Background(), inputs("a"), batch.Options{})
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.GetActiveRunsCount())

	assert.NoError(t, repo.ReleaseRun(context.Background(), created.ID()))
	assert.NoError(t, repo.ReleaseRun(context.Background(), created.ID()))
	assert.Equal(t, 0, repo.GetActiveRunsCount())

	_, err = repo.CreateRun(context.Background(), inputs("b"), batch.Options{})
	assert.NoError(t, err)

	run, err := repo.GetRun(context.Background(), created.ID())
	assert.NoError(t, err)
	assert.NotNil(t, run)
}

func TestReleaseRun_NotFound(t *testing.T) {
	repo := CreateRunRepository(1, 0)

	err := repo.ReleaseRun(context.Background(), "missing")

	assert.ErrorIs(t, err, errs.ErrRunNotFound)
}

func TestGetAllRuns_OrderedByCreation(t *testing.T) {
	repo := CreateRunRepository(5, 0)
	counter := 0
	repo.generateID = func() string {
		counter++
		return fmt.Sprintf("run-%d", counter)
	}

	for range 3 {
		_, err := repo.CreateRun(context.Background(), inputs("a"), batch.Options{})
		assert.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	runs, err := repo.GetAllRuns(context.Background())

	assert.NoError(t, err)
	assert.Len(t, runs, 3)
	for i, run := range runs {
		assert.Equal(t, fmt.Sprintf("run-%d", i+1), run.ID())
	}
}

func TestGetAllRuns_Empty(t *testing.T) {
	repo := CreateRunRepository(5, 0)

	runs, err := repo.GetAllRuns(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, runs)
}

func TestGetMaxRuns(t *testing.T) {
	assert.Equal(t, 7, CreateRunRepository(7, 0).GetMaxRuns())
}

func TestCreateRun_EvictsOldestFinishedRuns(t *testing.T) {
	repo := CreateRunRepository(5, 2)
	counter := 0
	repo.generateID = func() string {
		counter++
		return fmt.Sprintf("run-%d", counter)
	}

	for range 2 {
		run, err := repo.CreateRun(context.Background(), inputs("a"), batch.Options{})
		assert.NoError(t, err)
		assert.NoError(t, repo.ReleaseRun(context.Background(), run.ID()))
	}

	_, err := repo.CreateRun(context.Background(), inputs("a"), batch.Options{})
	assert.NoError(t, err)

	_, err = repo.GetRun(context.Background(), "run-1")
	assert.ErrorIs(t, err, errs.ErrRunNotFound)

	runs, err := repo.GetAllRuns(context.Background())
	assert.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestCreateRun_NeverEvictsActiveRuns(t *testing.T) {
	repo := CreateRunRepository(3, 1)

	first, err := repo.CreateRun(context.Background(), inputs("a"), batch.Options{})
	assert.NoError(t, err)
	second, err := repo.CreateRun(context.Background(), inputs("b"), batch.Options{})
	assert.NoError(t, err)

	_, err = repo.GetRun(context.Background(), first.ID())
	assert.NoError(t, err)
	_, err = repo.GetRun(context.Background(), second.ID())
	assert.NoError(t, err)

	assert.NoError(t, repo.ReleaseRun(context.Background(), first.ID()))
	assert.NoError(t, repo.ReleaseRun(context.Background(), second.ID()))

	third, err := repo.CreateRun(context.Background(), inputs("c"), batch.Options{})
	assert.NoError(t, err)

	runs, err := repo.GetAllRuns(context.Background())
	assert.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.Equal(t, third.ID(), runs[0].ID())
}
