package app

import (
	"context"
	"io"

	"github.com/supchaser/genbatch/internal/app/batch"
	"github.com/supchaser/genbatch/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

type Generator interface {
	Generate(ctx context.Context, input models.Input) (*models.Artifact, error)
}

type HistoryStore interface {
	Add(ctx context.Context, entry models.HistoryEntry) error
	List(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}

type ImagePreparer interface {
	Prepare(data []byte, mimeType string) ([]byte, string, error)
}

type RunRepository interface {
	CreateRun(ctx context.Context, inputs []models.Input, opts batch.Options) (*batch.Run, error)
	GetRun(ctx context.Context, id string) (*batch.Run, error)
	GetAllRuns(ctx context.Context) ([]*batch.Run, error)
	ReleaseRun(ctx context.Context, id string) error
	GetMaxRuns() int
	GetActiveRunsCount() int
}

type BatchUsecase interface {
	StartRun(ctx context.Context, inputs []models.Input) (*models.RunView, error)
	GetRun(ctx context.Context, id string) (*models.RunView, error)
	GetAllRuns(ctx context.Context) ([]*models.RunView, error)
	CancelRun(ctx context.Context, id string) (*models.RunView, error)
	RetryItem(ctx context.Context, id string, index int) (*models.Item, error)
	GetArtifact(ctx context.Context, id string, index int) (*models.Artifact, error)
	BuildArchive(ctx context.Context, id string, w io.Writer) error
	ListHistory(ctx context.Context, limit int) ([]models.HistoryEntry, error)
	GetMaxRuns() int
	GetActiveRunsCount() int
}
