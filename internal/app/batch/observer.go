package batch

import "github.com/supchaser/genbatch/internal/app/models"

// Observer receives state changes of a run. Callbacks run on the goroutine
// driving the run and must not block for long.
type Observer interface {
	OnItemUpdated(runID string, index int, item models.Item)
	OnRunComplete(summary models.Summary)
}
