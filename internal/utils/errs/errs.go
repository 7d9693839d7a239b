package errs

import "errors"

var (
	ErrRunNotFound      = errors.New("run not found")
	ErrMaxRunsReached   = errors.New("server is busy (max active runs limit)")
	ErrRunActive        = errors.New("run is still in progress")
	ErrRunStarted       = errors.New("run has already been started")
	ErrItemNotFound     = errors.New("item not found")
	ErrItemBusy         = errors.New("item is already being generated")
	ErrRunBusy          = errors.New("another item of the run is being generated")
	ErrNothingToArchive = errors.New("run has no successful artifacts")
	ErrArtifactNotReady = errors.New("item has no artifact yet")

	ErrEmptyBatch       = errors.New("batch has no items")
	ErrTooManyItems     = errors.New("maximum items per run exceeded")
	ErrInvalidKind      = errors.New("invalid generation kind (allowed: text, image, video, speech)")
	ErrEmptyPrompt      = errors.New("item needs a prompt or a reference image")
	ErrInvalidImageType = errors.New("invalid reference image type (allowed: image/png, image/jpeg, image/webp)")
	ErrInvalidImage     = errors.New("reference image cannot be decoded")

	ErrGeneration  = errors.New("generation failed")
	ErrEmptyResult = errors.New("generation returned an empty result")
)
