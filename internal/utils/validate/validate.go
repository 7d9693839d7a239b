package validate

import (
	"fmt"
	"strings"

	"github.com/supchaser/genbatch/internal/app/models"
	"github.com/supchaser/genbatch/internal/utils/errs"
)

const (
	DefaultMaxItemsPerRun = 20
)

var allowedKinds = map[models.Kind]bool{
	models.KindText:   true,
	models.KindImage:  true,
	models.KindVideo:  true,
	models.KindSpeech: true,
}

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
}

func ValidateItemCount(count, maxItems int) error {
	if count == 0 {
		return errs.ErrEmptyBatch
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItemsPerRun
	}
	if count > maxItems {
		return fmt.Errorf("%w: got %d, max %d", errs.ErrTooManyItems, count, maxItems)
	}

	return nil
}

func ValidateKind(kind models.Kind) error {
	if !allowedKinds[kind] {
		return errs.ErrInvalidKind
	}

	return nil
}

func ValidateImageType(mimeType string) error {
	if !allowedImageTypes[strings.ToLower(strings.TrimSpace(mimeType))] {
		return errs.ErrInvalidImageType
	}

	return nil
}

func ValidateInput(input models.Input) error {
	if err := ValidateKind(input.Kind); err != nil {
		return err
	}

	hasImage := len(input.ReferenceImage) > 0
	if strings.TrimSpace(input.Prompt) == "" && !hasImage {
		return errs.ErrEmptyPrompt
	}

	if hasImage {
		if err := ValidateImageType(input.MimeType); err != nil {
			return err
		}
	}

	return nil
}

func ValidateInputs(inputs []models.Input, maxItems int) error {
	if err := ValidateItemCount(len(inputs), maxItems); err != nil {
		return err
	}

	for i, input := range inputs {
		if err := ValidateInput(input); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	return nil
}
