// Package imageprep downsizes reference images before they are sent to the
// generation backend.
package imageprep

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/supchaser/genbatch/internal/utils/errs"
	"github.com/supchaser/genbatch/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	DefaultMaxDimension = 1536
	jpegQuality         = 85
)

type Preparer struct {
	maxDimension int
}

func NewPreparer(maxDimension int) *Preparer {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Preparer{maxDimension: maxDimension}
}

// Prepare returns the image unchanged when it already fits, otherwise a
// resized copy. PNG input stays PNG, anything else is re-encoded as JPEG.
// Formats the standard decoders do not know (webp) are passed through.
func (p *Preparer) Prepare(data []byte, mimeType string) ([]byte, string, error) {
	const funcName = "Preparer.Prepare"

	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if mimeType == "image/webp" {
		return data, mimeType, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errs.ErrInvalidImage, err)
	}

	if cfg.Width <= p.maxDimension && cfg.Height <= p.maxDimension {
		return data, mimeType, nil
	}

	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errs.ErrInvalidImage, err)
	}

	resized := imaging.Fit(src, p.maxDimension, p.maxDimension, imaging.Lanczos)

	format, outMime := imaging.JPEG, "image/jpeg"
	if mimeType == "image/png" {
		format, outMime = imaging.PNG, "image/png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, "", fmt.Errorf("encode reference image: %w", err)
	}

	logger.Debug("reference image resized",
		zap.String("function", funcName),
		zap.Int("src_width", cfg.Width),
		zap.Int("src_height", cfg.Height),
		zap.Int("width", resized.Bounds().Dx()),
		zap.Int("height", resized.Bounds().Dy()),
		zap.String("mime_type", outMime),
	)

	return buf.Bytes(), outMime, nil
}
