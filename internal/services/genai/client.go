// Package genai talks to the generative backend: one HTTP call per artifact.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/supchaser/genbatch/internal/app/models"
	"github.com/supchaser/genbatch/internal/utils/errs"
	"github.com/supchaser/genbatch/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 120 * time.Second
	defaultBaseURL     = "http://localhost:8088/v1/generate"
	maxErrorBody       = 512
)

// Config captures the runtime settings required to talk to the backend.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			APIKey:         strings.TrimSpace(cfg.APIKey),
			BaseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
			Model:          strings.TrimSpace(cfg.Model),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	return client
}

type imagePart struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateRequest struct {
	Model  string            `json:"model,omitempty"`
	Prompt string            `json:"prompt"`
	Params map[string]string `json:"params,omitempty"`
	Image  *imagePart        `json:"image,omitempty"`
}

type generateResponse struct {
	Text     string `json:"text"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
	Error    *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type httpStatusError struct {
	StatusCode int
	Message    string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *httpStatusError) Unwrap() error {
	return errs.ErrGeneration
}

// Generate issues a single generation call for input. Errors wrap
// errs.ErrGeneration or errs.ErrEmptyResult.
func (c *Client) Generate(ctx context.Context, input models.Input) (*models.Artifact, error) {
	const funcName = "Client.Generate"

	payload := generateRequest{
		Model:  c.cfg.Model,
		Prompt: input.Prompt,
		Params: input.Params,
	}
	if len(input.ReferenceImage) > 0 {
		payload.Image = &imagePart{
			MimeType: input.MimeType,
			Data:     base64.StdEncoding.EncodeToString(input.ReferenceImage),
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", errs.ErrGeneration, err)
	}

	endpoint := c.cfg.BaseURL + "/" + string(input.Kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", errs.ErrGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrGeneration, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", errs.ErrGeneration, err)
	}

	logger.Debug("generation call finished",
		zap.String("function", funcName),
		zap.String("kind", string(input.Kind)),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	var parsed generateResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		if decodeErr == nil && parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &httpStatusError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decode response: %v", errs.ErrGeneration, decodeErr)
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", errs.ErrGeneration, parsed.Error.Message)
	}

	return toArtifact(parsed)
}

func toArtifact(parsed generateResponse) (*models.Artifact, error) {
	artifact := &models.Artifact{
		MimeType: strings.TrimSpace(parsed.MimeType),
		Text:     parsed.Text,
	}

	if parsed.Data != "" {
		data, err := base64.StdEncoding.DecodeString(parsed.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: decode artifact data: %v", errs.ErrGeneration, err)
		}
		artifact.Data = data
	}

	if len(artifact.Data) == 0 && strings.TrimSpace(artifact.Text) == "" {
		return nil, errs.ErrEmptyResult
	}

	if artifact.MimeType == "" {
		if len(artifact.Data) > 0 {
			artifact.MimeType = http.DetectContentType(artifact.Data)
		} else {
			artifact.MimeType = "text/plain; charset=utf-8"
		}
	}

	return artifact, nil
}
