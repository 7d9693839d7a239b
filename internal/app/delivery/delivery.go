package delivery

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/supchaser/genbatch/internal/app"
	"github.com/supchaser/genbatch/internal/app/models"
	"github.com/supchaser/genbatch/internal/utils/errs"
	"github.com/supchaser/genbatch/internal/utils/logger"
	"github.com/supchaser/genbatch/internal/utils/responses"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type BatchDelivery struct {
	batchUsecase app.BatchUsecase
}

func CreateBatchDelivery(batchUsecase app.BatchUsecase) *BatchDelivery {
	return &BatchDelivery{
		batchUsecase: batchUsecase,
	}
}

func (d *BatchDelivery) CreateRun(w http.ResponseWriter, r *http.Request) {
	const funcName = "BatchDelivery.CreateRun"
	logger.Debug("creating new run", zap.String("function", funcName))

	req := models.Request{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inputs, err := toInputs(req)
	if err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, err.Error())
		return
	}

	run, err := d.batchUsecase.StartRun(r.Context(), inputs)
	if err != nil {
		if errors.Is(err, errs.ErrMaxRunsReached) {
			responses.DoJSONResponse(w, map[string]any{
				"error":      err.Error(),
				"max_runs":   d.batchUsecase.GetMaxRuns(),
				"active_now": d.batchUsecase.GetActiveRunsCount(),
				"suggestion": "Try again later or wait for current runs to complete",
			}, http.StatusTooManyRequests)
			return
		}
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	logger.Info("run started",
		zap.String("function", funcName),
		zap.String("run_id", run.ID),
		zap.Int("items", len(run.Items)),
	)

	responses.DoJSONResponse(w, run, http.StatusCreated)
}

func (d *BatchDelivery) GetRun(w http.ResponseWriter, r *http.Request) {
	const funcName = "BatchDelivery.GetRun"
	logger.Debug("getting run",
		zap.String("function", funcName),
	)

	run, err := d.batchUsecase.GetRun(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, run, http.StatusOK)
}

func (d *BatchDelivery) GetAllRuns(w http.ResponseWriter, r *http.Request) {
	const funcName = "BatchDelivery.GetAllRuns"
	logger.Debug("getting all runs",
		zap.String("function", funcName),
	)

	runs, err := d.batchUsecase.GetAllRuns(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if len(runs) == 0 {
		responses.DoJSONResponse(w, map[string]any{
			"message":    "No runs found",
			"suggestion": "Start a new run with POST /api/v1/runs",
			"count":      0,
			"runs":       []any{},
		}, http.StatusOK)
		return
	}

	response := make([]models.RunResponse, 0, len(runs))
	for _, run := range runs {
		response = append(response, models.RunResponse{
			ID:        run.ID,
			Status:    run.Status,
			Progress:  run.Progress,
			CreatedAt: run.CreatedAt,
		})
	}

	responses.DoJSONResponse(w, map[string]any{
		"count": len(response),
		"runs":  response,
	}, http.StatusOK)
}

func (d *BatchDelivery) CancelRun(w http.ResponseWriter, r *http.Request) {
	const funcName = "BatchDelivery.CancelRun"
	logger.Debug("cancelling run",
		zap.String("function", funcName),
	)

	run, err := d.batchUsecase.CancelRun(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, run, http.StatusAccepted)
}

func (d *BatchDelivery) RetryItem(w http.ResponseWriter, r *http.Request) {
	const funcName = "BatchDelivery.RetryItem"
	logger.Debug("retrying item",
		zap.String("function", funcName),
	)

	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil || index < 0 {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid item index")
		return
	}

	item, err := d.batchUsecase.RetryItem(r.Context(), vars["id"], index)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, item, http.StatusOK)
}

func (d *BatchDelivery) GetArtifact(w http.ResponseWriter, r *http.Request) {
	const funcName = "BatchDelivery.GetArtifact"
	logger.Debug("getting artifact",
		zap.String("function", funcName),
	)

	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil || index < 0 {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid item index")
		return
	}

	artifact, err := d.batchUsecase.GetArtifact(r.Context(), vars["id"], index)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	body := artifact.Data
	contentType := artifact.MimeType
	if len(body) == 0 {
		body = []byte(artifact.Text)
		if contentType == "" {
			contentType = "text/plain; charset=utf-8"
		}
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write artifact",
			zap.String("function", funcName),
			zap.Error(err),
		)
	}
}

func (d *BatchDelivery) DownloadArchive(w http.ResponseWriter, r *http.Request) {
	const funcName = "BatchDelivery.DownloadArchive"
	logger.Debug("downloading archive",
		zap.String("function", funcName),
	)

	runID := mux.Vars(r)["id"]

	var buf bytes.Buffer
	if err := d.batchUsecase.BuildArchive(r.Context(), runID, &buf); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=run_%s.zip", runID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("failed to write archive",
			zap.String("function", funcName),
			zap.String("run_id", runID),
			zap.Error(err),
		)
		return
	}

	logger.Info("archive downloaded successfully",
		zap.String("function", funcName),
		zap.String("run_id", runID),
	)
}

func (d *BatchDelivery) ListHistory(w http.ResponseWriter, r *http.Request) {
	const funcName = "BatchDelivery.ListHistory"
	logger.Debug("listing history",
		zap.String("function", funcName),
	)

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	entries, err := d.batchUsecase.ListHistory(r.Context(), limit)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	responses.DoJSONResponse(w, map[string]any{
		"count":   len(entries),
		"entries": entries,
	}, http.StatusOK)
}

func toInputs(req models.Request) ([]models.Input, error) {
	inputs := make([]models.Input, 0, len(req.Items))
	for i, item := range req.Items {
		input := models.Input{
			Kind:     item.Kind,
			Prompt:   item.Prompt,
			MimeType: item.MimeType,
			Params:   item.Params,
		}
		if item.ImageBase64 != "" {
			data, err := base64.StdEncoding.DecodeString(item.ImageBase64)
			if err != nil {
				return nil, fmt.Errorf("item %d: invalid image_base64", i)
			}
			input.ReferenceImage = data
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
