package responses

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/supchaser/genbatch/internal/utils/errs"
	"github.com/supchaser/genbatch/internal/utils/logger"
	"go.uber.org/zap"
)

type BadResponse struct {
	Status int    `json:"status"`
	Text   string `json:"text"`
}

func DoBadResponseAndLog(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := BadResponse{
		Status: statusCode,
		Text:   message,
	}

	jsonResponse, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if _, err = w.Write(jsonResponse); err != nil {
		logger.Error("failed to write response",
			zap.String("function", "DoBadResponseAndLog"),
			zap.Error(err),
		)
		return
	}

	logger.Warn("bad response",
		zap.Int("status", statusCode),
		zap.String("message", message),
	)
}

func DoJSONResponse(w http.ResponseWriter, responseData any, successStatusCode int) {
	body, err := json.Marshal(responseData)
	if err != nil {
		logger.Error("failed to marshal response",
			zap.String("function", "DoJSONResponse"),
			zap.Error(err),
		)
		DoBadResponseAndLog(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(successStatusCode)

	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write response",
			zap.String("function", "DoJSONResponse"),
			zap.Error(err),
		)
	}
}

type errorMapping struct {
	target  error
	status  int
	message string
}

// Validation errors carry the item position, so their full text is returned.
var errorMappings = []errorMapping{
	{errs.ErrRunNotFound, http.StatusNotFound, "run not found"},
	{errs.ErrItemNotFound, http.StatusNotFound, "item not found"},
	{errs.ErrArtifactNotReady, http.StatusNotFound, "artifact not ready"},
	{errs.ErrNothingToArchive, http.StatusNotFound, "no successful items to archive"},
	{errs.ErrRunActive, http.StatusConflict, "run is still active"},
	{errs.ErrItemBusy, http.StatusConflict, "item is being generated"},
	{errs.ErrRunBusy, http.StatusConflict, "another item of the run is being generated"},
	{errs.ErrMaxRunsReached, http.StatusTooManyRequests, "server is busy"},
	{errs.ErrEmptyBatch, http.StatusBadRequest, ""},
	{errs.ErrTooManyItems, http.StatusBadRequest, ""},
	{errs.ErrInvalidKind, http.StatusBadRequest, ""},
	{errs.ErrEmptyPrompt, http.StatusBadRequest, ""},
	{errs.ErrInvalidImageType, http.StatusBadRequest, ""},
	{errs.ErrInvalidImage, http.StatusBadRequest, ""},
}

// StatusFor maps a domain error to its HTTP status and client message.
func StatusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.message == "" {
				return m.status, err.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "internal error"
}

func ResponseErrorAndLog(w http.ResponseWriter, err error, funcName string) {
	status, message := StatusFor(err)
	DoBadResponseAndLog(w, status, message)

	if status >= http.StatusInternalServerError {
		logger.Error(funcName,
			zap.String("error", err.Error()),
		)
		return
	}
	logger.Warn(funcName,
		zap.String("error", err.Error()),
	)
}
