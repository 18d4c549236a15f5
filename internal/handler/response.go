package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/goalboard/internal/ctxkeys"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/service"
	"github.com/templui/goalboard/internal/stats"
	"github.com/templui/goalboard/internal/validation"
)

const maxBodyBytes = 64 << 10

// DataResponse wraps every successful body.
type DataResponse struct {
	Data any `json:"data"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, DataResponse{Data: data})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func WriteError(w http.ResponseWriter, problem *model.ProblemDetails) {
	problem.WriteJSON(w)
}

// DecodeJSON decodes a bounded JSON request body into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// fieldErrors maps validation sentinels to the request field they concern.
var fieldErrors = map[error]string{
	validation.ErrGoalTextRequired:   "text",
	validation.ErrGoalTextTooLong:    "text",
	validation.ErrCommentRequired:    "text",
	validation.ErrCommentTooLong:     "text",
	validation.ErrInvalidCommentType: "type",
	validation.ErrInvalidDate:        "date",
	validation.ErrInvalidMonth:       "month",
	validation.ErrInvalidProgress:    "progress",
	stats.ErrUnknownPeriod:           "period",
}

// writeServiceError turns a service error into a problem response.
// Unexpected errors are logged and hidden from the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	for sentinel, field := range fieldErrors {
		if errors.Is(err, sentinel) {
			WriteError(w, model.NewValidationError(field, sentinel.Error()))
			return
		}
	}

	switch {
	case service.IsNotFound(err):
		WriteError(w, model.NewNotFoundError(resource))
	case errors.Is(err, service.ErrGuestComment):
		WriteError(w, model.NewUnauthorizedError(err.Error()))
	default:
		slog.Error("request failed",
			"error", err,
			"path", ctxkeys.URLPath(r.Context()),
			"method", r.Method,
		)
		WriteError(w, model.NewInternalError())
	}
}
