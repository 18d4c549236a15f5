package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/repository"
	"github.com/templui/goalboard/internal/service"
	"github.com/templui/goalboard/internal/validation"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		field  string
	}{
		{"validation", validation.ErrGoalTextRequired, http.StatusUnprocessableEntity, "text"},
		{"wrapped validation", errors.Join(errors.New("ctx"), validation.ErrInvalidDate), http.StatusUnprocessableEntity, "date"},
		{"not found", repository.ErrGoalNotFound, http.StatusNotFound, ""},
		{"guest comment", service.ErrGuestComment, http.StatusUnauthorized, ""},
		{"unexpected", errors.New("database is locked"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "goal")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var problem model.ProblemDetails
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
			assert.Equal(t, tt.status, problem.Status)
			if tt.field != "" {
				require.Len(t, problem.Errors, 1)
				assert.Equal(t, tt.field, problem.Errors[0].Field)
			}
			assert.NotContains(t, problem.Detail, "database", "internal errors are not leaked")
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var body createGoalRequest

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"run"}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &body))
	assert.Equal(t, "run", body.Text)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"run","extra":1}`))
	assert.Error(t, DecodeJSON(httptest.NewRecorder(), req, &body))
}
