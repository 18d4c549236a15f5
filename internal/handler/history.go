package handler

import (
	"net/http"

	"github.com/templui/goalboard/internal/model"
)

type HistoryHandler struct {
	scopes Scopes
}

func NewHistoryHandler(scopes Scopes) *HistoryHandler {
	return &HistoryHandler{scopes: scopes}
}

// List returns every stored day keyed by date.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	scope, ownerID, ok := h.scopes.owner(w, r)
	if !ok {
		return
	}

	entries, err := scope.History.Entries(ownerID)
	if err != nil {
		writeServiceError(w, r, err, "history")
		return
	}

	WriteData(w, http.StatusOK, entries)
}

func (h *HistoryHandler) Show(w http.ResponseWriter, r *http.Request) {
	scope, ownerID, ok := h.scopes.owner(w, r)
	if !ok {
		return
	}

	entry, err := scope.History.Entry(ownerID, r.PathValue("date"))
	if err != nil {
		writeServiceError(w, r, err, "history entry")
		return
	}

	WriteData(w, http.StatusOK, entry)
}

type saveHistoryRequest struct {
	Date     string          `json:"date"`
	Progress int             `json:"progress"`
	Goals    model.Snapshots `json:"goals"`
}

func (h *HistoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	scope, ownerID, ok := h.scopes.owner(w, r)
	if !ok {
		return
	}

	var req saveHistoryRequest
	err := DecodeJSON(w, r, &req)
	if err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	entry, err := scope.History.Save(ownerID, req.Date, req.Goals, req.Progress)
	if err != nil {
		writeServiceError(w, r, err, "history entry")
		return
	}

	WriteData(w, http.StatusOK, entry)
}

func (h *HistoryHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	scope, ownerID, ok := h.scopes.owner(w, r)
	if !ok {
		return
	}

	days, err := scope.History.Calendar(ownerID, r.URL.Query().Get("month"))
	if err != nil {
		writeServiceError(w, r, err, "calendar")
		return
	}

	WriteData(w, http.StatusOK, days)
}
