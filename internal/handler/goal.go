package handler

import (
	"net/http"

	"github.com/templui/goalboard/internal/model"
)

type GoalHandler struct {
	scopes Scopes
}

func NewGoalHandler(scopes Scopes) *GoalHandler {
	return &GoalHandler{scopes: scopes}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	scope, ownerID, ok := h.scopes.owner(w, r)
	if !ok {
		return
	}

	goals, err := scope.Goals.Goals(ownerID)
	if err != nil {
		writeServiceError(w, r, err, "goals")
		return
	}

	WriteData(w, http.StatusOK, goals)
}

type createGoalRequest struct {
	Text string `json:"text"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	scope, ownerID, ok := h.scopes.owner(w, r)
	if !ok {
		return
	}

	var req createGoalRequest
	err := DecodeJSON(w, r, &req)
	if err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	goal, err := scope.Goals.Add(ownerID, req.Text)
	if err != nil {
		writeServiceError(w, r, err, "goal")
		return
	}

	WriteData(w, http.StatusCreated, goal)
}

func (h *GoalHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	scope, ownerID, ok := h.scopes.owner(w, r)
	if !ok {
		return
	}

	goal, err := scope.Goals.Toggle(ownerID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "goal")
		return
	}

	WriteData(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	scope, ownerID, ok := h.scopes.owner(w, r)
	if !ok {
		return
	}

	err := scope.Goals.Delete(ownerID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "goal")
		return
	}

	WriteNoContent(w)
}

// Summary is today's progress together with the owner's averages and penalty.
func (h *GoalHandler) Summary(w http.ResponseWriter, r *http.Request) {
	scope, ownerID, ok := h.scopes.owner(w, r)
	if !ok {
		return
	}

	summary, err := scope.Goals.Summary(ownerID)
	if err != nil {
		writeServiceError(w, r, err, "summary")
		return
	}

	WriteData(w, http.StatusOK, summary)
}
