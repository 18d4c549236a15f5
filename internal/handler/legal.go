package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/service"
)

type LegalHandler struct {
	legalService *service.LegalService
}

func NewLegalHandler(legalService *service.LegalService) *LegalHandler {
	handler := &LegalHandler{
		legalService: legalService,
	}

	// Pages might be added later
	err := handler.legalService.LoadPages()
	if err != nil {
		slog.Warn("failed to load legal pages", "error", err)
	}

	return handler
}

func (h *LegalHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.legalService.Page(r.PathValue("page"))
	if errors.Is(err, service.ErrPageNotFound) {
		WriteError(w, model.NewNotFoundError("page"))
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "page")
		return
	}

	WriteData(w, http.StatusOK, page)
}
