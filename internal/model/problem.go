package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const problemTypeBase = "https://goalboard.app/errors/"

// ProblemDetails is an RFC 9457 error body.
type ProblemDetails struct {
	Type   string       `json:"type"`
	Title  string       `json:"title"`
	Status int          `json:"status"`
	Detail string       `json:"detail,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (p *ProblemDetails) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

func (p *ProblemDetails) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

func newProblem(slug, title string, status int, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemTypeBase + slug,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func NewBadRequestError(detail string) *ProblemDetails {
	return newProblem("bad-request", "Bad Request", http.StatusBadRequest, detail)
}

func NewUnauthorizedError(detail string) *ProblemDetails {
	return newProblem("unauthorized", "Unauthorized", http.StatusUnauthorized, detail)
}

func NewForbiddenError(detail string) *ProblemDetails {
	return newProblem("forbidden", "Forbidden", http.StatusForbidden, detail)
}

func NewNotFoundError(resource string) *ProblemDetails {
	return newProblem("not-found", "Not Found", http.StatusNotFound, resource+" not found")
}

func NewValidationError(field, message string) *ProblemDetails {
	p := newProblem("validation", "Validation Error", http.StatusUnprocessableEntity, field+": "+message)
	p.Errors = []FieldError{{Field: field, Message: message}}
	return p
}

func NewRateLimitError(retryAfter int) *ProblemDetails {
	return newProblem("rate-limited", "Too Many Requests", http.StatusTooManyRequests,
		fmt.Sprintf("Rate limit exceeded. Retry after %d seconds", retryAfter))
}

func NewInternalError() *ProblemDetails {
	return newProblem("internal", "Internal Server Error", http.StatusInternalServerError, "An unexpected error occurred")
}
