package handler

import (
	"log/slog"
	"net/http"

	"github.com/templui/goalboard/internal/ctxkeys"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.Comments()
	if err != nil {
		writeServiceError(w, r, err, "comments")
		return
	}

	WriteData(w, http.StatusOK, comments)
}

type createCommentRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createCommentRequest
	err := DecodeJSON(w, r, &req)
	if err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	comment, err := h.commentService.Add(user, req.Text, req.Type)
	if err != nil {
		writeServiceError(w, r, err, "comment")
		return
	}

	slog.Info("comment posted", "user_id", user.ID, "comment_id", comment.ID, "type", comment.Type)
	WriteData(w, http.StatusCreated, comment)
}
