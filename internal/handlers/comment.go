package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/usecase"
)

type CommentHandler struct {
	commentUseCase *usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var payload entities.CommentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, apperrors.NewValidationError("content harus string"))
		return
	}

	added, err := h.commentUseCase.AddComment(payload, c.Param("threadId"), credentialID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"addedComment": added})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	err := h.commentUseCase.DeleteCommentByID(c.Param("threadId"), c.Param("commentId"), credentialID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil)
}
