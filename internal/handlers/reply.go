package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/usecase"
)

type ReplyHandler struct {
	replyUseCase *usecase.ReplyUseCase
}

func NewReplyHandler(replyUseCase *usecase.ReplyUseCase) *ReplyHandler {
	return &ReplyHandler{replyUseCase: replyUseCase}
}

func (h *ReplyHandler) Create(c *gin.Context) {
	var payload entities.ReplyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, apperrors.NewValidationError("content harus string"))
		return
	}

	added, err := h.replyUseCase.AddReply(payload, c.Param("threadId"), c.Param("commentId"), credentialID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"addedReply": added})
}

func (h *ReplyHandler) Delete(c *gin.Context) {
	err := h.replyUseCase.DeleteReplyByID(
		c.Param("threadId"),
		c.Param("commentId"),
		c.Param("replyId"),
		credentialID(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil)
}
