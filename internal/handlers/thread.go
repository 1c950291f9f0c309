package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/usecase"
)

type ThreadHandler struct {
	threadUseCase *usecase.ThreadUseCase
}

func NewThreadHandler(threadUseCase *usecase.ThreadUseCase) *ThreadHandler {
	return &ThreadHandler{threadUseCase: threadUseCase}
}

func (h *ThreadHandler) Create(c *gin.Context) {
	var payload entities.ThreadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, apperrors.NewValidationError("title dan body harus string"))
		return
	}

	added, err := h.threadUseCase.AddThread(payload, credentialID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"addedThread": added})
}

func (h *ThreadHandler) Detail(c *gin.Context) {
	detail, err := h.threadUseCase.GetThreadByID(c.Param("threadId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"thread": detail})
}
