package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/usecase"
	"forumapi/internal/utils"
)

type AuthHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewAuthHandler(userUseCase *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{userUseCase: userUseCase}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload entities.RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, apperrors.NewValidationError("username dan password harus string"))
		return
	}

	added, err := h.userUseCase.Register(payload)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"addedUser": added})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload entities.LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, apperrors.NewValidationError("username dan password harus string"))
		return
	}

	found, err := h.userUseCase.Login(payload)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(found.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"accessToken": token})
}
