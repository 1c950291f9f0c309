package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forumapi/internal/usecase"
)

type LikeHandler struct {
	likeUseCase *usecase.LikeUseCase
}

func NewLikeHandler(likeUseCase *usecase.LikeUseCase) *LikeHandler {
	return &LikeHandler{likeUseCase: likeUseCase}
}

// Toggle likes or un-likes a comment for the authenticated user.
func (h *LikeHandler) Toggle(c *gin.Context) {
	err := h.likeUseCase.ToggleLike(c.Param("threadId"), c.Param("commentId"), credentialID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil)
}
