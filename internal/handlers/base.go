package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"forumapi/internal/apperrors"
	"forumapi/internal/middleware"
)

func respondSuccess(c *gin.Context, code int, data gin.H) {
	body := gin.H{"status": "success"}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// respondError maps the error taxonomy onto HTTP status codes. Anything
// outside the taxonomy is a server fault and gets a generic 500 body.
func respondError(c *gin.Context, err error) {
	var (
		validation *apperrors.ValidationError
		notFound   *apperrors.NotFoundError
		forbidden  *apperrors.AuthorizationError
		unauth     *apperrors.AuthenticationError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": validation.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": notFound.Message})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"status": "fail", "message": forbidden.Message})
	case errors.As(err, &unauth):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": unauth.Message})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "terjadi kegagalan pada server kami",
		})
	}
}

func credentialID(c *gin.Context) string {
	return c.GetString(middleware.CredentialKey)
}
